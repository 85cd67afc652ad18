package recruitapi

import (
	"context"
	"fmt"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/apiclient"
)

// Auth exchanges credentials for a bearer token.
type Auth struct {
	c      *apiclient.Client
	prefix string
}

func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := a.c.Post(ctx, a.prefix+"/login", creds, &resp); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &resp, nil
}

func (a *Auth) Signup(ctx context.Context, reg domain.Registration) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := a.c.Post(ctx, a.prefix+"/signup", reg, &resp); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return &resp, nil
}

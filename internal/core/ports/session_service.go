package ports

import (
	"context"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

// SessionService is the narrow surface views use to read and change the session.
type SessionService interface {
	Login(ctx context.Context, email, password string) domain.AuthResult
	Register(ctx context.Context, reg domain.Registration) domain.AuthResult
	Logout(ctx context.Context)
	CurrentIdentity() *domain.Identity
	Snapshot() domain.Session
	// Check re-reads the stored token and returns the reconciled session.
	Check(ctx context.Context) domain.Session
}

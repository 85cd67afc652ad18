package service

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

// TokenClaims are the claims the backend embeds in its bearer tokens.
// sub carries the email.
type TokenClaims struct {
	UserID numericID `json:"userId"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// numericID accepts the user id as a JSON number or a quoted number.
type numericID int64

func (n *numericID) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(b, `"`)
	if len(b) == 0 || string(b) == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("userId: %w", err)
	}
	*n = numericID(v)
	return nil
}

var unverified = jwt.NewParser()

// DecodeToken reads the claims of raw without verifying its signature and
// checks the exp claim against now. A token without exp or with a role outside
// domain.Roles is rejected.
func DecodeToken(raw string, now time.Time) (*domain.Identity, time.Time, error) {
	if raw == "" {
		return nil, time.Time{}, domain.ErrNoToken
	}

	var claims TokenClaims
	if _, _, err := unverified.ParseUnverified(raw, &claims); err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.ExpiresAt == nil {
		return nil, time.Time{}, fmt.Errorf("%w: missing exp claim", domain.ErrInvalidToken)
	}

	role := domain.Role(claims.Role)
	if !role.Valid() {
		return nil, time.Time{}, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidToken, claims.Role)
	}

	exp := claims.ExpiresAt.Time
	if exp.Before(now) {
		return nil, exp, domain.ErrTokenExpired
	}

	return &domain.Identity{
		ID:    int64(claims.UserID),
		Email: claims.Subject,
		Role:  role,
	}, exp, nil
}

package ports

import "context"

// TokenStore is the single durable slot holding the raw bearer token.
// Load returns domain.ErrNoToken when the slot is empty.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Pinger is implemented by stores backed by a remote service.
type Pinger interface {
	Ping(ctx context.Context) error
}

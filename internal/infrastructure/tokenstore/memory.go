// Package tokenstore provides the durable slot holding the raw bearer token.
// Each implementation stores exactly one value; absence means anonymous.
package tokenstore

import (
	"context"
	"sync"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

// Memory keeps the token in process memory. The portal uses it when the
// session must not outlive the process.
type Memory struct {
	mu    sync.RWMutex
	token string
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Load(context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return "", domain.ErrNoToken
	}
	return m.token, nil
}

func (m *Memory) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *Memory) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

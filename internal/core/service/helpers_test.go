package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubAuthAPI struct {
	loginFn  func(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error)
	signupFn func(ctx context.Context, reg domain.Registration) (*domain.AuthResponse, error)
	calls    int
}

func (a *stubAuthAPI) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	a.calls++
	return a.loginFn(ctx, creds)
}

func (a *stubAuthAPI) Signup(ctx context.Context, reg domain.Registration) (*domain.AuthResponse, error) {
	a.calls++
	return a.signupFn(ctx, reg)
}

type stubStore struct {
	mu      sync.Mutex
	token   string
	loadErr error
	saveErr error
	clears  int
}

func (s *stubStore) Load(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return "", s.loadErr
	}
	if s.token == "" {
		return "", domain.ErrNoToken
	}
	return s.token, nil
}

func (s *stubStore) Save(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	return nil
}

func (s *stubStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.clears++
	return nil
}

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) Navigate(path string) { n.paths = append(n.paths, path) }

func (n *recordingNavigator) last() string {
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

// serverErr mimics the HTTP client's error for a rejected request.
type serverErr struct {
	status int
	msg    string
}

func (e *serverErr) Error() string         { return e.msg }
func (e *serverErr) ServerMessage() string { return e.msg }
func (e *serverErr) Unwrap() error {
	if e.status == 401 {
		return domain.ErrUnauthorized
	}
	return domain.ErrServer
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func mintToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func studentToken(t *testing.T, exp time.Time) string {
	return mintToken(t, jwt.MapClaims{
		"sub":    "ana@campus.edu",
		"userId": 7,
		"role":   "STUDENT",
		"exp":    exp.Unix(),
	})
}

package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
	"github.com/talentbridge/recruitment-client/internal/metrics"
)

const (
	loginFailedMessage    = "Login failed. Please check your credentials."
	registerFailedMessage = "Registration failed. Please try again."
	persistFailedMessage  = "Could not save the session. Please try again."
)

// serverMessage is implemented by errors that carry a message from the backend.
type serverMessage interface {
	ServerMessage() string
}

// SessionManager owns the authenticated-identity lifecycle: it derives the
// session from the token store, performs login, register and logout, and
// reacts to authorization failures reported by the HTTP client.
//
// Every mutation takes the lock for a single step, so concurrent operations
// interleave and the last write wins.
type SessionManager struct {
	auth  ports.AuthAPI
	store ports.TokenStore
	nav   ports.Navigator
	log   zerolog.Logger
	now   func() time.Time

	mu       sync.RWMutex
	state    domain.SessionState
	identity *domain.Identity
	inflight int
}

// Option customises a SessionManager.
type Option func(*SessionManager)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *SessionManager) { s.now = now }
}

// NewSessionManager builds the manager and derives the initial state from the
// token store.
func NewSessionManager(ctx context.Context, auth ports.AuthAPI, store ports.TokenStore, nav ports.Navigator, log zerolog.Logger, opts ...Option) *SessionManager {
	s := &SessionManager{
		auth:  auth,
		store: store,
		nav:   nav,
		log:   log,
		now:   time.Now,
		state: domain.StateAnonymous,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Check(ctx)
	return s
}

// Check re-reads the stored token and reconciles the session with it. An
// absent, undecodable or expired token ends the session and is cleared from
// storage. A session that was authenticated before ends as expired; otherwise
// it stays anonymous. Check leaves an in-flight login or register alone.
func (s *SessionManager) Check(ctx context.Context) domain.Session {
	token, err := s.store.Load(ctx)
	if err != nil && !errors.Is(err, domain.ErrNoToken) {
		s.log.Warn().Err(err).Msg("token store unreadable, treating session as absent")
	}

	var identity *domain.Identity
	if err == nil {
		var exp time.Time
		identity, exp, err = DecodeToken(token, s.now())
		if err != nil {
			s.log.Info().Err(err).Msg("discarding stored token")
			if clearErr := s.store.Clear(ctx); clearErr != nil {
				s.log.Warn().Err(clearErr).Msg("failed to clear stored token")
			}
		} else {
			s.log.Debug().Time("expires_at", exp).Msg("stored token valid")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == domain.StateAuthenticating {
		return s.snapshotLocked()
	}
	if identity == nil {
		if s.state == domain.StateAuthenticated {
			s.transitionLocked(domain.StateExpired, nil)
		} else if s.state != domain.StateExpired {
			s.transitionLocked(domain.StateAnonymous, nil)
		}
		return s.snapshotLocked()
	}
	if s.state != domain.StateAuthenticated || s.identity == nil {
		s.transitionLocked(domain.StateAuthenticated, identity)
	}
	return s.snapshotLocked()
}

// Login exchanges credentials for a token. On success the token is persisted,
// the identity is taken from the response and the client navigates to the
// role's home view. Failures are returned in the result, never as panics or
// errors.
func (s *SessionManager) Login(ctx context.Context, email, password string) domain.AuthResult {
	creds := domain.Credentials{Email: strings.TrimSpace(email), Password: password}
	if fields := ValidateForm(creds); fields != nil {
		return domain.AuthResult{Message: FormError(fields).Error(), Fields: fields}
	}

	s.begin()
	resp, err := s.auth.Login(ctx, creds)
	return s.complete(ctx, resp, err, loginFailedMessage, LoginRedirect)
}

// Register creates an account and signs it in. The role is checked before any
// request is made.
func (s *SessionManager) Register(ctx context.Context, reg domain.Registration) domain.AuthResult {
	if !reg.Role.Valid() {
		return domain.AuthResult{
			Message: domain.ErrInvalidRole.Error(),
			Fields:  map[string]string{"role": domain.ErrInvalidRole.Error()},
		}
	}
	reg.Email = strings.TrimSpace(reg.Email)
	reg.FullName = strings.TrimSpace(reg.FullName)
	if fields := ValidateForm(reg); fields != nil {
		return domain.AuthResult{Message: FormError(fields).Error(), Fields: fields}
	}

	s.begin()
	resp, err := s.auth.Signup(ctx, reg)
	return s.complete(ctx, resp, err, registerFailedMessage, RegisterRedirect)
}

// Logout ends the session locally and navigates to the login view. No request
// is made.
func (s *SessionManager) Logout(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear stored token")
	}

	s.mu.Lock()
	s.transitionLocked(domain.StateAnonymous, nil)
	s.mu.Unlock()

	s.nav.Navigate(RouteLogin)
}

// HandleUnauthorized is invoked after the HTTP client received a 401 and
// erased the stored token. An authenticated session becomes expired; any other
// state is left for the operation in flight to settle.
func (s *SessionManager) HandleUnauthorized(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == domain.StateAuthenticated {
		s.transitionLocked(domain.StateExpired, nil)
	}
}

// CurrentIdentity returns a copy of the identity, or nil when anonymous.
func (s *SessionManager) CurrentIdentity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// Snapshot returns a copy of the session record.
func (s *SessionManager) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *SessionManager) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight++
	s.transitionLocked(domain.StateAuthenticating, s.identity)
}

func (s *SessionManager) complete(
	ctx context.Context,
	resp *domain.AuthResponse,
	err error,
	fallback string,
	redirectFor func(domain.Role) string,
) domain.AuthResult {
	if err != nil {
		s.log.Info().Err(err).Msg("authentication failed")
		s.settleFailure(ctx)
		return domain.AuthResult{Message: failureMessage(err, fallback)}
	}
	if resp == nil || resp.Token == "" {
		s.log.Info().Msg("authentication answered without a token")
		s.settleFailure(ctx)
		msg := fallback
		if resp != nil && resp.Message != "" {
			msg = resp.Message
		}
		return domain.AuthResult{Message: msg}
	}

	if saveErr := s.store.Save(ctx, resp.Token); saveErr != nil {
		s.log.Error().Err(saveErr).Msg("failed to persist token")
		s.settleFailure(ctx)
		return domain.AuthResult{Message: persistFailedMessage}
	}

	s.mu.Lock()
	s.inflight--
	s.transitionLocked(domain.StateAuthenticated, resp.Identity())
	s.mu.Unlock()

	redirect := redirectFor(resp.Role)
	s.nav.Navigate(redirect)
	return domain.AuthResult{Success: true, Redirect: redirect}
}

// settleFailure ends an in-flight operation and lands the session back on
// whatever the token store still supports.
func (s *SessionManager) settleFailure(ctx context.Context) {
	var identity *domain.Identity
	if token, err := s.store.Load(ctx); err == nil {
		identity, _, _ = DecodeToken(token, s.now())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inflight--
	if s.inflight > 0 {
		return
	}
	if identity == nil {
		s.transitionLocked(domain.StateAnonymous, nil)
		return
	}
	if s.identity != nil {
		identity = s.identity
	}
	s.transitionLocked(domain.StateAuthenticated, identity)
}

func (s *SessionManager) transitionLocked(to domain.SessionState, identity *domain.Identity) {
	from := s.state
	s.state = to
	if to == domain.StateAuthenticating {
		return
	}
	s.identity = identity
	if from == to {
		return
	}
	metrics.SessionTransitionsTotal.WithLabelValues(string(from), string(to)).Inc()
	ev := s.log.Info().Str("from", string(from)).Str("to", string(to))
	if identity != nil {
		ev = ev.Str("role", string(identity.Role))
	}
	ev.Msg("session transition")
}

func (s *SessionManager) snapshotLocked() domain.Session {
	var identity *domain.Identity
	if s.identity != nil {
		id := *s.identity
		identity = &id
	}
	authenticated := identity != nil && (s.state == domain.StateAuthenticated ||
		(s.state == domain.StateAuthenticating && s.identity != nil))
	return domain.Session{
		State:           s.state,
		Identity:        identity,
		IsAuthenticated: authenticated,
		IsLoading:       s.inflight > 0,
	}
}

func failureMessage(err error, fallback string) string {
	var sm serverMessage
	if errors.As(err, &sm) && sm.ServerMessage() != "" {
		return sm.ServerMessage()
	}
	if errors.Is(err, domain.ErrNetwork) {
		return "Could not reach the server. Please try again later."
	}
	return fallback
}

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
)

type stubSessions struct {
	mu      sync.Mutex
	session domain.Session
}

func (s *stubSessions) set(sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = sess
}

func (s *stubSessions) Login(context.Context, string, string) domain.AuthResult {
	return domain.AuthResult{Success: true, Redirect: "/recruiter/dashboard"}
}

func (s *stubSessions) Register(context.Context, domain.Registration) domain.AuthResult {
	return domain.AuthResult{Message: "nope"}
}

func (s *stubSessions) Logout(context.Context) {}

func (s *stubSessions) CurrentIdentity() *domain.Identity { return s.Snapshot().Identity }

func (s *stubSessions) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *stubSessions) Check(context.Context) domain.Session { return s.Snapshot() }

type stubStudents struct {
	ports.StudentViews
	err error
}

func (s *stubStudents) Dashboard(context.Context, *domain.Identity) (*domain.StudentDashboard, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.StudentDashboard{}, nil
}

type stubRecruiters struct {
	ports.RecruiterViews
}

func (s *stubRecruiters) Dashboard(context.Context, *domain.Identity) (*domain.RecruiterDashboard, error) {
	return &domain.RecruiterDashboard{}, nil
}

// The prometheus middleware registers its collectors globally, so the router
// is built once per test binary.
var (
	routerOnce sync.Once
	testRouter *echo.Echo
	sessions   = &stubSessions{}
	students   = &stubStudents{}
)

func router() *echo.Echo {
	routerOnce.Do(func() {
		testRouter = NewRouter(Deps{
			Sessions:   sessions,
			Students:   students,
			Recruiters: &stubRecruiters{},
			Probes:     map[string]ports.Pinger{},
			Logger:     zerolog.Nop(),
		})
	})
	return testRouter
}

func serve(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router().ServeHTTP(rec, req)
	return rec
}

func signedIn(role domain.Role) domain.Session {
	return domain.Session{
		State:           domain.StateAuthenticated,
		IsAuthenticated: true,
		Identity:        &domain.Identity{ID: 1, Email: "x@y.z", Role: role},
	}
}

func TestRouter_GuardsViews(t *testing.T) {
	tests := []struct {
		name     string
		session  domain.Session
		path     string
		wantCode int
		wantLoc  string
	}{
		{name: "anonymous student view", session: domain.Session{}, path: "/student/dashboard", wantCode: http.StatusSeeOther, wantLoc: "/login"},
		{name: "recruiter on student view", session: signedIn(domain.RoleRecruiter), path: "/student/dashboard", wantCode: http.StatusSeeOther, wantLoc: "/"},
		{name: "student on recruiter view", session: signedIn(domain.RoleStudent), path: "/recruiter/dashboard", wantCode: http.StatusSeeOther, wantLoc: "/"},
		{name: "student view", session: signedIn(domain.RoleStudent), path: "/student/dashboard", wantCode: http.StatusOK},
		{name: "recruiter view", session: signedIn(domain.RoleRecruiter), path: "/recruiter/dashboard", wantCode: http.StatusOK},
		{name: "public home", session: domain.Session{}, path: "/", wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions.set(tt.session)
			rec := serve(http.MethodGet, tt.path)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			if loc := rec.Header().Get(echo.HeaderLocation); loc != tt.wantLoc {
				t.Fatalf("expected Location %q, got %q", tt.wantLoc, loc)
			}
		})
	}
}

func TestRouter_LoginRedirects(t *testing.T) {
	sessions.set(domain.Session{})
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@b.c","password":"x"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	router().ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/recruiter/dashboard" {
		t.Fatalf("expected 303 to dashboard, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestRouter_MapsViewErrors(t *testing.T) {
	sessions.set(signedIn(domain.RoleStudent))
	t.Cleanup(func() { students.err = nil })

	tests := []struct {
		err      error
		wantCode int
	}{
		{err: fmt.Errorf("load dashboard: %w", domain.ErrServer), wantCode: http.StatusBadGateway},
		{err: fmt.Errorf("%w: GET /x: dial tcp", domain.ErrNetwork), wantCode: http.StatusBadGateway},
		{err: domain.ErrNotFound, wantCode: http.StatusNotFound},
		{err: domain.ErrForbidden, wantCode: http.StatusForbidden},
		{err: errors.New("boom"), wantCode: http.StatusInternalServerError},
		{err: domain.ErrUnauthorized, wantCode: http.StatusSeeOther},
	}

	for _, tt := range tests {
		students.err = tt.err
		rec := serve(http.MethodGet, "/student/dashboard")
		if rec.Code != tt.wantCode {
			t.Fatalf("%v: expected %d, got %d", tt.err, tt.wantCode, rec.Code)
		}
	}
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	if rec := serve(http.MethodGet, "/health"); rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}
	if rec := serve(http.MethodGet, "/health/ready"); rec.Code != http.StatusOK {
		t.Fatalf("ready: expected 200, got %d", rec.Code)
	}

	serve(http.MethodGet, "/health")
	rec := serve(http.MethodGet, "/metrics")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "portal_requests_total") {
		t.Fatalf("metrics: expected portal request counters, got %d", rec.Code)
	}

	rec = serve(http.MethodGet, "/swagger/doc.json")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/student/dashboard") {
		t.Fatalf("swagger: expected the API description, got %d", rec.Code)
	}
}

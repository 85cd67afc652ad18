package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/config"
)

type stubSessions struct {
	session  domain.Session
	loginRes domain.AuthResult
	email    string
	password string
	reg      domain.Registration
	logouts  int
}

func (s *stubSessions) Login(_ context.Context, email, password string) domain.AuthResult {
	s.email, s.password = email, password
	if s.loginRes.Success {
		s.session = domain.Session{
			State:           domain.StateAuthenticated,
			IsAuthenticated: true,
			Identity:        &domain.Identity{ID: 7, Email: email, Role: domain.RoleStudent},
		}
	}
	return s.loginRes
}

func (s *stubSessions) Register(_ context.Context, reg domain.Registration) domain.AuthResult {
	s.reg = reg
	return s.loginRes
}

func (s *stubSessions) Logout(context.Context)               { s.logouts++; s.session = domain.Session{} }
func (s *stubSessions) CurrentIdentity() *domain.Identity    { return s.session.Identity }
func (s *stubSessions) Snapshot() domain.Session             { return s.session }
func (s *stubSessions) Check(context.Context) domain.Session { return s.session }

func signedInAs(role domain.Role) domain.Session {
	return domain.Session{
		State:           domain.StateAuthenticated,
		IsAuthenticated: true,
		Identity:        &domain.Identity{ID: 7, Email: "ana@campus.edu", Role: role},
	}
}

// stubStudents overrides only what a test needs; anything else panics.
type stubStudents struct {
	ports.StudentViews
	jobs    []domain.JobOffer
	keyword string
	term    string
	profile domain.StudentProfile
	updated *domain.StudentProfile
	applied int64
}

func (s *stubStudents) Jobs(_ context.Context, keyword, term string) ([]domain.JobOffer, error) {
	s.keyword, s.term = keyword, term
	return s.jobs, nil
}

func (s *stubStudents) Apply(_ context.Context, jobID int64, _ string) (*domain.Application, error) {
	s.applied = jobID
	return &domain.Application{ID: 50, JobOfferID: jobID, Status: domain.ApplicationPending}, nil
}

func (s *stubStudents) Profile(context.Context) (*domain.StudentProfile, error) {
	p := s.profile
	return &p, nil
}

func (s *stubStudents) UpdateProfile(_ context.Context, p domain.StudentProfile) (*domain.StudentProfile, error) {
	s.updated = &p
	return &p, nil
}

type stubRecruiters struct {
	ports.RecruiterViews
	job     domain.JobOffer
	updated *domain.JobOffer
	deleted int64
	status  domain.ApplicationStatus
}

func (s *stubRecruiters) Job(_ context.Context, jobID int64) (*domain.RecruiterJob, error) {
	if jobID != s.job.ID {
		return nil, domain.ErrNotFound
	}
	return &domain.RecruiterJob{Job: s.job, Applications: []domain.Application{}}, nil
}

func (s *stubRecruiters) UpdateJob(_ context.Context, jobID int64, job domain.JobOffer) (*domain.JobOffer, error) {
	s.updated = &job
	job.ID = jobID
	return &job, nil
}

func (s *stubRecruiters) DeleteJob(_ context.Context, jobID int64) error {
	s.deleted = jobID
	return nil
}

func (s *stubRecruiters) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	s.status = status
	return &domain.Application{ID: id, Status: status}, nil
}

type harness struct {
	sessions   *stubSessions
	students   *stubStudents
	recruiters *stubRecruiters
	stdin      string
	out        bytes.Buffer
	err        bytes.Buffer
	closed     int
}

func newHarness(session domain.Session) *harness {
	return &harness{
		sessions:   &stubSessions{session: session},
		students:   &stubStudents{},
		recruiters: &stubRecruiters{},
	}
}

func (h *harness) options() Options {
	return Options{
		Version: "1.2.3",
		LoadConfig: func(context.Context) (*config.Config, error) {
			return &config.Config{LogLevel: "error", Portal: config.PortalConfig{Port: "0"}}, nil
		},
		Build: func(context.Context, *config.Config, zerolog.Logger) (*App, error) {
			return &App{
				Sessions:   h.sessions,
				Students:   h.students,
				Recruiters: h.recruiters,
				Close: func(context.Context) error {
					h.closed++
					return nil
				},
			}, nil
		},
		In:  strings.NewReader(h.stdin),
		Out: &h.out,
		Err: &h.err,
	}
}

func (h *harness) run(t *testing.T, args ...string) int {
	t.Helper()
	h.out.Reset()
	h.err.Reset()
	return Execute(context.Background(), h.options(), append([]string{"--color", "never"}, args...))
}


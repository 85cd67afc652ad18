package ports

import (
	"context"
	"io"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

// StudentViews assembles the data behind every student view.
type StudentViews interface {
	Dashboard(ctx context.Context, id *domain.Identity) (*domain.StudentDashboard, error)
	Jobs(ctx context.Context, keyword, term string) ([]domain.JobOffer, error)
	JobDetail(ctx context.Context, id *domain.Identity, jobID int64) (*domain.JobDetail, error)
	Apply(ctx context.Context, jobID int64, resumeURL string) (*domain.Application, error)
	Applications(ctx context.Context, id *domain.Identity, term, status string) ([]domain.Application, error)
	Withdraw(ctx context.Context, applicationID int64) (*domain.Application, error)
	Profile(ctx context.Context) (*domain.StudentProfile, error)
	UpdateProfile(ctx context.Context, profile domain.StudentProfile) (*domain.StudentProfile, error)
	UploadResume(ctx context.Context, filename string, r io.Reader) (*domain.StudentProfile, error)
	ExtractSkills(ctx context.Context) ([]string, error)
	Recommendations(ctx context.Context, limit int) (*domain.Recommendations, error)
}

// RecruiterViews assembles the data behind every recruiter view.
type RecruiterViews interface {
	Dashboard(ctx context.Context, id *domain.Identity) (*domain.RecruiterDashboard, error)
	Jobs(ctx context.Context, id *domain.Identity, term string) ([]domain.JobOffer, error)
	Job(ctx context.Context, jobID int64) (*domain.RecruiterJob, error)
	CreateJob(ctx context.Context, job domain.JobOffer) (*domain.JobOffer, error)
	UpdateJob(ctx context.Context, jobID int64, job domain.JobOffer) (*domain.JobOffer, error)
	DeleteJob(ctx context.Context, jobID int64) error
	Applications(ctx context.Context, id *domain.Identity, term, status string) ([]domain.Application, error)
	Application(ctx context.Context, id *domain.Identity, applicationID int64) (*domain.Application, error)
	UpdateStatus(ctx context.Context, applicationID int64, status domain.ApplicationStatus) (*domain.Application, error)
}

package ports

import (
	"context"
	"io"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

// AuthAPI is the backend credential exchange.
type AuthAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error)
	Signup(ctx context.Context, reg domain.Registration) (*domain.AuthResponse, error)
}

// JobsAPI covers the job-offer endpoints.
type JobsAPI interface {
	List(ctx context.Context) ([]domain.JobOffer, error)
	Get(ctx context.Context, id int64) (*domain.JobOffer, error)
	Search(ctx context.Context, keyword string) ([]domain.JobOffer, error)
	Create(ctx context.Context, job domain.JobOffer) (*domain.JobOffer, error)
	Update(ctx context.Context, id int64, job domain.JobOffer) (*domain.JobOffer, error)
	Delete(ctx context.Context, id int64) error
	ByRecruiter(ctx context.Context, recruiterID int64, limit int) ([]domain.JobOffer, error)
}

// ApplicationsAPI covers the application workflow endpoints.
type ApplicationsAPI interface {
	ByStudent(ctx context.Context, studentID int64) ([]domain.Application, error)
	ByJobOffer(ctx context.Context, jobOfferID int64) ([]domain.Application, error)
	Create(ctx context.Context, jobOfferID int64, resumeURL string) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error)
	Withdraw(ctx context.Context, id int64) (*domain.Application, error)
}

// StudentsAPI covers the student profile and resume upload endpoints.
type StudentsAPI interface {
	Me(ctx context.Context) (*domain.StudentProfile, error)
	Update(ctx context.Context, profile domain.StudentProfile) (*domain.StudentProfile, error)
	UploadResume(ctx context.Context, filename string, r io.Reader) (*domain.ResumeUpload, error)
}

// AIAPI covers the external recommendation service.
type AIAPI interface {
	Recommend(ctx context.Context, limit int) ([]domain.JobOffer, error)
	Salary(ctx context.Context) (*domain.SalaryPrediction, error)
	Skills(ctx context.Context, resumeText string) ([]string, error)
}

package service

import (
	"context"
	"io"
	"sync"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

// stubJobs serves a fixed job list. Calls may arrive concurrently.
type stubJobs struct {
	mu        sync.Mutex
	jobs      []domain.JobOffer
	err       error
	searched  string
	created   *domain.JobOffer
	updated   *domain.JobOffer
	deleted   int64
	recruiter int64
}

func (s *stubJobs) List(context.Context) ([]domain.JobOffer, error) {
	return s.jobs, s.err
}

func (s *stubJobs) Get(_ context.Context, id int64) (*domain.JobOffer, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, j := range s.jobs {
		if j.ID == id {
			return &j, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubJobs) Search(_ context.Context, keyword string) ([]domain.JobOffer, error) {
	s.mu.Lock()
	s.searched = keyword
	s.mu.Unlock()
	return s.jobs[:1], s.err
}

func (s *stubJobs) Create(_ context.Context, job domain.JobOffer) (*domain.JobOffer, error) {
	job.ID = 99
	s.created = &job
	return &job, s.err
}

func (s *stubJobs) Update(_ context.Context, _ int64, job domain.JobOffer) (*domain.JobOffer, error) {
	s.updated = &job
	return &job, s.err
}

func (s *stubJobs) Delete(_ context.Context, id int64) error {
	s.deleted = id
	return s.err
}

func (s *stubJobs) ByRecruiter(_ context.Context, recruiterID int64, _ int) ([]domain.JobOffer, error) {
	s.mu.Lock()
	s.recruiter = recruiterID
	s.mu.Unlock()
	return s.jobs, s.err
}

type stubApps struct {
	mu        sync.Mutex
	apps      []domain.Application
	err       error
	jobErr    error
	resumeURL string
	status    domain.ApplicationStatus
	withdrawn int64
}

func (s *stubApps) ByStudent(context.Context, int64) ([]domain.Application, error) {
	return s.apps, s.err
}

func (s *stubApps) ByJobOffer(_ context.Context, jobOfferID int64) ([]domain.Application, error) {
	if s.jobErr != nil {
		return nil, s.jobErr
	}
	var out []domain.Application
	for _, a := range s.apps {
		if a.JobOfferID == jobOfferID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubApps) Create(_ context.Context, jobOfferID int64, resumeURL string) (*domain.Application, error) {
	s.mu.Lock()
	s.resumeURL = resumeURL
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Application{ID: 50, JobOfferID: jobOfferID, Status: domain.ApplicationPending, ResumeURL: resumeURL}, nil
}

func (s *stubApps) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	s.status = status
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Application{ID: id, Status: status}, nil
}

func (s *stubApps) Withdraw(_ context.Context, id int64) (*domain.Application, error) {
	s.withdrawn = id
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Application{ID: id, Status: domain.ApplicationWithdrawn}, nil
}

type stubStudents struct {
	mu        sync.Mutex
	profile   *domain.StudentProfile
	err       error
	updated   *domain.StudentProfile
	uploaded  string
	uploadErr error
}

func (s *stubStudents) Me(context.Context) (*domain.StudentProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	p := *s.profile
	return &p, nil
}

func (s *stubStudents) Update(_ context.Context, profile domain.StudentProfile) (*domain.StudentProfile, error) {
	s.mu.Lock()
	s.updated = &profile
	s.mu.Unlock()
	return &profile, nil
}

func (s *stubStudents) UploadResume(_ context.Context, filename string, r io.Reader) (*domain.ResumeUpload, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	body, _ := io.ReadAll(r)
	s.uploaded = string(body)
	return &domain.ResumeUpload{
		Filename:        filename,
		FileDownloadURI: "http://files.local/download/" + filename,
		FileType:        "application/pdf",
	}, nil
}

type stubAI struct {
	mu         sync.Mutex
	jobs       []domain.JobOffer
	err        error
	salary     *domain.SalaryPrediction
	salaryErr  error
	skills     []string
	limit      int
	resumeText string
}

func (s *stubAI) Recommend(_ context.Context, limit int) ([]domain.JobOffer, error) {
	s.mu.Lock()
	s.limit = limit
	s.mu.Unlock()
	return s.jobs, s.err
}

func (s *stubAI) Salary(context.Context) (*domain.SalaryPrediction, error) {
	return s.salary, s.salaryErr
}

func (s *stubAI) Skills(_ context.Context, resumeText string) ([]string, error) {
	s.resumeText = resumeText
	return s.skills, s.err
}

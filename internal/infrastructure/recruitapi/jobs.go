package recruitapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/apiclient"
)

// Jobs covers the job-offer endpoints.
type Jobs struct {
	c      *apiclient.Client
	prefix string
}

func (j *Jobs) List(ctx context.Context) ([]domain.JobOffer, error) {
	var out []domain.JobOffer
	if err := j.c.Get(ctx, j.prefix, &out); err != nil {
		return nil, fmt.Errorf("list job offers: %w", err)
	}
	return out, nil
}

func (j *Jobs) Get(ctx context.Context, jobID int64) (*domain.JobOffer, error) {
	var out domain.JobOffer
	if err := j.c.Get(ctx, j.prefix+"/"+id(jobID), &out); err != nil {
		return nil, fmt.Errorf("get job offer %d: %w", jobID, err)
	}
	return &out, nil
}

func (j *Jobs) Search(ctx context.Context, keyword string) ([]domain.JobOffer, error) {
	var out []domain.JobOffer
	if err := j.c.Get(ctx, j.prefix+"/search", &out, apiclient.WithQuery("keyword", keyword)); err != nil {
		return nil, fmt.Errorf("search job offers: %w", err)
	}
	return out, nil
}

func (j *Jobs) Create(ctx context.Context, job domain.JobOffer) (*domain.JobOffer, error) {
	var out domain.JobOffer
	if err := j.c.Post(ctx, j.prefix, job, &out); err != nil {
		return nil, fmt.Errorf("create job offer: %w", err)
	}
	return &out, nil
}

func (j *Jobs) Update(ctx context.Context, jobID int64, job domain.JobOffer) (*domain.JobOffer, error) {
	var out domain.JobOffer
	if err := j.c.Put(ctx, j.prefix+"/"+id(jobID), job, &out); err != nil {
		return nil, fmt.Errorf("update job offer %d: %w", jobID, err)
	}
	return &out, nil
}

func (j *Jobs) Delete(ctx context.Context, jobID int64) error {
	if err := j.c.Delete(ctx, j.prefix+"/"+id(jobID), nil); err != nil {
		return fmt.Errorf("delete job offer %d: %w", jobID, err)
	}
	return nil
}

// ByRecruiter lists a recruiter's postings. A limit of zero or less asks for
// all of them.
func (j *Jobs) ByRecruiter(ctx context.Context, recruiterID int64, limit int) ([]domain.JobOffer, error) {
	var opts []apiclient.RequestOption
	if limit > 0 {
		opts = append(opts, apiclient.WithQuery("limit", strconv.Itoa(limit)))
	}
	var out []domain.JobOffer
	if err := j.c.Get(ctx, j.prefix+"/recruiter/"+id(recruiterID), &out, opts...); err != nil {
		return nil, fmt.Errorf("list job offers of recruiter %d: %w", recruiterID, err)
	}
	return out, nil
}

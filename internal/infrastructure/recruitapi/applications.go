package recruitapi

import (
	"context"
	"fmt"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/apiclient"
)

// Applications covers the application workflow endpoints.
type Applications struct {
	c      *apiclient.Client
	prefix string
}

func (a *Applications) ByStudent(ctx context.Context, studentID int64) ([]domain.Application, error) {
	var out []domain.Application
	if err := a.c.Get(ctx, a.prefix+"/student/"+id(studentID), &out); err != nil {
		return nil, fmt.Errorf("list applications of student %d: %w", studentID, err)
	}
	return out, nil
}

func (a *Applications) ByJobOffer(ctx context.Context, jobOfferID int64) ([]domain.Application, error) {
	var out []domain.Application
	if err := a.c.Get(ctx, a.prefix+"/joboffer/"+id(jobOfferID), &out); err != nil {
		return nil, fmt.Errorf("list applications of job offer %d: %w", jobOfferID, err)
	}
	return out, nil
}

// Create applies the signed-in student to a job offer. resumeURL may be empty.
func (a *Applications) Create(ctx context.Context, jobOfferID int64, resumeURL string) (*domain.Application, error) {
	var out domain.Application
	err := a.c.Post(ctx, a.prefix, nil, &out,
		apiclient.WithQuery("jobOfferId", id(jobOfferID)),
		apiclient.WithQuery("resumeUrl", resumeURL),
	)
	if err != nil {
		return nil, fmt.Errorf("apply to job offer %d: %w", jobOfferID, err)
	}
	return &out, nil
}

func (a *Applications) UpdateStatus(ctx context.Context, appID int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown application status %q", domain.ErrValidation, status)
	}
	var out domain.Application
	err := a.c.Put(ctx, a.prefix+"/"+id(appID)+"/status", nil, &out,
		apiclient.WithQuery("status", string(status)),
	)
	if err != nil {
		return nil, fmt.Errorf("update application %d: %w", appID, err)
	}
	return &out, nil
}

func (a *Applications) Withdraw(ctx context.Context, appID int64) (*domain.Application, error) {
	var out domain.Application
	if err := a.c.Put(ctx, a.prefix+"/"+id(appID)+"/withdraw", nil, &out); err != nil {
		return nil, fmt.Errorf("withdraw application %d: %w", appID, err)
	}
	return &out, nil
}

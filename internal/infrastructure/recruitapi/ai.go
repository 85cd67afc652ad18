package recruitapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/infrastructure/apiclient"
)

const defaultRecommendations = 5

// AI covers the recommendation, salary and skill extraction endpoints.
type AI struct {
	c      *apiclient.Client
	prefix string
}

// Recommend returns up to limit job offers for the signed-in student. A limit
// of zero or less means 5.
func (a *AI) Recommend(ctx context.Context, limit int) ([]domain.JobOffer, error) {
	if limit <= 0 {
		limit = defaultRecommendations
	}
	var out []domain.JobOffer
	if err := a.c.Get(ctx, a.prefix+"/recommend", &out, apiclient.WithQuery("limit", strconv.Itoa(limit))); err != nil {
		return nil, fmt.Errorf("recommendations: %w", err)
	}
	return out, nil
}

func (a *AI) Salary(ctx context.Context) (*domain.SalaryPrediction, error) {
	var out domain.SalaryPrediction
	if err := a.c.Get(ctx, a.prefix+"/salary", &out); err != nil {
		return nil, fmt.Errorf("salary prediction: %w", err)
	}
	return &out, nil
}

func (a *AI) Skills(ctx context.Context, resumeText string) ([]string, error) {
	out := []string{}
	if err := a.c.Get(ctx, a.prefix+"/skills", &out, apiclient.WithQuery("resumeText", resumeText)); err != nil {
		return nil, fmt.Errorf("extract skills: %w", err)
	}
	return out, nil
}

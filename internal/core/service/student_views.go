package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
)

const (
	dashboardRecentJobs      = 3
	dashboardRecommendations = 3
	recommendationsPageLimit = 5
)

type StudentViews struct {
	jobs     ports.JobsAPI
	apps     ports.ApplicationsAPI
	students ports.StudentsAPI
	ai       ports.AIAPI
	logger   zerolog.Logger
}

func NewStudentViews(jobs ports.JobsAPI, apps ports.ApplicationsAPI, students ports.StudentsAPI, ai ports.AIAPI, logger zerolog.Logger) *StudentViews {
	return &StudentViews{jobs: jobs, apps: apps, students: students, ai: ai, logger: logger}
}

// Dashboard loads recent jobs, the student's applications and a few
// recommendations concurrently. Any failed fetch fails the whole view.
func (v *StudentViews) Dashboard(ctx context.Context, id *domain.Identity) (*domain.StudentDashboard, error) {
	if id == nil {
		return nil, domain.ErrUnauthorized
	}

	var (
		jobs []domain.JobOffer
		apps []domain.Application
		recs []domain.JobOffer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		jobs, err = v.jobs.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		apps, err = v.apps.ByStudent(gctx, id.ID)
		return err
	})
	g.Go(func() (err error) {
		recs, err = v.ai.Recommend(gctx, dashboardRecommendations)
		return err
	})
	if err := g.Wait(); err != nil {
		v.logger.Warn().Err(err).Int64("user_id", id.ID).Msg("student dashboard incomplete")
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	if len(jobs) > dashboardRecentJobs {
		jobs = jobs[:dashboardRecentJobs]
	}
	return &domain.StudentDashboard{
		RecentJobs:      nonNilJobs(jobs),
		Applications:    nonNilApps(apps),
		StatusCounts:    CountByStatus(apps),
		Recommendations: nonNilJobs(recs),
	}, nil
}

// Jobs lists job offers. A keyword asks the backend to search; term then
// narrows the result locally.
func (v *StudentViews) Jobs(ctx context.Context, keyword, term string) ([]domain.JobOffer, error) {
	var (
		jobs []domain.JobOffer
		err  error
	)
	if keyword = strings.TrimSpace(keyword); keyword != "" {
		jobs, err = v.jobs.Search(ctx, keyword)
	} else {
		jobs, err = v.jobs.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return nonNilJobs(FilterJobs(jobs, term)), nil
}

// JobDetail loads the job, the student's profile and applications to compute
// the match score and whether the student already applied.
func (v *StudentViews) JobDetail(ctx context.Context, id *domain.Identity, jobID int64) (*domain.JobDetail, error) {
	if id == nil {
		return nil, domain.ErrUnauthorized
	}

	var (
		job     *domain.JobOffer
		profile *domain.StudentProfile
		apps    []domain.Application
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		job, err = v.jobs.Get(gctx, jobID)
		return err
	})
	g.Go(func() (err error) {
		profile, err = v.students.Me(gctx)
		return err
	})
	g.Go(func() (err error) {
		apps, err = v.apps.ByStudent(gctx, id.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load job %d: %w", jobID, err)
	}

	detail := &domain.JobDetail{
		Job:        *job,
		HasApplied: HasApplied(apps, jobID),
		ResumeURL:  profile.ResumeURL,
	}
	if score, ok := MatchScore(profile.Skills, job.Skills); ok {
		detail.MatchScore = &score
	}
	for i := range apps {
		if apps[i].JobOfferID == jobID {
			a := apps[i]
			detail.Application = &a
			break
		}
	}
	return detail, nil
}

// Apply submits an application. Without an explicit resume URL the one on the
// student's profile is used, if any.
func (v *StudentViews) Apply(ctx context.Context, jobID int64, resumeURL string) (*domain.Application, error) {
	if resumeURL == "" {
		if profile, err := v.students.Me(ctx); err == nil {
			resumeURL = profile.ResumeURL
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	app, err := v.apps.Create(ctx, jobID, resumeURL)
	if err != nil {
		return nil, err
	}
	v.logger.Info().Int64("job_id", jobID).Int64("application_id", app.ID).Msg("applied to job")
	return app, nil
}

func (v *StudentViews) Applications(ctx context.Context, id *domain.Identity, term, status string) ([]domain.Application, error) {
	if id == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := checkStatusFilter(status); err != nil {
		return nil, err
	}
	apps, err := v.apps.ByStudent(ctx, id.ID)
	if err != nil {
		return nil, err
	}
	return FilterApplications(apps, term, status), nil
}

func (v *StudentViews) Withdraw(ctx context.Context, applicationID int64) (*domain.Application, error) {
	app, err := v.apps.Withdraw(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	v.logger.Info().Int64("application_id", applicationID).Msg("application withdrawn")
	return app, nil
}

func (v *StudentViews) Profile(ctx context.Context) (*domain.StudentProfile, error) {
	return v.students.Me(ctx)
}

func (v *StudentViews) UpdateProfile(ctx context.Context, profile domain.StudentProfile) (*domain.StudentProfile, error) {
	profile.FullName = strings.TrimSpace(profile.FullName)
	profile.Skills = strings.Join(ParseSkills(profile.Skills), ", ")
	return v.students.Update(ctx, profile)
}

// UploadResume stores the file and records its download URL on the profile.
func (v *StudentViews) UploadResume(ctx context.Context, filename string, r io.Reader) (*domain.StudentProfile, error) {
	upload, err := v.students.UploadResume(ctx, filename, r)
	if err != nil {
		return nil, err
	}
	profile, err := v.students.Me(ctx)
	if err != nil {
		return nil, err
	}
	profile.ResumeURL = upload.FileDownloadURI
	updated, err := v.students.Update(ctx, *profile)
	if err != nil {
		return nil, err
	}
	v.logger.Info().Str("file", upload.Filename).Str("type", upload.FileType).Msg("resume uploaded")
	return updated, nil
}

// ExtractSkills asks the AI service for skills found in the profile's
// education text. The profile must carry a resume first.
func (v *StudentViews) ExtractSkills(ctx context.Context) ([]string, error) {
	profile, err := v.students.Me(ctx)
	if err != nil {
		return nil, err
	}
	if profile.ResumeURL == "" {
		return nil, fmt.Errorf("%w: please upload a resume first to extract skills", domain.ErrValidation)
	}
	return v.ai.Skills(ctx, profile.Education)
}

// Recommendations loads the profile, suggested jobs and the salary estimate.
// A missing salary estimate does not fail the view.
func (v *StudentViews) Recommendations(ctx context.Context, limit int) (*domain.Recommendations, error) {
	if limit <= 0 {
		limit = recommendationsPageLimit
	}

	var (
		profile *domain.StudentProfile
		jobs    []domain.JobOffer
		salary  *domain.SalaryPrediction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile, err = v.students.Me(gctx)
		return err
	})
	g.Go(func() (err error) {
		jobs, err = v.ai.Recommend(gctx, limit)
		return err
	})
	g.Go(func() error {
		pred, err := v.ai.Salary(gctx)
		if err != nil {
			v.logger.Debug().Err(err).Msg("salary prediction unavailable")
			return nil
		}
		salary = pred
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load recommendations: %w", err)
	}

	return &domain.Recommendations{Profile: profile, Jobs: nonNilJobs(jobs), Salary: salary}, nil
}

func checkStatusFilter(status string) error {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" || status == domain.StatusAll {
		return nil
	}
	if _, err := domain.ParseApplicationStatus(status); err != nil {
		return fmt.Errorf("%w: unknown status %q", err, status)
	}
	return nil
}

func nonNilJobs(jobs []domain.JobOffer) []domain.JobOffer {
	if jobs == nil {
		return []domain.JobOffer{}
	}
	return jobs
}

func nonNilApps(apps []domain.Application) []domain.Application {
	if apps == nil {
		return []domain.Application{}
	}
	return apps
}

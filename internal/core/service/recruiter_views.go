package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
)

const (
	dashboardRecentItems = 5
	applicationFetchers  = 4
)

type RecruiterViews struct {
	jobs   ports.JobsAPI
	apps   ports.ApplicationsAPI
	logger zerolog.Logger
}

func NewRecruiterViews(jobs ports.JobsAPI, apps ports.ApplicationsAPI, logger zerolog.Logger) *RecruiterViews {
	return &RecruiterViews{jobs: jobs, apps: apps, logger: logger}
}

// Dashboard shows the latest postings, the latest applications across them
// and the counters over everything.
func (v *RecruiterViews) Dashboard(ctx context.Context, id *domain.Identity) (*domain.RecruiterDashboard, error) {
	if id == nil {
		return nil, domain.ErrUnauthorized
	}
	jobs, apps, err := v.collect(ctx, id.ID)
	if err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	recentJobs := jobs
	if len(recentJobs) > dashboardRecentItems {
		recentJobs = recentJobs[:dashboardRecentItems]
	}
	recentApps := apps
	if len(recentApps) > dashboardRecentItems {
		recentApps = recentApps[:dashboardRecentItems]
	}
	return &domain.RecruiterDashboard{
		RecentJobs:         nonNilJobs(recentJobs),
		RecentApplications: nonNilApps(recentApps),
		Stats:              SummarizeRecruiter(jobs, apps),
	}, nil
}

func (v *RecruiterViews) Jobs(ctx context.Context, id *domain.Identity, term string) ([]domain.JobOffer, error) {
	if id == nil {
		return nil, domain.ErrUnauthorized
	}
	jobs, err := v.jobs.ByRecruiter(ctx, id.ID, 0)
	if err != nil {
		return nil, err
	}
	return nonNilJobs(FilterJobs(jobs, term)), nil
}

// Job loads one posting together with its applications.
func (v *RecruiterViews) Job(ctx context.Context, jobID int64) (*domain.RecruiterJob, error) {
	var (
		job  *domain.JobOffer
		apps []domain.Application
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		job, err = v.jobs.Get(gctx, jobID)
		return err
	})
	g.Go(func() (err error) {
		apps, err = v.apps.ByJobOffer(gctx, jobID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load job %d: %w", jobID, err)
	}
	return &domain.RecruiterJob{Job: *job, Applications: nonNilApps(apps)}, nil
}

func (v *RecruiterViews) CreateJob(ctx context.Context, job domain.JobOffer) (*domain.JobOffer, error) {
	if err := checkJob(&job); err != nil {
		return nil, err
	}
	created, err := v.jobs.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	v.logger.Info().Int64("job_id", created.ID).Str("title", created.Title).Msg("job offer created")
	return created, nil
}

func (v *RecruiterViews) UpdateJob(ctx context.Context, jobID int64, job domain.JobOffer) (*domain.JobOffer, error) {
	if err := checkJob(&job); err != nil {
		return nil, err
	}
	job.ID = jobID
	updated, err := v.jobs.Update(ctx, jobID, job)
	if err != nil {
		return nil, err
	}
	v.logger.Info().Int64("job_id", jobID).Msg("job offer updated")
	return updated, nil
}

func (v *RecruiterViews) DeleteJob(ctx context.Context, jobID int64) error {
	if err := v.jobs.Delete(ctx, jobID); err != nil {
		return err
	}
	v.logger.Info().Int64("job_id", jobID).Msg("job offer deleted")
	return nil
}

// Applications lists the applications received by all of the recruiter's
// postings, newest first.
func (v *RecruiterViews) Applications(ctx context.Context, id *domain.Identity, term, status string) ([]domain.Application, error) {
	if id == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := checkStatusFilter(status); err != nil {
		return nil, err
	}
	_, apps, err := v.collect(ctx, id.ID)
	if err != nil {
		return nil, fmt.Errorf("load applications: %w", err)
	}
	return FilterApplications(apps, term, status), nil
}

// Application finds one application among those the recruiter received.
func (v *RecruiterViews) Application(ctx context.Context, id *domain.Identity, applicationID int64) (*domain.Application, error) {
	apps, err := v.Applications(ctx, id, "", "")
	if err != nil {
		return nil, err
	}
	app := FindApplication(apps, applicationID)
	if app == nil {
		return nil, fmt.Errorf("application %d: %w", applicationID, domain.ErrNotFound)
	}
	return app, nil
}

func (v *RecruiterViews) UpdateStatus(ctx context.Context, applicationID int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	app, err := v.apps.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		return nil, err
	}
	v.logger.Info().Int64("application_id", applicationID).Str("status", string(status)).Msg("application status updated")
	return app, nil
}

// collect fetches the recruiter's postings, then the applications of each
// posting with a bounded number of concurrent requests.
func (v *RecruiterViews) collect(ctx context.Context, recruiterID int64) ([]domain.JobOffer, []domain.Application, error) {
	jobs, err := v.jobs.ByRecruiter(ctx, recruiterID, 0)
	if err != nil {
		return nil, nil, err
	}

	perJob := make([][]domain.Application, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(applicationFetchers)
	for i, job := range jobs {
		g.Go(func() (err error) {
			perJob[i], err = v.apps.ByJobOffer(gctx, job.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var apps []domain.Application
	for i, batch := range perJob {
		for _, a := range batch {
			if a.JobTitle == "" {
				a.JobTitle = jobs[i].Title
			}
			if a.CompanyName == "" {
				a.CompanyName = jobs[i].CompanyName
			}
			apps = append(apps, a)
		}
	}
	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].AppliedAt.After(apps[j].AppliedAt.Time)
	})
	return jobs, apps, nil
}

func checkJob(job *domain.JobOffer) error {
	job.Title = strings.TrimSpace(job.Title)
	job.Skills = strings.Join(ParseSkills(job.Skills), ", ")
	if fields := ValidateForm(job); fields != nil {
		return FormError(fields)
	}
	if !job.SalaryRangeValid() {
		return fmt.Errorf("%w: salaryMax must be at least salaryMin", domain.ErrValidation)
	}
	return nil
}

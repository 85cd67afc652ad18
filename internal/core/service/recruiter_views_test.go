package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

var bruno = &domain.Identity{ID: 21, Email: "bruno@acme.io", Role: domain.RoleRecruiter}

func datedApps() []domain.Application {
	apps := sampleApps()
	for i := range apps {
		apps[i].AppliedAt = domain.Timestamp{Time: fixedNow.Add(time.Duration(i) * time.Hour)}
	}
	apps[2].JobTitle = ""
	return apps
}

func newRecruiterFixture() (*stubJobs, *stubApps, *RecruiterViews) {
	jobs := &stubJobs{jobs: sampleJobs()}
	apps := &stubApps{apps: datedApps()}
	return jobs, apps, NewRecruiterViews(jobs, apps, discardLogger)
}

func floatPtr(f float64) *float64 { return &f }

func TestRecruiterDashboard(t *testing.T) {
	jobs, _, views := newRecruiterFixture()

	dash, err := views.Dashboard(context.Background(), bruno)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs.recruiter != 21 {
		t.Fatalf("expected jobs of recruiter 21, got %d", jobs.recruiter)
	}
	want := domain.RecruiterStats{TotalJobs: 3, ActiveJobs: 2, TotalApplications: 3, PendingApplications: 2}
	if dash.Stats != want {
		t.Fatalf("expected %+v, got %+v", want, dash.Stats)
	}
	if len(dash.RecentApplications) != 3 || dash.RecentApplications[0].ID != 12 {
		t.Fatalf("expected newest application first, got %+v", dash.RecentApplications)
	}
	if dash.RecentApplications[0].JobTitle != "Data Intern" {
		t.Fatalf("missing job title must come from the posting, got %q", dash.RecentApplications[0].JobTitle)
	}
}

func TestRecruiterDashboardKeepsFiveRecent(t *testing.T) {
	jobs, _, views := newRecruiterFixture()
	for i := int64(10); i < 16; i++ {
		jobs.jobs = append(jobs.jobs, domain.JobOffer{ID: i, Title: "Extra", Active: true})
	}

	dash, err := views.Dashboard(context.Background(), bruno)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dash.RecentJobs) != 5 || dash.Stats.TotalJobs != 9 {
		t.Fatalf("expected 5 recent of 9 jobs, got %d of %d", len(dash.RecentJobs), dash.Stats.TotalJobs)
	}
}

func TestRecruiterDashboardFailure(t *testing.T) {
	_, apps, views := newRecruiterFixture()
	apps.jobErr = domain.ErrServer

	if _, err := views.Dashboard(context.Background(), bruno); !errors.Is(err, domain.ErrServer) {
		t.Fatalf("expected ErrServer, got %v", err)
	}
	if _, err := views.Dashboard(context.Background(), nil); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRecruiterJob(t *testing.T) {
	_, _, views := newRecruiterFixture()

	rj, err := views.Job(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rj.Job.Title != "Backend Engineer" || len(rj.Applications) != 2 {
		t.Fatalf("unexpected job view %+v", rj)
	}

	rj, err = views.Job(context.Background(), 2)
	if err != nil || rj.Applications == nil || len(rj.Applications) != 0 {
		t.Fatalf("expected empty application list, got %+v (%v)", rj, err)
	}

	if _, err := views.Job(context.Background(), 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecruiterCreateJob(t *testing.T) {
	jobs, _, views := newRecruiterFixture()

	created, err := views.CreateJob(context.Background(), domain.JobOffer{
		Title: "  Platform Engineer ", Skills: "Go,,Kubernetes ", SalaryMin: floatPtr(1000), SalaryMax: floatPtr(2000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 99 || jobs.created.Title != "Platform Engineer" || jobs.created.Skills != "Go, Kubernetes" {
		t.Fatalf("unexpected created job %+v", jobs.created)
	}
}

func TestRecruiterCreateJobValidation(t *testing.T) {
	tests := []struct {
		name string
		job  domain.JobOffer
	}{
		{name: "missing title", job: domain.JobOffer{Title: "   "}},
		{name: "negative salary", job: domain.JobOffer{Title: "Dev", SalaryMin: floatPtr(-1)}},
		{name: "inverted range", job: domain.JobOffer{Title: "Dev", SalaryMin: floatPtr(3000), SalaryMax: floatPtr(2000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, _, views := newRecruiterFixture()
			_, err := views.CreateJob(context.Background(), tt.job)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if jobs.created != nil {
				t.Fatalf("invalid job must not reach the backend")
			}
		})
	}
}

func TestRecruiterUpdateAndDeleteJob(t *testing.T) {
	jobs, _, views := newRecruiterFixture()

	if _, err := views.UpdateJob(context.Background(), 3, domain.JobOffer{Title: "Data Intern II"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs.updated.ID != 3 || jobs.updated.Title != "Data Intern II" {
		t.Fatalf("expected job 3 to be updated, got %+v", jobs.updated)
	}

	if err := views.DeleteJob(context.Background(), 3); err != nil || jobs.deleted != 3 {
		t.Fatalf("expected job 3 deleted, got %d (%v)", jobs.deleted, err)
	}
}

func TestRecruiterApplications(t *testing.T) {
	_, _, views := newRecruiterFixture()

	all, err := views.Applications(context.Background(), bruno, "", domain.StatusAll)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected 3 applications, got %d (%v)", len(all), err)
	}
	for i := 1; i < len(all); i++ {
		if all[i].AppliedAt.After(all[i-1].AppliedAt.Time) {
			t.Fatalf("applications must be newest first: %+v", all)
		}
	}

	pending, err := views.Applications(context.Background(), bruno, "ana", "PENDING")
	if err != nil || len(pending) != 1 || pending[0].ID != 10 {
		t.Fatalf("expected application 10, got %+v (%v)", pending, err)
	}

	if _, err := views.Applications(context.Background(), bruno, "", "nope"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRecruiterApplication(t *testing.T) {
	_, _, views := newRecruiterFixture()

	app, err := views.Application(context.Background(), bruno, 11)
	if err != nil || app.StudentName != "Bruno Reis" {
		t.Fatalf("expected application 11, got %+v (%v)", app, err)
	}
	if _, err := views.Application(context.Background(), bruno, 404); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRecruiterUpdateStatus(t *testing.T) {
	_, apps, views := newRecruiterFixture()

	app, err := views.UpdateStatus(context.Background(), 10, domain.ApplicationReviewing)
	if err != nil || app.Status != domain.ApplicationReviewing || apps.status != domain.ApplicationReviewing {
		t.Fatalf("expected REVIEWING, got %+v (%v)", app, err)
	}

	apps.status = ""
	if _, err := views.UpdateStatus(context.Background(), 10, "HIRED"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if apps.status != "" {
		t.Fatalf("invalid status must not reach the backend")
	}
}

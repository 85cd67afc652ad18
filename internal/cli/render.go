package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/service"
	"github.com/talentbridge/recruitment-client/internal/output"
)

func printJobs(p *output.Printer, jobs []domain.JobOffer) error {
	if len(jobs) == 0 {
		p.Info("no job offers")
		return nil
	}
	t := p.NewTable("ID", "Title", "Company", "Salary", "Skills", "Active")
	for _, j := range jobs {
		t.AddRow(strconv.FormatInt(j.ID, 10), j.Title, dash(j.CompanyName), salary(j.SalaryMin, j.SalaryMax), dash(j.Skills), yesNo(j.Active))
	}
	return t.Render()
}

func printApplications(p *output.Printer, apps []domain.Application) error {
	if len(apps) == 0 {
		p.Info("no applications")
		return nil
	}
	t := p.NewTable("ID", "Job", "Company", "Student", "Status", "Applied")
	for _, a := range apps {
		t.AddRow(strconv.FormatInt(a.ID, 10), dash(a.JobTitle), dash(a.CompanyName), dash(a.StudentName), p.StatusBadge(string(a.Status)), a.AppliedAt.Date())
	}
	return t.Render()
}

func printJob(p *output.Printer, j domain.JobOffer) {
	p.Header(j.Title)
	p.Field("ID", strconv.FormatInt(j.ID, 10))
	p.Field("Company", j.CompanyName)
	p.Field("Salary", salary(j.SalaryMin, j.SalaryMax))
	p.Field("Skills", j.Skills)
	p.Field("Active", yesNo(j.Active))
	p.Field("Posted", j.CreatedAt.Date())
	if j.Description != "" {
		p.Print("")
		p.Print("%s", j.Description)
	}
}

func printApplication(p *output.Printer, a domain.Application) {
	p.Header(fmt.Sprintf("Application %d", a.ID))
	p.Field("Job", a.JobTitle)
	p.Field("Company", a.CompanyName)
	p.Field("Student", a.StudentName)
	p.Field("Email", a.StudentEmail)
	p.Field("Status", p.StatusBadge(string(a.Status)))
	p.Field("Applied", a.AppliedAt.Date())
	p.Field("Resume", a.ResumeURL)
}

func printProfile(p *output.Printer, prof domain.StudentProfile) {
	p.Header("Profile")
	p.Field("Name", prof.FullName)
	p.Field("Email", prof.Email)
	p.Field("Education", prof.Education)
	p.Field("Skills", strings.Join(service.ParseSkills(prof.Skills), ", "))
	p.Field("Resume", prof.ResumeURL)
}

func printStatusCounts(p *output.Printer, counts map[domain.ApplicationStatus]int) {
	for _, s := range domain.ApplicationStatuses {
		if n := counts[s]; n > 0 {
			p.Field(string(s), strconv.Itoa(n))
		}
	}
}

func salary(lo, hi *float64) string {
	switch {
	case lo != nil && hi != nil:
		return fmt.Sprintf("%.0f - %.0f", *lo, *hi)
	case lo != nil:
		return fmt.Sprintf("from %.0f", *lo)
	case hi != nil:
		return fmt.Sprintf("up to %.0f", *hi)
	}
	return "-"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, &output.CLIError{
			Summary:  fmt.Sprintf("invalid id %q", arg),
			ExitCode: output.ExitUsageError,
		}
	}
	return id, nil
}

package service

import (
	"strings"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
)

// FilterJobs keeps jobs whose title, description, company or skills contain
// term, ignoring case. A blank term keeps everything.
func FilterJobs(jobs []domain.JobOffer, term string) []domain.JobOffer {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return jobs
	}
	out := make([]domain.JobOffer, 0, len(jobs))
	for _, j := range jobs {
		if containsFold(j.Title, term) ||
			containsFold(j.Description, term) ||
			containsFold(j.CompanyName, term) ||
			containsFold(j.Skills, term) {
			out = append(out, j)
		}
	}
	return out
}

// FilterApplications keeps applications whose student name or job title
// contains term and whose status equals status. StatusAll or an empty status
// disables the status filter.
func FilterApplications(apps []domain.Application, term, status string) []domain.Application {
	term = strings.ToLower(strings.TrimSpace(term))
	status = strings.ToUpper(strings.TrimSpace(status))
	out := make([]domain.Application, 0, len(apps))
	for _, a := range apps {
		if term != "" && !containsFold(a.StudentName, term) && !containsFold(a.JobTitle, term) {
			continue
		}
		if status != "" && status != domain.StatusAll && string(a.Status) != status {
			continue
		}
		out = append(out, a)
	}
	return out
}

// CountByStatus tallies applications per status. Every known status is present
// in the result, zero or not.
func CountByStatus(apps []domain.Application) map[domain.ApplicationStatus]int {
	counts := make(map[domain.ApplicationStatus]int, len(domain.ApplicationStatuses))
	for _, st := range domain.ApplicationStatuses {
		counts[st] = 0
	}
	for _, a := range apps {
		counts[a.Status]++
	}
	return counts
}

// HasApplied reports whether any application targets jobID.
func HasApplied(apps []domain.Application, jobID int64) bool {
	for _, a := range apps {
		if a.JobOfferID == jobID {
			return true
		}
	}
	return false
}

// FindApplication returns the application with id, or nil.
func FindApplication(apps []domain.Application, id int64) *domain.Application {
	for i := range apps {
		if apps[i].ID == id {
			a := apps[i]
			return &a
		}
	}
	return nil
}

// SummarizeRecruiter computes the dashboard counters.
func SummarizeRecruiter(jobs []domain.JobOffer, apps []domain.Application) domain.RecruiterStats {
	stats := domain.RecruiterStats{TotalJobs: len(jobs), TotalApplications: len(apps)}
	for _, j := range jobs {
		if j.Active {
			stats.ActiveJobs++
		}
	}
	for _, a := range apps {
		if a.Status == domain.ApplicationPending {
			stats.PendingApplications++
		}
	}
	return stats
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

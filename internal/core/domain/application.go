package domain

import "strings"

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "PENDING"
	ApplicationReviewing ApplicationStatus = "REVIEWING"
	ApplicationAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationWithdrawn ApplicationStatus = "WITHDRAWN"
)

// StatusAll disables status filtering in list views.
const StatusAll = "ALL"

// ApplicationStatuses lists every status in review order.
var ApplicationStatuses = []ApplicationStatus{
	ApplicationPending,
	ApplicationReviewing,
	ApplicationAccepted,
	ApplicationRejected,
	ApplicationWithdrawn,
}

func (s ApplicationStatus) Valid() bool {
	for _, v := range ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ParseApplicationStatus accepts any letter case.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", ErrValidation
	}
	return st, nil
}

// Application links a student to a job offer.
type Application struct {
	ID           int64             `json:"id"`
	StudentID    int64             `json:"studentId"`
	StudentEmail string            `json:"studentEmail"`
	StudentName  string            `json:"studentName"`
	JobOfferID   int64             `json:"jobOfferId"`
	JobTitle     string            `json:"jobTitle"`
	CompanyName  string            `json:"companyName"`
	Status       ApplicationStatus `json:"status"`
	AppliedAt    Timestamp         `json:"appliedAt"`
	ResumeURL    string            `json:"resumeUrl,omitempty"`
}

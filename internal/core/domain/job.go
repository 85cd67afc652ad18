package domain

// JobOffer is a posting owned by a recruiter.
type JobOffer struct {
	ID             int64     `json:"id,omitempty"`
	RecruiterID    int64     `json:"recruiterId,omitempty"`
	RecruiterEmail string    `json:"recruiterEmail,omitempty"`
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description"`
	CompanyName    string    `json:"companyName"`
	SalaryMin      *float64  `json:"salaryMin,omitempty" validate:"omitempty,gte=0"`
	SalaryMax      *float64  `json:"salaryMax,omitempty" validate:"omitempty,gte=0"`
	Skills         string    `json:"skills"`
	Active         bool      `json:"active"`
	CreatedAt      Timestamp `json:"createdAt,omitempty"`
}

// SalaryRangeValid reports whether min does not exceed max when both are set.
func (j *JobOffer) SalaryRangeValid() bool {
	if j.SalaryMin == nil || j.SalaryMax == nil {
		return true
	}
	return *j.SalaryMin <= *j.SalaryMax
}

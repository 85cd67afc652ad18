package handler

import (
	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/service"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
}

type registerRequest struct {
	Email    string `json:"email"    form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role"     form:"role"`
	FullName string `json:"fullName" form:"fullName"`
}

type homeResponse struct {
	Session    domain.Session    `json:"session"`
	Navigation []service.NavItem `json:"navigation"`
}

type applyRequest struct {
	ResumeURL string `json:"resumeUrl" form:"resumeUrl" validate:"omitempty,url"`
}

type profileRequest struct {
	FullName  string `json:"fullName"  form:"fullName"  validate:"required"`
	Education string `json:"education" form:"education"`
	Skills    string `json:"skills"    form:"skills"`
}

type skillsResponse struct {
	Skills []string `json:"skills"`
}

type jobRequest struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description"`
	CompanyName string   `json:"companyName"`
	SalaryMin   *float64 `json:"salaryMin"   validate:"omitempty,gte=0"`
	SalaryMax   *float64 `json:"salaryMax"   validate:"omitempty,gte=0"`
	Skills      string   `json:"skills"`
	Active      *bool    `json:"active"`
}

// toDomain maps the form onto a job offer. Postings are active unless the
// form says otherwise.
func (r jobRequest) toDomain() domain.JobOffer {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return domain.JobOffer{
		Title:       r.Title,
		Description: r.Description,
		CompanyName: r.CompanyName,
		SalaryMin:   r.SalaryMin,
		SalaryMax:   r.SalaryMax,
		Skills:      r.Skills,
		Active:      active,
	}
}

type statusRequest struct {
	Status string `json:"status" form:"status" validate:"required"`
}

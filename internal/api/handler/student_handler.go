package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-client/internal/core/ports"
)

// resumeField is the multipart field carrying the uploaded resume.
const resumeField = "file"

// StudentHandler serves the student views.
type StudentHandler struct {
	views ports.StudentViews
}

func NewStudentHandler(views ports.StudentViews) *StudentHandler {
	return &StudentHandler{views: views}
}

// Dashboard handles GET /student/dashboard.
//
// @Summary      Student dashboard
// @Tags         student
// @Produce      json
// @Success      200  {object}  domain.StudentDashboard
// @Failure      502  {object}  errorResponse
// @Router       /student/dashboard [get]
func (h *StudentHandler) Dashboard(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	dash, err := h.views.Dashboard(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dash)
}

// Jobs handles GET /student/jobs.
//
// @Summary      Browse job offers
// @Tags         student
// @Produce      json
// @Param        keyword  query     string  false  "Backend search keyword"
// @Param        q        query     string  false  "Local filter over title, description, company and skills"
// @Success      200      {array}   domain.JobOffer
// @Router       /student/jobs [get]
func (h *StudentHandler) Jobs(c echo.Context) error {
	jobs, err := h.views.Jobs(c.Request().Context(), c.QueryParam("keyword"), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// JobDetail handles GET /student/jobs/:id.
//
// @Summary      Job offer with match score
// @Tags         student
// @Produce      json
// @Param        id   path      int  true  "Job offer ID"
// @Success      200  {object}  domain.JobDetail
// @Failure      404  {object}  errorResponse
// @Router       /student/jobs/{id} [get]
func (h *StudentHandler) JobDetail(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	jobID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	detail, err := h.views.JobDetail(c.Request().Context(), id, jobID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Apply handles POST /student/jobs/:id/apply.
//
// @Summary      Apply to a job offer
// @Tags         student
// @Accept       json
// @Produce      json
// @Param        id    path      int           true   "Job offer ID"
// @Param        body  body      applyRequest  false  "Resume to attach; defaults to the profile resume"
// @Success      201   {object}  domain.Application
// @Failure      409   {object}  errorResponse
// @Router       /student/jobs/{id}/apply [post]
func (h *StudentHandler) Apply(c echo.Context) error {
	jobID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	app, err := h.views.Apply(c.Request().Context(), jobID, req.ResumeURL)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// Applications handles GET /student/applications.
//
// @Summary      My applications
// @Tags         student
// @Produce      json
// @Param        q       query     string  false  "Filter over job title"
// @Param        status  query     string  false  "Status filter, ALL by default"
// @Success      200     {array}   domain.Application
// @Router       /student/applications [get]
func (h *StudentHandler) Applications(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	apps, err := h.views.Applications(c.Request().Context(), id, c.QueryParam("q"), c.QueryParam("status"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// Withdraw handles POST /student/applications/:id/withdraw.
//
// @Summary      Withdraw an application
// @Tags         student
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  domain.Application
// @Router       /student/applications/{id}/withdraw [post]
func (h *StudentHandler) Withdraw(c echo.Context) error {
	appID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	app, err := h.views.Withdraw(c.Request().Context(), appID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// Profile handles GET /student/profile.
//
// @Summary      My profile
// @Tags         student
// @Produce      json
// @Success      200  {object}  domain.StudentProfile
// @Router       /student/profile [get]
func (h *StudentHandler) Profile(c echo.Context) error {
	profile, err := h.views.Profile(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /student/profile.
//
// @Summary      Update my profile
// @Tags         student
// @Accept       json
// @Produce      json
// @Param        body  body      profileRequest  true  "Profile fields"
// @Success      200   {object}  domain.StudentProfile
// @Failure      400   {object}  errorResponse
// @Router       /student/profile [put]
func (h *StudentHandler) UpdateProfile(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	current, err := h.views.Profile(ctx)
	if err != nil {
		return err
	}
	current.FullName = req.FullName
	current.Education = req.Education
	current.Skills = req.Skills

	updated, err := h.views.UpdateProfile(ctx, *current)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// UploadResume handles POST /student/profile/resume.
//
// @Summary      Upload my resume
// @Tags         student
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Resume document"
// @Success      200   {object}  domain.StudentProfile
// @Failure      400   {object}  errorResponse
// @Router       /student/profile/resume [post]
func (h *StudentHandler) UploadResume(c echo.Context) error {
	fh, err := c.FormFile(resumeField)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing resume file")
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable resume file")
	}
	defer f.Close()

	profile, err := h.views.UploadResume(c.Request().Context(), fh.Filename, f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// ExtractSkills handles POST /student/profile/skills.
//
// @Summary      Extract skills from my profile
// @Tags         student
// @Produce      json
// @Success      200  {object}  skillsResponse
// @Failure      400  {object}  errorResponse
// @Router       /student/profile/skills [post]
func (h *StudentHandler) ExtractSkills(c echo.Context) error {
	skills, err := h.views.ExtractSkills(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, skillsResponse{Skills: skills})
}

// Recommendations handles GET /student/recommendations.
//
// @Summary      AI job recommendations and salary estimate
// @Tags         student
// @Produce      json
// @Param        limit  query     int  false  "Number of recommendations"  default(5)
// @Success      200    {object}  domain.Recommendations
// @Router       /student/recommendations [get]
func (h *StudentHandler) Recommendations(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}
	recs, err := h.views.Recommendations(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recs)
}

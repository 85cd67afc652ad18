package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-client/internal/core/domain"
	"github.com/talentbridge/recruitment-client/internal/core/ports"
)

// RecruiterHandler serves the recruiter views.
type RecruiterHandler struct {
	views ports.RecruiterViews
}

func NewRecruiterHandler(views ports.RecruiterViews) *RecruiterHandler {
	return &RecruiterHandler{views: views}
}

// Dashboard handles GET /recruiter/dashboard.
//
// @Summary      Recruiter dashboard
// @Tags         recruiter
// @Produce      json
// @Success      200  {object}  domain.RecruiterDashboard
// @Failure      502  {object}  errorResponse
// @Router       /recruiter/dashboard [get]
func (h *RecruiterHandler) Dashboard(c echo.Context) error {
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

// Jobs handles GET /recruiter/jobs.
//
// @Summary      My job offers
// @Tags         recruiter
// @Produce      json
// @Param        q    query     string  false  "Local filter over title, description, company and skills"
// @Success      200  {array}   domain.JobOffer
// @Router       /recruiter/jobs [get]
func (h *RecruiterHandler) Jobs(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	jobs, err := h.views.Jobs(c.Request().Context(), id, c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

// NewJob handles GET /recruiter/jobs/create and returns a blank posting.
//
// @Summary      Blank job offer form
// @Tags         recruiter
// @Produce      json
// @Success      200  {object}  jobRequest
// @Router       /recruiter/jobs/create [get]
func (h *RecruiterHandler) NewJob(c echo.Context) error {
	active := true
	return c.JSON(http.StatusOK, jobRequest{Active: &active})
}

// CreateJob handles POST /recruiter/jobs.
//
// @Summary      Post a job offer
// @Tags         recruiter
// @Accept       json
// @Produce      json
// @Param        body  body      jobRequest  true  "Job offer"
// @Success      201   {object}  domain.JobOffer
// @Failure      400   {object}  errorResponse
// @Router       /recruiter/jobs [post]
func (h *RecruiterHandler) CreateJob(c echo.Context) error {
	req, err := bindJob(c)
	if err != nil {
		return err
	}
	job, err := h.views.CreateJob(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, job)
}

// Job handles GET /recruiter/jobs/:id.
//
// @Summary      Job offer with its applications
// @Tags         recruiter
// @Produce      json
// @Param        id   path      int  true  "Job offer ID"
// @Success      200  {object}  domain.RecruiterJob
// @Failure      404  {object}  errorResponse
// @Router       /recruiter/jobs/{id} [get]
func (h *RecruiterHandler) Job(c echo.Context) error {
	jobID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	job, err := h.views.Job(c.Request().Context(), jobID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// UpdateJob handles PUT /recruiter/jobs/:id.
//
// @Summary      Edit a job offer
// @Tags         recruiter
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Job offer ID"
// @Param        body  body      jobRequest  true  "Job offer"
// @Success      200   {object}  domain.JobOffer
// @Failure      400   {object}  errorResponse
// @Router       /recruiter/jobs/{id} [put]
func (h *RecruiterHandler) UpdateJob(c echo.Context) error {
	jobID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	req, err := bindJob(c)
	if err != nil {
		return err
	}
	job, err := h.views.UpdateJob(c.Request().Context(), jobID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// DeleteJob handles DELETE /recruiter/jobs/:id.
//
// @Summary      Delete a job offer
// @Tags         recruiter
// @Param        id   path  int  true  "Job offer ID"
// @Success      204
// @Router       /recruiter/jobs/{id} [delete]
func (h *RecruiterHandler) DeleteJob(c echo.Context) error {
	jobID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.views.DeleteJob(c.Request().Context(), jobID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Applications handles GET /recruiter/applications.
//
// @Summary      Applications across my job offers
// @Tags         recruiter
// @Produce      json
// @Param        q       query     string  false  "Filter over student name and job title"
// @Param        status  query     string  false  "Status filter, ALL by default"
// @Success      200     {array}   domain.Application
// @Router       /recruiter/applications [get]
func (h *RecruiterHandler) Applications(c echo.Context) error {
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

// Application handles GET /recruiter/applications/:id.
//
// @Summary      One application
// @Tags         recruiter
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  domain.Application
// @Failure      404  {object}  errorResponse
// @Router       /recruiter/applications/{id} [get]
func (h *RecruiterHandler) Application(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	appID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	app, err := h.views.Application(c.Request().Context(), id, appID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// UpdateStatus handles PUT /recruiter/applications/:id/status.
//
// @Summary      Change an application's status
// @Tags         recruiter
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Application ID"
// @Param        body  body      statusRequest  true  "New status"
// @Success      200   {object}  domain.Application
// @Failure      400   {object}  errorResponse
// @Router       /recruiter/applications/{id}/status [put]
func (h *RecruiterHandler) UpdateStatus(c echo.Context) error {
	appID, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	status, err := domain.ParseApplicationStatus(req.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status "+req.Status)
	}
	app, err := h.views.UpdateStatus(c.Request().Context(), appID, status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

func bindJob(c echo.Context) (jobRequest, error) {
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, err
	}
	return req, nil
}

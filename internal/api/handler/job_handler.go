package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/job-board-api/internal/api/metrics"
	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// JobHandler handles job posting CRUD and search.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List returns all job postings. An empty board is reported as 404, a
// convention existing clients depend on.
//
// @Summary      List all jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return respondError(c, http.StatusNotFound, "Jobs not found!")
	}
	return respond(c, http.StatusOK, "Jobs found successfully!", jobViews(jobs))
}

// Create adds a job posting with the authenticated user as poster.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, []string{"invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return respondValidation(c, ve.Fields)
		}
		return err
	}

	job, err := h.service.Create(c.Request().Context(), user.ID, ports.CreateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.Inc()
	return respond(c, http.StatusCreated, "Job created successfully!", job.View())
}

// Get returns one job posting by id.
//
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return respondError(c, http.StatusNotFound, "Job not found!")
	}

	job, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			return respondError(c, http.StatusNotFound, "Job not found!")
		}
		return err
	}
	return respond(c, http.StatusOK, "Job found successfully!", job.View())
}

// Update modifies the whitelisted fields of a job. Poster-only.
//
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Job ID"
// @Param        body  body      updateJobRequest  true  "Fields to update"
// @Success      200   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, ok := pathID(c, "id")
	if !ok {
		return respondError(c, http.StatusNotFound, "Job not found!")
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, []string{"invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return respondValidation(c, ve.Fields)
		}
		return err
	}

	job, err := h.service.Update(c.Request().Context(), id, user.ID, ports.UpdateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
	})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrJobNotFound):
		return respondError(c, http.StatusNotFound, "Job not found!")
	case errors.Is(err, domain.ErrNotJobPoster):
		return respondError(c, http.StatusForbidden, "You are not authorized to update this job.")
	default:
		return err
	}

	return respond(c, http.StatusOK, "Job updated successfully!", job.View())
}

// Delete removes a job and its applications. Poster-only.
//
// @Summary      Delete a job posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, ok := pathID(c, "id")
	if !ok {
		return respondError(c, http.StatusNotFound, "Job not found!")
	}

	err = h.service.Delete(c.Request().Context(), id, user.ID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrJobNotFound):
		return respondError(c, http.StatusNotFound, "Job not found!")
	case errors.Is(err, domain.ErrNotJobPoster):
		return respondError(c, http.StatusForbidden, "You are not authorized to delete this job.")
	default:
		return err
	}

	return respond(c, http.StatusOK, "Job deleted successfully.", nil)
}

// Search filters jobs by optional title, company, location and keywords
// query parameters. No parameters means all jobs.
//
// @Summary      Search job postings
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        title     query     string  false  "Substring match on title"
// @Param        company   query     string  false  "Substring match on company"
// @Param        location  query     string  false  "Substring match on location"
// @Param        keywords  query     string  false  "Substring match on description"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /search [get]
func (h *JobHandler) Search(c echo.Context) error {
	filter := ports.JobFilter{
		Title:    c.QueryParam("title"),
		Company:  c.QueryParam("company"),
		Location: c.QueryParam("location"),
		Keywords: c.QueryParam("keywords"),
	}

	jobs, err := h.service.Search(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		metrics.SearchesTotal.WithLabelValues("miss").Inc()
		return respondError(c, http.StatusNotFound, "No jobs found matching search criteria.")
	}

	metrics.SearchesTotal.WithLabelValues("hit").Inc()
	return respond(c, http.StatusOK, "Jobs found successfully!", jobViews(jobs))
}

func jobViews(jobs []domain.Job) []domain.JobView {
	views := make([]domain.JobView, len(jobs))
	for i := range jobs {
		views[i] = jobs[i].View()
	}
	return views
}

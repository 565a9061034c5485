package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/job-board-api/internal/api/metrics"
	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// ApplicationHandler handles submitting and viewing job applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Apply submits an application to a job. The checks run in order: job
// existence, cover letter, self-application, duplicate.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int           true  "Job ID"
// @Param        body  body      applyRequest  true  "Cover letter"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	jobID, ok := pathID(c, "id")
	if !ok {
		return respondError(c, http.StatusNotFound, "Job not found!")
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return respondValidation(c, []string{"invalid request payload"})
	}

	application, err := h.service.Apply(c.Request().Context(), ports.ApplyInput{
		JobID:       jobID,
		Applicant:   user,
		CoverLetter: req.CoverLetter,
	})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrJobNotFound):
		return respondError(c, http.StatusNotFound, "Job not found!")
	case errors.Is(err, domain.ErrCoverLetterRequired):
		return respondValidation(c, []string{"cover_letter is required!"})
	case errors.Is(err, domain.ErrOwnJobApplication):
		return respondError(c, http.StatusConflict, "The applicant can't apply to the job that they posted!")
	case errors.Is(err, domain.ErrDuplicateApplication):
		return respondError(c, http.StatusConflict, "You have already applied for this job.")
	default:
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return respond(c, http.StatusCreated, "Application submitted successfully!", application.View())
}

// ListByOwner returns all applications for a job, for the job's poster.
//
// @Summary      List applications for an owned job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /jobs/{id}/applications/owner [get]
func (h *ApplicationHandler) ListByOwner(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	jobID, ok := pathID(c, "id")
	if !ok {
		return respondError(c, http.StatusNotFound, "Job not found!")
	}

	applications, err := h.service.ListForPoster(c.Request().Context(), jobID, user.ID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrJobNotFound):
		return respondError(c, http.StatusNotFound, "Job not found!")
	case errors.Is(err, domain.ErrNotJobPoster):
		return respondError(c, http.StatusForbidden, "You are not authorized to view applications for this job.")
	default:
		return err
	}

	if len(applications) == 0 {
		return respondError(c, http.StatusNotFound, "Job doesn't have applications yet!")
	}

	views := make([]domain.ApplicationView, len(applications))
	for i := range applications {
		views[i] = applications[i].View()
	}
	return respond(c, http.StatusOK, "Job applications found successfully!", views)
}

// Get returns one application, for the job's poster or the applicant.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, ok := pathID(c, "id")
	if !ok {
		return respondError(c, http.StatusNotFound, "Job application not found!")
	}

	application, err := h.service.Get(c.Request().Context(), id, user.ID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrApplicationNotFound):
		return respondError(c, http.StatusNotFound, "Job application not found!")
	case errors.Is(err, domain.ErrApplicationForbidden):
		return respondError(c, http.StatusForbidden, "You are not authorized to view this application.")
	default:
		return err
	}

	return respond(c, http.StatusOK, "Job application found successfully!", application.View())
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// errorEnvelope is the failure shape shared with handler responses.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors with request context, without leaking
//     details to the client.
//   - Renders the shared {"success": false, "message": ...} envelope.
//
// Handlers map their own known errors with resource-specific messages;
// this is the safety net for everything that escapes them.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware 401s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid username or password!"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or expired token!"
	case errors.Is(err, domain.ErrJobNotFound):
		return http.StatusNotFound, "Job not found!"
	case errors.Is(err, domain.ErrApplicationNotFound):
		return http.StatusNotFound, "Job application not found!"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found!"
	case errors.Is(err, domain.ErrNotJobPoster), errors.Is(err, domain.ErrApplicationForbidden):
		return http.StatusForbidden, "You are not authorized to perform this action."
	case errors.Is(err, domain.ErrOwnJobApplication), errors.Is(err, domain.ErrDuplicateApplication):
		return http.StatusConflict, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	evt := log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID))
	if user, ok := c.Get("user").(*domain.User); ok && user != nil {
		evt = evt.Uint("user_id", user.ID)
	}
	evt.Msg("unhandled error")

	return http.StatusInternalServerError, "An unexpected error occurred. Please try again later."
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// envelope is the shared response shape for every endpoint.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Success: false, Message: message})
}

func respondValidation(c echo.Context, fieldErrors []string) error {
	return c.JSON(http.StatusBadRequest, envelope{
		Success: false,
		Message: "Validation errors occurred.",
		Errors:  fieldErrors,
	})
}

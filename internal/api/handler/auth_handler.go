package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/job-board-api/internal/api/metrics"
	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

// AuthHandler handles registration, login and token refresh.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      500   {object}  envelope
// @Router       /auth/register_user [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
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

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:  req.FirstName,
		OtherNames: req.OtherNames,
		Email:      req.Email,
		Username:   req.Username,
		Password:   req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrEmailTaken):
		return respondValidation(c, []string{"email is already in use!"})
	case errors.Is(err, domain.ErrUsernameTaken):
		return respondValidation(c, []string{"username is already in use!"})
	case errors.Is(err, domain.ErrUserExists):
		// Lost a race against a concurrent registration; the store
		// constraint caught it.
		return respondValidation(c, []string{"email or username is already in use!"})
	default:
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return respond(c, http.StatusCreated, "User registered successfully!", user.View())
}

// Login verifies credentials and issues an access/refresh token pair.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials (identifier is email or username)"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
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

	pair, err := h.service.Login(c.Request().Context(), req.Identifier, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return respondError(c, http.StatusUnauthorized, "Invalid username or password!")
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{
		Success:      true,
		Message:      "Login successfully!",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Refresh exchanges a refresh token for a new token pair. The presented
// token is invalidated.
//
// @Summary      Refresh tokens
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  tokenResponse
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
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

	pair, err := h.service.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return respondError(c, http.StatusUnauthorized, "Invalid or expired refresh token!")
		}
		return err
	}

	return c.JSON(http.StatusOK, tokenResponse{
		Success:      true,
		Message:      "Token refreshed successfully!",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

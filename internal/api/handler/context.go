package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// userContextKey is where the auth middleware stores the resolved user.
const userContextKey = "user"

// currentUser extracts the authenticated user injected by the Auth
// middleware. Its presence proves the middleware ran; absence on a
// protected route is a 401, not a handler bug to paper over.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// pathID parses the named numeric path parameter. A non-numeric value
// can never address an entity, so it reports false and the caller
// returns its not-found response.
func pathID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

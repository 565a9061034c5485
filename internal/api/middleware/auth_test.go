package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

const testSecret = "test-secret"

type stubUserRepo struct {
	user *domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func signToken(t *testing.T, tokenType string, sub string, secret string) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, repo *stubUserRepo, authHeader string) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := Auth(testSecret, repo)(next)(c)
	return c, err
}

func TestAuth_ValidToken(t *testing.T) {
	repo := &stubUserRepo{user: &domain.User{ID: 7, Username: "alice"}}
	token := signToken(t, "access", "7", testSecret)

	c, err := runAuth(t, repo, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}

	user, ok := c.Get("user").(*domain.User)
	if !ok || user.ID != 7 {
		t.Fatalf("user not set on context: %v", c.Get("user"))
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	repo := &stubUserRepo{}
	_, err := runAuth(t, repo, "")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	repo := &stubUserRepo{}
	_, err := runAuth(t, repo, "Token abc123")

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	repo := &stubUserRepo{user: &domain.User{ID: 7}}
	token := signToken(t, "refresh", "7", testSecret)

	_, err := runAuth(t, repo, "Bearer "+token)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("refresh token must not authenticate, got %v", err)
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	repo := &stubUserRepo{user: &domain.User{ID: 7}}
	token := signToken(t, "access", "7", "other-secret")

	_, err := runAuth(t, repo, "Bearer "+token)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAuth_UnknownUser(t *testing.T) {
	repo := &stubUserRepo{}
	token := signToken(t, "access", "42", testSecret)

	_, err := runAuth(t, repo, "Bearer "+token)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

package ports

import (
	"context"

	"github.com/jobboard/job-board-api/internal/core/domain"
)

// RegisterInput carries the validated registration fields.
type RegisterInput struct {
	FirstName  string
	OtherNames string
	Email      string
	Username   string
	Password   string
}

// TokenPair holds the short-lived access token and the longer-lived
// single-use refresh token issued at login and refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// AuthService implements registration, credential verification and
// token issuance.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login resolves identifier as an email when it contains '@',
	// otherwise as a username.
	Login(ctx context.Context, identifier, password string) (*TokenPair, error)
	// Refresh exchanges a valid refresh token for a new pair,
	// invalidating the presented token.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

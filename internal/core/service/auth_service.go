package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobboard/job-board-api/internal/core/domain"
	"github.com/jobboard/job-board-api/internal/core/ports"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// RefreshTokenStore abstracts the single-use refresh token store (Redis).
// Save records a token's JTI for its lifetime; Consume removes it and
// reports whether it was present.
type RefreshTokenStore interface {
	Save(ctx context.Context, jti string, ttl time.Duration) error
	Consume(ctx context.Context, jti string) (bool, error)
}

// AuthService implements registration, login and token refresh.
type AuthService struct {
	users      ports.UserRepository
	tokens     RefreshTokenStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens RefreshTokenStore, jwtSecret string, accessTTL, refreshTTL time.Duration, logger zerolog.Logger) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// Register stores a new account with a bcrypt hash of the password.
// Email and username uniqueness is pre-checked for friendly errors; the
// store's unique indexes close the remaining race.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if taken, err := s.users.ExistsByEmail(ctx, input.Email); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	} else if taken {
		return nil, domain.ErrEmailTaken
	}
	if taken, err := s.users.ExistsByUsername(ctx, input.Username); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	} else if taken {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    input.FirstName,
		OtherNames:   input.OtherNames,
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// Login verifies credentials and issues a token pair. All failure modes
// collapse into ErrInvalidCredentials so callers cannot enumerate users.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.TokenPair, error) {
	var (
		user *domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.users.FindByEmail(ctx, identifier)
	} else {
		user, err = s.users.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.logger.Info().Str("username", user.Username).Msg("login failed")
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("login succeeded")
	return pair, nil
}

// Refresh rotates a refresh token: the presented token must verify, be of
// refresh type, and still be present in the store. Its JTI is consumed so
// a replay fails.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.parseToken(refreshToken)
	if err != nil || claims["type"] != tokenTypeRefresh {
		return nil, domain.ErrInvalidToken
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return nil, domain.ErrInvalidToken
	}
	live, err := s.tokens.Consume(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	if !live {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := s.users.FindByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}

	return s.issueTokenPair(ctx, user)
}

func (s *AuthService) issueTokenPair(ctx context.Context, user *domain.User) (*ports.TokenPair, error) {
	now := time.Now()
	sub := strconv.FormatUint(uint64(user.ID), 10)

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      sub,
		"username": user.Username,
		"type":     tokenTypeAccess,
		"iat":      now.Unix(),
		"exp":      now.Add(s.accessTTL).Unix(),
	})
	accessToken, err := access.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	jti := uuid.NewString()
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"jti":  jti,
		"type": tokenTypeRefresh,
		"iat":  now.Unix(),
		"exp":  now.Add(s.refreshTTL).Unix(),
	})
	refreshToken, err := refresh.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	if err := s.tokens.Save(ctx, jti, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &ports.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *AuthService) parseToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/workout-service/internal/auth"
	"github.com/spec-kit/workout-service/internal/config"
	"github.com/spec-kit/workout-service/internal/domain"
	"github.com/spec-kit/workout-service/internal/events"
	"github.com/spec-kit/workout-service/internal/repository"
	apperrors "github.com/spec-kit/workout-service/pkg/util"
)

const minPasswordLength = 8

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates a new account. Email validation is the minimal syntactic
// check the product requires, not RFC compliance.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	if !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("email invalid", nil)
	}
	if len(password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password must be at least 8 characters", nil)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if err == repository.ErrEmailTaken {
			return nil, apperrors.NewConflict("email already registered", nil)
		}
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:    events.EventUserRegistered,
		UserID:  user.ID,
		Payload: events.UserRegisteredPayload{Email: user.Email},
	})
	return user, nil
}

// Login authenticates an account and issues an access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	if !strings.Contains(email, "@") {
		return "", time.Time{}, apperrors.NewValidationError("invalid email", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", time.Time{}, apperrors.NewNotFound("email", nil)
		}
		return "", time.Time{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("email and password do not match")
	}

	return s.tokenMgr.GenerateToken(user.ID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	stampEvent(&event)
	_ = s.dispatcher.Publish(ctx, event)
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/domain"
	"github.com/spec-kit/auth-service/internal/events"
	"github.com/spec-kit/auth-service/internal/repository"
	apperrors "github.com/spec-kit/auth-service/pkg/util"
)

// AuthService coordinates registration and login flows. It is the only layer
// that translates internal failures into user-facing outcomes.
type AuthService struct {
	users      repository.UserRepository
	hasher     *auth.PasswordHasher
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		hasher:     auth.NewPasswordHasher(cfg.BcryptCost),
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Register creates a new credential record. The plaintext password is hashed
// before it goes anywhere near storage and is never retained.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, apperrors.NewValidationError("username and password are required", nil)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, apperrors.NewConflict("Username already taken")
		}
		return nil, err
	}

	s.publish(ctx, events.EventUserRegistered, username, events.UserRegisteredPayload{UserID: user.ID})
	return user, nil
}

// Login authenticates a user and issues an access token bound to the user id.
// An unknown username and a wrong password yield the identical outcome so the
// response never reveals whether the account exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if username == "" || password == "" {
		return "", time.Time{}, apperrors.NewValidationError("username and password are required", nil)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.publish(ctx, events.EventLoginFailed, username, events.LoginFailedPayload{Reason: events.LoginFailReasonUnknownUser})
			return "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", time.Time{}, err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		// A stored hash bcrypt cannot parse means corrupted data. Reject the
		// login and keep the detail internal.
		s.logger.Error("stored password hash unreadable",
			zap.String("user_id", user.ID), zap.Error(err))
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if !ok {
		s.publish(ctx, events.EventLoginFailed, username, events.LoginFailedPayload{Reason: events.LoginFailReasonBadPassword})
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, meta, err := s.tokenMgr.Issue(user.ID)
	if err != nil {
		return "", time.Time{}, err
	}

	s.publish(ctx, events.EventUserLoggedIn, username, events.UserLoggedInPayload{UserID: user.ID})
	return token, meta.ExpiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, username string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Username:  username,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

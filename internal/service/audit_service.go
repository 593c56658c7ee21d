package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/auth-service/internal/events"
	"github.com/spec-kit/auth-service/internal/persistence"
)

// AuditService writes an audit trail for authentication events and keeps
// failed-login counters in Redis. Counters are observability data; nothing
// here throttles or blocks a request.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	redis      *persistence.Redis
	counterTTL time.Duration
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, redis *persistence.Redis, counterTTL time.Duration) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		redis:      redis,
		counterTTL: counterTTL,
	}
}

// RegisterHandlers subscribes to auth events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventUserRegistered, a.handleUserRegistered)
	a.dispatcher.Subscribe(events.EventUserLoggedIn, a.handleUserLoggedIn)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleLoginFailed)
}

func (a *AuditService) handleUserRegistered(ctx context.Context, event events.Event) error {
	a.logger.Info("user registered", zap.String("username", event.Username))
	return nil
}

func (a *AuditService) handleUserLoggedIn(ctx context.Context, event events.Event) error {
	a.logger.Info("user logged in", zap.String("username", event.Username))
	return nil
}

func (a *AuditService) handleLoginFailed(ctx context.Context, event events.Event) error {
	a.logger.Warn("login attempt failed", zap.String("username", event.Username), zap.Any("payload", event.Payload))
	a.bumpFailureCounter(ctx, event.Username)
	return nil
}

func (a *AuditService) bumpFailureCounter(ctx context.Context, username string) {
	if a.redis == nil || a.redis.Client == nil {
		return
	}
	key := fmt.Sprintf("auth:login_failures:%s", username)
	if err := a.redis.Client.Incr(ctx, key).Err(); err != nil {
		a.logger.Debug("failed to bump login failure counter", zap.Error(err))
		return
	}
	if a.counterTTL > 0 {
		a.redis.Client.Expire(ctx, key, a.counterTTL)
	}
}

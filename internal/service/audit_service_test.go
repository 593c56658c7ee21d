package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/auth-service/internal/events"
)

func TestAuditService_LogsAuthEvents(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	audit := NewAuditService(dispatcher, zap.New(core), nil, time.Minute)
	audit.RegisterHandlers()

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventUserRegistered,
		Username: "alice",
	}))
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventLoginFailed,
		Username: "alice",
		Payload:  events.LoginFailedPayload{Reason: events.LoginFailReasonBadPassword},
	}))

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "user registered", entries[0].Message)
	require.Equal(t, "login attempt failed", entries[1].Message)
	require.Equal(t, "alice", entries[1].ContextMap()["username"])
}

func TestAuditService_NoRedisIsSafe(t *testing.T) {
	t.Parallel()

	dispatcher := events.NewInMemoryDispatcher()
	audit := NewAuditService(dispatcher, zap.NewNop(), nil, 0)
	audit.RegisterHandlers()

	// Failure counter bump is a no-op without a Redis client.
	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{
		Type:     events.EventLoginFailed,
		Username: "bob",
	}))
}

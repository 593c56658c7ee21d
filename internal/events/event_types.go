package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventUserLoggedIn   EventType = "user_logged_in"
	EventLoginFailed    EventType = "login_failed"
)

// Event represents an authentication event emitted by services. Payloads
// carry usernames only; password material never enters an event.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Username  string      `json:"username"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
}

// UserLoggedInPayload payload.
type UserLoggedInPayload struct {
	UserID string `json:"user_id"`
}

// LoginFailedPayload payload. Reason is an internal code, never surfaced to
// the client response.
type LoginFailedPayload struct {
	Reason string `json:"reason"`
}

const (
	// LoginFailReasonUnknownUser and LoginFailReasonBadPassword exist only
	// for internal audit; the client-facing outcome is identical for both.
	LoginFailReasonUnknownUser = "unknown_user"
	LoginFailReasonBadPassword = "bad_password"
)

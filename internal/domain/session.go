package domain

import (
	"time"
)

// ConversationState identifies which prompt a session is waiting on.
type ConversationState int

const (
	// StateAwaitingName means the greeting has been sent and the next
	// text message is taken as the user's full name.
	StateAwaitingName ConversationState = iota
	// StateAwaitingEmail means the name has been captured and the next
	// text message is validated as an email address.
	StateAwaitingEmail
)

// String returns a readable state name for logging.
func (s ConversationState) String() string {
	switch s {
	case StateAwaitingName:
		return "awaiting_name"
	case StateAwaitingEmail:
		return "awaiting_email"
	default:
		return "unknown"
	}
}

// Session holds in-memory conversation state for one user. It lives from
// the start command until a terminal transition (success, storage failure
// or cancellation) and is never persisted.
type Session struct {
	UserID    int64
	State     ConversationState
	Name      string
	Email     string
	StartedAt time.Time
}

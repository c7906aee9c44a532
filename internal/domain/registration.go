// Package domain contains core domain types for the Doorman bot.
package domain

import (
	"time"
)

// RegistrationRecord is the durable output of one completed conversation.
// It is written exactly once to the record store and never mutated.
type RegistrationRecord struct {
	Name         string
	Email        string
	UserID       int64
	RegisteredAt time.Time
}

// TimestampFormat is the layout used for RegisteredAt in the record store.
const TimestampFormat = "2006-01-02 15:04:05"

// FormattedTimestamp returns RegisteredAt in the store's column format,
// in local process time.
func (r *RegistrationRecord) FormattedTimestamp() string {
	return r.RegisteredAt.Format(TimestampFormat)
}

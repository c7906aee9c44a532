// Package store provides record persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/communitylabs/doorman/internal/domain"
)

// Recorder defines the interface for persisting registration records.
type Recorder interface {
	// Append writes one registration record to the store, creating the
	// header row first if it is missing. A non-nil error is the only
	// failure signal; the cause is logged inside the implementation and
	// callers must not surface it to end users.
	Append(ctx context.Context, rec *domain.RegistrationRecord) error

	// Describe resolves the store's display name, verifying that the
	// configured identifier is reachable with the supplied credentials.
	Describe(ctx context.Context) (string, error)

	// Ping verifies store connectivity.
	Ping(ctx context.Context) error
}

// Package common defines shared constants and sentinel errors used across
// the sync layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Counter errors. ErrorCannotCreate is returned by the create branch of
	// the create-or-increment protocol when the counter lives on a parent
	// record that is not ours to create.
	ErrorCannotCreate = errors.New("counter record cannot be created")

	// Router errors.
	ErrorUnknownEvent = errors.New("unknown event type")
	ErrorInvalidEvent = errors.New("invalid event payload")

	// Auth errors (invalid or malformed ingest token).
	ErrInvalidToken = errors.New("invalid token")
)

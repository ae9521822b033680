// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package importer

// Status is the terminal state of a single import.
type Status int

const (
	// StatusCreated means a new literature note was persisted.
	StatusCreated Status = iota

	// StatusAlreadyExists means a note for the derived path was already
	// present. The existing note is surfaced untouched; this is a
	// success with a caveat, not a failure.
	StatusAlreadyExists

	// StatusRejected means the input contained no DOI. No network call
	// was made.
	StatusRejected

	// StatusFailed means a registry or store operation failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusAlreadyExists:
		return "already exists"
	case StatusRejected:
		return "rejected"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome reports the terminal state of one import invocation.
type Outcome struct {
	// Status is the terminal state.
	Status Status

	// DOI is the canonical identifier, empty when Status is StatusRejected.
	DOI string

	// NotePath is the store-relative path of the created or existing
	// note, set for StatusCreated and StatusAlreadyExists.
	NotePath string

	// Reason is a short user-visible message for StatusRejected and
	// StatusFailed.
	Reason string

	// Err carries the underlying error for StatusFailed.
	Err error
}

// Succeeded reports whether the import ended with a usable note.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusCreated || o.Status == StatusAlreadyExists
}

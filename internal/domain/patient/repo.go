package patient

import "context"

// Store persists patient records keyed by the synthesized patient key.
//
// The file-backed implementation keeps the whole mapping in one JSON file
// read in full and rewritten in full on every mutation, with no locking or
// transaction boundary; concurrent writers can lose updates. The Postgres
// implementation stores one row per record for deployments where that
// matters.
type Store interface {
	// LoadAll returns the full key → record mapping.
	LoadAll(ctx context.Context) (map[string]*Patient, error)
	// SaveAll rewrites the full mapping.
	SaveAll(ctx context.Context, records map[string]*Patient) error
	// Get returns the record with the given patient ID.
	Get(ctx context.Context, patientID string) (*Patient, error)
	// Put upserts a record under its synthesized key.
	Put(ctx context.Context, p *Patient) error
}

// ErrNotFound is returned by Get for an unknown patient ID.
type notFoundError struct{ id string }

func (e *notFoundError) Error() string { return "patient not found: " + e.id }

// NewNotFoundError builds the store-agnostic not-found error.
func NewNotFoundError(id string) error { return &notFoundError{id: id} }

// IsNotFound reports whether err is a patient not-found error.
func IsNotFound(err error) bool {
	_, ok := err.(*notFoundError)
	return ok
}

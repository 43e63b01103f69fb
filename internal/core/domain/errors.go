package domain

import (
	"errors"
	"fmt"
)

// Shared error taxonomy. Entity-specific not-found errors live next to their
// entity types; everything here applies across entities.
var (
	ErrInvalidID        = errors.New("invalid identifier")
	ErrInvalidDateRange = errors.New("end date must be after start date")
)

// DuplicateFieldError reports a uniqueness violation on a named field.
// It is raised by the advisory pre-insert checks and also when the store's
// unique index rejects a write that slipped past them.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate value for field %q", e.Field)
}

// IsDuplicateField reports whether err is a DuplicateFieldError, optionally
// returning the offending field name.
func IsDuplicateField(err error) (string, bool) {
	var dup *DuplicateFieldError
	if errors.As(err, &dup) {
		return dup.Field, true
	}
	return "", false
}

// StoreError wraps a transport or backend failure from the document store.
// Domain-rule failures are raised before any store call, so a StoreError
// always means the write or read itself failed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// IsStoreError reports whether err originated in the document store transport.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

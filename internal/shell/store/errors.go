// Package store provides persistence for visitor sessions and their slogan
// batches.
package store

import (
	"errors"
	"strings"
)

// =============================================================================
// Error Types
// =============================================================================

// Sentinel errors. Callers match them with errors.Is through a *StoreError.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrDuplicateID      = errors.New("entity with this ID already exists")
	ErrForeignKey       = errors.New("batch references an unknown session")
	ErrConnectionFailed = errors.New("database connection failed")
	ErrMigrationFailed  = errors.New("database migration failed")
	ErrInvalidData      = errors.New("invalid data format")
	ErrTxFailed         = errors.New("transaction failed")
)

// StoreError records which operation failed on which row.
type StoreError struct {
	Op      string // e.g. "ReplaceBatch"
	Entity  string // "session", "batch" or "slogan"
	ID      string
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	for _, part := range []string{e.Entity, e.ID} {
		if part != "" {
			b.WriteByte(' ')
			b.WriteString(part)
		}
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(op, entity, id, message string, err error) *StoreError {
	return &StoreError{Op: op, Entity: entity, ID: id, Message: message, Err: err}
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

package store

import (
	"context"
	"time"

	"github.com/artpar/sloganforge/internal/core/domain"
	"github.com/artpar/sloganforge/internal/core/slogan"
)

// =============================================================================
// Store Interface
// =============================================================================

// Store defines the persistence interface for sessions and slogan batches.
type Store interface {
	// Session operations
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	UpdateSession(ctx context.Context, session *domain.Session) error
	DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error)
	CountSessions(ctx context.Context) (int, error)

	// Batch operations. A session owns at most one batch; ReplaceBatch
	// deletes the previous one.
	ReplaceBatch(ctx context.Context, batch *domain.Batch) error
	GetBatch(ctx context.Context, id string) (*domain.Batch, error)
	GetSessionBatch(ctx context.Context, sessionID string) (*domain.Batch, error)

	// Slogan operations
	ListSlogans(ctx context.Context, batchID string, opts ListOptions) ([]slogan.Slogan, error)
	RateSlogan(ctx context.Context, batchID, sloganID string, rating int) error

	// Transaction support
	WithTx(ctx context.Context, fn func(Store) error) error

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}

// =============================================================================
// Options
// =============================================================================

// ListOptions defines pagination options.
type ListOptions struct {
	Limit  int
	Offset int
}

// DefaultListOptions returns default list options.
func DefaultListOptions() ListOptions {
	return ListOptions{
		Limit:  100,
		Offset: 0,
	}
}

// Normalize ensures list options have valid values.
func (o ListOptions) Normalize() ListOptions {
	if o.Limit <= 0 {
		o.Limit = 100
	}
	if o.Limit > 1000 {
		o.Limit = 1000
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}

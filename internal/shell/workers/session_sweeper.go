package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/artpar/sloganforge/internal/core/domain"
)

// SessionStore deletes idle sessions and, with them, their batches.
type SessionStore interface {
	DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error)
}

// Pruner forgets per-client state that has been idle for too long.
type Pruner interface {
	Prune(now time.Time, idle time.Duration) int
}

// SessionSweeperConfig configures the session sweeper.
type SessionSweeperConfig struct {
	Interval time.Duration
	TTL      time.Duration

	// Now is used in tests. Defaults to time.Now.
	Now func() time.Time
}

// DefaultSessionSweeperConfig returns default configuration.
func DefaultSessionSweeperConfig() SessionSweeperConfig {
	return SessionSweeperConfig{
		Interval: 5 * time.Minute,
		TTL:      30 * time.Minute,
	}
}

// SessionSweeper periodically deletes expired sessions and prunes idle
// rate limiter entries.
type SessionSweeper struct {
	store   SessionStore
	pruners []Pruner
	config  SessionSweeperConfig
	logger  *slog.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewSessionSweeper creates a new session sweeper. Nil pruners are skipped.
func NewSessionSweeper(s SessionStore, config SessionSweeperConfig, logger *slog.Logger, pruners ...Pruner) *SessionSweeper {
	defaults := DefaultSessionSweeperConfig()
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	if config.TTL <= 0 {
		config.TTL = defaults.TTL
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}

	live := make([]Pruner, 0, len(pruners))
	for _, p := range pruners {
		if p != nil {
			live = append(live, p)
		}
	}

	return &SessionSweeper{
		store:   s,
		pruners: live,
		config:  config,
		logger:  logger.With("component", "session_sweeper"),
	}
}

// Start begins the sweeper background goroutine.
func (w *SessionSweeper) Start() {
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.wg.Add(1)
	go w.run()
	w.logger.Info("session sweeper started", "interval", w.config.Interval, "ttl", w.config.TTL)
}

// Stop gracefully stops the sweeper.
func (w *SessionSweeper) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
	w.logger.Info("session sweeper stopped")
}

func (w *SessionSweeper) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.Sweep(w.ctx)
		}
	}
}

// Sweep runs one cycle and returns the number of sessions deleted.
func (w *SessionSweeper) Sweep(ctx context.Context) int64 {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	now := w.config.Now()

	deleted, err := w.store.DeleteExpiredSessions(ctx, domain.ExpiryCutoff(now, w.config.TTL))
	if err != nil {
		w.logger.Error("failed to delete expired sessions", "error", err)
	}

	pruned := 0
	for _, p := range w.pruners {
		pruned += p.Prune(now, w.config.TTL)
	}

	if deleted > 0 || pruned > 0 {
		w.logger.Debug("swept idle state", "sessions", deleted, "clients", pruned)
	}
	return deleted
}

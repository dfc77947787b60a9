// Package generator runs slogan generation for the HTTP entry points: it
// sanitizes and validates the form input, applies the configured generation
// delay and stores the resulting batch for the visitor's session.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/artpar/sloganforge/internal/core/domain"
	"github.com/artpar/sloganforge/internal/core/slogan"
	"github.com/artpar/sloganforge/internal/shell/input"
)

// =============================================================================
// Types
// =============================================================================

// Input is the raw generator form as submitted by a client.
type Input struct {
	CompanyName string   `json:"company_name"`
	Industry    string   `json:"industry"`
	Keywords    []string `json:"keywords"`
	Tone        string   `json:"tone"`
}

// BatchStore persists generated batches.
type BatchStore interface {
	ReplaceBatch(ctx context.Context, batch *domain.Batch) error
}

// Config holds generator settings.
type Config struct {
	// Delay is an artificial latency applied before each generation.
	Delay time.Duration
}

// Generator produces slogan batches.
type Generator struct {
	store  BatchStore
	config Config
	logger *slog.Logger
}

// New creates a generator. store may be nil when only Preview is used.
func New(store BatchStore, config Config, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		store:  store,
		config: config,
		logger: logger.With("component", "generator"),
	}
}

// =============================================================================
// Operations
// =============================================================================

// Preview validates in and returns the generated slogans without storing them.
// Validation failures are returned as *input.FieldError.
func (g *Generator) Preview(ctx context.Context, in Input) (slogan.Request, []slogan.Slogan, error) {
	req, err := input.BuildRequest(in.CompanyName, in.Industry, in.Keywords, in.Tone)
	if err != nil {
		return slogan.Request{}, nil, err
	}
	if err := g.wait(ctx); err != nil {
		return slogan.Request{}, nil, err
	}
	return req, slogan.Generate(req), nil
}

// Generate validates in, generates a batch for sessionID and replaces the
// session's previous batch with it.
func (g *Generator) Generate(ctx context.Context, sessionID string, in Input) (*domain.Batch, error) {
	req, err := input.BuildRequest(in.CompanyName, in.Industry, in.Keywords, in.Tone)
	if err != nil {
		return nil, err
	}
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	batch := domain.NewBatch(sessionID, req)
	if err := g.store.ReplaceBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("store batch: %w", err)
	}

	g.logger.Debug("batch generated",
		"session_id", sessionID,
		"batch_id", batch.ID,
		"tone", req.Tone,
		"slogans", len(batch.Slogans),
	)
	return batch, nil
}

func (g *Generator) wait(ctx context.Context) error {
	if g.config.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.config.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artpar/sloganforge/internal/core/slogan"
	"github.com/artpar/sloganforge/internal/core/validation"
)

// =============================================================================
// Batch Errors
// =============================================================================

var (
	ErrSloganNotFound   = errors.New("slogan not found in batch")
	ErrInvalidRating    = errors.New("invalid rating")
	ErrInvalidSloganKey = errors.New("invalid slogan key")
)

// =============================================================================
// Batch
// =============================================================================

// Batch is the result list of one generation call.
type Batch struct {
	ID        string          `json:"id"`
	SessionID string          `json:"session_id"`
	Request   slogan.Request  `json:"request"`
	Slogans   []slogan.Slogan `json:"slogans"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewBatch runs the generator for req and wraps the result for sessionID.
// The request must already be validated.
func NewBatch(sessionID string, req slogan.Request) *Batch {
	return &Batch{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Request:   req,
		Slogans:   slogan.Generate(req),
		CreatedAt: time.Now().UTC(),
	}
}

// Find returns the slogan with the given ID.
func (b *Batch) Find(sloganID string) (slogan.Slogan, bool) {
	for _, s := range b.Slogans {
		if s.ID == sloganID {
			return s, true
		}
	}
	return slogan.Slogan{}, false
}

// Rate sets the rating of one slogan.
func (b *Batch) Rate(sloganID string, rating int) error {
	if _, msg := validation.ValidateRating(rating); msg != "" {
		return fmt.Errorf("%w: %s", ErrInvalidRating, msg)
	}
	for i := range b.Slogans {
		if b.Slogans[i].ID == sloganID {
			b.Slogans[i].Rating = rating
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSloganNotFound, sloganID)
}

// Filter returns the slogans of the given length class.
func (b *Batch) Filter(l slogan.Length) []slogan.Slogan {
	return slogan.FilterByLength(b.Slogans, l)
}

// =============================================================================
// Slogan Keys
// =============================================================================

// SloganKey identifies a slogan across batches as "{batchID}.{sloganID}".
func SloganKey(batchID, sloganID string) string {
	return batchID + "." + sloganID
}

// ParseSloganKey splits a key produced by SloganKey.
func ParseSloganKey(key string) (batchID, sloganID string, err error) {
	batchID, sloganID, ok := strings.Cut(key, ".")
	if !ok || batchID == "" || sloganID == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSloganKey, key)
	}
	return batchID, sloganID, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/artpar/sloganforge/internal/core/i18n"
)

// =============================================================================
// Session
// =============================================================================

// Session is an anonymous visitor. It owns at most one Batch.
type Session struct {
	ID         string        `json:"id"`
	Language   i18n.Language `json:"language"`
	CreatedAt  time.Time     `json:"created_at"`
	LastSeenAt time.Time     `json:"last_seen_at"`
}

// NewSession creates a session in the given language.
func NewSession(lang i18n.Language) *Session {
	if _, ok := i18n.ParseLanguage(string(lang)); !ok {
		lang = i18n.Default
	}
	now := time.Now().UTC()
	return &Session{
		ID:         uuid.New().String(),
		Language:   lang,
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// Expired reports whether the session has been idle for longer than ttl.
// A non-positive ttl never expires.
func (s Session) Expired(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(s.LastSeenAt) > ttl
}

// ExpiryCutoff returns the LastSeenAt before which sessions are expired.
func ExpiryCutoff(now time.Time, ttl time.Duration) time.Time {
	return now.Add(-ttl)
}

// IsSessionID reports whether s looks like an ID issued by NewSession.
// Unknown IDs from clients are replaced rather than trusted.
func IsSessionID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil && len(s) == 36
}

// Package middleware provides HTTP middleware shared by the JSON API and the
// HTML site.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/artpar/sloganforge/internal/core/domain"
	"github.com/artpar/sloganforge/internal/core/i18n"
	"github.com/artpar/sloganforge/internal/shell/store"
)

// =============================================================================
// Context Key
// =============================================================================

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext returns the session stored by SessionMiddleware.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(*domain.Session)
	return session, ok && session != nil
}

// =============================================================================
// Session Store Interface
// =============================================================================

// SessionStore is the part of store.Store the middleware needs.
type SessionStore interface {
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	UpdateSession(ctx context.Context, session *domain.Session) error
}

// =============================================================================
// Session Configuration
// =============================================================================

const (
	// HeaderSessionID carries the session for clients without cookies.
	HeaderSessionID = "X-Session-ID"

	// DefaultCookieName is used when SessionConfig.CookieName is empty.
	DefaultCookieName = "sloganforge_session"

	// touchInterval limits how often LastSeenAt is written back.
	touchInterval = time.Minute
)

// SessionConfig holds configuration for the session middleware.
type SessionConfig struct {
	Store SessionStore

	// CookieName names the session cookie.
	CookieName string

	// TTL is the idle lifetime of a session. Zero disables expiry.
	TTL time.Duration

	// DefaultLanguage is given to new sessions.
	DefaultLanguage i18n.Language

	// SecureCookie sets the Secure attribute on the cookie.
	SecureCookie bool

	Logger *slog.Logger

	// Now is used in tests. Defaults to time.Now.
	Now func() time.Time
}

// =============================================================================
// Session Middleware
// =============================================================================

// SessionMiddleware attaches a visitor session to every request, creating
// one when the client has none or its session expired.
type SessionMiddleware struct {
	config SessionConfig
}

// NewSessionMiddleware creates a new session middleware with the given config.
func NewSessionMiddleware(cfg SessionConfig) *SessionMiddleware {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	if _, ok := i18n.ParseLanguage(string(cfg.DefaultLanguage)); !ok {
		cfg.DefaultLanguage = i18n.Default
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &SessionMiddleware{config: cfg}
}

// Handler returns the middleware handler function.
// The session ID is read from the cookie first, then from the X-Session-ID
// header, and is echoed back in both.
func (m *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolve(r)
		if err != nil {
			m.config.Logger.Error("failed to resolve session",
				"path", r.URL.Path,
				"error", err,
			)
			writeJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to resolve session")
			return
		}

		m.setCookie(w, session.ID)
		w.Header().Set(HeaderSessionID, session.ID)

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

func (m *SessionMiddleware) resolve(r *http.Request) (*domain.Session, error) {
	ctx := r.Context()
	now := m.config.Now().UTC()

	if id := requestSessionID(r, m.config.CookieName); id != "" {
		session, err := m.config.Store.GetSession(ctx, id)
		switch {
		case err == nil && !session.Expired(now, m.config.TTL):
			if now.Sub(session.LastSeenAt) >= touchInterval {
				session.LastSeenAt = now
				if err := m.config.Store.UpdateSession(ctx, session); err != nil {
					return nil, err
				}
			}
			return session, nil
		case err != nil && !store.IsNotFound(err):
			return nil, err
		}
	}

	session := domain.NewSession(m.config.DefaultLanguage)
	session.CreatedAt, session.LastSeenAt = now, now
	if err := m.config.Store.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	m.config.Logger.Debug("session created", "session_id", session.ID)
	return session, nil
}

func (m *SessionMiddleware) setCookie(w http.ResponseWriter, id string) {
	cookie := &http.Cookie{
		Name:     m.config.CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.config.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if m.config.TTL > 0 {
		cookie.MaxAge = int(m.config.TTL.Seconds())
	}
	http.SetCookie(w, cookie)
}

// requestSessionID returns the well-formed session ID sent by the client.
func requestSessionID(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && domain.IsSessionID(c.Value) {
		return c.Value
	}
	if id := r.Header.Get(HeaderSessionID); domain.IsSessionID(id) {
		return id
	}
	return ""
}

package e2e

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/artpar/sloganforge/internal/core/i18n"
	"github.com/artpar/sloganforge/internal/shell/api"
	"github.com/artpar/sloganforge/internal/shell/api/middleware"
	"github.com/artpar/sloganforge/internal/shell/generator"
	"github.com/artpar/sloganforge/internal/shell/render"
	"github.com/artpar/sloganforge/internal/shell/store"
	"github.com/artpar/sloganforge/internal/shell/web"
	"github.com/artpar/sloganforge/internal/shell/workers"
)

const (
	jsonAPIType = "application/vnd.api+json"
	sessionTTL  = 30 * time.Minute
)

// =============================================================================
// Test Environment
// =============================================================================

// env is one fully wired server with a cookie-keeping client, the way a
// browser and a script would share a visitor session.
type env struct {
	server  *httptest.Server
	client  *http.Client
	store   store.Store
	limiter *middleware.RateLimiter
}

type envOptions struct {
	requestsPerSecond float64
	burst             int
}

func newEnv(t *testing.T, opts envOptions) *env {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	gen := generator.New(s, generator.Config{}, logger)
	renderer := render.NewRenderer(render.DefaultConfig(), logger)
	sessions := middleware.NewSessionMiddleware(middleware.SessionConfig{
		Store:           s,
		TTL:             sessionTTL,
		DefaultLanguage: i18n.French,
		Logger:          logger,
	})
	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: opts.requestsPerSecond,
		Burst:             opts.burst,
		Logger:            logger,
	})
	site := web.NewSite(web.Config{
		Store:           s,
		Generator:       gen,
		Renderer:        renderer,
		Limiter:         limiter,
		Logger:          logger,
		DefaultLanguage: i18n.French,
	})

	server := httptest.NewServer(api.SetupAPI(api.APIConfig{
		Store:     s,
		Generator: gen,
		Renderer:  renderer,
		Logger:    logger,
		Sessions:  sessions,
		Limiter:   limiter,
		Site:      site.Routes(),
	}))
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &env{
		server:  server,
		client:  &http.Client{Jar: jar, Timeout: 10 * time.Second},
		store:   s,
		limiter: limiter,
	}
}

func (e *env) url(path string) string {
	return e.server.URL + path
}

func (e *env) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (e *env) get(t *testing.T, path string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, e.url(path), nil)
	require.NoError(t, err)
	return e.do(t, req)
}

func (e *env) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, e.url(path), strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(t, req)
}

func (e *env) send(t *testing.T, method, path, contentType, body string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequestWithContext(t.Context(), method, e.url(path), strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", contentType)
	return e.do(t, req)
}

// =============================================================================
// JSON:API Documents
// =============================================================================

type resourceObject struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes"`
}

type document struct {
	Data     json.RawMessage  `json:"data"`
	Included []resourceObject `json:"included"`
}

func decodeOne(t *testing.T, body string) resourceObject {
	t.Helper()
	var doc document
	require.NoError(t, json.Unmarshal([]byte(body), &doc), body)
	var obj resourceObject
	require.NoError(t, json.Unmarshal(doc.Data, &obj), body)
	return obj
}

func decodeMany(t *testing.T, body string) []resourceObject {
	t.Helper()
	var doc document
	require.NoError(t, json.Unmarshal([]byte(body), &doc), body)
	var objs []resourceObject
	require.NoError(t, json.Unmarshal(doc.Data, &objs), body)
	return objs
}

// currentBatch returns the ID of the visitor's batch as listed by the API.
func (e *env) currentBatch(t *testing.T) string {
	t.Helper()
	resp, body := e.get(t, "/api/v1/batches")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	batches := decodeMany(t, body)
	require.Len(t, batches, 1)
	return batches[0].ID
}

func acmeForm() url.Values {
	return url.Values{
		"company_name": {"Acme"},
		"industry":     {"Tech"},
		"keywords":     {"innovation, speed"},
		"tone":         {"bold"},
	}
}

// sweeper returns a session sweeper whose clock runs ahead by skew.
func (e *env) sweeper(skew time.Duration) *workers.SessionSweeper {
	return workers.NewSessionSweeper(e.store, workers.SessionSweeperConfig{
		Interval: time.Minute,
		TTL:      sessionTTL,
		Now:      func() time.Time { return time.Now().Add(skew) },
	}, nil, e.limiter)
}

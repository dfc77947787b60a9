// Package api provides the HTTP surface of SloganForge: the JSON:API
// resources, the custom actions, the OpenAPI document and the health checks.
// The HTML site is mounted behind it as the catch-all handler.
package api

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"log/slog"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/manyminds/api2go"

	"github.com/artpar/sloganforge/internal/core/export"
	"github.com/artpar/sloganforge/internal/shell/api/middleware"
	"github.com/artpar/sloganforge/internal/shell/api/openapi"
	"github.com/artpar/sloganforge/internal/shell/api/resources"
	"github.com/artpar/sloganforge/internal/shell/generator"
	"github.com/artpar/sloganforge/internal/shell/render"
	"github.com/artpar/sloganforge/internal/shell/store"
)

// =============================================================================
// API Setup
// =============================================================================

// APIConfig holds configuration for the API setup.
type APIConfig struct {
	Store     store.Store
	Generator *generator.Generator
	Renderer  *render.Renderer
	Logger    *slog.Logger

	// Sessions assigns visitor sessions to API and site requests.
	Sessions *middleware.SessionMiddleware

	// Limiter throttles generation and export. Nil disables limiting.
	Limiter *middleware.RateLimiter

	// MaxLogoBytes bounds uploaded logos in export requests.
	MaxLogoBytes int64

	// Site serves every path the API does not own. Nil means 404.
	Site http.Handler

	// BaseURL is the public server URL listed in the OpenAPI document.
	BaseURL string
}

// SetupAPI creates the complete router with JSON:API resources, custom
// endpoints and the site. Returns an http.Handler that can be used as the
// server's main handler.
func SetupAPI(cfg APIConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Generator == nil {
		cfg.Generator = generator.New(cfg.Store, generator.Config{}, cfg.Logger)
	}
	if cfg.Renderer == nil {
		cfg.Renderer = render.NewRenderer(render.Config{MaxLogoBytes: cfg.MaxLogoBytes}, cfg.Logger)
	}
	if cfg.Sessions == nil {
		cfg.Sessions = middleware.NewSessionMiddleware(middleware.SessionConfig{
			Store:  cfg.Store,
			Logger: cfg.Logger,
		})
	}
	if cfg.Limiter == nil {
		cfg.Limiter = middleware.NewRateLimiter(middleware.RateLimitConfig{Logger: cfg.Logger})
	}
	if cfg.Site == nil {
		cfg.Site = http.HandlerFunc(notFoundHandler)
	}

	// Create api2go API for JSON:API resources.
	// NewAPIWithResolver creates its own internal router.
	jsonAPI := api2go.NewAPIWithResolver("v1", api2go.NewStaticResolver("/api"))
	jsonAPI.ContentType = "application/vnd.api+json"

	batchResource := resources.NewBatchResource(cfg.Store, cfg.Generator)
	sloganResource := resources.NewSloganResource(cfg.Store)

	jsonAPI.AddResource(resources.Batch{}, batchResource)
	jsonAPI.AddResource(resources.Slogan{}, sloganResource)

	// api2go expects paths without the /api prefix (e.g., /v1/slogans not
	// /api/v1/slogans), and resources read the visitor session.
	jsonAPIHandler := cfg.Sessions.Handler(http.StripPrefix("/api", jsonAPI.Handler()))

	router := mux.NewRouter()
	router.Use(requestIDMiddleware)
	router.Use(recoveryMiddleware(cfg.Logger))

	// Health endpoints
	router.HandleFunc("/health", healthHandler).Methods("GET")
	router.HandleFunc("/ready", readyHandler(cfg.Store)).Methods("GET")

	// Custom actions. These must be registered before the /api prefix so
	// that api2go does not catch them.
	actions := NewActions(cfg.Store, cfg.Generator, cfg.Renderer, cfg.MaxLogoBytes, cfg.Logger)
	router.Handle("/api/v1/generate", cfg.Limiter.Handler(http.HandlerFunc(actions.Generate))).Methods("POST")
	router.Handle("/api/v1/slogans/{id}/export", cfg.Limiter.Handler(http.HandlerFunc(actions.Export))).Methods("POST")
	router.Handle("/api/v1/batches", cfg.Limiter.Handler(jsonAPIHandler)).Methods("POST")

	// OpenAPI endpoints
	openapiGen := NewOpenAPIGenerator(cfg.BaseURL)
	router.HandleFunc("/openapi.json", openapiGen.Handler()).Methods("GET")
	router.HandleFunc("/openapi.yaml", openapiGen.YAMLHandler()).Methods("GET")

	// Mount api2go handler for all other /api routes
	router.PathPrefix("/api").Handler(jsonAPIHandler)

	// Static assets do not need a session.
	router.PathPrefix("/static/").Handler(cfg.Site)

	// The site handles everything else. This must be registered last to act
	// as a catch-all.
	router.PathPrefix("/").Handler(cfg.Sessions.Handler(cfg.Site))

	return router
}

// NewOpenAPIGenerator describes the JSON:API resources and custom actions.
// An empty baseURL keeps the generator's default server.
func NewOpenAPIGenerator(baseURL string) *openapi.Generator {
	opts := []openapi.Option{
		openapi.WithTitle("SloganForge API"),
		openapi.WithVersion("1.0.0"),
		openapi.WithDescription("Template-based slogan generation API following the JSON:API specification"),
	}
	if baseURL != "" {
		opts = append(opts, openapi.WithServer(strings.TrimRight(baseURL, "/")))
	}
	gen := openapi.NewGenerator(opts...)

	gen.RegisterResource(openapi.ResourceInfo{
		Name:           "batches",
		Model:          resources.Batch{},
		SupportsFind:   true,
		SupportsCreate: true,
		SupportsUpdate: false, // A batch is replaced by generating a new one
	})
	gen.RegisterResource(openapi.ResourceInfo{
		Name:           "slogans",
		Model:          resources.Slogan{},
		Filters:        []string{"batch", "length"},
		SupportsFind:   true,
		SupportsCreate: false,
		SupportsUpdate: true, // rating only
	})

	gen.RegisterAction(openapi.ActionInfo{
		Method:        http.MethodPost,
		Path:          "/api/v1/generate",
		OperationID:   "generateSlogans",
		Summary:       "Generate slogans without storing them",
		Tag:           "Slogans",
		RequestModel:  GenerateRequest{},
		ResponseModel: GenerateResponse{},
	})
	exportTypes := make([]string, 0, len(export.Kinds()))
	for _, k := range export.Kinds() {
		exportTypes = append(exportTypes, k.ContentType())
	}
	gen.RegisterAction(openapi.ActionInfo{
		Method:        http.MethodPost,
		Path:          "/api/v1/slogans/{id}/export",
		OperationID:   "exportSlogan",
		Summary:       "Render a slogan as PNG, PDF or text",
		Tag:           "Slogans",
		Query:         []string{"kind"},
		RequestModel:  ExportRequest{},
		ResponseTypes: exportTypes,
	})

	return gen
}

// =============================================================================
// Middleware
// =============================================================================

// requestIDMiddleware generates and adds a request ID to responses.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-ID")
		if reqID == "" {
			reqID = generateRequestID()
		}
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r)
	})
}

// recoveryMiddleware recovers from panics and returns a 500 error.
func recoveryMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
					writeError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// =============================================================================
// Health Handlers
// =============================================================================

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
}

func readyHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		checks := make(map[string]string)

		if err := db.Ping(r.Context()); err != nil {
			checks["database"] = "failed"
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "not_ready",
				"checks": checks,
			})
			return
		}
		checks["database"] = "ok"

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ready",
			"checks": checks,
		})
	}
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not Found", "No route for "+r.URL.Path)
}

// =============================================================================
// Helpers
// =============================================================================

// writeResponder writes an api2go.Responder to the response writer.
func writeResponder(w http.ResponseWriter, resp api2go.Responder, err error, logger *slog.Logger) {
	if err != nil {
		if httpErr, ok := err.(api2go.HTTPError); ok && len(httpErr.Errors) > 0 {
			status := parseStatus(httpErr.Errors[0].Status)
			w.Header().Set("Content-Type", "application/vnd.api+json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"errors": httpErr.Errors,
			})
			return
		}
		logger.Error("request error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.api+json")
	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.WriteHeader(resp.StatusCode())
	if result := resp.Result(); result != nil {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": result,
			"meta": resp.Metadata(),
		})
	}
}

// writeError writes a JSON:API error document with a single error.
func writeError(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/vnd.api+json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(middleware.JSONAPIErrorResponse{
		Errors: []middleware.JSONAPIError{{
			Status: strconv.Itoa(status),
			Title:  title,
			Detail: detail,
		}},
	})
}

// parseStatus converts a status string to an int.
func parseStatus(status string) int {
	if status == "" {
		return http.StatusInternalServerError
	}
	n := json.Number(status)
	if i, err := n.Int64(); err == nil && i > 0 {
		return int(i)
	}
	return http.StatusInternalServerError
}

// generateRequestID generates a unique request ID.
func generateRequestID() string {
	return "req_" + randomString(12)
}

// randomString generates a cryptographically random string of the given length.
func randomString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		idx, _ := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		b[i] = letters[idx.Int64()]
	}
	return string(b)
}

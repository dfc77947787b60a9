package api

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/manyminds/api2go"

	"github.com/artpar/sloganforge/internal/core/export"
	"github.com/artpar/sloganforge/internal/core/slogan"
	"github.com/artpar/sloganforge/internal/shell/api/resources"
	"github.com/artpar/sloganforge/internal/shell/generator"
	"github.com/artpar/sloganforge/internal/shell/input"
	"github.com/artpar/sloganforge/internal/shell/render"
	"github.com/artpar/sloganforge/internal/shell/store"
)

// maxActionBody bounds JSON bodies of custom actions. Export bodies may add a
// base64 logo on top of it.
const maxActionBody = 1 << 20

// =============================================================================
// Custom Actions
// =============================================================================

// Actions serves the endpoints that are not JSON:API CRUD.
type Actions struct {
	store        store.Store
	generator    *generator.Generator
	renderer     *render.Renderer
	maxLogoBytes int64
	logger       *slog.Logger
}

// NewActions creates the custom action handlers.
func NewActions(s store.Store, g *generator.Generator, r *render.Renderer, maxLogoBytes int64, logger *slog.Logger) *Actions {
	if logger == nil {
		logger = slog.Default()
	}
	if maxLogoBytes <= 0 {
		maxLogoBytes = render.DefaultConfig().MaxLogoBytes
	}
	return &Actions{
		store:        s,
		generator:    g,
		renderer:     r,
		maxLogoBytes: maxLogoBytes,
		logger:       logger.With("component", "api"),
	}
}

// Generate runs the generator without storing anything.
// POST /api/v1/generate
func (a *Actions) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeJSON(w, r, &req, maxActionBody); err != nil {
		writeResponder(w, nil, err, a.logger)
		return
	}

	length, err := slogan.ParseLength(req.Length)
	if err != nil {
		writeResponder(w, nil, badRequest(err.Error()), a.logger)
		return
	}

	parsed, slogans, err := a.generator.Preview(r.Context(), generator.Input{
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Keywords:    req.Keywords,
		Tone:        req.Tone,
	})
	if err != nil {
		var fieldErr *input.FieldError
		if errors.As(err, &fieldErr) {
			err = badRequest(fieldErr.Message)
		}
		writeResponder(w, nil, err, a.logger)
		return
	}

	filtered := slogan.FilterByLength(slogans, length)
	resp := GenerateResponse{
		Request: parsed,
		Slogans: make([]SloganResponse, 0, len(filtered)),
		Total:   len(filtered),
	}
	for _, s := range filtered {
		resp.Slogans = append(resp.Slogans, SloganResponse{
			ID:     s.ID,
			Text:   s.Text,
			Length: string(slogan.LengthOf(s.Text)),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Export renders a stored slogan as a downloadable artifact.
// POST /api/v1/slogans/{id}/export?kind=png|pdf|txt
func (a *Actions) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	kind, err := export.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		writeResponder(w, nil, badRequest("kind must be png, pdf or txt"), a.logger)
		return
	}

	req := ExportRequest{Style: export.DefaultStyle()}
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req, a.maxBody()); err != nil {
			writeResponder(w, nil, err, a.logger)
			return
		}
	}

	var logo []byte
	if req.Logo != "" {
		logo, err = base64.StdEncoding.DecodeString(req.Logo)
		if err != nil {
			writeResponder(w, nil, badRequest("logo must be base64 encoded"), a.logger)
			return
		}
	}

	s, err := resources.FindSlogan(ctx, a.store, id)
	if err != nil {
		if resources.IsSloganNotFound(err) {
			err = apiError(http.StatusNotFound, "Not Found", "Slogan not found")
		}
		writeResponder(w, nil, err, a.logger)
		return
	}

	artifact, err := a.renderer.Render(ctx, kind, render.Input{
		Text:  s.Text,
		Style: req.Style,
		Logo:  logo,
	})
	if err != nil {
		if isRenderInputError(err) {
			err = badRequest(err.Error())
		}
		writeResponder(w, nil, err, a.logger)
		return
	}

	artifact.Serve(w, r, render.Attachment)
}

func (a *Actions) maxBody() int64 {
	// base64 grows the logo by a third; leave room for the style fields.
	return a.maxLogoBytes*4/3 + maxActionBody
}

// =============================================================================
// Helpers
// =============================================================================

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}, limit int64) error {
	body := http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apiError(http.StatusRequestEntityTooLarge, "Request Entity Too Large", "Request body too large")
		}
		if errors.Is(err, io.EOF) {
			return badRequest("Request body is empty")
		}
		return badRequest(fmt.Sprintf("Invalid JSON: %v", err))
	}
	return nil
}

func badRequest(detail string) error {
	return apiError(http.StatusBadRequest, "Bad Request", detail)
}

// apiError builds an api2go.HTTPError with its error object filled in, so
// that writeResponder can report the status.
func apiError(status int, title, detail string) api2go.HTTPError {
	e := api2go.NewHTTPError(errors.New(detail), title, status)
	e.Errors = []api2go.Error{{
		Status: strconv.Itoa(status),
		Title:  title,
		Detail: detail,
	}}
	return e
}

// isRenderInputError reports whether a render error was caused by the
// caller's style or logo.
func isRenderInputError(err error) bool {
	return errors.Is(err, render.ErrInvalidStyle) ||
		errors.Is(err, render.ErrInvalidLogo) ||
		errors.Is(err, render.ErrUnsupportedKind) ||
		errors.Is(err, render.ErrEmptyText)
}

// Package web serves the HTML site: the landing page with the generator
// form and its results, the customization page with export downloads, the
// legal pages and the language switcher.
package web

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/artpar/sloganforge/internal/core/domain"
	"github.com/artpar/sloganforge/internal/core/export"
	"github.com/artpar/sloganforge/internal/core/i18n"
	"github.com/artpar/sloganforge/internal/core/slogan"
	"github.com/artpar/sloganforge/internal/shell/api/middleware"
	"github.com/artpar/sloganforge/internal/shell/generator"
	"github.com/artpar/sloganforge/internal/shell/input"
	"github.com/artpar/sloganforge/internal/shell/render"
	"github.com/artpar/sloganforge/internal/shell/store"
)

// maxFormMemory is the part of a multipart export form kept in memory.
const maxFormMemory = 4 << 20

// =============================================================================
// Site
// =============================================================================

// Config holds the site's collaborators and settings.
type Config struct {
	Store           store.Store
	Generator       *generator.Generator
	Renderer        *render.Renderer
	Limiter         *middleware.RateLimiter
	Logger          *slog.Logger
	DefaultLanguage i18n.Language
	MaxLogoBytes    int64
	Now             func() time.Time
}

// Site is the HTML front end. Handlers read the visitor's session from the
// request context, so Routes must be wrapped by the session middleware.
type Site struct {
	store        store.Store
	generator    *generator.Generator
	renderer     *render.Renderer
	limiter      *middleware.RateLimiter
	logger       *slog.Logger
	language     i18n.Language
	maxLogoBytes int64
	now          func() time.Time
}

// NewSite creates the site handlers.
func NewSite(cfg Config) *Site {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if _, ok := i18n.ParseLanguage(string(cfg.DefaultLanguage)); !ok {
		cfg.DefaultLanguage = i18n.Default
	}
	if cfg.MaxLogoBytes <= 0 {
		cfg.MaxLogoBytes = render.DefaultConfig().MaxLogoBytes
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Site{
		store:        cfg.Store,
		generator:    cfg.Generator,
		renderer:     cfg.Renderer,
		limiter:      cfg.Limiter,
		logger:       cfg.Logger.With("component", "web"),
		language:     cfg.DefaultLanguage,
		maxLogoBytes: cfg.MaxLogoBytes,
		now:          cfg.Now,
	}
}

// Routes returns the site router.
func (s *Site) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	// RealIP rewrites RemoteAddr from client-supplied headers.
	if s.limiter.TrustsProxy() {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Recoverer)

	r.Get("/", s.page(s.index))
	r.Post("/generate", s.page(s.generate))
	r.Get("/privacy", s.page(s.privacy))
	r.Get("/terms", s.page(s.terms))
	r.Get("/lang/{code}", s.switchLanguage)

	r.Route("/slogans/{id}", func(r chi.Router) {
		r.Post("/rate", s.page(s.rate))
		r.Get("/customize", s.page(s.customize))
		r.Get("/preview.png", s.page(s.preview))
		r.Post("/export", s.page(s.export))
	})

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.NotFound(s.page(func(w http.ResponseWriter, r *http.Request) *PageResponse {
		return s.errorPage(r, http.StatusNotFound, s.messages(r).Errors.NotFound)
	}))
	r.MethodNotAllowed(s.page(func(w http.ResponseWriter, r *http.Request) *PageResponse {
		return s.errorPage(r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	}))

	return r
}

// =============================================================================
// Page Responses
// =============================================================================

// PageResponse is what a page handler asks the site to render. A handler
// that has already written the response returns nil.
type PageResponse struct {
	Code      int
	Component templ.Component
	Err       error
}

type pageHandler func(w http.ResponseWriter, r *http.Request) *PageResponse

func (s *Site) page(h pageHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := h(w, r)
		if resp == nil {
			return
		}
		if resp.Err != nil {
			s.logger.Error("page failed", "path", r.URL.Path, "error", resp.Err)
		}

		var buf bytes.Buffer
		if err := resp.Component.Render(r.Context(), &buf); err != nil {
			s.logger.Error("failed to render page", "path", r.URL.Path, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		code := resp.Code
		if code == 0 {
			code = http.StatusOK
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(code)
		io.Copy(w, &buf)
	}
}

func (s *Site) errorPage(r *http.Request, code int, message string) *PageResponse {
	m := s.messages(r)
	return &PageResponse{
		Code: code,
		Component: component(PageError, ErrorView{
			Layout:  newLayout(m, strconv.Itoa(code), s.now()),
			Status:  code,
			Message: message,
		}),
	}
}

func (s *Site) internalError(r *http.Request, err error) *PageResponse {
	resp := s.errorPage(r, http.StatusInternalServerError, s.messages(r).Errors.Internal)
	resp.Err = err
	return resp
}

func (s *Site) tooManyRequests(r *http.Request) *PageResponse {
	return s.errorPage(r, http.StatusTooManyRequests, s.messages(r).Errors.TooManyRequests)
}

func (s *Site) messages(r *http.Request) i18n.Messages {
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		return i18n.For(sess.Language)
	}
	return i18n.For(s.language)
}

// =============================================================================
// Landing Page
// =============================================================================

func (s *Site) index(w http.ResponseWriter, r *http.Request) *PageResponse {
	return s.renderIndex(r, FormView{}, http.StatusOK)
}

func (s *Site) renderIndex(r *http.Request, form FormView, code int) *PageResponse {
	m := s.messages(r)

	length, err := slogan.ParseLength(r.URL.Query().Get("length"))
	if err != nil {
		length = slogan.LengthAll
	}

	view := IndexView{
		Layout:   newLayout(m, "", s.now()),
		Form:     form,
		Lengths:  lengthTabs(m, length),
		Stars:    stars(),
		Features: features(m),
	}

	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		batch, err := s.store.GetSessionBatch(r.Context(), sess.ID)
		switch {
		case err == nil:
			view.HasBatch = true
			for _, sl := range batch.Filter(length) {
				view.Slogans = append(view.Slogans, SloganView{
					ID:     sl.ID,
					Key:    domain.SloganKey(batch.ID, sl.ID),
					Text:   sl.Text,
					Rating: sl.Rating,
				})
			}
			if form == (FormView{}) {
				view.Form = FormView{
					Company:  batch.Request.CompanyName,
					Industry: batch.Request.Industry,
					Keywords: strings.Join(batch.Request.Keywords, ", "),
					Tone:     string(batch.Request.Tone),
				}
			}
		case store.IsNotFound(err):
		default:
			return s.internalError(r, err)
		}
	}

	view.Tones = toneOptions(m, view.Form.Tone)
	return &PageResponse{Code: code, Component: component(PageIndex, view)}
}

// generate handles the generator form.
// POST /generate
func (s *Site) generate(w http.ResponseWriter, r *http.Request) *PageResponse {
	if !s.limiter.Allow(w, r) {
		return s.tooManyRequests(r)
	}

	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return s.internalError(r, errors.New("no session in request context"))
	}
	if err := r.ParseForm(); err != nil {
		return s.errorPage(r, http.StatusBadRequest, err.Error())
	}

	form := FormView{
		Company:  r.PostForm.Get("company_name"),
		Industry: r.PostForm.Get("industry"),
		Keywords: r.PostForm.Get("keywords"),
		Tone:     r.PostForm.Get("tone"),
	}

	_, err := s.generator.Generate(r.Context(), sess.ID, generator.Input{
		CompanyName: form.Company,
		Industry:    form.Industry,
		Keywords:    slogan.ParseKeywords(form.Keywords),
		Tone:        form.Tone,
	})
	if err != nil {
		var fieldErr *input.FieldError
		if errors.As(err, &fieldErr) {
			form.Field = fieldErr.Field
			form.Error = s.messages(r).FieldError(fieldErr.Field, fieldErr.Message)
			return s.renderIndex(r, form, http.StatusUnprocessableEntity)
		}
		return s.internalError(r, err)
	}

	http.Redirect(w, r, "/#results", http.StatusSeeOther)
	return nil
}

// rate handles the star buttons of a slogan.
// POST /slogans/{id}/rate
func (s *Site) rate(w http.ResponseWriter, r *http.Request) *PageResponse {
	m := s.messages(r)

	batchID, sloganID, err := domain.ParseSloganKey(chi.URLParam(r, "id"))
	if err != nil {
		return s.errorPage(r, http.StatusNotFound, m.Errors.NotFound)
	}
	rating, err := strconv.Atoi(r.FormValue("rating"))
	if err != nil {
		return s.errorPage(r, http.StatusUnprocessableEntity, m.Errors.Rating)
	}

	if err := s.store.RateSlogan(r.Context(), batchID, sloganID, rating); err != nil {
		switch {
		case store.IsNotFound(err):
			return s.errorPage(r, http.StatusNotFound, m.Errors.NotFound)
		case errors.Is(err, store.ErrInvalidData):
			return s.errorPage(r, http.StatusUnprocessableEntity, m.Errors.Rating)
		default:
			return s.internalError(r, err)
		}
	}

	http.Redirect(w, r, "/#"+url.PathEscape(sloganID), http.StatusSeeOther)
	return nil
}

// =============================================================================
// Customization and Export
// =============================================================================

// customize shows the style form for one slogan. The style comes from the
// query string so that the refresh button can resubmit it.
// GET /slogans/{id}/customize
func (s *Site) customize(w http.ResponseWriter, r *http.Request) *PageResponse {
	m := s.messages(r)

	sv, resp := s.findSlogan(r)
	if resp != nil {
		return resp
	}

	var errMsg string
	style, err := styleFromForm(r.URL.Query())
	if err != nil || !style.Validate().Ok() {
		errMsg = m.Errors.Style
		style = export.DefaultStyle()
	}

	return &PageResponse{
		Code:      http.StatusOK,
		Component: component(PageCustomize, newCustomizeView(newLayout(m, m.Export.Title, s.now()), sv, style, errMsg)),
	}
}

// preview renders the PNG shown on the customization page.
// GET /slogans/{id}/preview.png
func (s *Site) preview(w http.ResponseWriter, r *http.Request) *PageResponse {
	if !s.limiter.Allow(w, r) {
		return s.tooManyRequests(r)
	}

	sv, resp := s.findSlogan(r)
	if resp != nil {
		return resp
	}

	style, err := styleFromForm(r.URL.Query())
	if err != nil {
		return s.errorPage(r, http.StatusBadRequest, s.messages(r).Errors.Style)
	}

	artifact, err := s.renderer.Render(r.Context(), export.KindPNG, render.Input{Text: sv.Text, Style: style})
	if err != nil {
		if errors.Is(err, render.ErrInvalidStyle) {
			return s.errorPage(r, http.StatusBadRequest, s.messages(r).Errors.Style)
		}
		return s.internalError(r, err)
	}

	artifact.Serve(w, r, render.Inline)
	return nil
}

// export renders the download requested from the customization form.
// POST /slogans/{id}/export
func (s *Site) export(w http.ResponseWriter, r *http.Request) *PageResponse {
	if !s.limiter.Allow(w, r) {
		return s.tooManyRequests(r)
	}

	m := s.messages(r)
	sv, resp := s.findSlogan(r)
	if resp != nil {
		return resp
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxLogoBytes+maxFormMemory)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return s.renderCustomize(r, sv, export.DefaultStyle(), m.Errors.Logo, http.StatusRequestEntityTooLarge)
		}
		return s.errorPage(r, http.StatusBadRequest, err.Error())
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	style, err := styleFromForm(r.Form)
	if err != nil {
		return s.renderCustomize(r, sv, export.DefaultStyle(), m.Errors.Style, http.StatusUnprocessableEntity)
	}

	kind, err := export.ParseKind(r.FormValue(fieldKind))
	if err != nil {
		return s.renderCustomize(r, sv, style, m.Errors.Style, http.StatusUnprocessableEntity)
	}

	logo, err := readLogo(r, s.maxLogoBytes)
	if err != nil {
		return s.renderCustomize(r, sv, style, m.Errors.Logo, http.StatusUnprocessableEntity)
	}

	artifact, err := s.renderer.Render(r.Context(), kind, render.Input{Text: sv.Text, Style: style, Logo: logo})
	if err != nil {
		switch {
		case errors.Is(err, render.ErrInvalidLogo):
			return s.renderCustomize(r, sv, style, m.Errors.Logo, http.StatusUnprocessableEntity)
		case errors.Is(err, render.ErrInvalidStyle):
			return s.renderCustomize(r, sv, export.DefaultStyle(), m.Errors.Style, http.StatusUnprocessableEntity)
		default:
			return s.internalError(r, err)
		}
	}

	s.logger.Debug("slogan exported", "slogan", sv.Key, "kind", kind, "bytes", len(artifact.Body))
	artifact.Serve(w, r, render.Attachment)
	return nil
}

func (s *Site) renderCustomize(r *http.Request, sv SloganView, style export.StyleConfig, errMsg string, code int) *PageResponse {
	m := s.messages(r)
	return &PageResponse{
		Code:      code,
		Component: component(PageCustomize, newCustomizeView(newLayout(m, m.Export.Title, s.now()), sv, style, errMsg)),
	}
}

// findSlogan loads the slogan named by the {id} route parameter.
func (s *Site) findSlogan(r *http.Request) (SloganView, *PageResponse) {
	key := chi.URLParam(r, "id")
	batchID, sloganID, err := domain.ParseSloganKey(key)
	if err != nil {
		return SloganView{}, s.errorPage(r, http.StatusNotFound, s.messages(r).Errors.NotFound)
	}

	batch, err := s.store.GetBatch(r.Context(), batchID)
	if err != nil {
		if store.IsNotFound(err) {
			return SloganView{}, s.errorPage(r, http.StatusNotFound, s.messages(r).Errors.NotFound)
		}
		return SloganView{}, s.internalError(r, err)
	}

	sl, ok := batch.Find(sloganID)
	if !ok {
		return SloganView{}, s.errorPage(r, http.StatusNotFound, s.messages(r).Errors.NotFound)
	}
	return SloganView{ID: sl.ID, Key: key, Text: sl.Text, Rating: sl.Rating}, nil
}

// readLogo returns the uploaded logo, or nil when none was sent.
func readLogo(r *http.Request, limit int64) ([]byte, error) {
	file, header, err := r.FormFile(fieldLogo)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	if header.Size > limit {
		return nil, render.ErrInvalidLogo
	}
	return io.ReadAll(io.LimitReader(file, limit+1))
}

// =============================================================================
// Static Pages
// =============================================================================

func (s *Site) privacy(w http.ResponseWriter, r *http.Request) *PageResponse {
	return s.legal(r, s.messages(r).Privacy)
}

func (s *Site) terms(w http.ResponseWriter, r *http.Request) *PageResponse {
	return s.legal(r, s.messages(r).Terms)
}

func (s *Site) legal(r *http.Request, page i18n.LegalPage) *PageResponse {
	return &PageResponse{
		Code: http.StatusOK,
		Component: component(PageLegal, LegalView{
			Layout: newLayout(s.messages(r), page.Title, s.now()),
			Page:   page,
		}),
	}
}

// switchLanguage stores the chosen language on the session and sends the
// visitor back to the page they came from.
// GET /lang/{code}
func (s *Site) switchLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := i18n.ParseLanguage(chi.URLParam(r, "code"))
	if !ok {
		s.page(func(w http.ResponseWriter, r *http.Request) *PageResponse {
			return s.errorPage(r, http.StatusNotFound, s.messages(r).Errors.NotFound)
		})(w, r)
		return
	}

	if sess, found := middleware.SessionFromContext(r.Context()); found && sess.Language != lang {
		sess.Language = lang
		if err := s.store.UpdateSession(r.Context(), sess); err != nil {
			s.logger.Error("failed to update session language", "session_id", sess.ID, "error", err)
			s.page(func(w http.ResponseWriter, r *http.Request) *PageResponse {
				return s.internalError(r, err)
			})(w, r)
			return
		}
	}

	http.Redirect(w, r, backTarget(r), http.StatusSeeOther)
}

// backTarget returns the local path of the Referer, or "/".
func backTarget(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if strings.HasPrefix(ref.Path, "/lang/") {
		return "/"
	}
	target := ref.Path
	if ref.RawQuery != "" {
		target += "?" + ref.RawQuery
	}
	return target
}

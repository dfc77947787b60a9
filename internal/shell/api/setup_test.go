package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artpar/sloganforge/internal/shell/api/middleware"
	"github.com/artpar/sloganforge/internal/shell/store"
)

// =============================================================================
// Test Helpers
// =============================================================================

const jsonAPIType = "application/vnd.api+json"

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestHandler(t *testing.T) (http.Handler, store.Store) {
	t.Helper()
	st := newTestStore(t)
	return SetupAPI(APIConfig{Store: st}), st
}

func do(t *testing.T, h http.Handler, method, path, body, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		if strings.HasPrefix(path, "/api/v1/generate") || strings.Contains(path, "/export") {
			req.Header.Set("Content-Type", "application/json")
		} else {
			req.Header.Set("Content-Type", jsonAPIType)
		}
	}
	if sessionID != "" {
		req.Header.Set(middleware.HeaderSessionID, sessionID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

const createBatchBody = `{
	"data": {
		"type": "batches",
		"attributes": {
			"company_name": "Acme",
			"industry": "Tech",
			"keywords": ["innovation", "speed"],
			"tone": "bold"
		}
	}
}`

type document struct {
	Data     json.RawMessage   `json:"data"`
	Included []resourceObject  `json:"included"`
	Meta     map[string]any    `json:"meta"`
	Errors   []json.RawMessage `json:"errors"`
}

type resourceObject struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes"`
}

func decodeDocument(t *testing.T, rec *httptest.ResponseRecorder) document {
	t.Helper()
	var doc document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc), rec.Body.String())
	return doc
}

func (d document) one(t *testing.T) resourceObject {
	t.Helper()
	var obj resourceObject
	require.NoError(t, json.Unmarshal(d.Data, &obj))
	return obj
}

func (d document) many(t *testing.T) []resourceObject {
	t.Helper()
	var objs []resourceObject
	require.NoError(t, json.Unmarshal(d.Data, &objs))
	return objs
}

// createBatch posts the Acme batch and returns the session and batch IDs.
func createBatch(t *testing.T, h http.Handler) (string, resourceObject, document) {
	t.Helper()
	rec := do(t, h, "POST", "/api/v1/batches", createBatchBody, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	sessionID := rec.Header().Get(middleware.HeaderSessionID)
	require.NotEmpty(t, sessionID)
	doc := decodeDocument(t, rec)
	return sessionID, doc.one(t), doc
}

type pingFailStore struct {
	store.Store
}

func (pingFailStore) Ping(context.Context) error {
	return errors.New("database is locked")
}

// =============================================================================
// Health Tests
// =============================================================================

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, "GET", "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Empty(t, rec.Header().Get(middleware.HeaderSessionID))
}

func TestReady(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, "GET", "/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"database":"ok"`)
}

func TestReady_StoreDown(t *testing.T) {
	h := SetupAPI(APIConfig{Store: pingFailStore{Store: newTestStore(t)}})

	rec := do(t, h, "GET", "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_ready")
}

func TestRequestID_Preserved(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("X-Request-ID", "req_fixed")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req_fixed", rec.Header().Get("X-Request-ID"))
}

// =============================================================================
// Batch Resource Tests
// =============================================================================

func TestCreateBatch(t *testing.T) {
	h, _ := newTestHandler(t)

	_, batch, doc := createBatch(t, h)

	assert.Equal(t, "batches", batch.Type)
	assert.NotEmpty(t, batch.ID)
	assert.Equal(t, "Acme", batch.Attributes["company_name"])
	assert.Equal(t, "bold", batch.Attributes["tone"])
	assert.Equal(t, float64(11), batch.Attributes["slogan_count"])

	require.Len(t, doc.Included, 11)
	var first *resourceObject
	for i := range doc.Included {
		if doc.Included[i].ID == batch.ID+".slogan-1" {
			first = &doc.Included[i]
		}
	}
	require.NotNil(t, first)
	assert.Equal(t, "slogans", first.Type)
	assert.Equal(t, "Acme: Disrupting Tech Forever, No Apologies", first.Attributes["text"])
}

func TestCreateBatch_ValidationError(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"data":{"type":"batches","attributes":{"company_name":"Acme","industry":"Tech","keywords":[]}}}`
	rec := do(t, h, "POST", "/api/v1/batches", body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "keywords are required")
}

func TestCreateBatch_InvalidTone(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"data":{"type":"batches","attributes":{"company_name":"Acme","industry":"Tech","keywords":["x"],"tone":"sarcastic"}}}`
	rec := do(t, h, "POST", "/api/v1/batches", body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "tone must be one of")
}

func TestListBatches_SessionScoped(t *testing.T) {
	h, _ := newTestHandler(t)

	sessionID, batch, _ := createBatch(t, h)

	rec := do(t, h, "GET", "/api/v1/batches", "", sessionID)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeDocument(t, rec).many(t)
	require.Len(t, list, 1)
	assert.Equal(t, batch.ID, list[0].ID)

	// A new visitor has no batch.
	rec = do(t, h, "GET", "/api/v1/batches", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeDocument(t, rec).many(t))
}

func TestCreateBatch_ReplacesPrevious(t *testing.T) {
	h, _ := newTestHandler(t)

	sessionID, first, _ := createBatch(t, h)
	rec := do(t, h, "POST", "/api/v1/batches", createBatchBody, sessionID)
	require.Equal(t, http.StatusCreated, rec.Code)
	second := decodeDocument(t, rec).one(t)
	assert.NotEqual(t, first.ID, second.ID)

	rec = do(t, h, "GET", "/api/v1/batches/"+first.ID, "", sessionID)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "GET", "/api/v1/batches/"+second.ID, "", sessionID)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// =============================================================================
// Slogan Resource Tests
// =============================================================================

func TestListSlogans_CurrentBatch(t *testing.T) {
	h, _ := newTestHandler(t)
	sessionID, _, _ := createBatch(t, h)

	rec := do(t, h, "GET", "/api/v1/slogans", "", sessionID)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := decodeDocument(t, rec)
	assert.Len(t, doc.many(t), 11)
	assert.Equal(t, float64(11), doc.Meta["total"])
}

func TestListSlogans_Filters(t *testing.T) {
	h, _ := newTestHandler(t)
	_, batch, doc := createBatch(t, h)

	long := 0
	for _, s := range doc.Included {
		if s.Attributes["length"] == "long" {
			long++
		}
	}

	rec := do(t, h, "GET", "/api/v1/slogans?filter[batch]="+batch.ID+"&filter[length]=long", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeDocument(t, rec).many(t)
	assert.Len(t, list, long)
	for _, s := range list {
		assert.Equal(t, "long", s.Attributes["length"])
		assert.Equal(t, batch.ID, s.Attributes["batch_id"])
	}
}

func TestListSlogans_Paging(t *testing.T) {
	h, _ := newTestHandler(t)
	_, batch, _ := createBatch(t, h)

	rec := do(t, h, "GET", "/api/v1/slogans?filter[batch]="+batch.ID+"&page[size]=4&page[number]=3", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeDocument(t, rec).many(t), 3)
}

func TestListSlogans_Errors(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, "GET", "/api/v1/slogans?filter[length]=tiny", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, "GET", "/api/v1/slogans?filter[batch]=missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "GET", "/api/v1/slogans", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeDocument(t, rec).many(t))
}

func TestGetSlogan(t *testing.T) {
	h, _ := newTestHandler(t)
	_, batch, _ := createBatch(t, h)

	rec := do(t, h, "GET", "/api/v1/slogans/"+batch.ID+".slogan-combo-1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	s := decodeDocument(t, rec).one(t)
	assert.Equal(t, "Acme: Where innovation speed Transform Tech", s.Attributes["text"])

	rec = do(t, h, "GET", "/api/v1/slogans/"+batch.ID+".slogan-99", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, "GET", "/api/v1/slogans/not-a-key", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRateSlogan(t *testing.T) {
	h, _ := newTestHandler(t)
	_, batch, _ := createBatch(t, h)
	id := batch.ID + ".slogan-2"

	body := `{"data":{"type":"slogans","id":"` + id + `","attributes":{"rating":4}}}`
	rec := do(t, h, "PATCH", "/api/v1/slogans/"+id, body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(4), decodeDocument(t, rec).one(t).Attributes["rating"])

	rec = do(t, h, "GET", "/api/v1/slogans/"+id, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(4), decodeDocument(t, rec).one(t).Attributes["rating"])
}

func TestRateSlogan_OutOfRange(t *testing.T) {
	h, _ := newTestHandler(t)
	_, batch, _ := createBatch(t, h)
	id := batch.ID + ".slogan-2"

	body := `{"data":{"type":"slogans","id":"` + id + `","attributes":{"rating":6}}}`
	rec := do(t, h, "PATCH", "/api/v1/slogans/"+id, body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "rating must be between 1 and 5")
}

// =============================================================================
// Custom Action Tests
// =============================================================================

func TestGenerateAction(t *testing.T) {
	h, st := newTestHandler(t)

	body := `{"company_name":"Acme","industry":"Tech","keywords":["innovation","speed"],"tone":"bold"}`
	rec := do(t, h, "POST", "/api/v1/generate", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 11, resp.Total)
	require.Len(t, resp.Slogans, 11)
	assert.Equal(t, "slogan-1", resp.Slogans[0].ID)
	assert.Equal(t, "Acme", resp.Request.CompanyName)

	// Stateless: no session is created.
	count, err := st.CountSessions(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestGenerateAction_LengthFilter(t *testing.T) {
	h, _ := newTestHandler(t)

	body := `{"company_name":"Acme","industry":"Tech","keywords":["innovation"],"length":"short"}`
	rec := do(t, h, "POST", "/api/v1/generate", body, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, s := range resp.Slogans {
		assert.Equal(t, "short", s.Length, s.Text)
	}
}

func TestGenerateAction_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		detail string
	}{
		{"missing company", `{"industry":"Tech","keywords":["a"]}`, http.StatusBadRequest, "company_name is required"},
		{"missing keywords", `{"company_name":"Acme","industry":"Tech"}`, http.StatusBadRequest, "keywords are required"},
		{"bad length", `{"company_name":"Acme","industry":"Tech","keywords":["a"],"length":"huge"}`, http.StatusBadRequest, "length"},
		{"bad json", `{"company_name":`, http.StatusBadRequest, "Invalid JSON"},
	}

	h, _ := newTestHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, "POST", "/api/v1/generate", tt.body, "")
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, jsonAPIType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.detail)
		})
	}
}

func TestExportAction_Text(t *testing.T) {
	h, _ := newTestHandler(t)
	_, batch, _ := createBatch(t, h)

	rec := do(t, h, "POST", "/api/v1/slogans/"+batch.ID+".slogan-1/export?kind=txt", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t,
		"attachment; filename=slogan-acme-disrupting-tech-forever-no-apologies.txt",
		rec.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, rec.Header().Get("ETag"))
	assert.Equal(t,
		"Your Slogan: Acme: Disrupting Tech Forever, No Apologies\n\nGenerated by SloganForge AI",
		rec.Body.String())
}

func TestExportAction_PNGWithLogo(t *testing.T) {
	h, _ := newTestHandler(t)
	_, batch, _ := createBatch(t, h)

	logo := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := range logo.Pix {
		logo.Pix[i] = 0xff
	}
	logo.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, logo))

	body, err := json.Marshal(map[string]any{
		"style": map[string]any{"format": "landscape", "size": 64},
		"logo":  base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
	require.NoError(t, err)

	rec := do(t, h, "POST", "/api/v1/slogans/"+batch.ID+".slogan-1/export?kind=png", string(body), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 1350, img.Bounds().Dx())
	assert.Equal(t, 1080, img.Bounds().Dy())
}

func TestExportAction_PDF(t *testing.T) {
	h, _ := newTestHandler(t)
	_, batch, _ := createBatch(t, h)

	rec := do(t, h, "POST", "/api/v1/slogans/"+batch.ID+".slogan-1/export", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestExportAction_Errors(t *testing.T) {
	h, _ := newTestHandler(t)
	_, batch, _ := createBatch(t, h)
	base := "/api/v1/slogans/" + batch.ID + ".slogan-1/export"

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"unknown kind", base + "?kind=gif", "", http.StatusBadRequest},
		{"invalid style", base + "?kind=png", `{"style":{"size":500}}`, http.StatusBadRequest},
		{"bad base64", base + "?kind=png", `{"logo":"%%%"}`, http.StatusBadRequest},
		{"not an image", base + "?kind=png", `{"logo":"aGVsbG8="}`, http.StatusBadRequest},
		{"unknown slogan", "/api/v1/slogans/" + batch.ID + ".nope/export?kind=txt", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, "POST", tt.path, tt.body, "")
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Equal(t, jsonAPIType, rec.Header().Get("Content-Type"))
		})
	}
}

func TestRateLimit(t *testing.T) {
	st := newTestStore(t)
	h := SetupAPI(APIConfig{
		Store:   st,
		Limiter: middleware.NewRateLimiter(middleware.RateLimitConfig{RequestsPerSecond: 0.01, Burst: 2}),
	})

	body := `{"company_name":"Acme","industry":"Tech","keywords":["a"]}`
	for i := 0; i < 2; i++ {
		rec := do(t, h, "POST", "/api/v1/generate", body, "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := do(t, h, "POST", "/api/v1/generate", body, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	rec = do(t, h, "POST", "/api/v1/batches", createBatchBody, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Reads are not limited.
	rec = do(t, h, "GET", "/api/v1/batches", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

// =============================================================================
// OpenAPI and Site Tests
// =============================================================================

func TestOpenAPI(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, "GET", "/openapi.json", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	for _, p := range []string{
		"/api/v1/batches",
		"/api/v1/batches/{id}",
		"/api/v1/slogans",
		"/api/v1/slogans/{id}",
		"/api/v1/generate",
		"/api/v1/slogans/{id}/export",
	} {
		assert.Contains(t, doc.Paths, p)
	}

	rec = do(t, h, "GET", "/openapi.yaml", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "title: SloganForge API")
}

func TestSite_CatchAll(t *testing.T) {
	st := newTestStore(t)
	var sawSession bool
	site := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawSession = middleware.SessionFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})
	h := SetupAPI(APIConfig{Store: st, Site: site})

	rec := do(t, h, "GET", "/", "", "")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.True(t, sawSession)

	rec = do(t, h, "GET", "/static/site.css", "", "")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.False(t, sawSession)
	assert.Empty(t, rec.Header().Get(middleware.HeaderSessionID))
}

func TestSite_DefaultNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, "GET", "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, jsonAPIType, rec.Header().Get("Content-Type"))
}

func TestRecovery(t *testing.T) {
	st := newTestStore(t)
	site := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	h := SetupAPI(APIConfig{Store: st, Site: site})

	rec := do(t, h, "GET", "/", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")
}

func TestParseStatus(t *testing.T) {
	assert.Equal(t, 404, parseStatus("404"))
	assert.Equal(t, 500, parseStatus(""))
	assert.Equal(t, 500, parseStatus("abc"))
}

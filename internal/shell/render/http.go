package render

import (
	"mime"
	"net/http"
	"strconv"
)

// Dispositions accepted by Serve.
const (
	Attachment = "attachment"
	Inline     = "inline"
)

// Serve writes the artifact as an HTTP response. A request whose
// If-None-Match matches the ETag gets 304 with no body.
func (a *Artifact) Serve(w http.ResponseWriter, r *http.Request, disposition string) {
	h := w.Header()
	h.Set("Content-Type", a.ContentType)
	h.Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": a.Filename}))
	h.Set("ETag", a.ETag)
	h.Set("Cache-Control", "private, no-cache")

	if match := r.Header.Get("If-None-Match"); match != "" && match == a.ETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	h.Set("Content-Length", strconv.Itoa(len(a.Body)))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		w.Write(a.Body)
	}
}

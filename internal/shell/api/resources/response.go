// Package resources provides the JSON:API resources of the SloganForge API.
package resources

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/manyminds/api2go"

	"github.com/artpar/sloganforge/internal/shell/store"
)

// =============================================================================
// Response Helper
// =============================================================================

// Response implements api2go.Responder for custom responses.
type Response struct {
	Code int
	Res  interface{}
	Meta map[string]interface{}
}

// Metadata returns additional metadata for the response.
func (r *Response) Metadata() map[string]interface{} {
	return r.Meta
}

// Result returns the response data.
func (r *Response) Result() interface{} {
	return r.Res
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int {
	return r.Code
}

// =============================================================================
// Helper Functions
// =============================================================================

func notFound(entity string) (api2go.Responder, error) {
	msg := entity + " not found"
	return &Response{Code: http.StatusNotFound}, api2go.NewHTTPError(
		fmt.Errorf("%s", msg),
		capitalize(msg),
		http.StatusNotFound,
	)
}

func badRequest(msg string) (api2go.Responder, error) {
	return &Response{Code: http.StatusBadRequest}, api2go.NewHTTPError(
		fmt.Errorf("%s", msg),
		msg,
		http.StatusBadRequest,
	)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// listOptions parses page[size], page[offset] and page[number].
func listOptions(params map[string][]string) store.ListOptions {
	opts := store.DefaultListOptions()

	if limit, ok := params["page[size]"]; ok && len(limit) > 0 {
		if l, err := strconv.Atoi(limit[0]); err == nil {
			opts.Limit = l
		}
	}
	if offset, ok := params["page[offset]"]; ok && len(offset) > 0 {
		if o, err := strconv.Atoi(offset[0]); err == nil {
			opts.Offset = o
		}
	}
	if pageNum, ok := params["page[number]"]; ok && len(pageNum) > 0 {
		if pn, err := strconv.Atoi(pageNum[0]); err == nil && pn > 0 {
			opts.Offset = (pn - 1) * opts.Normalize().Limit
		}
	}

	return opts.Normalize()
}

func queryParam(params map[string][]string, key string) string {
	if v, ok := params[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

package resources

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/manyminds/api2go"
	"github.com/manyminds/api2go/jsonapi"

	"github.com/artpar/sloganforge/internal/core/domain"
	"github.com/artpar/sloganforge/internal/shell/api/middleware"
	"github.com/artpar/sloganforge/internal/shell/generator"
	"github.com/artpar/sloganforge/internal/shell/input"
	"github.com/artpar/sloganforge/internal/shell/store"
)

// =============================================================================
// Batch JSON:API Model
// =============================================================================

// Batch wraps domain.Batch to implement JSON:API interfaces.
// Its slogans are exposed as a to-many relationship and included in
// compound documents.
type Batch struct {
	ID          string    `json:"-"`
	CompanyName string    `json:"company_name"`
	Industry    string    `json:"industry"`
	Keywords    []string  `json:"keywords"`
	Tone        string    `json:"tone"`
	SloganCount int       `json:"slogan_count"`
	CreatedAt   time.Time `json:"created_at"`

	slogans []Slogan
}

// GetID returns the batch ID for JSON:API.
func (b Batch) GetID() string {
	return b.ID
}

// SetID sets the batch ID for JSON:API.
func (b *Batch) SetID(id string) error {
	b.ID = id
	return nil
}

// GetName returns the JSON:API resource type name.
func (b Batch) GetName() string {
	return "batches"
}

// GetReferences returns the relationships this resource has.
func (b Batch) GetReferences() []jsonapi.Reference {
	return []jsonapi.Reference{
		{
			Type:         "slogans",
			Name:         "slogans",
			Relationship: jsonapi.ToManyRelationship,
		},
	}
}

// GetReferencedIDs returns IDs of the batch's slogans.
func (b Batch) GetReferencedIDs() []jsonapi.ReferenceID {
	ids := make([]jsonapi.ReferenceID, 0, len(b.slogans))
	for _, s := range b.slogans {
		ids = append(ids, jsonapi.ReferenceID{
			ID:           s.ID,
			Type:         "slogans",
			Name:         "slogans",
			Relationship: jsonapi.ToManyRelationship,
		})
	}
	return ids
}

// GetReferencedStructs returns the slogans for compound documents.
func (b Batch) GetReferencedStructs() []jsonapi.MarshalIdentifier {
	out := make([]jsonapi.MarshalIdentifier, 0, len(b.slogans))
	for _, s := range b.slogans {
		out = append(out, s)
	}
	return out
}

// BatchFromDomain converts a domain.Batch to a JSON:API Batch.
func BatchFromDomain(b *domain.Batch) Batch {
	slogans := make([]Slogan, 0, len(b.Slogans))
	for _, s := range b.Slogans {
		slogans = append(slogans, SloganFromDomain(b.ID, s))
	}
	return Batch{
		ID:          b.ID,
		CompanyName: b.Request.CompanyName,
		Industry:    b.Request.Industry,
		Keywords:    b.Request.Keywords,
		Tone:        string(b.Request.Tone),
		SloganCount: len(b.Slogans),
		CreatedAt:   b.CreatedAt,
		slogans:     slogans,
	}
}

// =============================================================================
// BatchResource - CRUD Operations
// =============================================================================

// BatchResource implements the api2go resource interface for batches.
type BatchResource struct {
	Store     store.Store
	Generator *generator.Generator
}

// NewBatchResource creates a new batch resource handler.
func NewBatchResource(s store.Store, g *generator.Generator) *BatchResource {
	return &BatchResource{Store: s, Generator: g}
}

// FindAll returns the caller's current batch, if any.
// GET /api/v1/batches
func (r BatchResource) FindAll(req api2go.Request) (api2go.Responder, error) {
	ctx := req.PlainRequest.Context()

	result := make([]Batch, 0, 1)
	if session, ok := middleware.SessionFromContext(ctx); ok {
		batch, err := r.Store.GetSessionBatch(ctx, session.ID)
		switch {
		case err == nil:
			result = append(result, BatchFromDomain(batch))
		case !store.IsNotFound(err):
			return &Response{Code: http.StatusInternalServerError}, err
		}
	}

	return &Response{
		Code: http.StatusOK,
		Res:  result,
		Meta: map[string]interface{}{
			"total": len(result),
		},
	}, nil
}

// FindOne returns a single batch by ID.
// GET /api/v1/batches/{id}
func (r BatchResource) FindOne(id string, req api2go.Request) (api2go.Responder, error) {
	ctx := req.PlainRequest.Context()

	batch, err := r.Store.GetBatch(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return notFound("batch")
		}
		return &Response{Code: http.StatusInternalServerError}, err
	}

	return &Response{
		Code: http.StatusOK,
		Res:  BatchFromDomain(batch),
	}, nil
}

// Create generates a batch for the caller's session, replacing the previous one.
// POST /api/v1/batches
func (r BatchResource) Create(obj interface{}, req api2go.Request) (api2go.Responder, error) {
	ctx := req.PlainRequest.Context()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		return &Response{Code: http.StatusInternalServerError}, api2go.NewHTTPError(
			fmt.Errorf("request has no session"),
			"Session unavailable",
			http.StatusInternalServerError,
		)
	}

	b, ok := obj.(Batch)
	if !ok {
		return badRequest("Invalid request body")
	}

	batch, err := r.Generator.Generate(ctx, session.ID, generator.Input{
		CompanyName: b.CompanyName,
		Industry:    b.Industry,
		Keywords:    b.Keywords,
		Tone:        b.Tone,
	})
	if err != nil {
		var fieldErr *input.FieldError
		if errors.As(err, &fieldErr) {
			return badRequest(fieldErr.Message)
		}
		return &Response{Code: http.StatusInternalServerError}, err
	}

	return &Response{
		Code: http.StatusCreated,
		Res:  BatchFromDomain(batch),
	}, nil
}

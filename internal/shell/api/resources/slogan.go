package resources

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/manyminds/api2go"
	"github.com/manyminds/api2go/jsonapi"

	"github.com/artpar/sloganforge/internal/core/domain"
	"github.com/artpar/sloganforge/internal/core/slogan"
	"github.com/artpar/sloganforge/internal/core/validation"
	"github.com/artpar/sloganforge/internal/shell/api/middleware"
	"github.com/artpar/sloganforge/internal/shell/store"
)

// =============================================================================
// Slogan JSON:API Model
// =============================================================================

// Slogan is one generated slogan. Its ID is "{batchID}.{sloganID}".
type Slogan struct {
	ID      string `json:"-"`
	BatchID string `json:"batch_id"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	Length  string `json:"length"`
}

// GetID returns the slogan ID for JSON:API.
func (s Slogan) GetID() string {
	return s.ID
}

// SetID sets the slogan ID for JSON:API.
func (s *Slogan) SetID(id string) error {
	s.ID = id
	return nil
}

// GetName returns the JSON:API resource type name.
func (s Slogan) GetName() string {
	return "slogans"
}

// GetReferences returns the relationships this resource has.
func (s Slogan) GetReferences() []jsonapi.Reference {
	return []jsonapi.Reference{
		{
			Type:         "batches",
			Name:         "batch",
			Relationship: jsonapi.ToOneRelationship,
		},
	}
}

// GetReferencedIDs returns the owning batch.
func (s Slogan) GetReferencedIDs() []jsonapi.ReferenceID {
	return []jsonapi.ReferenceID{
		{
			ID:           s.BatchID,
			Type:         "batches",
			Name:         "batch",
			Relationship: jsonapi.ToOneRelationship,
		},
	}
}

// SloganFromDomain converts a slogan of batchID to a JSON:API Slogan.
func SloganFromDomain(batchID string, s slogan.Slogan) Slogan {
	return Slogan{
		ID:      domain.SloganKey(batchID, s.ID),
		BatchID: batchID,
		Text:    s.Text,
		Rating:  s.Rating,
		Length:  string(slogan.LengthOf(s.Text)),
	}
}

// =============================================================================
// SloganResource - CRUD Operations
// =============================================================================

// SloganResource implements the api2go resource interface for slogans.
type SloganResource struct {
	Store store.Store
}

// NewSloganResource creates a new slogan resource handler.
func NewSloganResource(s store.Store) *SloganResource {
	return &SloganResource{Store: s}
}

// FindAll returns the slogans of a batch.
// GET /api/v1/slogans?filter[batch]={id}&filter[length]={all|short|medium|long}
// GET /api/v1/batches/{id}/slogans
// Without a batch the caller's current batch is used.
func (r SloganResource) FindAll(req api2go.Request) (api2go.Responder, error) {
	ctx := req.PlainRequest.Context()
	opts := listOptions(req.QueryParams)

	length, err := slogan.ParseLength(queryParam(req.QueryParams, "filter[length]"))
	if err != nil {
		return badRequest(err.Error())
	}

	batchID := queryParam(req.QueryParams, "filter[batch]")
	if batchID == "" {
		// Set by api2go on the batch's related-resource route.
		batchID = queryParam(req.QueryParams, "batchesID")
	}
	if batchID == "" {
		session, ok := middleware.SessionFromContext(ctx)
		if !ok {
			return emptySlogans(opts), nil
		}
		batch, err := r.Store.GetSessionBatch(ctx, session.ID)
		if err != nil {
			if store.IsNotFound(err) {
				return emptySlogans(opts), nil
			}
			return &Response{Code: http.StatusInternalServerError}, err
		}
		batchID = batch.ID
	}

	// Batches are small; filter first so paging applies to the filtered list.
	all, err := r.Store.ListSlogans(ctx, batchID, store.ListOptions{Limit: 1000})
	if err != nil {
		if store.IsNotFound(err) {
			return notFound("batch")
		}
		return &Response{Code: http.StatusInternalServerError}, err
	}
	filtered := slogan.FilterByLength(all, length)

	result := make([]Slogan, 0, len(filtered))
	for _, s := range page(filtered, opts) {
		result = append(result, SloganFromDomain(batchID, s))
	}

	return &Response{
		Code: http.StatusOK,
		Res:  result,
		Meta: map[string]interface{}{
			"total":  len(filtered),
			"limit":  opts.Limit,
			"offset": opts.Offset,
		},
	}, nil
}

// FindOne returns a single slogan.
// GET /api/v1/slogans/{batchID}.{sloganID}
func (r SloganResource) FindOne(id string, req api2go.Request) (api2go.Responder, error) {
	ctx := req.PlainRequest.Context()

	s, err := FindSlogan(ctx, r.Store, id)
	if err != nil {
		if IsSloganNotFound(err) {
			return notFound("slogan")
		}
		return &Response{Code: http.StatusInternalServerError}, err
	}

	return &Response{
		Code: http.StatusOK,
		Res:  s,
	}, nil
}

// Update sets the rating of a slogan. Other attributes are read-only.
// PATCH /api/v1/slogans/{id}
func (r SloganResource) Update(obj interface{}, req api2go.Request) (api2go.Responder, error) {
	ctx := req.PlainRequest.Context()

	s, ok := obj.(Slogan)
	if !ok {
		return badRequest("Invalid request body")
	}

	if _, msg := validation.ValidateRating(s.Rating); msg != "" {
		return badRequest(msg)
	}

	batchID, sloganID, err := domain.ParseSloganKey(s.ID)
	if err != nil {
		return notFound("slogan")
	}

	if err := r.Store.RateSlogan(ctx, batchID, sloganID, s.Rating); err != nil {
		if store.IsNotFound(err) {
			return notFound("slogan")
		}
		return &Response{Code: http.StatusInternalServerError}, fmt.Errorf("rate slogan: %w", err)
	}

	updated, err := FindSlogan(ctx, r.Store, s.ID)
	if err != nil {
		return &Response{Code: http.StatusInternalServerError}, err
	}

	return &Response{
		Code: http.StatusOK,
		Res:  updated,
	}, nil
}

// =============================================================================
// Helpers
// =============================================================================

// BatchGetter loads batches by ID.
type BatchGetter interface {
	GetBatch(ctx context.Context, id string) (*domain.Batch, error)
}

// FindSlogan resolves a "{batchID}.{sloganID}" key against the store.
func FindSlogan(ctx context.Context, st BatchGetter, key string) (Slogan, error) {
	batchID, sloganID, err := domain.ParseSloganKey(key)
	if err != nil {
		return Slogan{}, err
	}
	batch, err := st.GetBatch(ctx, batchID)
	if err != nil {
		return Slogan{}, err
	}
	s, ok := batch.Find(sloganID)
	if !ok {
		return Slogan{}, domain.ErrSloganNotFound
	}
	return SloganFromDomain(batchID, s), nil
}

// IsSloganNotFound reports whether err from FindSlogan means the slogan does
// not exist.
func IsSloganNotFound(err error) bool {
	return errors.Is(err, domain.ErrInvalidSloganKey) ||
		errors.Is(err, domain.ErrSloganNotFound) ||
		store.IsNotFound(err)
}

func emptySlogans(opts store.ListOptions) *Response {
	return &Response{
		Code: http.StatusOK,
		Res:  []Slogan{},
		Meta: map[string]interface{}{
			"total":  0,
			"limit":  opts.Limit,
			"offset": opts.Offset,
		},
	}
}

func page(slogans []slogan.Slogan, opts store.ListOptions) []slogan.Slogan {
	if opts.Offset >= len(slogans) {
		return nil
	}
	end := opts.Offset + opts.Limit
	if end > len(slogans) {
		end = len(slogans)
	}
	return slogans[opts.Offset:end]
}

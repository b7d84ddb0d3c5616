package store

import (
	"context"
	"strings"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/georgemunganga/storefront-admin/internal/platform/metrics"
	"github.com/google/uuid"
)

// Service defines store business logic.
type Service interface {
	Guard

	// Create provisions a store for userID together with its default landing and theme.
	Create(ctx context.Context, userID string, req StoreRequest) (*Store, error)

	// List returns the stores owned by userID.
	List(ctx context.Context, userID string) ([]*Store, error)

	// Update renames a store the caller owns.
	Update(ctx context.Context, userID, storeID string, req StoreRequest) (*Store, error)

	// Delete removes a store the caller owns. Stores that still have
	// billboards, categories, products or orders cannot be deleted.
	Delete(ctx context.Context, userID, storeID string) (*Store, error)
}

// Guard is the part of the store service the resource modules depend on.
type Guard interface {
	// Get returns the store, or a not-found error for unknown or malformed ids.
	Get(ctx context.Context, storeID string) (*Store, error)

	// Authorize returns the store when userID owns it.
	Authorize(ctx context.Context, storeID, userID string) (*Store, error)
}

// StoreRequest is the body of store create and rename requests.
type StoreRequest struct {
	Name string `json:"name"`
}

// Validate trims the name and checks it is present.
func (r *StoreRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return apperr.Required("name")
	}
	return nil
}

type service struct{ repo Repository }

// NewService creates a new store service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, userID string, req StoreRequest) (*Store, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	st := &Store{
		ID:     uuid.New(),
		Name:   req.Name,
		UserID: userID,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		metrics.RecordProvisioning(false)
		return nil, err
	}
	metrics.RecordProvisioning(true)
	return st, nil
}

func (s *service) List(ctx context.Context, userID string) ([]*Store, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, storeID string) (*Store, error) {
	id, err := ParseID(storeID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Authorize(ctx context.Context, storeID, userID string) (*Store, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	st, err := s.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if st.UserID != userID {
		return nil, apperr.Forbidden()
	}
	return st, nil
}

func (s *service) Update(ctx context.Context, userID, storeID string, req StoreRequest) (*Store, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	st, err := s.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	st.Name = req.Name
	if err := s.repo.UpdateName(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *service) Delete(ctx context.Context, userID, storeID string) (*Store, error) {
	st, err := s.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, st.ID); err != nil {
		if apperr.Is(err, apperr.KindConflict) {
			return nil, apperr.Wrap(apperr.KindConflict,
				"make sure you remove all products and categories first", err)
		}
		return nil, err
	}
	return st, nil
}

// ParseID parses a store id from a path parameter.
func ParseID(raw string) (uuid.UUID, error) { return database.ParseID(raw, "store") }

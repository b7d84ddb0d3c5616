package billboard

import (
	"context"

	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/google/uuid"
)

// Service defines billboard business logic.
type Service interface {
	Create(ctx context.Context, userID, storeID string, req BillboardRequest) (*Billboard, error)
	Get(ctx context.Context, storeID, billboardID string) (*Billboard, error)
	List(ctx context.Context, storeID string) ([]*Billboard, error)
	Update(ctx context.Context, userID, storeID, billboardID string, req BillboardRequest) (*Billboard, error)
	// Delete fails with a conflict while a category still uses the billboard.
	Delete(ctx context.Context, userID, storeID, billboardID string) (*Billboard, error)
}

type service struct {
	repo   Repository
	stores store.Guard
}

// NewService creates a new billboard service.
func NewService(repo Repository, stores store.Guard) Service {
	return &service{repo: repo, stores: stores}
}

func (s *service) Create(ctx context.Context, userID, storeID string, req BillboardRequest) (*Billboard, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	b := &Billboard{ID: uuid.New(), StoreID: st.ID, Label: req.Label, ImageURL: req.ImageURL}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Get(ctx context.Context, storeID, billboardID string) (*Billboard, error) {
	id, err := database.ParseID(billboardID, "billboard")
	if err != nil {
		return nil, err
	}
	st, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, st.ID, id)
}

func (s *service) List(ctx context.Context, storeID string) ([]*Billboard, error) {
	st, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByStore(ctx, st.ID)
}

func (s *service) Update(ctx context.Context, userID, storeID, billboardID string, req BillboardRequest) (*Billboard, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	id, err := database.ParseID(billboardID, "billboard")
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	b := &Billboard{ID: id, StoreID: st.ID, Label: req.Label, ImageURL: req.ImageURL}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, userID, storeID, billboardID string) (*Billboard, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	id, err := database.ParseID(billboardID, "billboard")
	if err != nil {
		return nil, err
	}
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	b, err := s.repo.GetByID(ctx, st.ID, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, st.ID, id); err != nil {
		if apperr.Is(err, apperr.KindConflict) {
			return nil, apperr.Wrap(apperr.KindConflict,
				"make sure you remove all categories using this billboard first", err)
		}
		return nil, err
	}
	return b, nil
}

package theme

import (
	"context"

	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/google/uuid"
)

// Service defines theme business logic.
type Service interface {
	// Create adds a theme to an owned store that has none.
	Create(ctx context.Context, userID, storeID string, req ColorsRequest) (*ThemeColors, error)

	// List returns the store's theme rows, zero or one. It is public.
	List(ctx context.Context, storeID string) ([]*ThemeColors, error)

	// Update replaces the palette of an owned store's theme.
	Update(ctx context.Context, userID, storeID string, req ColorsRequest) (*ThemeColors, error)

	// Delete removes an owned store's theme.
	Delete(ctx context.Context, userID, storeID string) (*ThemeColors, error)
}

type service struct {
	repo   Repository
	stores store.Guard
}

// NewService creates a new theme service.
func NewService(repo Repository, stores store.Guard) Service {
	return &service{repo: repo, stores: stores}
}

// authorizeWrite checks identity, then the body, then store ownership.
func (s *service) authorizeWrite(ctx context.Context, userID, storeID string, req *ColorsRequest) (*store.Store, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.stores.Authorize(ctx, storeID, userID)
}

func (s *service) Create(ctx context.Context, userID, storeID string, req ColorsRequest) (*ThemeColors, error) {
	st, err := s.authorizeWrite(ctx, userID, storeID, &req)
	if err != nil {
		return nil, err
	}
	t := &ThemeColors{ID: uuid.New(), StoreID: st.ID}
	t.apply(req)
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) List(ctx context.Context, storeID string) ([]*ThemeColors, error) {
	st, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByStore(ctx, st.ID)
}

func (s *service) Update(ctx context.Context, userID, storeID string, req ColorsRequest) (*ThemeColors, error) {
	st, err := s.authorizeWrite(ctx, userID, storeID, &req)
	if err != nil {
		return nil, err
	}
	t, err := s.repo.GetByStore(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	t.apply(req)
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, userID, storeID string) (*ThemeColors, error) {
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	t, err := s.repo.GetByStore(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, t.ID, st.ID); err != nil {
		return nil, err
	}
	return t, nil
}

package landing

import (
	"context"
	"strings"

	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
)

// Service defines landing page business logic.
type Service interface {
	// Create adds the placeholder landing to a store the caller owns.
	Create(ctx context.Context, userID, storeID string) (*Landing, error)

	// Get returns a store's landing. It is public.
	Get(ctx context.Context, storeID string) (*Landing, error)

	// Update replaces the three titles of an owned store's landing.
	Update(ctx context.Context, userID, storeID string, req UpdateRequest) (*Landing, error)
}

// UpdateRequest is the body of a landing PATCH. All titles are required.
type UpdateRequest struct {
	DecodeTitle string `json:"decodeTitle"`
	MainTitle   string `json:"mainTitle"`
	SecondTitle string `json:"secondTitle"`
}

// Validate reports the first blank title. Titles are stored as submitted.
func (r *UpdateRequest) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"decodeTitle", r.DecodeTitle},
		{"mainTitle", r.MainTitle},
		{"secondTitle", r.SecondTitle},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperr.Required(f.name)
		}
	}
	return nil
}

type service struct {
	repo   Repository
	stores store.Guard
}

// NewService creates a new landing service.
func NewService(repo Repository, stores store.Guard) Service {
	return &service{repo: repo, stores: stores}
}

func (s *service) Create(ctx context.Context, userID, storeID string) (*Landing, error) {
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	l := Default(st.ID)
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) Get(ctx context.Context, storeID string) (*Landing, error) {
	st, err := s.stores.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByStore(ctx, st.ID)
}

func (s *service) Update(ctx context.Context, userID, storeID string, req UpdateRequest) (*Landing, error) {
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
	l := &Landing{
		StoreID:     st.ID,
		DecodeTitle: req.DecodeTitle,
		MainTitle:   req.MainTitle,
		SecondTitle: req.SecondTitle,
	}
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

package order

import (
	"context"

	"github.com/georgemunganga/storefront-admin/internal/modules/store"
)

// Service defines the order management business logic.
type Service interface {
	// List returns the orders of a store the caller owns.
	List(ctx context.Context, userID, storeID string) ([]*Order, error)

	// DeleteAll removes every order of a store the caller owns.
	DeleteAll(ctx context.Context, userID, storeID string) (*DeleteResult, error)
}

type service struct {
	repo   Repository
	stores store.Guard
}

// NewService creates a new order service.
func NewService(repo Repository, stores store.Guard) Service {
	return &service{repo: repo, stores: stores}
}

func (s *service) List(ctx context.Context, userID, storeID string) ([]*Order, error) {
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByStore(ctx, st.ID)
}

func (s *service) DeleteAll(ctx context.Context, userID, storeID string) (*DeleteResult, error) {
	st, err := s.stores.Authorize(ctx, storeID, userID)
	if err != nil {
		return nil, err
	}
	n, err := s.repo.DeleteByStore(ctx, st.ID)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{Count: n}, nil
}

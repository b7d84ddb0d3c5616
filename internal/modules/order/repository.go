package order

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for orders.
type Repository interface {
	// ListByStore returns the store's orders with their items, newest first.
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*Order, error)

	// DeleteByStore removes every order of the store and reports how many were removed.
	DeleteByStore(ctx context.Context, storeID uuid.UUID) (int64, error)
}

package billboard

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines billboard data storage. Every lookup is scoped to a store.
type Repository interface {
	Create(ctx context.Context, b *Billboard) error
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*Billboard, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*Billboard, error)
	Update(ctx context.Context, b *Billboard) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}

package category

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines category data storage. Reads include the billboard label.
type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*Category, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error
}

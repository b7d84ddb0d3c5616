package product

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, storeID, id uuid.UUID) (*Product, error)
	List(ctx context.Context, storeID uuid.UUID, f ListFilter) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, storeID, id uuid.UUID) error

	// CategoryInStore reports whether categoryID exists in storeID.
	CategoryInStore(ctx context.Context, storeID, categoryID uuid.UUID) (bool, error)
}

package theme

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines theme data storage.
type Repository interface {
	Create(ctx context.Context, t *ThemeColors) error
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*ThemeColors, error)
	// GetByStore returns the store's single theme row or a not-found error.
	GetByStore(ctx context.Context, storeID uuid.UUID) (*ThemeColors, error)
	Update(ctx context.Context, t *ThemeColors) error
	Delete(ctx context.Context, id, storeID uuid.UUID) error

	// SeedStore inserts the default theme for a new store inside tx.
	SeedStore(ctx context.Context, tx sqlx.ExecerContext, storeID uuid.UUID) error
}

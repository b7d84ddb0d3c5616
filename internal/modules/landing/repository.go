package landing

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines landing data storage.
type Repository interface {
	Create(ctx context.Context, l *Landing) error
	GetByStore(ctx context.Context, storeID uuid.UUID) (*Landing, error)
	Update(ctx context.Context, l *Landing) error

	// SeedStore inserts the placeholder landing for a new store inside tx.
	SeedStore(ctx context.Context, tx sqlx.ExecerContext, storeID uuid.UUID) error
}

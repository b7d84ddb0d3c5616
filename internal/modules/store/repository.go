package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines store data storage.
type Repository interface {
	// Create inserts the store and runs every Seeder in the same transaction.
	Create(ctx context.Context, s *Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*Store, error)
	ListByUser(ctx context.Context, userID string) ([]*Store, error)
	UpdateName(ctx context.Context, s *Store) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Seeder writes a record every new store starts with. It runs inside the
// provisioning transaction, so a failure rolls back the store as well.
type Seeder interface {
	SeedStore(ctx context.Context, tx sqlx.ExecerContext, storeID uuid.UUID) error
}

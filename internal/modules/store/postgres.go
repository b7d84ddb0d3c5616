package store

import (
	"context"
	"fmt"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const storeColumns = `id, name, user_id, created_at, updated_at`

type postgresRepo struct {
	db      *sqlx.DB
	seeders []Seeder
}

// NewPostgresRepository creates a store repository. seeders run, in order,
// after every store insert.
func NewPostgresRepository(db *sqlx.DB, seeders ...Seeder) Repository {
	return &postgresRepo{db: db, seeders: seeders}
}

func (r *postgresRepo) Create(ctx context.Context, s *Store) error {
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO stores (id, name, user_id)
			VALUES ($1, $2, $3)
			RETURNING created_at, updated_at`,
			s.ID, s.Name, s.UserID).Scan(&s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert store: %w", err)
		}
		for _, seed := range r.seeders {
			if err := seed.SeedStore(ctx, tx, s.ID); err != nil {
				return err
			}
		}
		return nil
	})
	return database.Translate(err, "store")
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	s := &Store{}
	err := r.db.GetContext(ctx, s, `SELECT `+storeColumns+` FROM stores WHERE id=$1`, id)
	if err != nil {
		return nil, database.Translate(err, "store")
	}
	return s, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]*Store, error) {
	stores := []*Store{}
	err := r.db.SelectContext(ctx, &stores, `
		SELECT `+storeColumns+` FROM stores
		WHERE user_id=$1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, database.Translate(err, "store")
	}
	return stores, nil
}

func (r *postgresRepo) UpdateName(ctx context.Context, s *Store) error {
	err := r.db.QueryRowxContext(ctx, `
		UPDATE stores SET name=$1, updated_at=NOW()
		WHERE id=$2
		RETURNING updated_at`, s.Name, s.ID).Scan(&s.UpdatedAt)
	return database.Translate(err, "store")
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id=$1`, id)
	if err != nil {
		return database.Translate(err, "store")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("store")
	}
	return nil
}

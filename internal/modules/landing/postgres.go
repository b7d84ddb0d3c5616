package landing

import (
	"context"
	"fmt"

	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const landingColumns = `id, store_id, decode_title, main_title, second_title, created_at, updated_at`

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, l *Landing) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO landings (id, store_id, decode_title, main_title, second_title)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		l.ID, l.StoreID, l.DecodeTitle, l.MainTitle, l.SecondTitle).Scan(&l.CreatedAt, &l.UpdatedAt)
	return database.Translate(err, "landing")
}

func (r *postgresRepo) SeedStore(ctx context.Context, tx sqlx.ExecerContext, storeID uuid.UUID) error {
	l := Default(storeID)
	_, err := tx.ExecContext(ctx, `
		INSERT INTO landings (id, store_id, decode_title, main_title, second_title)
		VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.StoreID, l.DecodeTitle, l.MainTitle, l.SecondTitle)
	if err != nil {
		return fmt.Errorf("insert default landing: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetByStore(ctx context.Context, storeID uuid.UUID) (*Landing, error) {
	l := &Landing{}
	err := r.db.GetContext(ctx, l, `SELECT `+landingColumns+` FROM landings WHERE store_id=$1`, storeID)
	if err != nil {
		return nil, database.Translate(err, "landing")
	}
	return l, nil
}

func (r *postgresRepo) Update(ctx context.Context, l *Landing) error {
	err := r.db.QueryRowxContext(ctx, `
		UPDATE landings
		SET decode_title=$1, main_title=$2, second_title=$3, updated_at=NOW()
		WHERE store_id=$4
		RETURNING id, created_at, updated_at`,
		l.DecodeTitle, l.MainTitle, l.SecondTitle, l.StoreID).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	return database.Translate(err, "landing")
}

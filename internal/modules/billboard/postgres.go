package billboard

import (
	"context"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const billboardColumns = `id, store_id, label, image_url, created_at, updated_at`

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, b *Billboard) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO billboards (id, store_id, label, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		b.ID, b.StoreID, b.Label, b.ImageURL).Scan(&b.CreatedAt, &b.UpdatedAt)
	return database.Translate(err, "billboard")
}

func (r *postgresRepo) GetByID(ctx context.Context, storeID, id uuid.UUID) (*Billboard, error) {
	b := &Billboard{}
	err := r.db.GetContext(ctx, b, `
		SELECT `+billboardColumns+` FROM billboards
		WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return nil, database.Translate(err, "billboard")
	}
	return b, nil
}

func (r *postgresRepo) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*Billboard, error) {
	billboards := []*Billboard{}
	err := r.db.SelectContext(ctx, &billboards, `
		SELECT `+billboardColumns+` FROM billboards
		WHERE store_id=$1 ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, database.Translate(err, "billboard")
	}
	return billboards, nil
}

func (r *postgresRepo) Update(ctx context.Context, b *Billboard) error {
	err := r.db.QueryRowxContext(ctx, `
		UPDATE billboards SET label=$1, image_url=$2, updated_at=NOW()
		WHERE id=$3 AND store_id=$4
		RETURNING created_at, updated_at`,
		b.Label, b.ImageURL, b.ID, b.StoreID).Scan(&b.CreatedAt, &b.UpdatedAt)
	return database.Translate(err, "billboard")
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM billboards WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return database.Translate(err, "billboard")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("billboard")
	}
	return nil
}

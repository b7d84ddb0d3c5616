package category

import (
	"context"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const selectCategory = `
	SELECT c.id, c.store_id, c.billboard_id, b.label AS billboard_label,
	       c.name, c.page_type, c.created_at, c.updated_at
	FROM categories c
	JOIN billboards b ON b.id = c.billboard_id`

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, c *Category) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO categories (id, store_id, billboard_id, name, page_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		c.ID, c.StoreID, c.BillboardID, c.Name, c.PageType).Scan(&c.CreatedAt, &c.UpdatedAt)
	return database.Translate(err, "category")
}

func (r *postgresRepo) GetByID(ctx context.Context, storeID, id uuid.UUID) (*Category, error) {
	c := &Category{}
	err := r.db.GetContext(ctx, c, selectCategory+` WHERE c.id=$1 AND c.store_id=$2`, id, storeID)
	if err != nil {
		return nil, database.Translate(err, "category")
	}
	return c, nil
}

func (r *postgresRepo) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*Category, error) {
	categories := []*Category{}
	err := r.db.SelectContext(ctx, &categories,
		selectCategory+` WHERE c.store_id=$1 ORDER BY c.created_at DESC`, storeID)
	if err != nil {
		return nil, database.Translate(err, "category")
	}
	return categories, nil
}

func (r *postgresRepo) Update(ctx context.Context, c *Category) error {
	err := r.db.QueryRowxContext(ctx, `
		UPDATE categories SET name=$1, billboard_id=$2, page_type=$3, updated_at=NOW()
		WHERE id=$4 AND store_id=$5
		RETURNING created_at, updated_at`,
		c.Name, c.BillboardID, c.PageType, c.ID, c.StoreID).Scan(&c.CreatedAt, &c.UpdatedAt)
	return database.Translate(err, "category")
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return database.Translate(err, "category")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("category")
	}
	return nil
}

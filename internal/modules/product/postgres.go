package product

import (
	"context"
	"fmt"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const productColumns = `id, store_id, category_id, name, price, is_featured, is_archived, created_at, updated_at`

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO products (id, store_id, category_id, name, price, is_featured, is_archived)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING created_at, updated_at`,
		p.ID, p.StoreID, p.CategoryID, p.Name, p.Price, p.IsFeatured, p.IsArchived).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	return database.Translate(err, "product")
}

func (r *postgresRepo) GetByID(ctx context.Context, storeID, id uuid.UUID) (*Product, error) {
	p := &Product{}
	err := r.db.GetContext(ctx, p, `SELECT `+productColumns+` FROM products WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return nil, database.Translate(err, "product")
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context, storeID uuid.UUID, f ListFilter) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id=$1 AND is_archived=false`
	args := []interface{}{storeID}
	n := 2
	if f.CategoryID != nil {
		query += fmt.Sprintf(` AND category_id=$%d`, n)
		args = append(args, *f.CategoryID)
		n++
	}
	if f.IsFeatured != nil {
		query += fmt.Sprintf(` AND is_featured=$%d`, n)
		args = append(args, *f.IsFeatured)
	}
	query += ` ORDER BY created_at DESC`

	products := []*Product{}
	if err := r.db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, database.Translate(err, "product")
	}
	return products, nil
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	err := r.db.QueryRowxContext(ctx, `
		UPDATE products
		SET name=$1, price=$2, category_id=$3, is_featured=$4, is_archived=$5, updated_at=NOW()
		WHERE id=$6 AND store_id=$7
		RETURNING created_at, updated_at`,
		p.Name, p.Price, p.CategoryID, p.IsFeatured, p.IsArchived, p.ID, p.StoreID).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	return database.Translate(err, "product")
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return database.Translate(err, "product")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("product")
	}
	return nil
}

func (r *postgresRepo) CategoryInStore(ctx context.Context, storeID, categoryID uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.GetContext(ctx, &ok,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id=$1 AND store_id=$2)`, categoryID, storeID)
	if err != nil {
		return false, database.Translate(err, "category")
	}
	return ok, nil
}

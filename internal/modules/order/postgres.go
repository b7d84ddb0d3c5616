package order

import (
	"context"

	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*Order, error) {
	orders := []*Order{}
	err := r.db.SelectContext(ctx, &orders, `
		SELECT id, store_id, is_paid, phone, address, created_at, updated_at
		FROM orders WHERE store_id=$1 ORDER BY created_at DESC`, storeID)
	if err != nil {
		return nil, database.Translate(err, "order")
	}
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	byID := make(map[uuid.UUID]*Order, len(orders))
	for i, o := range orders {
		ids[i] = o.ID.String()
		o.Items = []*OrderItem{}
		byID[o.ID] = o
	}

	var items []*OrderItem
	err = r.db.SelectContext(ctx, &items, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name AS product_name, p.price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1::uuid[])
		ORDER BY p.name ASC`, pq.Array(ids))
	if err != nil {
		return nil, database.Translate(err, "order")
	}
	for _, it := range items {
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	for _, o := range orders {
		o.total()
	}
	return orders, nil
}

// DeleteByStore relies on order_items cascading with their order.
func (r *postgresRepo) DeleteByStore(ctx context.Context, storeID uuid.UUID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE store_id=$1`, storeID)
	if err != nil {
		return 0, database.Translate(err, "order")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, database.Translate(err, "order")
	}
	return n, nil
}

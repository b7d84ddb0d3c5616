package theme

import (
	"context"
	"fmt"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/platform/database"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const themeColumns = `id, store_id, primary_color, yolo_color, border_color, input_color,
	ring_color, background_color, foreground_color, created_at, updated_at`

const insertTheme = `
	INSERT INTO theme_colors
	  (id, store_id, primary_color, yolo_color, border_color, input_color,
	   ring_color, background_color, foreground_color)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`

type postgresRepo struct{ db *sqlx.DB }

func NewPostgresRepository(db *sqlx.DB) Repository { return &postgresRepo{db: db} }

func insertArgs(t *ThemeColors) []interface{} {
	return []interface{}{
		t.ID, t.StoreID, t.PrimaryColor, t.YoloColor, t.BorderColor, t.InputColor,
		t.RingColor, t.BackgroundColor, t.ForegroundColor,
	}
}

func (r *postgresRepo) Create(ctx context.Context, t *ThemeColors) error {
	err := r.db.QueryRowxContext(ctx, insertTheme+` RETURNING created_at, updated_at`, insertArgs(t)...).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	return database.Translate(err, "theme")
}

func (r *postgresRepo) SeedStore(ctx context.Context, tx sqlx.ExecerContext, storeID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, insertTheme, insertArgs(Default(storeID))...); err != nil {
		return fmt.Errorf("insert default theme: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*ThemeColors, error) {
	themes := []*ThemeColors{}
	err := r.db.SelectContext(ctx, &themes, `SELECT `+themeColumns+` FROM theme_colors WHERE store_id=$1`, storeID)
	if err != nil {
		return nil, database.Translate(err, "theme")
	}
	return themes, nil
}

func (r *postgresRepo) GetByStore(ctx context.Context, storeID uuid.UUID) (*ThemeColors, error) {
	t := &ThemeColors{}
	err := r.db.GetContext(ctx, t, `SELECT `+themeColumns+` FROM theme_colors WHERE store_id=$1`, storeID)
	if err != nil {
		return nil, database.Translate(err, "theme")
	}
	return t, nil
}

func (r *postgresRepo) Update(ctx context.Context, t *ThemeColors) error {
	err := r.db.QueryRowxContext(ctx, `
		UPDATE theme_colors
		SET primary_color=$1, yolo_color=$2, border_color=$3, input_color=$4,
		    ring_color=$5, background_color=$6, foreground_color=$7, updated_at=NOW()
		WHERE id=$8 AND store_id=$9
		RETURNING updated_at`,
		t.PrimaryColor, t.YoloColor, t.BorderColor, t.InputColor,
		t.RingColor, t.BackgroundColor, t.ForegroundColor, t.ID, t.StoreID).Scan(&t.UpdatedAt)
	return database.Translate(err, "theme")
}

func (r *postgresRepo) Delete(ctx context.Context, id, storeID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM theme_colors WHERE id=$1 AND store_id=$2`, id, storeID)
	if err != nil {
		return database.Translate(err, "theme")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("theme")
	}
	return nil
}

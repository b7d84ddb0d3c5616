package theme

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/testutil"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresCreateUniqueViolation(t *testing.T) {
	db, mock := testutil.MockDB(t)
	mock.ExpectQuery("INSERT INTO theme_colors").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "theme_colors_store_id_key"})

	err := NewPostgresRepository(db).Create(context.Background(), Default(uuid.New()))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "theme already exists", apperr.Message(err))
}

func TestPostgresGetByStoreMissing(t *testing.T) {
	db, mock := testutil.MockDB(t)
	mock.ExpectQuery("SELECT (.+) FROM theme_colors WHERE store_id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewPostgresRepository(db).GetByStore(context.Background(), uuid.New())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPostgresListByStore(t *testing.T) {
	db, mock := testutil.MockDB(t)
	storeID := uuid.New()
	now := time.Now()
	cols := []string{"id", "store_id", "primary_color", "yolo_color", "border_color", "input_color",
		"ring_color", "background_color", "foreground_color", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT (.+) FROM theme_colors WHERE store_id").
		WithArgs(storeID).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(uuid.NewString(), storeID.String(),
			"#1", "#2", "#3", "#4", "#5", "#6", "#7", now, now))

	list, err := NewPostgresRepository(db).ListByStore(context.Background(), storeID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "#7", list[0].ForegroundColor)
}

func TestPostgresDeleteNoRows(t *testing.T) {
	db, mock := testutil.MockDB(t)
	mock.ExpectExec("DELETE FROM theme_colors").WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewPostgresRepository(db).Delete(context.Background(), uuid.New(), uuid.New())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

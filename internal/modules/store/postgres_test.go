package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/georgemunganga/storefront-admin/internal/modules/landing"
	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/modules/theme"
	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/georgemunganga/storefront-admin/internal/testutil"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisioningCommitsStoreLandingAndTheme(t *testing.T) {
	db, mock := testutil.MockDB(t)
	repo := store.NewPostgresRepository(db, landing.NewPostgresRepository(db), theme.NewPostgresRepository(db))
	st := &store.Store{ID: uuid.New(), Name: "Acme", UserID: "user_1"}
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO stores").
		WithArgs(st.ID, "Acme", "user_1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec("INSERT INTO landings").
		WithArgs(sqlmock.AnyArg(), st.ID, "Example", "Example", "Example").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO theme_colors").
		WithArgs(sqlmock.AnyArg(), st.ID, "#FFFFFF", "#FFFFFF", "#FFFFFF", "#FFFFFF", "#FFFFFF", "#FFFFFF", "#FFFFFF").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), st))
	assert.True(t, now.Equal(st.CreatedAt))
}

func TestProvisioningRollsBackWhenSeedFails(t *testing.T) {
	db, mock := testutil.MockDB(t)
	repo := store.NewPostgresRepository(db, landing.NewPostgresRepository(db), theme.NewPostgresRepository(db))
	st := &store.Store{ID: uuid.New(), Name: "Acme", UserID: "user_1"}
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO stores").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec("INSERT INTO landings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO theme_colors").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), st)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "insert default theme")
}

func TestDeleteReferencedStore(t *testing.T) {
	db, mock := testutil.MockDB(t)
	mock.ExpectExec("DELETE FROM stores").
		WillReturnError(&pq.Error{Code: "23503"})

	err := store.NewPostgresRepository(db).Delete(context.Background(), uuid.New())
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestDeleteMissingStore(t *testing.T) {
	db, mock := testutil.MockDB(t)
	mock.ExpectExec("DELETE FROM stores").WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.NewPostgresRepository(db).Delete(context.Background(), uuid.New())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

package store_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandlerProvisionAndRename(t *testing.T) {
	h := store.NewHandler(store.NewService(newMemRepo()), zap.NewNop())
	router := testutil.Router(func(r chi.Router) { h.RegisterRoutes(r) })

	rec := testutil.Do(t, router, http.MethodPost, "/api/stores", "user_1", map[string]string{"name": "Acme"})
	require.Equal(t, http.StatusOK, rec.Code)
	var created store.Store
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Acme", created.Name)
	assert.Equal(t, "user_1", created.UserID)

	path := "/api/stores/" + created.ID.String()
	rec = testutil.Do(t, router, http.MethodPatch, path, "user_1", map[string]string{"name": "Acme 2"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = testutil.Do(t, router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Acme 2"`)

	rec = testutil.Do(t, router, http.MethodGet, "/api/stores", "user_1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []store.Store
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec = testutil.Do(t, router, http.MethodDelete, path, "user_2", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Unauthorized", testutil.ErrorBody(t, rec))

	rec = testutil.Do(t, router, http.MethodDelete, path, "user_1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlerRejects(t *testing.T) {
	h := store.NewHandler(store.NewService(newMemRepo()), zap.NewNop())
	router := testutil.Router(func(r chi.Router) { h.RegisterRoutes(r) })

	rec := testutil.Do(t, router, http.MethodPost, "/api/stores", "", map[string]string{"name": "Acme"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = testutil.Do(t, router, http.MethodPost, "/api/stores", "user_1", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "name is required", testutil.ErrorBody(t, rec))
}

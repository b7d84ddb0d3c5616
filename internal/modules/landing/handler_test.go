package landing

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/georgemunganga/storefront-admin/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandler(t *testing.T) {
	guard, st := testutil.NewGuard()
	h := NewHandler(NewService(newMemRepo(), guard), zap.NewNop())
	router := testutil.Router(func(r chi.Router) { h.RegisterRoutes(r) })
	path := "/api/stores/" + st.ID.String() + "/landing"

	rec := testutil.Do(t, router, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = testutil.Do(t, router, http.MethodPost, path, testutil.Owner, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = testutil.Do(t, router, http.MethodPatch, path, testutil.Owner, map[string]string{
		"decodeTitle": "Drop 01", "mainTitle": "Winter", "secondTitle": "Out now",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = testutil.Do(t, router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got Landing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Winter", got.MainTitle)

	rec = testutil.Do(t, router, http.MethodPatch, path, testutil.Owner, map[string]string{"mainTitle": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "decodeTitle is required", testutil.ErrorBody(t, rec))

	rec = testutil.Do(t, router, http.MethodGet, "/api/stores/nope/landing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerPatchThenGetKeepsTitlesVerbatim(t *testing.T) {
	guard, st := testutil.NewGuard()
	repo := newMemRepo()
	require.NoError(t, repo.SeedStore(context.Background(), nil, st.ID))
	h := NewHandler(NewService(repo, guard), zap.NewNop())
	router := testutil.Router(func(r chi.Router) { h.RegisterRoutes(r) })
	path := "/api/stores/" + st.ID.String() + "/landing"

	sent := UpdateRequest{DecodeTitle: "  Drop 01", MainTitle: "Winter  ", SecondTitle: "Out\tnow\n"}
	rec := testutil.Do(t, router, http.MethodPatch, path, testutil.Owner, sent)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = testutil.Do(t, router, http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got Landing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, sent.DecodeTitle, got.DecodeTitle)
	assert.Equal(t, sent.MainTitle, got.MainTitle)
	assert.Equal(t, sent.SecondTitle, got.SecondTitle)
}

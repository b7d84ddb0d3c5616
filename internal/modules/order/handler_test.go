package order

import (
	"context"
	"net/http"
	"testing"

	"github.com/georgemunganga/storefront-admin/internal/testutil"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRepo struct {
	orders  map[uuid.UUID][]*Order
	deleted []uuid.UUID
}

func (f *fakeRepo) ListByStore(_ context.Context, storeID uuid.UUID) ([]*Order, error) {
	out := f.orders[storeID]
	if out == nil {
		out = []*Order{}
	}
	return out, nil
}

func (f *fakeRepo) DeleteByStore(_ context.Context, storeID uuid.UUID) (int64, error) {
	n := int64(len(f.orders[storeID]))
	delete(f.orders, storeID)
	f.deleted = append(f.deleted, storeID)
	return n, nil
}

func TestHandlerDeleteAll(t *testing.T) {
	guard, st := testutil.NewGuard()
	repo := &fakeRepo{orders: map[uuid.UUID][]*Order{
		st.ID: {{ID: uuid.New(), StoreID: st.ID}, {ID: uuid.New(), StoreID: st.ID}},
	}}
	h := NewHandler(NewService(repo, guard), zap.NewNop())
	router := testutil.Router(func(r chi.Router) { h.RegisterRoutes(r) })
	path := "/api/stores/" + st.ID.String() + "/orders"

	rec := testutil.Do(t, router, http.MethodDelete, path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthenticated", testutil.ErrorBody(t, rec))

	rec = testutil.Do(t, router, http.MethodDelete, path, "user_other", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, repo.deleted)

	rec = testutil.Do(t, router, http.MethodGet, path, testutil.Owner, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = testutil.Do(t, router, http.MethodDelete, path, testutil.Owner, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())

	rec = testutil.Do(t, router, http.MethodDelete, path, testutil.Owner, nil)
	assert.JSONEq(t, `{"count":0}`, rec.Body.String())
}

func TestHandlerUnknownStore(t *testing.T) {
	guard, _ := testutil.NewGuard()
	h := NewHandler(NewService(&fakeRepo{}, guard), zap.NewNop())
	router := testutil.Router(func(r chi.Router) { h.RegisterRoutes(r) })

	rec := testutil.Do(t, router, http.MethodDelete, "/api/stores/"+uuid.NewString()+"/orders", testutil.Owner, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "store not found", testutil.ErrorBody(t, rec))
}

// Package testutil holds fakes and request helpers shared by the module tests.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/georgemunganga/storefront-admin/internal/modules/identity"
	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// Owner is the user id that owns every store created by NewGuard.
const Owner = "user_owner"

// Guard is an in-memory store.Guard.
type Guard struct {
	mu     sync.Mutex
	stores map[uuid.UUID]*store.Store
}

// NewGuard returns a Guard holding one store owned by Owner.
func NewGuard() (*Guard, *store.Store) {
	g := &Guard{stores: map[uuid.UUID]*store.Store{}}
	return g, g.Add(Owner, "Acme")
}

// Add registers a store for userID.
func (g *Guard) Add(userID, name string) *store.Store {
	g.mu.Lock()
	defer g.mu.Unlock()
	st := &store.Store{ID: uuid.New(), Name: name, UserID: userID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	g.stores[st.ID] = st
	return st
}

func (g *Guard) Get(_ context.Context, storeID string) (*store.Store, error) {
	id, err := store.ParseID(storeID)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	st, ok := g.stores[id]
	if !ok {
		return nil, apperr.NotFound("store")
	}
	cp := *st
	return &cp, nil
}

func (g *Guard) Authorize(ctx context.Context, storeID, userID string) (*store.Store, error) {
	if userID == "" {
		return nil, apperr.Unauthenticated()
	}
	st, err := g.Get(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if st.UserID != userID {
		return nil, apperr.Forbidden()
	}
	return st, nil
}

// Router mounts routes on a chi router that trusts the X-Test-User header
// as the authenticated user id.
func Router(register func(chi.Router)) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if id := req.Header.Get("X-Test-User"); id != "" {
				req = req.WithContext(identity.WithUserID(req.Context(), id))
			}
			next.ServeHTTP(w, req)
		})
	})
	register(r)
	return r
}

// Do sends a request to h as userID ("" for anonymous). A non-nil body is
// encoded as JSON.
func Do(t *testing.T, h http.Handler, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ErrorBody decodes an {"error": ...} response.
func ErrorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

// MockDB returns an sqlx handle backed by sqlmock. Expectations are checked
// when the test ends.
func MockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return sqlx.NewDb(db, "postgres"), mock
}

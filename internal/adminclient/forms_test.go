package adminclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/georgemunganga/storefront-admin/internal/modules/landing"
	"github.com/georgemunganga/storefront-admin/internal/modules/store"
	"github.com/georgemunganga/storefront-admin/internal/modules/theme"
	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeID = "6f1d8c1e-2b43-4c7e-8a55-0f1f0d6f2a11"

// fakeAPI serves the theme, store, landing and order routes from memory and
// records every request as "METHOD path".
type fakeAPI struct {
	mu       sync.Mutex
	calls    []string
	theme    *theme.ThemeColors
	name     string
	failNext int
}

func (f *fakeAPI) record(r *http.Request) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
	return f.failNext == len(f.calls)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) server(t *testing.T) *Client {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
			if f.record(req) {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal error"})
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/api/{storeId}/theme", func(w http.ResponseWriter, req *http.Request) {
		out := []*theme.ThemeColors{}
		if f.theme != nil {
			out = append(out, f.theme)
		}
		writeJSON(w, http.StatusOK, out)
	})
	saveTheme := func(w http.ResponseWriter, req *http.Request) {
		var c theme.ColorsRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&c))
		f.theme = theme.Default(uuid.MustParse(storeID))
		f.theme.PrimaryColor = c.PrimaryColor
		writeJSON(w, http.StatusOK, f.theme)
	}
	r.Post("/api/{storeId}/theme", saveTheme)
	r.Patch("/api/{storeId}/theme", saveTheme)
	r.Delete("/api/{storeId}/theme", func(w http.ResponseWriter, req *http.Request) {
		f.theme = nil
		writeJSON(w, http.StatusOK, map[string]string{})
	})
	r.Get("/api/stores/{storeId}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, store.Store{ID: uuid.MustParse(storeID), Name: f.name})
	})
	r.Patch("/api/stores/{storeId}", func(w http.ResponseWriter, req *http.Request) {
		var body store.StoreRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		f.name = body.Name
		writeJSON(w, http.StatusOK, store.Store{ID: uuid.MustParse(storeID), Name: f.name})
	})
	r.Delete("/api/stores/{storeId}", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "make sure you remove all products and categories first"})
	})
	r.Get("/api/stores/{storeId}/landing", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, landing.Default(uuid.MustParse(storeID)))
	})
	r.Patch("/api/stores/{storeId}/landing", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, landing.Default(uuid.MustParse(storeID)))
	})
	r.Get("/api/stores/{storeId}/orders", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, []interface{}{})
	})
	r.Delete("/api/stores/{storeId}/orders", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int{"count": 4})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", "tok", WithHTTPClient(srv.Client()))
}

func colors(primary string) theme.ColorsRequest {
	c := theme.DefaultColors()
	c.PrimaryColor = primary
	return c
}

func TestThemeFormCreatesThenUpdates(t *testing.T) {
	api := &fakeAPI{}
	client := api.server(t)
	ctx := context.Background()

	form, err := LoadThemeForm(ctx, client, storeID)
	require.NoError(t, err)
	assert.Nil(t, form.Initial)
	assert.Equal(t, theme.DefaultColors(), form.Defaults())

	notice, err := form.Submit(ctx, colors("112233"))
	require.NoError(t, err)
	assert.Equal(t, Notice{OK: true, Message: MsgColorCreated}, notice)
	require.NotNil(t, form.Initial, "form refetches after submit")
	assert.Equal(t, "#112233", form.Initial.PrimaryColor)

	notice, err = form.Submit(ctx, colors("#445566"))
	require.NoError(t, err)
	assert.Equal(t, MsgColorUpdated, notice.Message)

	assert.Equal(t, []string{
		"GET /api/" + storeID + "/theme",
		"POST /api/" + storeID + "/theme",
		"GET /api/" + storeID + "/theme",
		"PATCH /api/" + storeID + "/theme",
		"GET /api/" + storeID + "/theme",
	}, api.calls)
}

func TestThemeFormInvalidValuesAreNotSent(t *testing.T) {
	api := &fakeAPI{}
	client := api.server(t)
	form := &ThemeForm{client: client, storeID: storeID}

	bad := colors("ab")
	_, err := form.Submit(context.Background(), bad)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Empty(t, api.calls)
}

func TestThemeFormServerFailure(t *testing.T) {
	api := &fakeAPI{failNext: 1}
	client := api.server(t)
	form := &ThemeForm{client: client, storeID: storeID}

	notice, err := form.Submit(context.Background(), colors("#abcdef"))
	require.NoError(t, err)
	assert.False(t, notice.OK)
	assert.Equal(t, MsgFailure, notice.Message)
	var apiErr *APIError
	require.ErrorAs(t, notice.Err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Nil(t, form.Initial)
}

func TestThemeFormDelete(t *testing.T) {
	api := &fakeAPI{theme: theme.Default(uuid.MustParse(storeID))}
	client := api.server(t)
	form, err := LoadThemeForm(context.Background(), client, storeID)
	require.NoError(t, err)
	require.NotNil(t, form.Initial)

	notice := form.Delete(context.Background())
	assert.Equal(t, MsgThemeDeleted, notice.Message)
	assert.Nil(t, form.Initial)
}

func TestStoreForm(t *testing.T) {
	api := &fakeAPI{name: "Acme"}
	client := api.server(t)
	ctx := context.Background()

	form, err := LoadStoreForm(ctx, client, storeID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", form.Initial.Name)

	_, err = form.Submit(ctx, store.StoreRequest{Name: "   "})
	assert.Equal(t, "name is required", apperr.Message(err))

	notice, err := form.Submit(ctx, store.StoreRequest{Name: "Acme Outlet"})
	require.NoError(t, err)
	assert.Equal(t, MsgStoreUpdated, notice.Message)
	assert.Equal(t, "Acme Outlet", form.Initial.Name)

	notice = form.Delete(ctx)
	assert.False(t, notice.OK)
	assert.Equal(t, MsgStoreInUse, notice.Message)
}

func TestLandingFormAndOrders(t *testing.T) {
	api := &fakeAPI{}
	client := api.server(t)
	ctx := context.Background()

	lf, err := LoadLandingForm(ctx, client, storeID)
	require.NoError(t, err)
	assert.Equal(t, landing.PlaceholderTitle, lf.Initial.MainTitle)

	_, err = lf.Submit(ctx, landing.UpdateRequest{DecodeTitle: "a", MainTitle: "b"})
	assert.Equal(t, "secondTitle is required", apperr.Message(err))

	notice, err := lf.Submit(ctx, landing.UpdateRequest{DecodeTitle: "a", MainTitle: "b", SecondTitle: "c"})
	require.NoError(t, err)
	assert.Equal(t, MsgLandingUpdated, notice.Message)

	view, err := LoadOrdersView(ctx, client, storeID)
	require.NoError(t, err)
	notice = view.DeleteAll(ctx)
	assert.Equal(t, Notice{OK: true, Message: MsgOrdersDeleted}, notice)
}

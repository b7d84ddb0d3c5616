package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/georgemunganga/storefront-admin/internal/platform/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorInternalIsLoggedAndHidden(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/x/theme", nil)

	Error(rec, req, zap.New(core), "THEME_DELETE", errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal error", body["error"])

	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "THEME_DELETE", entries[0].ContextMap()["op"])
}

func TestErrorClassified(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/x/theme", nil)

	Error(rec, req, zap.NewNop(), "THEME_POST", apperr.Required("ringColor"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"ringColor is required"}`, rec.Body.String())
}

func TestDecode(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Acme"}`))
	require.NoError(t, Decode(req, &v))
	assert.Equal(t, "Acme", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.NoError(t, Decode(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{"))
	err := Decode(req, &v)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/internal/service"
	"github.com/pageza/tarif-defteri/internal/storage"
	"github.com/pageza/tarif-defteri/internal/view"
)

type testEnv struct {
	router *gin.Engine
	store  *service.RecipeStore
	view   *view.Controller
	slot   *storage.MemorySlot
}

func setupTestRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	slot := storage.NewMemorySlot()
	store := service.NewRecipeStore(slot, "recipes")
	store.Load(context.Background())
	ctrl := view.New(store)

	router := gin.New()
	RegisterRoutes(router, store, ctrl, zap.NewNop())

	return &testEnv{router: router, store: store, view: ctrl, slot: slot}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthCheck(t *testing.T) {
	env := setupTestRouter(t)
	w := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestListCategories(t *testing.T) {
	env := setupTestRouter(t)
	w := env.do(t, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"categories": ["Çorbalar", "Tatlılar", "Yemek", "Salata", "Meze"],
		"filters": ["Tümü", "Çorbalar", "Tatlılar", "Yemek", "Salata", "Meze"]
	}`, w.Body.String())
}

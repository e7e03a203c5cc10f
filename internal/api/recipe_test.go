package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/internal/model"
	"github.com/pageza/tarif-defteri/internal/service"
	"github.com/pageza/tarif-defteri/internal/storage"
	"github.com/pageza/tarif-defteri/internal/view"
)

func mercimek() CreateRecipeRequest {
	return CreateRecipeRequest{
		Category:     "Çorbalar",
		Name:         "Mercimek Çorbası",
		Ingredients:  "mercimek, soğan, havuç",
		Instructions: "Sebzeleri haşla, blenderdan geçir.",
	}
}

func TestCreateRecipe(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, http.MethodPost, "/api/v1/recipes", mercimek())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode[RecipeResponse](t, w)
	assert.NotEmpty(t, resp.Recipe.ID)
	assert.Equal(t, model.Soups, resp.Recipe.Category)
	assert.Len(t, env.store.List(), 1)
	assert.Equal(t, 1, env.slot.Writes())
}

func TestCreateRecipeValidation(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, http.MethodPost, "/api/v1/recipes", CreateRecipeRequest{
		Category:     "Tatlılar",
		Ingredients:  "şeker",
		Instructions: "pişir",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode[ErrorResponse](t, w)
	assert.Equal(t, view.MissingFieldsMsg, resp.Error)
	assert.Equal(t, []string{"name"}, resp.Fields)
	assert.Empty(t, env.store.List())
}

func TestCreateRecipeMissingCategory(t *testing.T) {
	env := setupTestRouter(t)
	req := mercimek()
	req.Category = ""

	w := env.do(t, http.MethodPost, "/api/v1/recipes", req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"category"}, decode[ErrorResponse](t, w).Fields)
}

func TestCreateRecipeUnknownCategory(t *testing.T) {
	env := setupTestRouter(t)
	req := mercimek()
	req.Category = "Pizza"

	w := env.do(t, http.MethodPost, "/api/v1/recipes", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.store.List())
}

func TestCreateRecipeBadJSON(t *testing.T) {
	env := setupTestRouter(t)
	w := env.do(t, http.MethodPost, "/api/v1/recipes", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

type brokenSlot struct{ *storage.MemorySlot }

func (brokenSlot) Set(context.Context, string, []byte) error { return errors.New("read-only filesystem") }

func TestCreateRecipeStorageFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := service.NewRecipeStore(brokenSlot{storage.NewMemorySlot()}, "recipes")
	router := gin.New()
	RegisterRoutes(router, store, view.New(store), zap.NewNop())
	env := &testEnv{router: router, store: store}

	w := env.do(t, http.MethodPost, "/api/v1/recipes", mercimek())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to save recipes", decode[ErrorResponse](t, w).Error)
	assert.Empty(t, store.List())
}

func TestGetRecipe(t *testing.T) {
	env := setupTestRouter(t)
	created := decode[RecipeResponse](t, env.do(t, http.MethodPost, "/api/v1/recipes", mercimek()))

	w := env.do(t, http.MethodGet, "/api/v1/recipes/"+created.Recipe.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.Recipe, decode[RecipeResponse](t, w).Recipe)

	w = env.do(t, http.MethodGet, "/api/v1/recipes/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListRecipesFilter(t *testing.T) {
	env := setupTestRouter(t)
	main := mercimek()
	main.Category, main.Name = "Yemek", "Karnıyarık"
	salad := mercimek()
	salad.Category, salad.Name = "Salata", "Çoban Salata"

	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/recipes", main).Code)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/recipes", salad).Code)

	all := decode[RecipeListResponse](t, env.do(t, http.MethodGet, "/api/v1/recipes", nil))
	assert.Len(t, all.Recipes, 2)

	tümü := decode[RecipeListResponse](t, env.do(t, http.MethodGet, "/api/v1/recipes?category=T%C3%BCm%C3%BC", nil))
	assert.Equal(t, all.Recipes, tümü.Recipes)

	salads := decode[RecipeListResponse](t, env.do(t, http.MethodGet, "/api/v1/recipes?category=Salata", nil))
	require.Len(t, salads.Recipes, 1)
	assert.Equal(t, "Çoban Salata", salads.Recipes[0].Name)

	w := env.do(t, http.MethodGet, "/api/v1/recipes?category=Pizza", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRecipesEmpty(t *testing.T) {
	env := setupTestRouter(t)
	w := env.do(t, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recipes":[]}`, w.Body.String())
}

func TestDeleteRecipeRequiresConfirmation(t *testing.T) {
	env := setupTestRouter(t)
	created := decode[RecipeResponse](t, env.do(t, http.MethodPost, "/api/v1/recipes", mercimek()))

	w := env.do(t, http.MethodDelete, "/api/v1/recipes/"+created.Recipe.ID, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, view.DeletePrompt, decode[ErrorResponse](t, w).Prompt)
	assert.Len(t, env.store.List(), 1)

	w = env.do(t, http.MethodDelete, "/api/v1/recipes/"+created.Recipe.ID+"?confirm=false", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, env.store.List(), 1)
}

func TestDeleteRecipe(t *testing.T) {
	env := setupTestRouter(t)
	created := decode[RecipeResponse](t, env.do(t, http.MethodPost, "/api/v1/recipes", mercimek()))
	id := created.Recipe.ID
	require.NoError(t, env.view.Select(id))

	w := env.do(t, http.MethodDelete, "/api/v1/recipes/"+id+"?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.store.List())

	// the browser session no longer points at the deleted recipe
	assert.Equal(t, view.Main, env.view.Screen())

	// idempotent
	w = env.do(t, http.MethodDelete, "/api/v1/recipes/"+id+"?confirm=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteRecipeConfirmHeader(t *testing.T) {
	env := setupTestRouter(t)
	created := decode[RecipeResponse](t, env.do(t, http.MethodPost, "/api/v1/recipes", mercimek()))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/"+created.Recipe.ID, nil)
	req.Header.Set("X-Confirm", "true")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.store.List())
}

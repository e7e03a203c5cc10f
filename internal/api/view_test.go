package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/tarif-defteri/internal/model"
	"github.com/pageza/tarif-defteri/internal/view"
)

func strPtr(s string) *string { return &s }

func TestViewInitialState(t *testing.T) {
	env := setupTestRouter(t)
	w := env.do(t, http.MethodGet, "/api/v1/view", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"screen":"main","filter":"Tümü","visible":[]}`, w.Body.String())
}

func TestViewCreateFlow(t *testing.T) {
	env := setupTestRouter(t)

	w := env.do(t, http.MethodPost, "/api/v1/view/create", nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[view.State](t, w)
	assert.Equal(t, view.Create, st.Screen)
	require.NotNil(t, st.Draft)
	assert.Equal(t, model.Soups, st.Draft.Category)

	w = env.do(t, http.MethodPut, "/api/v1/view/draft", UpdateDraftRequest{
		Category: strPtr("Meze"),
		Name:     strPtr("Haydari"),
	})
	require.Equal(t, http.StatusOK, w.Code)

	// submitting with missing fields keeps the create screen
	w = env.do(t, http.MethodPost, "/api/v1/view/submit", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"ingredients", "instructions"}, decode[ErrorResponse](t, w).Fields)
	assert.Equal(t, view.Create, env.view.Screen())

	w = env.do(t, http.MethodPut, "/api/v1/view/draft", UpdateDraftRequest{
		Ingredients:  strPtr("süzme yoğurt, sarımsak, dereotu"),
		Instructions: strPtr("Hepsini karıştır."),
	})
	require.Equal(t, http.StatusOK, w.Code)
	draft := decode[view.State](t, w).Draft
	require.NotNil(t, draft)
	assert.Equal(t, "Haydari", draft.Name)
	assert.Equal(t, model.Appetizers, draft.Category)

	w = env.do(t, http.MethodPost, "/api/v1/view/submit", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	resp := decode[SubmitResponse](t, w)
	assert.Equal(t, "Haydari", resp.Recipe.Name)
	assert.Equal(t, view.Main, resp.View.Screen)
	assert.Len(t, resp.View.Visible, 1)
}

func TestViewDraftOutsideCreate(t *testing.T) {
	env := setupTestRouter(t)
	w := env.do(t, http.MethodPut, "/api/v1/view/draft", UpdateDraftRequest{Name: strPtr("x")})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/view/submit", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestViewDraftUnknownCategory(t *testing.T) {
	env := setupTestRouter(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/view/create", nil).Code)

	w := env.do(t, http.MethodPut, "/api/v1/view/draft", UpdateDraftRequest{Category: strPtr("Kahvaltı")})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewSelectDeleteFlow(t *testing.T) {
	env := setupTestRouter(t)
	created := decode[RecipeResponse](t, env.do(t, http.MethodPost, "/api/v1/recipes", mercimek()))
	id := created.Recipe.ID

	w := env.do(t, http.MethodPost, "/api/v1/view/select/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[view.State](t, w)
	assert.Equal(t, view.Detail, st.Screen)
	require.NotNil(t, st.Selected)
	assert.Equal(t, id, st.Selected.ID)

	// filter is locked outside main
	w = env.do(t, http.MethodPut, "/api/v1/view/filter", SetFilterRequest{Filter: "Salata"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// declined
	w = env.do(t, http.MethodPost, "/api/v1/view/delete", nil)
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, view.DeletePrompt, decode[ErrorResponse](t, w).Prompt)
	assert.Equal(t, view.Detail, env.view.Screen())

	// confirmed
	w = env.do(t, http.MethodPost, "/api/v1/view/delete?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	st = decode[view.State](t, w)
	assert.Equal(t, view.Main, st.Screen)
	assert.Empty(t, st.Visible)
	assert.Empty(t, env.store.List())
}

func TestViewSelectUnknown(t *testing.T) {
	env := setupTestRouter(t)
	w := env.do(t, http.MethodPost, "/api/v1/view/select/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewBack(t *testing.T) {
	env := setupTestRouter(t)
	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/api/v1/view/create", nil).Code)

	w := env.do(t, http.MethodPost, "/api/v1/view/back", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, view.Main, decode[view.State](t, w).Screen)
}

func TestViewFilter(t *testing.T) {
	env := setupTestRouter(t)
	salad := mercimek()
	salad.Category, salad.Name = "Salata", "Piyaz"
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/recipes", mercimek()).Code)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/recipes", salad).Code)

	w := env.do(t, http.MethodPut, "/api/v1/view/filter", SetFilterRequest{Filter: "Salata"})
	require.Equal(t, http.StatusOK, w.Code)
	st := decode[view.State](t, w)
	assert.Equal(t, "Salata", st.Filter)
	require.Len(t, st.Visible, 1)
	assert.Equal(t, "Piyaz", st.Visible[0].Name)

	w = env.do(t, http.MethodPut, "/api/v1/view/filter", SetFilterRequest{Filter: "Pizza"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

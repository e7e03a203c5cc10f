package api

import (
	"github.com/pageza/tarif-defteri/internal/model"
	"github.com/pageza/tarif-defteri/internal/view"
)

// CreateRecipeRequest is the body of POST /recipes
type CreateRecipeRequest struct {
	Category     string `json:"category"`
	Name         string `json:"name"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
}

// UpdateDraftRequest is the body of PUT /view/draft. Omitted fields keep
// their current value.
type UpdateDraftRequest struct {
	Category     *string `json:"category"`
	Name         *string `json:"name"`
	Ingredients  *string `json:"ingredients"`
	Instructions *string `json:"instructions"`
}

// SetFilterRequest is the body of PUT /view/filter
type SetFilterRequest struct {
	Filter string `json:"filter"`
}

// RecipeResponse wraps a single recipe
type RecipeResponse struct {
	Recipe model.Recipe `json:"recipe"`
}

// RecipeListResponse wraps a list of recipes
type RecipeListResponse struct {
	Recipes []model.Recipe `json:"recipes"`
}

// SubmitResponse is returned after a draft was saved
type SubmitResponse struct {
	Recipe model.Recipe `json:"recipe"`
	View   view.State   `json:"view"`
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
	Prompt string   `json:"prompt,omitempty"`
}

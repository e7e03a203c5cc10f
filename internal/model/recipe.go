package model

import "time"

// Recipe is a single persisted cookbook entry. Recipes are never edited after
// creation; the JSON field names are the on-disk storage format.
type Recipe struct {
	ID           string   `json:"id"`
	Category     Category `json:"category"`
	Name         string   `json:"name"`
	Ingredients  string   `json:"ingredients"`
	Instructions string   `json:"instructions"`
	CreatedAt    int64    `json:"createdAt"`
}

// CreatedTime returns CreatedAt as a time.Time.
func (r Recipe) CreatedTime() time.Time {
	return time.UnixMilli(r.CreatedAt)
}

// NewRecipe holds the user-supplied fields of a recipe that has not been
// saved yet. It doubles as the in-progress creation form.
type NewRecipe struct {
	Category     Category `json:"category"`
	Name         string   `json:"name" validate:"required"`
	Ingredients  string   `json:"ingredients" validate:"required"`
	Instructions string   `json:"instructions" validate:"required"`
}

// DefaultDraft returns the blank creation form.
func DefaultDraft() NewRecipe {
	return NewRecipe{Category: Soups}
}

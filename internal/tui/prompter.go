package tui

import (
	"context"

	"github.com/pageza/tarif-defteri/internal/model"
)

// ActionKind names what the user picked on a screen
type ActionKind int

const (
	ActionQuit ActionKind = iota
	ActionOpen
	ActionNew
	ActionFilter
	ActionBack
	ActionDelete
)

// Action is a menu choice. RecipeID is set for ActionOpen.
type Action struct {
	Kind     ActionKind
	RecipeID string
}

// Prompter asks the user for input. HuhPrompter is the terminal
// implementation; tests script one.
type Prompter interface {
	MainAction(ctx context.Context, recipes []model.Recipe) (Action, error)
	ChooseFilter(ctx context.Context, current model.Filter) (model.Filter, error)
	EditDraft(ctx context.Context, draft model.NewRecipe) (model.NewRecipe, bool, error)
	DetailAction(ctx context.Context, r model.Recipe) (Action, error)
	Confirm(ctx context.Context, prompt string) (bool, error)
}

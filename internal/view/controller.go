// Package view tracks what the user is looking at: the current screen, the
// category filter, the creation form and the recipe opened for detail. It is
// presentation state only and is never persisted.
package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/internal/model"
	"github.com/pageza/tarif-defteri/internal/service"
)

var (
	// ErrInvalidTransition is returned when an action is not allowed on the
	// current screen.
	ErrInvalidTransition = errors.New("invalid screen transition")
	// ErrRecipeNotFound is returned when selecting an id that does not exist.
	ErrRecipeNotFound = errors.New("recipe not found")
)

// Store is what the controller needs from the recipe store.
type Store interface {
	Create(ctx context.Context, in model.NewRecipe) (model.Recipe, error)
	Delete(ctx context.Context, id string) error
	Get(id string) (model.Recipe, bool)
	FilterByCategory(f model.Filter) []model.Recipe
}

// Screen is one of the top-level views.
type Screen int

const (
	Main Screen = iota
	Create
	Detail
)

func (s Screen) String() string {
	switch s {
	case Main:
		return "main"
	case Create:
		return "create"
	case Detail:
		return "detail"
	}
	return fmt.Sprintf("Screen(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler
func (s Screen) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Screen) UnmarshalText(text []byte) error {
	for _, candidate := range []Screen{Main, Create, Detail} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown screen %q", text)
}

// state is one of mainState, createState or detailState. Screen-specific
// data lives inside the state value, so a Detail screen always carries a
// recipe id and a Create screen always carries a draft.
type state interface {
	screen() Screen
}

type mainState struct{}

type createState struct {
	draft model.NewRecipe
}

type detailState struct {
	recipeID string
}

func (mainState) screen() Screen   { return Main }
func (createState) screen() Screen { return Create }
func (detailState) screen() Screen { return Detail }

// Controller is the navigation state machine.
type Controller struct {
	store    Store
	notifier Notifier
	logger   *zap.Logger

	mu     sync.Mutex
	state  state
	filter model.Filter
}

// Option configures a Controller
type Option func(*Controller)

// WithNotifier sets the collaborator that shows validation and storage
// errors to the user.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// New returns a controller on the Main screen showing every category.
func New(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		notifier: nopNotifier{},
		logger:   zap.NewNop(),
		state:    mainState{},
		filter:   model.All,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) invalid(action string) error {
	return fmt.Errorf("%w: %s on %s screen", ErrInvalidTransition, action, c.state.screen())
}

func (c *Controller) transition(to state) {
	from := c.state.screen()
	c.state = to
	if from != to.screen() {
		c.logger.Debug("Screen changed", zap.Stringer("from", from), zap.Stringer("to", to.screen()))
	}
}

// Screen returns the current screen.
func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.screen()
}

// Filter returns the active category filter.
func (c *Controller) Filter() model.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Draft returns the creation form while on the Create screen.
func (c *Controller) Draft() (model.NewRecipe, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.state.(createState); ok {
		return s.draft, true
	}
	return model.NewRecipe{}, false
}

// SelectedID returns the id shown on the Detail screen.
func (c *Controller) SelectedID() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.state.(detailState); ok {
		return s.recipeID, true
	}
	return "", false
}

// Selected returns the recipe shown on the Detail screen.
func (c *Controller) Selected() (model.Recipe, bool) {
	id, ok := c.SelectedID()
	if !ok {
		return model.Recipe{}, false
	}
	return c.store.Get(id)
}

// Visible returns the recipes passing the active filter.
func (c *Controller) Visible() []model.Recipe {
	return c.store.FilterByCategory(c.Filter())
}

// OpenCreate moves from Main to Create with a blank form.
func (c *Controller) OpenCreate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.state.(mainState); !ok {
		return c.invalid("open create")
	}
	c.transition(createState{draft: model.DefaultDraft()})
	return nil
}

// UpdateDraft edits the creation form in place.
func (c *Controller) UpdateDraft(edit func(*model.NewRecipe)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.state.(createState)
	if !ok {
		return c.invalid("edit draft")
	}
	edit(&s.draft)
	c.state = s
	return nil
}

// SetDraft replaces the creation form.
func (c *Controller) SetDraft(d model.NewRecipe) error {
	return c.UpdateDraft(func(cur *model.NewRecipe) { *cur = d })
}

// Back returns to Main from Create (discarding the draft) or Detail. It does
// nothing on Main.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transition(mainState{})
}

// Submit saves the draft. Validation failures keep the Create screen and
// the draft as they are; success resets the draft and returns to Main.
func (c *Controller) Submit(ctx context.Context) (model.Recipe, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.state.(createState)
	if !ok {
		return model.Recipe{}, c.invalid("submit")
	}

	r, err := c.store.Create(ctx, s.draft)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.notifier.Notify(ctx, MissingFieldsMsg)
		} else {
			c.logger.Error("Failed to save recipe", zap.Error(err))
			c.notifier.Notify(ctx, SaveFailedMsg)
		}
		return model.Recipe{}, err
	}

	c.transition(mainState{})
	return r, nil
}

// Select opens the Detail screen for id.
func (c *Controller) Select(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.state.(mainState); !ok {
		return c.invalid("select")
	}
	if _, ok := c.store.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrRecipeNotFound, id)
	}
	c.transition(detailState{recipeID: id})
	return nil
}

// SetFilter changes the category filter. Only allowed on Main.
func (c *Controller) SetFilter(f model.Filter) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.state.(mainState); !ok {
		return c.invalid("change filter")
	}
	c.filter = f
	return nil
}

// DeleteSelected deletes the recipe on the Detail screen once confirm agrees
// and returns to Main. A "no" answer leaves everything as it was.
func (c *Controller) DeleteSelected(ctx context.Context, confirm Confirmer) (bool, error) {
	id, ok := c.SelectedID()
	if !ok {
		c.mu.Lock()
		defer c.mu.Unlock()
		return false, c.invalid("delete")
	}
	return c.Delete(ctx, id, confirm)
}

// Delete deletes id from Main or Detail once confirm agrees. If the Detail
// screen was showing id the controller returns to Main. confirm runs with
// the controller locked and must not call back into it. A nil confirm is
// treated as "no".
func (c *Controller) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.state.(createState); ok {
		return false, c.invalid("delete")
	}

	if confirm == nil {
		return false, nil
	}
	yes, err := confirm.Confirm(ctx, DeletePrompt)
	if err != nil {
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
	if !yes {
		return false, nil
	}

	if err := c.store.Delete(ctx, id); err != nil {
		c.logger.Error("Failed to delete recipe", zap.String("id", id), zap.Error(err))
		c.notifier.Notify(ctx, DeleteFailedMsg)
		return false, err
	}
	c.forget(id)
	return true, nil
}

// Forget clears the selection if it points at id. Callers that delete
// through the store directly use it to keep the controller consistent.
func (c *Controller) Forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forget(id)
}

func (c *Controller) forget(id string) {
	if s, ok := c.state.(detailState); ok && s.recipeID == id {
		c.transition(mainState{})
	}
}

// State is a serializable snapshot of the controller.
type State struct {
	Screen   Screen           `json:"screen"`
	Filter   string           `json:"filter"`
	Draft    *model.NewRecipe `json:"draft,omitempty"`
	Selected *model.Recipe    `json:"selected,omitempty"`
	Visible  []model.Recipe   `json:"visible"`
}

// Snapshot captures the current state. Visible is only filled on Main.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	st := State{Screen: c.state.screen(), Filter: c.filter.String()}
	cur, filter := c.state, c.filter
	c.mu.Unlock()

	switch s := cur.(type) {
	case mainState:
		st.Visible = c.store.FilterByCategory(filter)
		if st.Visible == nil {
			st.Visible = []model.Recipe{}
		}
	case createState:
		d := s.draft
		st.Draft = &d
	case detailState:
		if r, ok := c.store.Get(s.recipeID); ok {
			st.Selected = &r
		}
	}
	return st
}

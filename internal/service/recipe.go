package service

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pageza/tarif-defteri/internal/model"
	"github.com/pageza/tarif-defteri/internal/storage"
)

// RecipeStore owns the recipe collection and mirrors it to a storage slot.
// Every successful Create or Delete writes the whole collection once.
type RecipeStore struct {
	slot     storage.Slot
	key      string
	now      func() time.Time
	ids      IDGenerator
	logger   *zap.Logger
	validate *validator.Validate

	mu      sync.Mutex
	recipes []model.Recipe
}

// Option configures a RecipeStore
type Option func(*RecipeStore)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *RecipeStore) { s.now = now }
}

// WithIDGenerator replaces the default TimeIDs generator
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *RecipeStore) { s.ids = ids }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *RecipeStore) { s.logger = logger }
}

// NewRecipeStore creates an empty store backed by slot under key. Call Load
// to read the persisted collection.
func NewRecipeStore(slot storage.Slot, key string, opts ...Option) *RecipeStore {
	s := &RecipeStore{
		slot:     slot,
		key:      key,
		now:      time.Now,
		ids:      &TimeIDs{},
		logger:   zap.NewNop(),
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(zap.String("slot", key))
	return s
}

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Load replaces the in-memory collection with the persisted one. Missing or
// unreadable data yields an empty collection; individual records that are
// malformed are skipped. Problems are logged, never returned.
func (s *RecipeStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipes = nil

	data, err := s.slot.Get(ctx, s.key)
	if errors.Is(err, storage.ErrSlotEmpty) {
		s.logger.Info("No saved recipes, starting empty")
		return
	}
	if err != nil {
		s.logger.Warn("Failed to read saved recipes, starting empty", zap.Error(err))
		return
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("Saved recipes are not a JSON array, starting empty", zap.Error(err))
		return
	}

	seen := make(map[string]bool, len(raw))
	recipes := make([]model.Recipe, 0, len(raw))
	for i, item := range raw {
		var r model.Recipe
		if err := json.Unmarshal(item, &r); err != nil {
			s.logger.Warn("Skipping unreadable recipe", zap.Int("index", i), zap.Error(err))
			continue
		}
		if reason := invalidReason(r, seen); reason != "" {
			s.logger.Warn("Skipping invalid recipe", zap.Int("index", i), zap.String("id", r.ID), zap.String("reason", reason))
			continue
		}
		seen[r.ID] = true
		recipes = append(recipes, r)
	}

	s.recipes = recipes
	s.logger.Info("Loaded recipes", zap.Int("count", len(recipes)))
}

func invalidReason(r model.Recipe, seen map[string]bool) string {
	switch {
	case r.ID == "":
		return "missing id"
	case seen[r.ID]:
		return "duplicate id"
	case !r.Category.Valid():
		return "missing category"
	case r.Name == "" || r.Ingredients == "" || r.Instructions == "":
		return "missing required field"
	}
	return ""
}

// Create validates in, assigns an id and creation time, appends the recipe
// and persists the collection.
func (s *RecipeStore) Create(ctx context.Context, in model.NewRecipe) (model.Recipe, error) {
	if err := s.validateNew(in); err != nil {
		return model.Recipe{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	r := model.Recipe{
		ID:           s.uniqueID(now),
		Category:     in.Category,
		Name:         in.Name,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		CreatedAt:    now.UnixMilli(),
	}

	next := make([]model.Recipe, len(s.recipes), len(s.recipes)+1)
	copy(next, s.recipes)
	next = append(next, r)

	if err := s.persist(ctx, next); err != nil {
		return model.Recipe{}, err
	}
	s.recipes = next

	s.logger.Info("Created recipe", zap.String("id", r.ID), zap.Stringer("category", r.Category))
	return r, nil
}

func (s *RecipeStore) validateNew(in model.NewRecipe) error {
	var fields []string
	if !in.Category.Valid() {
		fields = append(fields, "category")
	}
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fields = append(fields, fe.Field())
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// uniqueID must be called with s.mu held
func (s *RecipeStore) uniqueID(now time.Time) string {
	for {
		id := s.ids.NewID(now)
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

// Delete removes the recipe with id if it exists and persists the
// collection. Deleting an unknown id leaves the collection as it is.
func (s *RecipeStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if r.ID != id {
			next = append(next, r)
		}
	}

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	removed := len(next) != len(s.recipes)
	s.recipes = next

	s.logger.Info("Deleted recipe", zap.String("id", id), zap.Bool("found", removed))
	return nil
}

// persist must be called with s.mu held
func (s *RecipeStore) persist(ctx context.Context, recipes []model.Recipe) error {
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	data, err := json.Marshal(recipes)
	if err != nil {
		return &StorageWriteError{Key: s.key, Err: err}
	}
	if err := s.slot.Set(ctx, s.key, data); err != nil {
		s.logger.Error("Failed to persist recipes", zap.Error(err))
		return &StorageWriteError{Key: s.key, Err: err}
	}
	return nil
}

// Get returns the recipe with id.
func (s *RecipeStore) Get(id string) (model.Recipe, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.recipes[i], true
	}
	return model.Recipe{}, false
}

func (s *RecipeStore) indexOf(id string) int {
	for i, r := range s.recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// List returns a copy of the collection in insertion order.
func (s *RecipeStore) List() []model.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out
}

// FilterByCategory returns the recipes passing f, in insertion order.
func (s *RecipeStore) FilterByCategory(f model.Filter) []model.Recipe {
	if f.IsAll() {
		return s.List()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if f.Matches(r.Category) {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of recipes.
func (s *RecipeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recipes)
}

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a label is not one of the five categories.
var ErrUnknownCategory = errors.New("unknown category")

// Category classifies a recipe into one of the cookbook sections.
type Category int

const (
	Soups Category = iota + 1
	Desserts
	MainDishes
	Salads
	Appetizers
)

var categoryLabels = map[Category]string{
	Soups:      "Çorbalar",
	Desserts:   "Tatlılar",
	MainDishes: "Yemek",
	Salads:     "Salata",
	Appetizers: "Meze",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{Soups, Desserts, MainDishes, Salads, Appetizers}
}

// ParseCategory maps a label back to its Category.
func ParseCategory(label string) (Category, error) {
	for _, c := range Categories() {
		if categoryLabels[c] == label {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
}

// Valid reports whether c is one of the five defined categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) String() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MarshalJSON implements json.Marshaler. The zero Category encodes as "".
func (c Category) MarshalJSON() ([]byte, error) {
	if c == 0 {
		return []byte(`""`), nil
	}
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, int(c))
	}
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Category) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	if label == "" {
		*c = 0
		return nil
	}
	parsed, err := ParseCategory(label)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// AllLabel is the label of the filter that matches every category.
const AllLabel = "Tümü"

// Filter selects which recipes are visible on the main screen. The zero
// value matches every category.
type Filter struct {
	category Category
}

// All is the filter that matches every recipe.
var All = Filter{}

// ByCategory returns a filter that only matches c.
func ByCategory(c Category) Filter {
	return Filter{category: c}
}

// ParseFilter accepts "Tümü", "All" or a category label. Empty input means All.
func ParseFilter(label string) (Filter, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" || trimmed == AllLabel || strings.EqualFold(trimmed, "all") {
		return All, nil
	}
	c, err := ParseCategory(trimmed)
	if err != nil {
		return All, err
	}
	return ByCategory(c), nil
}

// IsAll reports whether the filter matches every category.
func (f Filter) IsAll() bool {
	return f.category == 0
}

// Category returns the filtered category and false for the All filter.
func (f Filter) Category() (Category, bool) {
	return f.category, !f.IsAll()
}

// Matches reports whether a recipe in category c passes the filter.
func (f Filter) Matches(c Category) bool {
	return f.IsAll() || f.category == c
}

func (f Filter) String() string {
	if f.IsAll() {
		return AllLabel
	}
	return f.category.String()
}

// FilterLabels returns the labels offered in the filter selector, All first.
func FilterLabels() []string {
	labels := []string{AllLabel}
	for _, c := range Categories() {
		labels = append(labels, c.String())
	}
	return labels
}

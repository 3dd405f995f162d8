package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Direction is whether a transaction increases or decreases the balance.
type Direction string

const (
	Income  Direction = "income"
	Expense Direction = "expense"
	// Both is only valid on a Category; transactions are never "both".
	Both Direction = "both"
)

// ParseDirection accepts "income", "expense" or "both", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Income, Expense, Both:
		return d, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// Accepts reports whether a category registered with direction d may be
// assigned to a transaction flowing in direction tx.
func (d Direction) Accepts(tx Direction) bool {
	return d == tx || d == Both
}

// Category is one entry of the static taxonomy.
type Category struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Direction Direction `json:"type" yaml:"type"`
	Icon      string    `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Taxonomy is an immutable, ordered set of categories with unique names.
type Taxonomy struct {
	categories []Category
	byName     map[string]int
	byID       map[string]int
}

// NewTaxonomy copies cats and indexes them. Names must be unique and non-empty,
// ids unique when set.
func NewTaxonomy(cats []Category) (*Taxonomy, error) {
	t := &Taxonomy{
		categories: make([]Category, 0, len(cats)),
		byName:     make(map[string]int, len(cats)),
		byID:       make(map[string]int, len(cats)),
	}

	var errs []error
	for _, c := range cats {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("category %q has no name", c.ID))
			continue
		}
		if _, err := ParseDirection(string(c.Direction)); err != nil {
			errs = append(errs, fmt.Errorf("category %q: %w", c.Name, err))
			continue
		}
		if _, dup := t.byName[c.Name]; dup {
			errs = append(errs, fmt.Errorf("duplicate category name %q", c.Name))
			continue
		}
		if c.ID != "" {
			if _, dup := t.byID[c.ID]; dup {
				errs = append(errs, fmt.Errorf("duplicate category id %q", c.ID))
				continue
			}
			t.byID[c.ID] = len(t.categories)
		}
		t.byName[c.Name] = len(t.categories)
		t.categories = append(t.categories, c)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}

// ByName looks up a category by its display name (case-sensitive).
func (t *Taxonomy) ByName(name string) (Category, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Category{}, false
	}
	return t.categories[i], true
}

func (t *Taxonomy) ByID(id string) (Category, bool) {
	i, ok := t.byID[id]
	if !ok {
		return Category{}, false
	}
	return t.categories[i], true
}

// All returns the categories in registration order.
func (t *Taxonomy) All() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// ForDirection returns the categories usable for dir, including "both" entries.
func (t *Taxonomy) ForDirection(dir Direction) []Category {
	var out []Category
	for _, c := range t.categories {
		if c.Direction.Accepts(dir) {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the display names usable for dir.
func (t *Taxonomy) Names(dir Direction) []string {
	cats := t.ForDirection(dir)
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}

func (t *Taxonomy) Len() int { return len(t.categories) }

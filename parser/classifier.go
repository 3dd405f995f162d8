package parser

import "strings"

type categoryRule struct {
	name     string
	keywords []string
	category Category
	known    bool
}

// Classifier decides transaction direction and category by case-insensitive
// substring matching. Iteration order of the tables is the only tie-break:
// the first category (in table order) with a matching keyword (in list order)
// whose direction is compatible wins.
type Classifier struct {
	income   []string
	expense  []string
	rules    []categoryRule
	fallback Fallback
}

// Classification explains a classification decision. Keyword fields are empty
// when the default direction or the fallback category applied.
type Classification struct {
	Direction        Direction `json:"direction"`
	Category         string    `json:"category"`
	DirectionKeyword string    `json:"direction_keyword,omitempty"`
	CategoryKeyword  string    `json:"category_keyword,omitempty"`
	Fallback         bool      `json:"fallback"`
}

// NewClassifier resolves the category keyword table against tax. Entries
// naming a category missing from tax are kept but can never match.
func NewClassifier(tax *Taxonomy, t Tables) *Classifier {
	c := &Classifier{
		income:   normalizeKeywords(t.IncomeKeywords),
		expense:  normalizeKeywords(t.ExpenseKeywords),
		rules:    make([]categoryRule, 0, len(t.CategoryKeywords)),
		fallback: t.Fallback,
	}
	for _, ck := range t.CategoryKeywords {
		cat, ok := tax.ByName(ck.Name)
		c.rules = append(c.rules, categoryRule{
			name:     ck.Name,
			keywords: normalizeKeywords(ck.Keywords),
			category: cat,
			known:    ok,
		})
	}
	return c
}

// Direction returns Income when any income keyword occurs in text and Expense
// otherwise.
func (c *Classifier) Direction(text string) Direction {
	dir, _ := c.direction(strings.ToLower(text))
	return dir
}

// Category returns the first compatible category for text, or the fallback
// for dir.
func (c *Classifier) Category(text string, dir Direction) string {
	name, _, _ := c.category(strings.ToLower(text), dir)
	return name
}

// Explain classifies text and reports which keywords decided it.
func (c *Classifier) Explain(text string) Classification {
	lower := strings.ToLower(text)
	dir, dirKw := c.direction(lower)
	if dir == Expense {
		dirKw, _ = firstContained(lower, c.expense)
	}
	name, catKw, fellBack := c.category(lower, dir)
	return Classification{
		Direction:        dir,
		Category:         name,
		DirectionKeyword: dirKw,
		CategoryKeyword:  catKw,
		Fallback:         fellBack,
	}
}

func (c *Classifier) direction(lower string) (Direction, string) {
	if kw, ok := firstContained(lower, c.income); ok {
		return Income, kw
	}
	return Expense, ""
}

func (c *Classifier) category(lower string, dir Direction) (string, string, bool) {
	for _, r := range c.rules {
		if !r.known || !r.category.Direction.Accepts(dir) {
			continue
		}
		if kw, ok := firstContained(lower, r.keywords); ok {
			return r.name, kw, false
		}
	}
	return c.fallback.For(dir), "", true
}

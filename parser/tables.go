package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Locale holds the vernacular used to recognize monetary literals.
// Suffixes and symbols are matched case-insensitively.
type Locale struct {
	MillionSuffixes  []string `json:"million_suffixes" yaml:"million_suffixes"`
	ThousandSuffixes []string `json:"thousand_suffixes" yaml:"thousand_suffixes"`
	CurrencySymbols  []string `json:"currency_symbols" yaml:"currency_symbols"`
}

// CategoryKeywords maps one category display name to the substrings that
// select it. Order within Keywords is significant.
type CategoryKeywords struct {
	Name     string   `json:"name" yaml:"name"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// Fallback names the catch-all category per direction.
type Fallback struct {
	Expense string `json:"expense" yaml:"expense"`
	Income  string `json:"income" yaml:"income"`
}

// For returns the fallback category name for dir.
func (f Fallback) For(dir Direction) string {
	if dir == Income {
		return f.Income
	}
	return f.Expense
}

// Tables is the complete static configuration of a Parser. It is plain data
// so it can be decoded from JSON or YAML and substituted in tests.
type Tables struct {
	Locale             Locale             `json:"locale" yaml:"locale"`
	Categories         []Category         `json:"categories" yaml:"categories"`
	IncomeKeywords     []string           `json:"income_keywords" yaml:"income_keywords"`
	ExpenseKeywords    []string           `json:"expense_keywords" yaml:"expense_keywords"`
	CategoryKeywords   []CategoryKeywords `json:"category_keywords" yaml:"category_keywords"`
	QuestionIndicators []string           `json:"question_indicators" yaml:"question_indicators"`
	Fallback           Fallback           `json:"fallback" yaml:"fallback"`
}

// Validate reports every inconsistency between the keyword tables and the
// taxonomy. A keyword entry naming an unknown category is an error here even
// though the classifier would silently skip it.
func (t Tables) Validate() error {
	tax, err := NewTaxonomy(t.Categories)
	if err != nil {
		return fmt.Errorf("taxonomy: %w", err)
	}

	var errs []error
	if len(t.Locale.MillionSuffixes) == 0 && len(t.Locale.ThousandSuffixes) == 0 && len(t.Locale.CurrencySymbols) == 0 {
		errs = append(errs, errors.New("locale: no suffixes or currency symbols"))
	}
	errs = append(errs, checkKeywords("locale million suffix", t.Locale.MillionSuffixes)...)
	errs = append(errs, checkKeywords("locale thousand suffix", t.Locale.ThousandSuffixes)...)
	errs = append(errs, checkKeywords("locale currency symbol", t.Locale.CurrencySymbols)...)
	errs = append(errs, checkKeywords("income keyword", t.IncomeKeywords)...)
	errs = append(errs, checkKeywords("expense keyword", t.ExpenseKeywords)...)
	errs = append(errs, checkKeywords("question indicator", t.QuestionIndicators)...)

	seen := make(map[string]bool, len(t.CategoryKeywords))
	for _, ck := range t.CategoryKeywords {
		if _, ok := tax.ByName(ck.Name); !ok {
			errs = append(errs, fmt.Errorf("category keywords: %q is not in the taxonomy", ck.Name))
		}
		if seen[ck.Name] {
			errs = append(errs, fmt.Errorf("category keywords: %q listed twice", ck.Name))
		}
		seen[ck.Name] = true
		errs = append(errs, checkKeywords(fmt.Sprintf("keyword for %q", ck.Name), ck.Keywords)...)
	}

	for _, dir := range []Direction{Expense, Income} {
		name := t.Fallback.For(dir)
		if name == "" {
			errs = append(errs, fmt.Errorf("fallback: no %s category", dir))
			continue
		}
		if c, ok := tax.ByName(name); ok && !c.Direction.Accepts(dir) {
			errs = append(errs, fmt.Errorf("fallback: %q is registered as %s, not %s", name, c.Direction, dir))
		}
	}

	return errors.Join(errs...)
}

func checkKeywords(what string, kws []string) []error {
	var errs []error
	for i, kw := range kws {
		if strings.TrimSpace(kw) == "" {
			errs = append(errs, fmt.Errorf("%s #%d is empty", what, i))
		}
	}
	return errs
}

// normalizeKeywords lowercases keywords and drops blank ones, which would
// otherwise match every input.
func normalizeKeywords(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out
}

// firstContained returns the first keyword, in list order, that occurs in
// lower. Keywords must already be lowercase.
func firstContained(lower string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

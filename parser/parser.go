// Package parser turns short free-text messages such as "Habis beli kopi 25rb"
// into structured transactions using fixed keyword tables and a locale's
// number vocabulary. It performs no I/O and keeps no state between calls, so
// a *Parser may be shared by any number of goroutines.
package parser

import (
	"fmt"
	"strings"
)

// ParsedTransaction is the result of a successful Parse.
type ParsedTransaction struct {
	Amount      int64     `json:"amount"`
	Direction   Direction `json:"direction"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
}

// Parser combines the amount extractor, classifier and intent gate built from
// one set of Tables.
type Parser struct {
	taxonomy   *Taxonomy
	amounts    *AmountExtractor
	classifier *Classifier
	gate       *IntentGate
}

// New validates t and builds a Parser from it.
func New(t Tables) (*Parser, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parser tables: %w", err)
	}
	tax, err := NewTaxonomy(t.Categories)
	if err != nil {
		return nil, err
	}
	return &Parser{
		taxonomy:   tax,
		amounts:    NewAmountExtractor(t.Locale),
		classifier: NewClassifier(tax, t),
		gate:       NewIntentGate(t.QuestionIndicators),
	}, nil
}

// NewDefault builds a Parser from DefaultTables.
func NewDefault() *Parser {
	p, err := New(DefaultTables())
	if err != nil {
		panic(err)
	}
	return p
}

// Parse extracts a transaction from text. It reports false for blank input
// and for text without a positive amount. Parse does not consult the intent
// gate; callers routing chat messages check IsAnalyticalQuery first.
func (p *Parser) Parse(text string) (ParsedTransaction, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ParsedTransaction{}, false
	}

	amount, ok := p.amounts.Extract(text)
	if !ok {
		return ParsedTransaction{}, false
	}

	dir := p.classifier.Direction(text)
	return ParsedTransaction{
		Amount:      amount,
		Direction:   dir,
		Category:    p.classifier.Category(text, dir),
		Description: text,
	}, true
}

func (p *Parser) ExtractAmount(text string) (int64, bool) {
	return p.amounts.Extract(text)
}

func (p *Parser) ClassifyDirection(text string) Direction {
	return p.classifier.Direction(text)
}

func (p *Parser) ClassifyCategory(text string, dir Direction) string {
	return p.classifier.Category(text, dir)
}

func (p *Parser) Explain(text string) Classification {
	return p.classifier.Explain(text)
}

func (p *Parser) IsAnalyticalQuery(text string) bool {
	return p.gate.IsAnalyticalQuery(text)
}

// QueryIndicator returns the indicator that made text a query.
func (p *Parser) QueryIndicator(text string) (string, bool) {
	return p.gate.Match(text)
}

func (p *Parser) Taxonomy() *Taxonomy {
	return p.taxonomy
}

package parser

import "strings"

// IntentGate flags messages that ask about finances rather than record a
// transaction. Any indicator occurring in the text wins, even when the text
// also carries an amount.
type IntentGate struct {
	indicators []string
}

func NewIntentGate(indicators []string) *IntentGate {
	return &IntentGate{indicators: normalizeKeywords(indicators)}
}

// IsAnalyticalQuery reports whether text should go to the summary responder.
func (g *IntentGate) IsAnalyticalQuery(text string) bool {
	_, ok := g.Match(text)
	return ok
}

// Match returns the first indicator, in table order, found in text.
func (g *IntentGate) Match(text string) (string, bool) {
	return firstContained(strings.ToLower(text), g.indicators)
}

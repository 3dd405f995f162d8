package parser

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var maxAmount = decimal.NewFromInt(math.MaxInt64)

type numberFormat int

const (
	// fractional: at most one separator, always a decimal point ("2.5jt", "2,5jt").
	fractional numberFormat = iota
	// grouped: separators group thousands, except a final one followed by
	// one or two digits, which is a decimal point ("25.000", "25.000,50").
	grouped
	plain
)

type amountPattern struct {
	re         *regexp.Regexp
	format     numberFormat
	multiplier decimal.Decimal
}

// AmountExtractor finds the first monetary literal in free text. Patterns are
// tried in a fixed priority order and the first one matching anywhere wins:
// million suffix, thousand suffix, currency symbol, grouped number, plain number.
type AmountExtractor struct {
	patterns []amountPattern
}

// NewAmountExtractor compiles the patterns for loc. A locale with no entries
// for a pattern simply skips that pattern.
func NewAmountExtractor(loc Locale) *AmountExtractor {
	var patterns []amountPattern

	if alt := alternation(loc.MillionSuffixes); alt != "" {
		patterns = append(patterns, amountPattern{
			re:         regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:` + alt + `)`),
			format:     fractional,
			multiplier: decimal.NewFromInt(1_000_000),
		})
	}
	if alt := alternation(loc.ThousandSuffixes); alt != "" {
		patterns = append(patterns, amountPattern{
			re:         regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:` + alt + `)`),
			format:     fractional,
			multiplier: decimal.NewFromInt(1_000),
		})
	}
	if alt := alternation(loc.CurrencySymbols); alt != "" {
		patterns = append(patterns, amountPattern{
			re:         regexp.MustCompile(`(?i)(?:` + alt + `)\.?\s*(\d+(?:[.,]\d{3})*(?:[.,]\d+)?)`),
			format:     grouped,
			multiplier: decimal.NewFromInt(1),
		})
	}
	patterns = append(patterns,
		amountPattern{
			re:         regexp.MustCompile(`(\d+(?:[.,]\d{3})+)`),
			format:     grouped,
			multiplier: decimal.NewFromInt(1),
		},
		amountPattern{
			re:         regexp.MustCompile(`(\d+)`),
			format:     plain,
			multiplier: decimal.NewFromInt(1),
		},
	)

	return &AmountExtractor{patterns: patterns}
}

// Extract returns the amount in base currency units. It reports false when no
// literal is found or when the first matching literal is not positive; later
// patterns are not consulted in that case. Values beyond int64 saturate.
func (e *AmountExtractor) Extract(text string) (int64, bool) {
	for _, p := range e.patterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		value, ok := parseNumber(m[1], p.format)
		if !ok {
			return 0, false
		}
		value = value.Mul(p.multiplier).Round(0)
		if value.Sign() <= 0 {
			return 0, false
		}
		if value.GreaterThan(maxAmount) {
			return math.MaxInt64, true
		}
		return value.IntPart(), true
	}
	return 0, false
}

func parseNumber(s string, format numberFormat) (decimal.Decimal, bool) {
	switch format {
	case fractional:
		s = strings.Replace(s, ",", ".", 1)
	case grouped:
		s = normalizeGrouped(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func normalizeGrouped(s string) string {
	last := strings.LastIndexAny(s, ".,")
	if last < 0 {
		return s
	}
	if frac := s[last+1:]; len(frac) == 1 || len(frac) == 2 {
		return stripSeparators(s[:last]) + "." + frac
	}
	return stripSeparators(s)
}

func stripSeparators(s string) string {
	return strings.NewReplacer(".", "", ",", "").Replace(s)
}

// alternation builds a regexp alternation of the quoted tokens, longest first
// so that the reported match covers the whole suffix.
func alternation(tokens []string) string {
	quoted := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			quoted = append(quoted, regexp.QuoteMeta(t))
		}
	}
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })
	return strings.Join(quoted, "|")
}

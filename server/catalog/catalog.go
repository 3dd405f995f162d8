// Package catalog loads parser tables from configuration files and from the
// SQLite taxonomy store.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/calexandrepcjr/cheapskate-fiscal/parser"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a tables file.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatOf picks the format from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// LoadFile reads and decodes a tables file. Sections missing from the file
// are filled from parser.DefaultTables. The result is not validated.
func LoadFile(path string) (parser.Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parser.Tables{}, fmt.Errorf("read tables file: %w", err)
	}
	return Decode(bytes.NewReader(data), FormatOf(path))
}

// Decode reads tables in the given format and fills missing sections from
// the defaults.
func Decode(r io.Reader, format Format) (parser.Tables, error) {
	var t parser.Tables
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&t); err != nil && err != io.EOF {
			return parser.Tables{}, fmt.Errorf("parse YAML tables: %w", err)
		}
	default:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&t); err != nil {
			return parser.Tables{}, fmt.Errorf("parse JSON tables: %w", err)
		}
	}
	return withDefaults(t), nil
}

// Encode writes t in the given format.
func Encode(w io.Writer, t parser.Tables, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	}
}

// Load returns the validated tables at path. An empty path, a missing or
// unreadable file, or invalid tables fall back to the built-in defaults with
// a warning.
func Load(path string, log zerolog.Logger) parser.Tables {
	if path == "" {
		log.Info().Msg("No category config given, using built-in tables")
		return parser.DefaultTables()
	}

	t, err := LoadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Category config not loaded, using built-in tables")
		return parser.DefaultTables()
	}
	if err := t.Validate(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Category config invalid, using built-in tables")
		return parser.DefaultTables()
	}

	log.Info().
		Str("path", path).
		Int("categories", len(t.Categories)).
		Int("keyword_entries", len(t.CategoryKeywords)).
		Msg("Loaded category config")
	return t
}

func withDefaults(t parser.Tables) parser.Tables {
	d := parser.DefaultTables()
	if t.Locale.MillionSuffixes == nil && t.Locale.ThousandSuffixes == nil && t.Locale.CurrencySymbols == nil {
		t.Locale = d.Locale
	}
	if t.Categories == nil {
		t.Categories = d.Categories
	}
	if t.IncomeKeywords == nil {
		t.IncomeKeywords = d.IncomeKeywords
	}
	if t.ExpenseKeywords == nil {
		t.ExpenseKeywords = d.ExpenseKeywords
	}
	if t.CategoryKeywords == nil {
		t.CategoryKeywords = d.CategoryKeywords
	}
	if t.QuestionIndicators == nil {
		t.QuestionIndicators = d.QuestionIndicators
	}
	if t.Fallback.Expense == "" {
		t.Fallback.Expense = d.Fallback.Expense
	}
	if t.Fallback.Income == "" {
		t.Fallback.Income = d.Fallback.Income
	}
	return t
}

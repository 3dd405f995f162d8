package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/calexandrepcjr/cheapskate-fiscal/parser"
	"github.com/calexandrepcjr/cheapskate-fiscal/server/db"
)

// Seed writes the taxonomy and category keyword table of t in one
// transaction. It is meant for an empty database; existing names collide.
//
// Keyword entries are stored one row per keyword, so an entry with no
// keywords leaves nothing behind. It could never match, so classification
// is unchanged.
func Seed(ctx context.Context, conn *sql.DB, t parser.Tables) error {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	q := db.New(conn).WithTx(tx)

	ids := make(map[string]int64, len(t.Categories))
	for i, c := range t.Categories {
		row, err := q.CreateCategory(ctx, db.CreateCategoryParams{
			Slug:     nullString(c.ID),
			Name:     c.Name,
			Type:     string(c.Direction),
			Icon:     nullString(c.Icon),
			Position: int64(i),
		})
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.Name, err)
		}
		ids[c.Name] = row.ID
	}

	for rule, ck := range t.CategoryKeywords {
		id, ok := ids[ck.Name]
		if !ok {
			return fmt.Errorf("seed keywords: category %q is not in the taxonomy", ck.Name)
		}
		for pos, kw := range ck.Keywords {
			err := q.CreateCategoryKeyword(ctx, db.CreateCategoryKeywordParams{
				CategoryID:   id,
				Keyword:      kw,
				RulePosition: int64(rule),
				Position:     int64(pos),
			})
			if err != nil {
				return fmt.Errorf("seed keyword %q for %q: %w", kw, ck.Name, err)
			}
		}
	}

	return tx.Commit()
}

// FromDB returns base with its taxonomy and category keyword table replaced
// by the database contents. The other sections of base are kept.
//
// Keyword entries are rebuilt from keyword rows, so entries Seed was given
// without keywords do not come back. Seed followed by FromDB is the identity
// only for tables whose every entry has at least one keyword.
func FromDB(ctx context.Context, q *db.Queries, base parser.Tables) (parser.Tables, error) {
	rows, err := q.ListCategories(ctx)
	if err != nil {
		return parser.Tables{}, fmt.Errorf("list categories: %w", err)
	}

	cats := make([]parser.Category, 0, len(rows))
	for _, r := range rows {
		dir, err := parser.ParseDirection(r.Type)
		if err != nil {
			return parser.Tables{}, fmt.Errorf("category %q: %w", r.Name, err)
		}
		cats = append(cats, parser.Category{
			ID:        r.Slug.String,
			Name:      r.Name,
			Direction: dir,
			Icon:      r.Icon.String,
		})
	}

	kwRows, err := q.ListCategoryKeywords(ctx)
	if err != nil {
		return parser.Tables{}, fmt.Errorf("list category keywords: %w", err)
	}

	var rules []parser.CategoryKeywords
	for i, r := range kwRows {
		if i == 0 || r.RulePosition != kwRows[i-1].RulePosition {
			rules = append(rules, parser.CategoryKeywords{Name: r.CategoryName})
		}
		last := &rules[len(rules)-1]
		last.Keywords = append(last.Keywords, r.Keyword)
	}

	base.Categories = cats
	base.CategoryKeywords = rules
	return base, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

package db

import (
	"context"
)

const createCategoryKeyword = `-- name: CreateCategoryKeyword :exec
INSERT INTO category_keywords (category_id, keyword, rule_position, position)
VALUES (?, ?, ?, ?)
`

type CreateCategoryKeywordParams struct {
	CategoryID   int64
	Keyword      string
	RulePosition int64
	Position     int64
}

func (q *Queries) CreateCategoryKeyword(ctx context.Context, arg CreateCategoryKeywordParams) error {
	_, err := q.db.ExecContext(ctx, createCategoryKeyword,
		arg.CategoryID,
		arg.Keyword,
		arg.RulePosition,
		arg.Position,
	)
	return err
}

const listCategoryKeywords = `-- name: ListCategoryKeywords :many
SELECT c.name AS category_name, k.keyword, k.rule_position
FROM category_keywords k
JOIN categories c ON c.id = k.category_id
ORDER BY k.rule_position, k.position
`

type ListCategoryKeywordsRow struct {
	CategoryName string
	Keyword      string
	RulePosition int64
}

func (q *Queries) ListCategoryKeywords(ctx context.Context) ([]ListCategoryKeywordsRow, error) {
	rows, err := q.db.QueryContext(ctx, listCategoryKeywords)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCategoryKeywordsRow
	for rows.Next() {
		var i ListCategoryKeywordsRow
		if err := rows.Scan(&i.CategoryName, &i.Keyword, &i.RulePosition); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

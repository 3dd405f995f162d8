package db

import (
	"context"
	"database/sql"
)

const countCategories = `-- name: CountCategories :one
SELECT COUNT(*) FROM categories
`

func (q *Queries) CountCategories(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countCategories)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createCategory = `-- name: CreateCategory :one
INSERT INTO categories (slug, name, type, icon, position)
VALUES (?, ?, ?, ?, ?)
RETURNING id, slug, name, type, icon, position
`

type CreateCategoryParams struct {
	Slug     sql.NullString
	Name     string
	Type     string
	Icon     sql.NullString
	Position int64
}

func (q *Queries) CreateCategory(ctx context.Context, arg CreateCategoryParams) (Category, error) {
	row := q.db.QueryRowContext(ctx, createCategory,
		arg.Slug,
		arg.Name,
		arg.Type,
		arg.Icon,
		arg.Position,
	)
	var i Category
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.Name,
		&i.Type,
		&i.Icon,
		&i.Position,
	)
	return i, err
}

const getCategoryByName = `-- name: GetCategoryByName :one
SELECT id, slug, name, type, icon, position FROM categories
WHERE name = ? LIMIT 1
`

func (q *Queries) GetCategoryByName(ctx context.Context, name string) (Category, error) {
	row := q.db.QueryRowContext(ctx, getCategoryByName, name)
	var i Category
	err := row.Scan(
		&i.ID,
		&i.Slug,
		&i.Name,
		&i.Type,
		&i.Icon,
		&i.Position,
	)
	return i, err
}

const listCategories = `-- name: ListCategories :many
SELECT id, slug, name, type, icon, position FROM categories
ORDER BY position, id
`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.QueryContext(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Category
	for rows.Next() {
		var i Category
		if err := rows.Scan(
			&i.ID,
			&i.Slug,
			&i.Name,
			&i.Type,
			&i.Icon,
				&i.Position,
		); err != nil {
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

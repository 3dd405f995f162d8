package db

import (
	"database/sql"
)

type Category struct {
	ID       int64
	Slug     sql.NullString
	Name     string
	Type     string
	Icon     sql.NullString
	Position int64
}

type CategoryKeyword struct {
	ID           int64
	CategoryID   int64
	Keyword      string
	RulePosition int64
	Position     int64
}

package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/mansakrishna23/simple-message-bank/models"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the messages table if it is absent. Existing rows are
// left untouched, so it is safe to call on every open.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if err := db.WithContext(ctx).Exec(schemaSQL).Error; err != nil {
		return fmt.Errorf("create schema: %w", StorageError(err))
	}
	return nil
}

type columnInfo struct {
	Name string `gorm:"column:name"`
	Type string `gorm:"column:type"`
	PK   int    `gorm:"column:pk"`
}

// VerifySchema checks that the messages table has an integer primary key id
// plus handle and message columns.
func (db *DB) VerifySchema(ctx context.Context) error {
	var cols []columnInfo
	if err := db.WithContext(ctx).Raw("PRAGMA table_info(messages)").Scan(&cols).Error; err != nil {
		return fmt.Errorf("inspect schema: %w", StorageError(err))
	}

	found := make(map[string]columnInfo, len(cols))
	for _, c := range cols {
		found[strings.ToLower(c.Name)] = c
	}

	id, ok := found["id"]
	if !ok || id.PK == 0 || !strings.EqualFold(id.Type, "INTEGER") {
		return fmt.Errorf("%w: id must be an INTEGER PRIMARY KEY", models.ErrSchemaMismatch)
	}
	for _, name := range []string{"handle", "message"} {
		if _, ok := found[name]; !ok {
			return fmt.Errorf("%w: missing column %q", models.ErrSchemaMismatch, name)
		}
	}
	return nil
}

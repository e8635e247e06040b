package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_entries"
	kvKeyColumn   = "entry_key"
	kvValueColumn = "entry_value"
	kvUpdatedAt   = "updated_at"
)

// upsertSuffix works for both SQLite (3.24+) and PostgreSQL.
var upsertSuffix = fmt.Sprintf(
	"ON CONFLICT (%[1]s) DO UPDATE SET %[2]s = excluded.%[2]s, %[3]s = excluded.%[3]s",
	kvKeyColumn, kvValueColumn, kvUpdatedAt,
)

func buildGetQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	query, args, err := sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertQuery(ph sq.PlaceholderFormat, key, value string, now time.Time) (string, []any, error) {
	query, args, err := sq.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, now.UTC()).
		Suffix(upsertSuffix).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	query, args, err := sq.Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/lacnutry/internal/logger"
)

// sqlKeyValueStorage is the [KeyValueStorage] over the kv_entries table. It
// serves both the SQLite and PostgreSQL connections; the differences live in
// [DB].
type sqlKeyValueStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
	closed atomic.Bool
}

// NewSQLKeyValueStorage returns a storage over an already migrated db.
func NewSQLKeyValueStorage(db *DB, log *logger.Logger) KeyValueStorage {
	log.Debug().Str("dialect", db.dialect).Msg("creating sql key-value storage")
	return &sqlKeyValueStorage{
		db:     db,
		logger: log,
		now:    time.Now,
	}
}

func (s *sqlKeyValueStorage) Get(ctx context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, ErrStorageClosed
	}

	query, args, err := buildGetQuery(s.db.placeholder, key)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStorage.Get").Str("key", key).Msg("error building query")
		return "", false, err
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		s.logger.Err(err).Str("func", "*sqlKeyValueStorage.Get").
			Str("key", key).
			Str("class", s.db.classify(err)).
			Msg("error reading value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (s *sqlKeyValueStorage) Set(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return ErrStorageClosed
	}

	query, args, err := buildUpsertQuery(s.db.placeholder, key, value, s.now())
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStorage.Set").Str("key", key).Msg("error building query")
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStorage.Set").
			Str("key", key).
			Str("class", s.db.classify(err)).
			Msg("error writing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStorage) Remove(ctx context.Context, key string) error {
	if s.closed.Load() {
		return ErrStorageClosed
	}

	query, args, err := buildDeleteQuery(s.db.placeholder, key)
	if err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStorage.Remove").Str("key", key).Msg("error building query")
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqlKeyValueStorage.Remove").
			Str("key", key).
			Str("class", s.db.classify(err)).
			Msg("error removing value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqlKeyValueStorage) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	return s.db.Close()
}

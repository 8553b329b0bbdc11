// Package postgres implementa storage.KeyValueStore numa tabela do PostgreSQL
package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/storage"
)

type Store struct {
	conn *postgres.Connection
}

func New(ctx context.Context, conn *postgres.Connection) (*Store, error) {
	store := &Store{conn: conn}
	if err := store.migrate(ctx); err != nil {
		return nil, errors.Wrap(err, "postgres: falha ao migrar tabela chave-valor")
	}
	return store, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS `+storage.TableName()+` (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("value").
		From(storage.TableName()).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var value string
	err = s.conn.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler chave %s", key)
	}

	return []byte(value), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

func (s *Store) SetMany(ctx context.Context, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}

	return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for key, value := range values {
			query, args, err := squirrel.StatementBuilder.
				Insert(storage.TableName()).
				Columns("key", "value").
				Values(key, string(value)).
				Suffix(`
					ON CONFLICT (key) DO UPDATE SET
						value = EXCLUDED.value,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return errors.Wrap(err, "erro ao construir a query")
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return errors.Wrapf(pqErr, "erro no banco de dados ao gravar %s (código: %s)", key, pqErr.Code)
				}
				return errors.Wrapf(err, "erro ao gravar chave %s", key)
			}
		}
		return nil
	})
}

func (s *Store) Close() error {
	return s.conn.Close()
}

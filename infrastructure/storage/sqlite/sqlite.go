/*
Package sqlite implementa storage.KeyValueStore sobre SQLite.

É o driver padrão: o painel roda na máquina do gestor e os dados ficam num
único arquivo local. Cada chave guarda o JSON completo de uma coleção.

O banco é aberto em modo WAL e o schema é criado em New().
*/
package sqlite

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/storage"
)

type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New abre (ou cria) o banco no caminho informado
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "sqlite: falha ao abrir banco")
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "sqlite: falha ao migrar banco")
	}

	return store, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS ` + storage.TableName() + ` (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query, args, err := squirrel.
		Select("value").
		From(storage.TableName()).
		Where(squirrel.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "sqlite: erro ao construir a query")
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "sqlite: erro ao ler chave %s", key)
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

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "sqlite: erro ao iniciar transação")
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for key, value := range values {
		query, args, err := upsert(key, value, now).ToSql()
		if err != nil {
			return errors.Wrap(err, "sqlite: erro ao construir a query")
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "sqlite: erro ao gravar chave %s", key)
		}
	}

	return errors.Wrap(tx.Commit(), "sqlite: erro ao confirmar transação")
}

func upsert(key string, value []byte, now string) squirrel.InsertBuilder {
	return squirrel.
		Insert(storage.TableName()).
		Columns("key", "value", "updated_at").
		Values(key, string(value), now).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at")
}

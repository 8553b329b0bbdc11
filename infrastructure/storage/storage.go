// Package storage define o armazenamento chave-valor durável usado pelo painel.
// O valor é sempre o JSON serializado de uma coleção inteira (roster ou ledger).
package storage

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks

import (
	"context"
	"errors"
)

// Chaves padrão das duas coleções raiz
const (
	DefaultRosterKey = "sdr-dashboard-salespersons"
	DefaultLedgerKey = "sdr-dashboard-allData"
)

const kvTable = "kv_store"

var ErrNotFound = errors.New("key not found")

type KeyValueStore interface {
	// Get retorna ErrNotFound quando a chave nunca foi gravada
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany grava todas as chaves atomicamente: ou todas, ou nenhuma
	SetMany(ctx context.Context, values map[string][]byte) error
	Close() error
}

// TableName é a tabela usada pelos drivers SQL
func TableName() string {
	return kvTable
}

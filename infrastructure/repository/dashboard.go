// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrNotStored indica que a coleção nunca foi gravada
	ErrNotStored = errors.New("collection not stored")
	// ErrMalformed indica que o valor gravado não pôde ser decodificado
	ErrMalformed = errors.New("malformed stored collection")
)

type DashboardRepository interface {
	LoadRoster(ctx context.Context) ([]domain.Salesperson, error)
	LoadLedger(ctx context.Context) (domain.Ledger, error)
	SaveRoster(ctx context.Context, roster []domain.Salesperson) error
	SaveLedger(ctx context.Context, ledger domain.Ledger) error
	// SaveAll grava roster e ledger na mesma transação
	SaveAll(ctx context.Context, roster []domain.Salesperson, ledger domain.Ledger) error
	RosterKey() string
	LedgerKey() string
}

type dashboardRepository struct {
	store     storage.KeyValueStore
	rosterKey string
	ledgerKey string
}

func NewDashboardRepository(store storage.KeyValueStore, rosterKey, ledgerKey string) DashboardRepository {
	if rosterKey == "" {
		rosterKey = storage.DefaultRosterKey
	}
	if ledgerKey == "" {
		ledgerKey = storage.DefaultLedgerKey
	}

	return &dashboardRepository{
		store:     store,
		rosterKey: rosterKey,
		ledgerKey: ledgerKey,
	}
}

func (r *dashboardRepository) RosterKey() string { return r.rosterKey }
func (r *dashboardRepository) LedgerKey() string { return r.ledgerKey }

func (r *dashboardRepository) LoadRoster(ctx context.Context) ([]domain.Salesperson, error) {
	raw, err := r.load(ctx, r.rosterKey)
	if err != nil {
		return nil, err
	}

	var roster []domain.Salesperson
	if err := json.Unmarshal(raw, &roster); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "roster: %v", err)
	}
	if roster == nil {
		return nil, errors.Wrap(ErrMalformed, "roster: valor nulo")
	}

	for _, sp := range roster {
		if sp.ID == "" {
			return nil, errors.Wrap(ErrMalformed, "roster: consultor sem id")
		}
	}

	return roster, nil
}

func (r *dashboardRepository) LoadLedger(ctx context.Context) (domain.Ledger, error) {
	raw, err := r.load(ctx, r.ledgerKey)
	if err != nil {
		return nil, err
	}

	var ledger domain.Ledger
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return nil, errors.Wrapf(ErrMalformed, "ledger: %v", err)
	}
	if ledger == nil {
		return nil, errors.Wrap(ErrMalformed, "ledger: valor nulo")
	}

	for key, data := range ledger {
		if data == nil {
			return nil, errors.Wrapf(ErrMalformed, "ledger: período %s nulo", key)
		}
		if data.Consultants == nil {
			data.Consultants = []domain.ConsultantData{}
		}
	}

	return ledger, nil
}

func (r *dashboardRepository) SaveRoster(ctx context.Context, roster []domain.Salesperson) error {
	raw, err := json.Marshal(roster)
	if err != nil {
		return errors.Wrap(err, "roster: erro ao serializar")
	}
	return errors.Wrapf(r.store.Set(ctx, r.rosterKey, raw), "roster: erro ao gravar chave %s", r.rosterKey)
}

func (r *dashboardRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	raw, err := json.Marshal(ledger)
	if err != nil {
		return errors.Wrap(err, "ledger: erro ao serializar")
	}
	return errors.Wrapf(r.store.Set(ctx, r.ledgerKey, raw), "ledger: erro ao gravar chave %s", r.ledgerKey)
}

func (r *dashboardRepository) SaveAll(ctx context.Context, roster []domain.Salesperson, ledger domain.Ledger) error {
	rawRoster, err := json.Marshal(roster)
	if err != nil {
		return errors.Wrap(err, "roster: erro ao serializar")
	}

	rawLedger, err := json.Marshal(ledger)
	if err != nil {
		return errors.Wrap(err, "ledger: erro ao serializar")
	}

	err = r.store.SetMany(ctx, map[string][]byte{
		r.rosterKey: rawRoster,
		r.ledgerKey: rawLedger,
	})
	return errors.Wrap(err, "erro ao gravar roster e ledger")
}

func (r *dashboardRepository) load(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotStored, "chave %s", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler chave %s", key)
	}
	return raw, nil
}

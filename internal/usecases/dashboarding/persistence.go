package dashboarding

import (
	"context"
	"sort"

	"github.com/vfg2006/sdr-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-dashboard-api/pkg/log"
)

// persist grava as coleções indicadas junto com as que ficaram pendentes.
// Falhas são registradas e a coleção fica pendente até a próxima gravação
// bem-sucedida; o estado em memória continua valendo. Exige o lock.
func (s *Service) persist(ctx context.Context, keys ...string) error {
	if s.readOnly {
		return nil
	}

	rosterKey, ledgerKey := s.repo.RosterKey(), s.repo.LedgerKey()

	for _, key := range keys {
		s.pending[key] = true
	}

	saveRoster, saveLedger := s.pending[rosterKey], s.pending[ledgerKey]
	if !saveRoster && !saveLedger {
		return nil
	}

	var err error
	switch {
	case saveRoster && saveLedger:
		err = s.repo.SaveAll(ctx, s.roster, s.ledger)
	case saveRoster:
		err = s.repo.SaveRoster(ctx, s.roster)
	default:
		err = s.repo.SaveLedger(ctx, s.ledger)
	}

	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("store_key", s.pendingKeys()).Error("Erro ao gravar no armazenamento, nova tentativa na próxima gravação")
		s.metrics.Persisted(false)
		s.metrics.SetPending(len(s.pending))
		return err
	}

	delete(s.pending, rosterKey)
	delete(s.pending, ledgerKey)
	s.metrics.Persisted(true)
	s.metrics.SetPending(len(s.pending))

	return nil
}

// FlushPending regrava as coleções cuja última gravação falhou
func (s *Service) FlushPending(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}

	if err := s.persist(ctx); err != nil {
		return NewDashboardError(ErrPersistence, apiErrors.ErrDatabaseOperation, err.Error())
	}

	log.ForContext(ctx).Info("Coleções pendentes gravadas com sucesso")
	return nil
}

// PendingKeys lista as chaves ainda não persistidas
func (s *Service) PendingKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pendingKeys()
}

func (s *Service) pendingKeys() []string {
	keys := make([]string, 0, len(s.pending))
	for key := range s.pending {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Package dashboarding é o dono do estado do painel: roster, ledger mensal e
// período ativo. Toda mutação passa por aqui e é persistida logo em seguida.
package dashboarding

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vfg2006/sdr-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/sdr-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sdr-dashboard-api/pkg/log"
	"github.com/vfg2006/sdr-dashboard-api/pkg/metrics"
	"github.com/vfg2006/sdr-dashboard-api/pkg/utils"
)

// Nomes das operações usados em logs e métricas
const (
	opSelectPeriod    = "select_period"
	opUpdateMonth     = "update_month_field"
	opUpdateConsultor = "update_consultant_field"
	opCloseMonth      = "close_month"
	opAddSalesperson  = "add_salesperson"
	opRename          = "rename_salesperson"
	opRemove          = "remove_salesperson"
)

type Dashboarder interface {
	Load(ctx context.Context) error

	Roster() []domain.Salesperson
	ActivePeriod() domain.PeriodView
	AvailablePeriods() domain.AvailablePeriods
	Resolve(period domain.Period) domain.PeriodView
	Dashboard(period domain.Period) domain.DashboardView

	SelectPeriod(ctx context.Context, period domain.Period) (domain.PeriodView, error)
	UpdateMonthField(ctx context.Context, period domain.Period, field string, value any) (*domain.MutationResult, error)
	UpdateConsultantField(ctx context.Context, period domain.Period, salespersonID, field string, value any) (*domain.MutationResult, error)
	CloseMonth(ctx context.Context, period domain.Period) (*domain.MutationResult, error)
	AddSalesperson(ctx context.Context, request domain.CreateSalespersonRequest) (*domain.RosterResult, error)
	RenameSalesperson(ctx context.Context, salespersonID, name string) (*domain.RosterResult, error)
	RemoveSalesperson(ctx context.Context, salespersonID string) (*domain.RosterResult, error)

	FlushPending(ctx context.Context) error
	PendingKeys() []string
}

// Option configura dependências opcionais do serviço
type Option func(*Service)

// WithClock troca o relógio usado para o período inicial e o dataset padrão
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithRand troca a fonte aleatória do dataset padrão
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) {
		s.rng = rng
	}
}

func WithMetrics(collectors *metrics.Collectors) Option {
	return func(s *Service) {
		s.metrics = collectors
	}
}

// WithReadOnly impede qualquer gravação: padrões e ajustes da carga ficam
// só em memória
func WithReadOnly() Option {
	return func(s *Service) {
		s.readOnly = true
	}
}

type Service struct {
	repo     repository.DashboardRepository
	metrics  *metrics.Collectors
	now      func() time.Time
	rng      *rand.Rand
	readOnly bool

	// mu serializa todas as operações; nenhuma mutação intercala com outra
	mu      sync.Mutex
	roster  []domain.Salesperson
	ledger  domain.Ledger
	active  domain.Period
	pending map[string]bool
}

func NewService(repo repository.DashboardRepository, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		now:     time.Now,
		pending: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		seed := uint64(s.now().UnixNano())
		s.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	s.roster = domain.DefaultRoster()
	s.ledger = domain.Ledger{}
	s.active = domain.PeriodFromTime(s.now())

	return s
}

// Load lê roster e ledger do armazenamento. Cada chave cai no padrão de forma
// independente; falhas de leitura nunca impedem o painel de funcionar.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := log.ForContext(ctx)
	var seed []string

	roster, err := s.repo.LoadRoster(ctx)
	if err != nil {
		logger.WithError(err).WithField("store_key", s.repo.RosterKey()).Warn("Roster indisponível, usando consultores padrão")
		roster = domain.DefaultRoster()
		if shouldSeed(err) {
			seed = append(seed, s.repo.RosterKey())
		}
	}

	ledger, err := s.repo.LoadLedger(ctx)
	if err != nil {
		logger.WithError(err).WithField("store_key", s.repo.LedgerKey()).Warn("Ledger indisponível, usando dados de exemplo do mês atual")
		ledger = domain.DefaultLedger(s.now(), s.rng)
		if shouldSeed(err) {
			seed = append(seed, s.repo.LedgerKey())
		}
	}

	s.roster = roster
	s.ledger = ledger
	s.active = domain.PeriodFromTime(s.now())

	// Roster e ledger podem ter caído no padrão de forma independente
	if changed := s.ledger.Reconcile(s.roster); changed > 0 {
		logger.WithField("store_key", s.repo.LedgerKey()).Warnf("Ledger ajustado ao roster em %d períodos", changed)
		seed = append(seed, s.repo.LedgerKey())
	}

	// O mês corrente é materializado na abertura do painel
	key := s.active.Key()
	if _, ok := s.ledger[key]; !ok {
		s.ledger[key] = domain.NewMonthlyData(s.active, s.roster)
		seed = append(seed, s.repo.LedgerKey())
	}

	logger.Infof("Painel carregado: %d consultores, %d períodos", len(s.roster), len(s.ledger))

	s.persist(ctx, seed...)
	return nil
}

// shouldSeed indica se a chave deve receber o valor padrão logo após a carga
func shouldSeed(err error) bool {
	return errors.Is(err, repository.ErrNotStored) || errors.Is(err, repository.ErrMalformed)
}

func (s *Service) Roster() []domain.Salesperson {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.CloneRoster(s.roster)
}

func (s *Service) ActivePeriod() domain.PeriodView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resolve(s.active)
}

func (s *Service) AvailablePeriods() domain.AvailablePeriods {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := s.ledger.Keys()
	years := make([]int, 0)
	seen := make(map[int]bool)
	for _, key := range keys {
		period, err := domain.ParsePeriodKey(key.String())
		if err != nil {
			continue
		}
		if !seen[period.Year] {
			seen[period.Year] = true
			years = append(years, period.Year)
		}
	}

	return domain.AvailablePeriods{
		Periods: keys,
		Years:   years,
		Active:  s.active.Key(),
	}
}

// Resolve devolve o registro do período sem nunca gravar no ledger
func (s *Service) Resolve(period domain.Period) domain.PeriodView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.resolve(period)
}

// resolve retorna uma cópia; exige o lock
func (s *Service) resolve(period domain.Period) domain.PeriodView {
	key := period.Key()
	if data, ok := s.ledger[key]; ok {
		return domain.PeriodView{Key: key, Persisted: true, Data: data.Clone()}
	}

	return domain.PeriodView{
		Key:       key,
		Persisted: false,
		Data:      domain.NewMonthlyData(period, s.roster),
	}
}

// Dashboard calcula a visão derivada a partir de uma cópia do estado confirmado
func (s *Service) Dashboard(period domain.Period) domain.DashboardView {
	s.mu.Lock()
	view := s.resolve(period)
	roster := domain.CloneRoster(s.roster)
	s.mu.Unlock()

	return reporting.Dashboard(roster, view)
}

// SelectPeriod grava o registro sintetizado, se ainda não existir, e só então
// move o ponteiro do período ativo
func (s *Service) SelectPeriod(ctx context.Context, period domain.Period) (domain.PeriodView, error) {
	if err := period.Validate(); err != nil {
		return domain.PeriodView{}, NewDashboardError(err, apiErrors.ErrInvalidPeriod, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := period.Key()
	logger := log.ForContext(ctx).WithField("period", key)

	if _, ok := s.ledger[key]; !ok {
		s.ledger[key] = domain.NewMonthlyData(period, s.roster)
		logger.Info("Período criado com valores padrão")
		s.persist(ctx, s.repo.LedgerKey())
	}

	s.active = period
	s.metrics.Mutation(opSelectPeriod, metrics.OutcomeApplied)

	return s.resolve(period), nil
}

// UpdateMonthField altera um campo do registro mensal. Em mês fechado é no-op.
func (s *Service) UpdateMonthField(ctx context.Context, period domain.Period, field string, value any) (*domain.MutationResult, error) {
	monthField := domain.MonthField(field)
	if !monthField.IsValid() {
		s.metrics.Mutation(opUpdateMonth, metrics.OutcomeFailed)
		return nil, NewDashboardError(ErrUnknownField, apiErrors.ErrUnknownField, fmt.Sprintf("campo %q não é editável no mês", field))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := period.Key()
	logger := log.ForContext(ctx).WithFields(log.Fields{"period": key, "field": field})

	data, ok := s.ledger[key]
	if !ok {
		s.metrics.Mutation(opUpdateMonth, metrics.OutcomeFailed)
		return nil, NewDashboardError(ErrPeriodNotFound, apiErrors.ErrPeriodNotFound, fmt.Sprintf("período %s", key))
	}

	if data.IsClosed {
		logger.Debug("Edição ignorada: mês fechado")
		s.metrics.Mutation(opUpdateMonth, metrics.OutcomeIgnored)
		return &domain.MutationResult{Applied: false, Data: data.Clone()}, nil
	}

	if err := data.SetField(monthField, utils.ToNumber(value)); err != nil {
		return nil, NewDashboardError(err, apiErrors.ErrUnknownField, err.Error())
	}

	logger.Info("Campo do mês atualizado")
	s.metrics.Mutation(opUpdateMonth, metrics.OutcomeApplied)
	s.persist(ctx, s.repo.LedgerKey())

	return &domain.MutationResult{Applied: true, Data: data.Clone()}, nil
}

// UpdateConsultantField altera um campo do desempenho de um consultor no período
func (s *Service) UpdateConsultantField(ctx context.Context, period domain.Period, salespersonID, field string, value any) (*domain.MutationResult, error) {
	consultantField := domain.ConsultantField(field)
	if !consultantField.IsValid() {
		s.metrics.Mutation(opUpdateConsultor, metrics.OutcomeFailed)
		return nil, NewDashboardError(ErrUnknownField, apiErrors.ErrUnknownField, fmt.Sprintf("campo %q não é editável no consultor", field))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := period.Key()
	logger := log.ForContext(ctx).WithFields(log.Fields{"period": key, "salesperson_id": salespersonID, "field": field})

	data, ok := s.ledger[key]
	if !ok {
		s.metrics.Mutation(opUpdateConsultor, metrics.OutcomeFailed)
		return nil, NewDashboardError(ErrPeriodNotFound, apiErrors.ErrPeriodNotFound, fmt.Sprintf("período %s", key))
	}

	consultant := data.Consultant(salespersonID)
	if consultant == nil {
		s.metrics.Mutation(opUpdateConsultor, metrics.OutcomeFailed)
		return nil, NewSalespersonError(ErrSalespersonNotFound, apiErrors.ErrSalespersonNotFound, salespersonID, fmt.Sprintf("consultor sem registro no período %s", key))
	}

	if data.IsClosed {
		logger.Debug("Edição ignorada: mês fechado")
		s.metrics.Mutation(opUpdateConsultor, metrics.OutcomeIgnored)
		return &domain.MutationResult{Applied: false, Data: data.Clone()}, nil
	}

	if err := consultant.SetField(consultantField, utils.ToNumber(value)); err != nil {
		return nil, NewDashboardError(err, apiErrors.ErrUnknownField, err.Error())
	}

	logger.Info("Campo do consultor atualizado")
	s.metrics.Mutation(opUpdateConsultor, metrics.OutcomeApplied)
	s.persist(ctx, s.repo.LedgerKey())

	return &domain.MutationResult{Applied: true, Data: data.Clone()}, nil
}

// CloseMonth fecha o período de forma irreversível; chamar de novo não muda nada
func (s *Service) CloseMonth(ctx context.Context, period domain.Period) (*domain.MutationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := period.Key()
	logger := log.ForContext(ctx).WithField("period", key)

	data, ok := s.ledger[key]
	if !ok {
		s.metrics.Mutation(opCloseMonth, metrics.OutcomeFailed)
		return nil, NewDashboardError(ErrPeriodNotFound, apiErrors.ErrPeriodNotFound, fmt.Sprintf("período %s", key))
	}

	if data.IsClosed {
		logger.Debug("Mês já estava fechado")
		s.metrics.Mutation(opCloseMonth, metrics.OutcomeIgnored)
		return &domain.MutationResult{Applied: false, Data: data.Clone()}, nil
	}

	data.IsClosed = true
	logger.Info("Mês fechado")
	s.metrics.Mutation(opCloseMonth, metrics.OutcomeApplied)
	s.persist(ctx, s.repo.LedgerKey())

	return &domain.MutationResult{Applied: true, Data: data.Clone()}, nil
}

// AddSalesperson cria o consultor e insere um registro zerado em todos os
// períodos existentes, inclusive os fechados
func (s *Service) AddSalesperson(ctx context.Context, request domain.CreateSalespersonRequest) (*domain.RosterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := log.ForContext(ctx)

	// Nome vazio é ignorado antes de qualquer validação
	name := domain.NormalizeName(request.Name)
	if name == "" {
		logger.Debug("Consultor ignorado: nome vazio")
		s.metrics.Mutation(opAddSalesperson, metrics.OutcomeIgnored)
		return &domain.RosterResult{Applied: false, Roster: domain.CloneRoster(s.roster)}, nil
	}

	if !request.Gender.IsValid() {
		s.metrics.Mutation(opAddSalesperson, metrics.OutcomeFailed)
		return nil, NewDashboardError(ErrInvalidGender, apiErrors.ErrInvalidFormat, fmt.Sprintf("gênero %q", request.Gender))
	}

	id, err := s.newSalespersonID()
	if err != nil {
		s.metrics.Mutation(opAddSalesperson, metrics.OutcomeFailed)
		return nil, NewDashboardError(err, apiErrors.ErrInternalServer, "Erro ao gerar ID do consultor")
	}

	salesperson := domain.Salesperson{
		ID:     id,
		Name:   name,
		Gender: request.Gender,
		Avatar: domain.AvatarFor(request.Gender, s.roster),
	}

	// Roster e ledger mudam juntos, sem estado intermediário observável
	s.roster = append(s.roster, salesperson)
	for _, data := range s.ledger {
		if !data.HasConsultant(id) {
			data.Consultants = append(data.Consultants, domain.NewConsultantData(id))
		}
	}

	logger.WithField("salesperson_id", id).Infof("Consultor %s adicionado em %d períodos", name, len(s.ledger))
	s.metrics.Mutation(opAddSalesperson, metrics.OutcomeApplied)
	s.persist(ctx, s.repo.RosterKey(), s.repo.LedgerKey())

	return &domain.RosterResult{Applied: true, Salesperson: &salesperson, Roster: domain.CloneRoster(s.roster)}, nil
}

func (s *Service) newSalespersonID() (string, error) {
	for range 5 {
		id, err := utils.GenerateSalespersonID()
		if err != nil {
			return "", err
		}
		if domain.FindSalesperson(s.roster, id) < 0 {
			return id, nil
		}
	}
	return "", errors.New("colisão ao gerar ID do consultor")
}

// RenameSalesperson troca o nome, exceto quando o período ativo está fechado
func (s *Service) RenameSalesperson(ctx context.Context, salespersonID, name string) (*domain.RosterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := log.ForContext(ctx).WithField("salesperson_id", salespersonID)

	idx := domain.FindSalesperson(s.roster, salespersonID)
	if idx < 0 {
		s.metrics.Mutation(opRename, metrics.OutcomeFailed)
		return nil, NewSalespersonError(ErrSalespersonNotFound, apiErrors.ErrSalespersonNotFound, salespersonID, "consultor não está no roster")
	}

	name = domain.NormalizeName(name)
	ignored := &domain.RosterResult{Applied: false, Salesperson: &s.roster[idx], Roster: domain.CloneRoster(s.roster)}

	if name == "" {
		logger.Debug("Renomeação ignorada: nome vazio")
		s.metrics.Mutation(opRename, metrics.OutcomeIgnored)
		return cloneResult(ignored), nil
	}

	if active, ok := s.ledger[s.active.Key()]; ok && active.IsClosed {
		logger.WithField("period", s.active.Key()).Debug("Renomeação ignorada: período ativo fechado")
		s.metrics.Mutation(opRename, metrics.OutcomeIgnored)
		return cloneResult(ignored), nil
	}

	s.roster[idx].Name = name
	salesperson := s.roster[idx]

	logger.Infof("Consultor renomeado para %s", name)
	s.metrics.Mutation(opRename, metrics.OutcomeApplied)
	s.persist(ctx, s.repo.RosterKey())

	return &domain.RosterResult{Applied: true, Salesperson: &salesperson, Roster: domain.CloneRoster(s.roster)}, nil
}

// RemoveSalesperson apaga o consultor do roster e de todos os períodos.
// A confirmação do usuário é responsabilidade de quem chama.
func (s *Service) RemoveSalesperson(ctx context.Context, salespersonID string) (*domain.RosterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger := log.ForContext(ctx).WithField("salesperson_id", salespersonID)

	idx := domain.FindSalesperson(s.roster, salespersonID)
	if idx < 0 {
		s.metrics.Mutation(opRemove, metrics.OutcomeFailed)
		return nil, NewSalespersonError(ErrSalespersonNotFound, apiErrors.ErrSalespersonNotFound, salespersonID, "consultor não está no roster")
	}

	removed := s.roster[idx]
	roster := make([]domain.Salesperson, 0, len(s.roster)-1)
	roster = append(roster, s.roster[:idx]...)
	roster = append(roster, s.roster[idx+1:]...)
	s.roster = roster

	periods := 0
	for _, data := range s.ledger {
		if data.RemoveConsultant(salespersonID) {
			periods++
		}
	}

	logger.Infof("Consultor %s removido de %d períodos", removed.Name, periods)
	s.metrics.Mutation(opRemove, metrics.OutcomeApplied)
	s.persist(ctx, s.repo.RosterKey(), s.repo.LedgerKey())

	return &domain.RosterResult{Applied: true, Salesperson: &removed, Roster: domain.CloneRoster(s.roster)}, nil
}

func cloneResult(result *domain.RosterResult) *domain.RosterResult {
	clone := *result
	if result.Salesperson != nil {
		sp := *result.Salesperson
		clone.Salesperson = &sp
	}
	return &clone
}

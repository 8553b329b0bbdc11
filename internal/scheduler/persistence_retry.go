package scheduler

//go:generate mockgen -source=persistence_retry.go -destination=mocks/persistence_retry_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sdr-dashboard-api/internal/config"
)

// PendingFlusher é quem guarda as coleções com gravação pendente
type PendingFlusher interface {
	FlushPending(ctx context.Context) error
	PendingKeys() []string
}

// PersistenceRetryConfig representa a configuração do agendador de regravação
type PersistenceRetryConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PersistenceRetryService regrava periodicamente o que falhou ao ser persistido
type PersistenceRetryService struct {
	scheduler           *gocron.Scheduler
	config              PersistenceRetryConfig
	flusher             PendingFlusher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           string
}

// NewPersistenceRetryService cria uma nova instância do serviço de regravação
func NewPersistenceRetryService(flusher PendingFlusher, appConfig *config.Config) *PersistenceRetryService {
	retryConfig := PersistenceRetryConfig{
		CronSchedule: appConfig.PersistenceRetry.CronSchedule,
		SyncEnabled:  appConfig.PersistenceRetry.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retryConfig.CronSchedule,
		"sync_enabled":  retryConfig.SyncEnabled,
	}).Info("Configuração do agendador de regravação carregada")

	return &PersistenceRetryService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    retryConfig,
		flusher:   flusher,
	}
}

// Start inicia o agendador
func (s *PersistenceRetryService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Regravação automática desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de regravação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.retryPending(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar regravação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de regravação")
		s.scheduler.Stop()
	}()

	return nil
}

// retryPending tenta gravar as coleções pendentes; execuções não se sobrepõem
func (s *PersistenceRetryService) retryPending(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Regravação já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	pending := s.flusher.PendingKeys()
	if len(pending) == 0 {
		logrus.Debug("Nenhuma coleção pendente de gravação")
		s.setLastError(nil)
		return
	}

	logrus.WithField("cron_pending", pending).Info("Regravando coleções pendentes")

	err := s.flusher.FlushPending(ctx)
	s.setLastError(err)
	if err != nil {
		logrus.WithError(err).Error("Regravação falhou, nova tentativa no próximo ciclo")
		return
	}

	logrus.WithField("cron_pending", pending).Info("Regravação concluída")
}

func (s *PersistenceRetryService) setLastError(err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if err != nil {
		s.lastError = err.Error()
		return
	}
	s.lastError = ""
}

// TriggerManualSync inicia manualmente uma regravação, mesmo com o agendador desabilitado
func (s *PersistenceRetryService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Regravação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando regravação manual")
	go s.retryPending(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *PersistenceRetryService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"pending_keys":           s.flusher.PendingKeys(),
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

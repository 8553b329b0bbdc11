package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/storage"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/storage/memory"
	storagepg "github.com/vfg2006/sdr-dashboard-api/infrastructure/storage/postgres"
	"github.com/vfg2006/sdr-dashboard-api/infrastructure/storage/sqlite"
	"github.com/vfg2006/sdr-dashboard-api/internal/config"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sdr-dashboard-api/pkg/metrics"
)

// openStore abre o armazenamento escolhido em STORAGE_DRIVER
func openStore(ctx context.Context, cfg *config.Config) (storage.KeyValueStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverSQLite:
		store, err := sqlite.New(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		logrus.WithField("path", cfg.Storage.SQLitePath).Info("Armazenamento SQLite aberto com sucesso")
		return store, nil

	case config.StorageDriverPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}

		store, err := storagepg.New(ctx, conn)
		if err != nil {
			conn.Close()
			return nil, err
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return store, nil

	case config.StorageDriverMemory:
		logrus.Warn("Armazenamento em memória: os dados serão perdidos ao encerrar")
		return memory.New(), nil
	}

	return nil, fmt.Errorf("driver de armazenamento desconhecido: %s", cfg.Storage.Driver)
}

// loadDashboard abre o armazenamento e carrega o roster e o ledger
func loadDashboard(ctx context.Context, cfg *config.Config, collectors *metrics.Collectors, opts ...dashboarding.Option) (*dashboarding.Service, storage.KeyValueStore, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	repo := repository.NewDashboardRepository(store, cfg.Storage.RosterKey, cfg.Storage.LedgerKey)
	service := dashboarding.NewService(repo, append([]dashboarding.Option{dashboarding.WithMetrics(collectors)}, opts...)...)

	if err := service.Load(ctx); err != nil {
		store.Close()
		return nil, nil, err
	}

	return service, store, nil
}

package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sdr-dashboard-api/internal/api"
	"github.com/vfg2006/sdr-dashboard-api/internal/config"
	"github.com/vfg2006/sdr-dashboard-api/internal/scheduler"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/sdr-dashboard-api/pkg/metrics"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia a API HTTP do painel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			configureLogLevel(cfg.App.LogLevel)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			collectors := metrics.New()

			dashboardService, store, err := loadDashboard(ctx, cfg, collectors)
			if err != nil {
				return err
			}
			defer store.Close()

			if cfg.Auth.ManagerPasswordHash == "" {
				logrus.Warn("MANAGER_PASSWORD_HASH não configurado, login desabilitado")
			}
			authenticator := authenticating.NewService(cfg.Auth)

			persistenceRetryService := scheduler.NewPersistenceRetryService(dashboardService, cfg)
			if err := persistenceRetryService.Start(ctx); err != nil {
				logrus.WithError(err).Error("Erro ao iniciar o agendador de regravação")
			} else {
				logrus.Info("Agendador de regravação iniciado com sucesso")
			}

			server, err := api.New(cfg, dashboardService, authenticator, persistenceRetryService, collectors)
			if err != nil {
				return err
			}

			if err := server.Run(ctx); err != nil {
				return err
			}

			// Última tentativa antes de encerrar
			if err := dashboardService.FlushPending(context.Background()); err != nil {
				logrus.WithError(err).Error("Coleções pendentes não foram gravadas antes do desligamento")
			}

			return nil
		},
	}
}

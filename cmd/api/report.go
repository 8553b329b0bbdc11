package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sdr-dashboard-api/internal/config"
	"github.com/vfg2006/sdr-dashboard-api/internal/domain"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sdr-dashboard-api/pkg/utils"
)

func newReportCommand() *cobra.Command {
	var periodKey string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Imprime o painel de um período em JSON sem gravar no armazenamento",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			configureLogLevel(cfg.App.LogLevel)

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			dashboardService, store, err := loadDashboard(ctx, cfg, nil, dashboarding.WithReadOnly())
			if err != nil {
				return err
			}
			defer store.Close()

			period := dashboardService.ActivePeriod().Data.Period()
			if periodKey != "" {
				period, err = domain.ParsePeriodKey(periodKey)
				if err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(dashboardService.Dashboard(period)))
			return nil
		},
	}

	cmd.Flags().StringVar(&periodKey, "period", "", "período no formato yyyy-mm (mês de 00 a 11); padrão é o período ativo")

	return cmd
}

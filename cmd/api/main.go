package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sdr-dashboard-api/pkg/log"
)

func main() {
	// Formato padrão até a configuração ser lida
	log.Configure("info")

	rootCmd := &cobra.Command{
		Use:           "sdr-dashboard-api",
		Short:         "API do painel de desempenho dos SDRs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newServeCommand(),
		newReportCommand(),
		newHashPasswordCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// configureLogLevel define o nível de log com base na configuração
func configureLogLevel(level string) {
	logLevel, ok := log.Configure(level)
	if !ok {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)
}

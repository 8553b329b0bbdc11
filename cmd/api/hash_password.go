package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/sdr-dashboard-api/internal/usecases/authenticating"
)

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <senha>",
		Short: "Gera o hash bcrypt para MANAGER_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := authenticating.HashPassword(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

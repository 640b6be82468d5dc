package main

import (
	"github.com/spf13/cobra"

	"github.com/ja7ad/pemev/pkg/config"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Long: `Config prints the configuration after defaults, the --config file, PEMEV_*
environment variables and flags have been applied. The output is itself a
valid --config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := config.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/ggedit/config"
)

func newConfigCommand(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after loading --config, in TOML or YAML. The
output is a valid configuration file.

Example:
  ggedit config --format yaml > ggedit.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := config.FormatOf(format)
			if err != nil {
				return err
			}
			b, err := a.cfg.Marshal(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format: toml or yaml")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/starfield/internal/usecase"
)

func validateCmd() *cobra.Command {
	var workspace string
	var configPath string
	var flags renderFlags

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate the workspace configuration (renders nothing)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace, configPath)
			if err != nil {
				return err
			}

			cfg, err := flags.apply(cmd.Flags(), ws.cfg)
			if err != nil {
				return err
			}

			if err := usecase.NewValidateConfig().Execute(cfg); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/starfield.yaml)")
	flags.register(c.Flags())
	return c
}

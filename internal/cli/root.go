package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newRootCmd renders when called without a subcommand.
func newRootCmd() *cobra.Command {
	var o renderOptions

	cmd := &cobra.Command{
		Use:          "starfield",
		Short:        "starfield: procedural starfield images (SVG + PNG)",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, &o)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable verbose logging to .starfield/logs/starfield.log")
	bindRenderFlags(cmd, &o)

	cmd.AddCommand(
		renderCmd(),
		validateCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

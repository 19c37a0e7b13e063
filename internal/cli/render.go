package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/infra/artifactfs"
	"github.com/aalvaropc/starfield/internal/infra/logger"
	"github.com/aalvaropc/starfield/internal/infra/pngimage"
	"github.com/aalvaropc/starfield/internal/infra/progress"
	"github.com/aalvaropc/starfield/internal/infra/randsource"
	"github.com/aalvaropc/starfield/internal/infra/rasterizer"
	"github.com/aalvaropc/starfield/internal/infra/runstore"
	"github.com/aalvaropc/starfield/internal/infra/svgscene"
	"github.com/aalvaropc/starfield/internal/ports"
	"github.com/aalvaropc/starfield/internal/ui/tui"
	"github.com/aalvaropc/starfield/internal/usecase"
)

type renderOptions struct {
	workspace  string
	configPath string
	noProgress bool
	format     string
	flags      renderFlags
}

func renderCmd() *cobra.Command {
	var o renderOptions

	c := &cobra.Command{
		Use:   "render",
		Short: "Generate a starfield and write it as SVG and PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, &o)
		},
	}

	bindRenderFlags(c, &o)
	return c
}

func bindRenderFlags(c *cobra.Command, o *renderOptions) {
	c.Flags().StringVarP(&o.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&o.configPath, "config", "", "Config file (default: <workspace>/starfield.yaml)")
	c.Flags().BoolVar(&o.noProgress, "no-progress", false, "Disable the interactive progress display")
	c.Flags().StringVar(&o.format, "format", "pretty", "Output format: pretty|json")
	o.flags.register(c.Flags())
}

func runRender(cmd *cobra.Command, o *renderOptions) error {
	if err := checkFormat(o.format); err != nil {
		return err
	}

	ws, err := loadWorkspace(o.workspace, o.configPath)
	if err != nil {
		return err
	}

	cfg, err := o.flags.apply(cmd.Flags(), ws.cfg)
	if err != nil {
		return err
	}

	debug := debugEnabled(cmd)
	cleanup, _ := logger.Setup(logger.Config{Root: ws.root, Debug: debug})
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}
	log := logger.For("render")
	log.Info("cli.render", "workspace", ws.root, "config", ws.configPath)

	deps := usecase.RenderDeps{
		Sources:    randsource.PCG{},
		Encoder:    svgscene.New(),
		Rasterizer: rasterizer.New(),
		Images:     pngimage.New(cfg.PNG.Compression),
		Artifacts:  artifactfs.New(ws.fs),
	}

	opts := []usecase.RenderOption{usecase.WithLogger(log)}
	if cfg.Runs.Enabled {
		opts = append(opts, usecase.WithRunStore(runstore.NewJSONStore(ws.fs, cfg, runstore.WithIndex(true))))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	interactive := !o.noProgress && o.format != "json" && isTerminal(out)

	if interactive {
		job := func(ctx context.Context, p ports.ProgressReporter) (domain.RunRecord, error) {
			uc := usecase.NewRenderStarfield(deps, append(opts, usecase.WithProgress(p))...)
			return uc.Execute(ctx, cfg)
		}
		// The TUI shows the outcome itself.
		_, err := tui.Run(ctx, tui.Deps{Logger: logger.For("tui"), Debug: debug}, job)
		return err
	}

	uc := usecase.NewRenderStarfield(deps, append(opts, usecase.WithProgress(progress.NewLogReporter(logger.For("progress"))))...)
	rec, err := uc.Execute(ctx, cfg)
	if err != nil {
		return err
	}
	return printRecord(out, rec, o.format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func debugEnabled(cmd *cobra.Command) bool {
	v, err := cmd.Flags().GetBool("debug")
	return err == nil && v
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printRecord(w io.Writer, rec domain.RunRecord, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case "pretty", "":
		printPrettyRecord(w, rec)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyRecord(w io.Writer, rec domain.RunRecord) {
	total := rec.EndedAt.Sub(rec.StartedAt)
	if rec.StartedAt.IsZero() || rec.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Seed:       %d\n", rec.Seed)
	fmt.Fprintf(w, "Canvas:     %dx%d\n", rec.Width, rec.Height)
	fmt.Fprintf(w, "Objects:    %d (stars=%d stretchy=%d swirls=%d)\n",
		rec.Stats.Objects, rec.Stats.Stars, rec.Stats.Stretchy, rec.Stats.Swirls)
	fmt.Fprintf(w, "Primitives: %d\n", rec.Stats.Primitives)
	fmt.Fprintf(w, "Generate:   %dms\n", rec.GenerateMS)
	fmt.Fprintf(w, "Render:     %dms\n", rec.RenderMS)
	fmt.Fprintf(w, "Duration:   %s\n", total.Round(time.Millisecond))
	fmt.Fprintf(w, "SVG:        %s\n", rec.SVGPath)
	fmt.Fprintf(w, "PNG:        %s\n", rec.PNGPath)
	if rec.ID != "" {
		fmt.Fprintf(w, "Run ID:     %s\n", rec.ID)
	}
}

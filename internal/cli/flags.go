package cli

import (
	"github.com/spf13/pflag"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/infra/config"
)

// renderFlags holds the CLI overrides; only flags the user set are applied.
type renderFlags struct {
	width       int
	height      int
	objects     int
	seed        uint64
	svg         string
	png         string
	compression string
	noRecord    bool
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	d := domain.DefaultConfig()

	fs.IntVar(&f.width, "width", d.Canvas.Width, "Canvas width in pixels")
	fs.IntVar(&f.height, "height", d.Canvas.Height, "Canvas height in pixels")
	fs.IntVarP(&f.objects, "objects", "n", d.Objects, "Number of objects to generate")
	fs.Uint64Var(&f.seed, "seed", 0, "Random seed (random when omitted)")
	fs.StringVar(&f.svg, "svg", d.Output.SVG, "SVG output path, relative to the workspace")
	fs.StringVar(&f.png, "png", d.Output.PNG, "PNG output path, relative to the workspace")
	fs.StringVar(&f.compression, "compression", string(d.PNG.Compression), "PNG compression: default|none|speed|best")
	fs.BoolVar(&f.noRecord, "no-record", false, "Do not save a run record under runs/")
}

// apply layers the flags the user changed over cfg.
func (f *renderFlags) apply(fs *pflag.FlagSet, cfg domain.Config) (domain.Config, error) {
	if fs.Changed("width") {
		cfg.Canvas.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Canvas.Height = f.height
	}
	if fs.Changed("objects") {
		cfg.Objects = f.objects
	}
	if fs.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	if fs.Changed("svg") {
		cfg.Output.SVG = f.svg
	}
	if fs.Changed("png") {
		cfg.Output.PNG = f.png
	}
	if fs.Changed("compression") {
		level, err := config.ParseCompression(f.compression)
		if err != nil {
			return domain.Config{}, &domain.OpError{
				Op:   "cli.flags",
				Kind: domain.KindInvalidConfig,
				Err:  err,
			}
		}
		cfg.PNG.Compression = level
	}
	if f.noRecord {
		cfg.Runs.Enabled = false
	}
	return cfg, nil
}

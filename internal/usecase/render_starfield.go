package usecase

import (
	"context"
	"image"
	"io"
	"log/slog"
	"time"

	"go.uber.org/multierr"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/ports"
	"github.com/aalvaropc/starfield/internal/usecase/stargen"
)

// RenderDeps groups the adapters the render pipeline writes through.
type RenderDeps struct {
	Sources    ports.RandomSourceFactory
	Encoder    ports.SceneEncoder
	Rasterizer ports.Rasterizer
	Images     ports.ImageEncoder
	Artifacts  ports.ArtifactStore
}

type RenderStarfield struct {
	deps     RenderDeps
	validate *ValidateConfig
	runs     ports.RunStore
	progress ports.ProgressReporter
	log      *slog.Logger
	every    int
	now      func() time.Time
}

type RenderOption func(*RenderStarfield)

// WithRunStore saves a RunRecord after every successful render.
func WithRunStore(rs ports.RunStore) RenderOption {
	return func(uc *RenderStarfield) { uc.runs = rs }
}

func WithProgress(p ports.ProgressReporter) RenderOption {
	return func(uc *RenderStarfield) {
		if p != nil {
			uc.progress = p
		}
	}
}

func WithLogger(l *slog.Logger) RenderOption {
	return func(uc *RenderStarfield) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithProgressEvery sets how many objects are generated between progress
// reports and cancellation checks.
func WithProgressEvery(n int) RenderOption {
	return func(uc *RenderStarfield) {
		if n > 0 {
			uc.every = n
		}
	}
}

// WithClock is useful for tests.
func WithClock(now func() time.Time) RenderOption {
	return func(uc *RenderStarfield) {
		if now != nil {
			uc.now = now
		}
	}
}

func NewRenderStarfield(deps RenderDeps, opts ...RenderOption) *RenderStarfield {
	uc := &RenderStarfield{
		deps:     deps,
		validate: NewValidateConfig(),
		progress: nopProgress{},
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		every:    1000,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute generates the scene for cfg, then serializes it to SVG, rasterizes
// the SVG back and writes the PNG. The returned record carries the seed that
// was used, even when the run fails after generation started.
func (uc *RenderStarfield) Execute(ctx context.Context, cfg domain.Config) (domain.RunRecord, error) {
	if err := uc.validate.Execute(cfg); err != nil {
		return domain.RunRecord{}, err
	}

	seed := uc.deps.Sources.Seed(cfg.Seed)
	out, err := resolveOutputs(cfg, seed)
	if err != nil {
		return domain.RunRecord{Seed: seed}, err
	}
	cfg.Output = out

	rec := domain.RunRecord{
		Seed:      seed,
		Width:     cfg.Canvas.Width,
		Height:    cfg.Canvas.Height,
		Objects:   cfg.Objects,
		SVGPath:   cfg.Output.SVG,
		PNGPath:   cfg.Output.PNG,
		StartedAt: uc.now(),
	}
	log := uc.log.With("seed", seed)
	log.Info("render.start", "width", rec.Width, "height", rec.Height, "objects", rec.Objects)

	rec, err = uc.run(ctx, cfg, rec, log)
	rec.EndedAt = uc.now()
	if err != nil {
		log.Error("render.failed", "err", err, "kind", kindOf(err))
		return rec, err
	}

	uc.progress.Phase(domain.PhaseRecord)
	if uc.runs != nil {
		id, err := uc.runs.SaveRun(rec)
		if err != nil {
			log.Error("run.save_failed", "err", err)
			return rec, err
		}
		rec.ID = id
		log.Info("run.saved", "id", id)
	}

	uc.progress.Phase(domain.PhaseDone)
	log.Info("render.done",
		"generate_ms", rec.GenerateMS,
		"render_ms", rec.RenderMS,
		"primitives", rec.Stats.Primitives,
	)
	return rec, nil
}

func (uc *RenderStarfield) run(ctx context.Context, cfg domain.Config, rec domain.RunRecord, log *slog.Logger) (domain.RunRecord, error) {
	width, height := uint32(cfg.Canvas.Width), uint32(cfg.Canvas.Height)

	uc.progress.Phase(domain.PhaseGenerate)
	genStart := uc.now()
	gen := stargen.New(uc.deps.Sources.New(rec.Seed), width, height)
	builder := stargen.NewSceneBuilder(gen, stargen.WithProgress(uc.every, uc.progress.Objects))

	canvas, stats, err := builder.Build(ctx, cfg.Objects)
	if err != nil {
		return rec, err
	}
	rec.Stats = stats
	rec.GenerateMS = uc.now().Sub(genStart).Milliseconds()
	log.Info("scene.built",
		"stars", stats.Stars,
		"stretchy", stats.Stretchy,
		"swirls", stats.Swirls,
		"primitives", stats.Primitives,
		"elapsed_ms", rec.GenerateMS,
	)

	renderStart := uc.now()

	uc.progress.Phase(domain.PhaseSerialize)
	err = uc.writeArtifact(cfg.Output.SVG, domain.KindSerialize, "render.svg", func(w io.Writer) error {
		return uc.deps.Encoder.Encode(w, canvas)
	})
	if err != nil {
		return rec, err
	}
	log.Info("svg.saved", "path", cfg.Output.SVG)

	if err := ctx.Err(); err != nil {
		return rec, err
	}

	uc.progress.Phase(domain.PhaseRasterize)
	img, err := uc.rasterize(cfg.Output.SVG, cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return rec, err
	}

	if err := ctx.Err(); err != nil {
		return rec, err
	}

	uc.progress.Phase(domain.PhaseEncode)
	err = uc.writeArtifact(cfg.Output.PNG, domain.KindImageWrite, "render.png", func(w io.Writer) error {
		return uc.deps.Images.Encode(w, img)
	})
	if err != nil {
		return rec, err
	}
	rec.RenderMS = uc.now().Sub(renderStart).Milliseconds()
	log.Info("png.saved", "path", cfg.Output.PNG, "elapsed_ms", rec.RenderMS)

	return rec, nil
}

func (uc *RenderStarfield) rasterize(svgPath string, width, height int) (_ *image.RGBA, err error) {
	in, err := uc.deps.Artifacts.Open(svgPath)
	if err != nil {
		return nil, classify(err, domain.KindParse, "render.open_svg", svgPath)
	}
	defer func() { err = multierr.Append(err, closeAs(in, domain.KindParse, "render.open_svg", svgPath)) }()

	img, err := uc.deps.Rasterizer.Rasterize(in, width, height)
	if err != nil {
		if domain.IsKind(err, domain.KindParse) {
			return nil, err
		}
		return nil, classify(err, domain.KindRasterize, "render.rasterize", svgPath)
	}
	return img, nil
}

// writeArtifact streams write into the named artifact and commits it. A failed
// write discards the artifact. Failures at any step are reported with kind.
func (uc *RenderStarfield) writeArtifact(name string, kind domain.ErrorKind, op string, write func(io.Writer) error) error {
	w, err := uc.deps.Artifacts.Create(name)
	if err != nil {
		return classify(err, kind, op, name)
	}

	if err := write(w); err != nil {
		return multierr.Append(classify(err, kind, op, name), w.Discard())
	}
	return closeAs(w, kind, op, name)
}

func closeAs(c io.Closer, kind domain.ErrorKind, op, path string) error {
	if err := c.Close(); err != nil {
		return classify(err, kind, op, path)
	}
	return nil
}

// classify keeps err when it already carries kind and wraps it otherwise.
func classify(err error, kind domain.ErrorKind, op, path string) error {
	if err == nil || domain.IsKind(err, kind) {
		return err
	}
	return &domain.OpError{Op: op, Kind: kind, Path: path, Err: err}
}

func kindOf(err error) string {
	for _, k := range []domain.ErrorKind{
		domain.KindSerialize,
		domain.KindParse,
		domain.KindRasterize,
		domain.KindImageWrite,
		domain.KindInvalidConfig,
		domain.KindNotFound,
		domain.KindExecution,
	} {
		if domain.IsKind(err, k) {
			return string(k)
		}
	}
	return "other"
}

type nopProgress struct{}

func (nopProgress) Phase(domain.Phase) {}
func (nopProgress) Objects(_, _ int) {}

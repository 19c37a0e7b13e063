package stargen

import (
	"context"

	"github.com/aalvaropc/starfield/internal/domain"
)

const defaultProgressEvery = 1000

// SceneBuilder owns the only mutation path of a canvas: it lays down the
// background and appends every generated object in order.
type SceneBuilder struct {
	gen        *Generator
	every      int
	onProgress func(done, total int)
}

type BuilderOption func(*SceneBuilder)

// WithProgress calls fn every `every` objects and once when done. fn runs on
// the building goroutine.
func WithProgress(every int, fn func(done, total int)) BuilderOption {
	return func(b *SceneBuilder) {
		if every > 0 {
			b.every = every
		}
		b.onProgress = fn
	}
}

func NewSceneBuilder(gen *Generator, opts ...BuilderOption) *SceneBuilder {
	b := &SceneBuilder{
		gen:   gen,
		every: defaultProgressEvery,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build generates n objects onto a fresh canvas. The context is checked every
// progress interval; cancellation discards the partial canvas.
func (b *SceneBuilder) Build(ctx context.Context, n int) (*domain.Canvas, domain.SceneStats, error) {
	var stats domain.SceneStats

	c := domain.NewCanvas(b.gen.width, b.gen.height)
	c.Grow(n + 1)
	c.Add(domain.Background(b.gen.width, b.gen.height))

	for i := 0; i < n; i++ {
		if i%b.every == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, err
			}
			b.report(i, n)
		}

		obj := b.gen.GenerateObject()
		c.Add(obj.Primitives...)
		stats.Count(obj)
	}

	b.report(n, n)
	return c, stats, nil
}

func (b *SceneBuilder) report(done, total int) {
	if b.onProgress != nil {
		b.onProgress(done, total)
	}
}

package stargen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/starfield/internal/domain"
)

func TestBuild_Composition(t *testing.T) {
	b := NewSceneBuilder(New(seeded(21), 4000, 2000))

	c, stats, err := b.Build(context.Background(), 5000)
	require.NoError(t, err)

	assert.Equal(t, domain.Background(4000, 2000), c.At(0))
	assert.Equal(t, 5000, stats.Objects)
	assert.Equal(t, stats.Objects, stats.Stars+stats.Stretchy+stats.Swirls)
	assert.Equal(t, 1+stats.Primitives, c.Len())
	assert.GreaterOrEqual(t, c.Len(), 1+5000)

	for i, p := range c.All() {
		if i == 0 {
			continue
		}
		assert.Equal(t, domain.ShapeCircle, p.Shape.Kind)
	}
}

func TestBuild_DeterministicForSeed(t *testing.T) {
	build := func() *domain.Canvas {
		c, _, err := NewSceneBuilder(New(seeded(99), 4000, 2000)).Build(context.Background(), 3000)
		require.NoError(t, err)
		return c
	}

	a, b := build(), build()
	require.Equal(t, a.Len(), b.Len())
	for i, p := range a.All() {
		require.Equal(t, p, b.At(i), "primitive %d", i)
	}
}

func TestBuild_SinglePlainStar(t *testing.T) {
	src := &scriptedSource{
		floats: []float32{0.5, 0.25, 0.5, 0.5},
		uints:  []uint32{byteDraw(3), byteDraw(250), byteDraw(220)},
	}
	c, stats, err := NewSceneBuilder(New(src, 4000, 2000)).Build(context.Background(), 1)
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
	assert.Equal(t, domain.Background(4000, 2000), c.At(0))

	star := c.At(1)
	assert.Equal(t, domain.Circle(1), star.Shape)
	assert.Equal(t, domain.Point{X: 1000, Y: 1000}, star.Position)
	assert.Equal(t, domain.Color{R: 220, G: 245, B: 250}, star.Fill)
	assert.Equal(t, domain.SceneStats{Objects: 1, Stars: 1, Primitives: 1}, stats)
}

func TestBuild_ZeroObjectsIsBackgroundOnly(t *testing.T) {
	c, stats, err := NewSceneBuilder(New(seeded(1), 10, 10)).Build(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Zero(t, stats.Objects)
}

func TestBuild_ReportsProgress(t *testing.T) {
	var calls [][2]int
	b := NewSceneBuilder(New(seeded(2), 100, 100), WithProgress(100, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	}))

	_, _, err := b.Build(context.Background(), 250)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 250}, {100, 250}, {200, 250}, {250, 250}}, calls)
}

func TestBuild_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, _, err := NewSceneBuilder(New(seeded(3), 100, 100)).Build(ctx, 10)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, context.Canceled))
}

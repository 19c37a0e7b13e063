package stargen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aalvaropc/starfield/internal/domain"
)

func TestPickStarColor_BiasHoldsForAllClasses(t *testing.T) {
	g := New(seeded(7), 100, 100)
	rolls := seeded(8)

	for i := 0; i < 20000; i++ {
		roll := rolls.Float32()
		c := g.PickStarColor(&roll)

		assert.GreaterOrEqual(t, c.R, uint8(210))
		switch {
		case roll < 0.0025:
			assert.GreaterOrEqual(t, c.G, uint8(215))
			assert.GreaterOrEqual(t, c.B, uint8(215))
		case roll < 0.05:
			assert.Equal(t, uint8(235), c.G)
			assert.Equal(t, uint8(255), c.B)
		default:
			assert.GreaterOrEqual(t, c.G, uint8(245))
			assert.GreaterOrEqual(t, c.B, uint8(245))
		}
	}
}

func TestPickStarColor_ClampsLowDraws(t *testing.T) {
	cases := []struct {
		name string
		roll float32
		want domain.Color
	}{
		{name: "rare", roll: 0.001, want: domain.Color{R: 210, G: 215, B: 215}},
		{name: "blue-white", roll: 0.01, want: domain.Color{R: 210, G: 235, B: 255}},
		{name: "default", roll: 0.9, want: domain.Color{R: 210, G: 245, B: 245}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := New(&scriptedSource{}, 10, 10)
			roll := c.roll
			assert.Equal(t, c.want, g.PickStarColor(&roll))
		})
	}
}

func TestPickStarColor_KeepsHighDraws(t *testing.T) {
	src := &scriptedSource{uints: []uint32{byteDraw(250), byteDraw(251), byteDraw(240)}}
	g := New(src, 10, 10)

	roll := float32(0.001)
	assert.Equal(t, domain.Color{R: 240, G: 250, B: 251}, g.PickStarColor(&roll))
}

func TestPickStarColor_DrawsRollWhenAbsent(t *testing.T) {
	src := &scriptedSource{floats: []float32{0.03}}
	g := New(src, 10, 10)

	c := g.PickStarColor(nil)
	assert.Equal(t, uint8(235), c.G)
	assert.Equal(t, uint8(255), c.B)
	assert.Empty(t, src.floats)
}

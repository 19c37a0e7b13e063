package stargen

import (
	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/ports"
)

// Rarity thresholds shared by object dispatch, star radius and star colour.
const (
	rareRoll     = 0.0025
	brightRoll   = 0.05
	stretchyRoll = 0.16
)

// Generator produces scene objects for a canvas of a fixed size.
type Generator struct {
	rnd    ports.RandomSource
	width  uint32
	height uint32
}

func New(rnd ports.RandomSource, width, height uint32) *Generator {
	return &Generator{
		rnd:    rnd,
		width:  width,
		height: height,
	}
}

func (g *Generator) randomPoint() domain.Point {
	x := g.rnd.Float32() * float32(g.width)
	y := g.rnd.Float32() * float32(g.height)
	return domain.Point{X: x, Y: y}
}

func (g *Generator) randomByte() uint8 {
	return uint8(g.rnd.Uint32() >> 24)
}

// randomSign returns -1 or +1 with equal probability.
func (g *Generator) randomSign() float32 {
	if g.rnd.Uint32()&1 == 0 {
		return 1
	}
	return -1
}

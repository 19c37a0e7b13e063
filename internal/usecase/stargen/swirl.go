package stargen

import (
	"github.com/chewxy/math32"

	"github.com/aalvaropc/starfield/internal/domain"
)

const (
	minSwirlSteps     = 18
	maxSwirlSteps     = 54
	maxSwirlRate      = 0.1
	swirlRateScale    = 2.9
	maxSwirlHalfTurns = 96
)

// MaxSwirlRadius bounds the distance of any swirl star from its centre.
const MaxSwirlRadius = maxSwirlRate * maxSwirlHalfTurns * math32.Pi

// SwirlParams fully determines the shape of a swirl cluster.
type SwirlParams struct {
	Center domain.Point
	// V scales radial growth, W is the angular rate. Both are signed.
	V float32
	W float32
	// Sweep is the total curve parameter range, up to 96π.
	Sweep float32
	Steps int
}

// GenerateSwirl traces a randomly parameterized spiral arm of stars.
func (g *Generator) GenerateSwirl() []domain.Primitive {
	return g.TraceSwirl(g.RandomSwirlParams())
}

func (g *Generator) RandomSwirlParams() SwirlParams {
	center := g.randomPoint()
	v := g.swirlRate()
	w := g.swirlRate()
	sweep := math32.Pi * (g.rnd.Float32() * maxSwirlHalfTurns)
	steps := minSwirlSteps + g.rnd.IntN(maxSwirlSteps-minSwirlSteps+1)

	return SwirlParams{
		Center: center,
		V:      v,
		W:      w,
		Sweep:  sweep,
		Steps:  steps,
	}
}

// TraceSwirl samples r(t) = V*t at angle W*t around the centre, at
// t = i*Sweep/Steps for i in [0, Steps), and places a star at each sample.
// Points are not clamped to the canvas.
func (g *Generator) TraceSwirl(p SwirlParams) []domain.Primitive {
	if p.Steps <= 0 {
		return nil
	}

	step := p.Sweep / float32(p.Steps)
	out := make([]domain.Primitive, 0, p.Steps)
	for i := 0; i < p.Steps; i++ {
		t := float32(i) * step
		radius := p.V * t
		pt := domain.Point{
			X: radius*math32.Cos(p.W*t) + p.Center.X,
			Y: radius*math32.Sin(p.W*t) + p.Center.Y,
		}
		out = append(out, g.MakeStar(&pt)...)
	}
	return out
}

func (g *Generator) swirlRate() float32 {
	return min(g.rnd.Float32()*swirlRateScale, maxSwirlRate) * g.randomSign()
}

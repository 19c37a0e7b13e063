package stargen

import "github.com/aalvaropc/starfield/internal/domain"

// PickStarColor returns a warm, bright star colour. roll selects the
// brightness class; when nil a fresh one is drawn.
//
// Red is never below 210. Green and blue are >= 215 for the rarest class,
// exactly (235, 255) for the blue-white class and >= 245 otherwise.
func (g *Generator) PickStarColor(roll *float32) domain.Color {
	var r float32
	if roll != nil {
		r = *roll
	} else {
		r = g.rnd.Float32()
	}

	var green, blue uint8
	switch {
	case r < rareRoll:
		green, blue = max(g.randomByte(), 215), max(g.randomByte(), 215)
	case r < brightRoll:
		green, blue = 235, 255
	default:
		green, blue = max(g.randomByte(), 245), max(g.randomByte(), 245)
	}

	return domain.Color{
		R: max(g.randomByte(), 210),
		G: green,
		B: blue,
	}
}

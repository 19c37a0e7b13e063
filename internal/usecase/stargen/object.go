package stargen

import "github.com/aalvaropc/starfield/internal/domain"

// GenerateObject draws one object: a swirl cluster (~0.25%), a stretchy star
// (~15.75%) or a plain star.
func (g *Generator) GenerateObject() domain.Object {
	r := g.rnd.Float32()
	switch {
	case r < rareRoll:
		return domain.Object{Kind: domain.ObjectSwirl, Primitives: g.GenerateSwirl()}
	case r < stretchyRoll:
		return domain.Object{Kind: domain.ObjectStretchy, Primitives: g.StretchyStar()}
	default:
		return domain.Object{Kind: domain.ObjectStar, Primitives: g.MakeStar(nil)}
	}
}

// MakeStar emits a single filled circle at pos, or at a uniformly random
// position when pos is nil. Radius and colour share one rarity roll, so the
// big stars are also the hot ones.
func (g *Generator) MakeStar(pos *domain.Point) []domain.Primitive {
	var p domain.Point
	if pos != nil {
		p = *pos
	} else {
		p = g.randomPoint()
	}

	r := g.rnd.Float32()
	return []domain.Primitive{{
		Shape:    domain.Circle(starRadius(r)),
		Position: p,
		Fill:     g.PickStarColor(&r),
	}}
}

// StretchyStar is the elongated-star variant. It currently renders as a 1px
// star whose colour class is drawn independently of its size.
// TODO: draw a short bezier stroke and shear it instead of a single point.
func (g *Generator) StretchyStar() []domain.Primitive {
	p := g.randomPoint()
	return []domain.Primitive{{
		Shape:    domain.Circle(1),
		Position: p,
		Fill:     g.PickStarColor(nil),
	}}
}

func starRadius(roll float32) uint32 {
	switch {
	case roll < rareRoll:
		return 3
	case roll < brightRoll:
		return 2
	default:
		return 1
	}
}

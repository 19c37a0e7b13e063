package domain

// ObjectKind identifies which generation branch produced an object.
type ObjectKind string

const (
	ObjectStar     ObjectKind = "star"
	ObjectStretchy ObjectKind = "stretchy"
	ObjectSwirl    ObjectKind = "swirl"
)

// Object is the output of one generation call: one or more primitives of the
// same kind.
type Object struct {
	Kind       ObjectKind
	Primitives []Primitive
}

// SceneStats summarizes a built scene. Primitives excludes the background.
type SceneStats struct {
	Objects    int `json:"objects"`
	Stars      int `json:"stars"`
	Stretchy   int `json:"stretchy"`
	Swirls     int `json:"swirls"`
	Primitives int `json:"primitives"`
}

// Count records one generated object.
func (s *SceneStats) Count(o Object) {
	s.Objects++
	s.Primitives += len(o.Primitives)
	switch o.Kind {
	case ObjectStar:
		s.Stars++
	case ObjectStretchy:
		s.Stretchy++
	case ObjectSwirl:
		s.Swirls++
	}
}

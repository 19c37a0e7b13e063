package domain

import "iter"

// Point is a position in canvas space. Points produced by swirls may fall
// outside the canvas; they are kept as-is.
type Point struct {
	X float32
	Y float32
}

// Color is an opaque 8-bit RGB colour.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Black is the canvas background.
var Black = Color{}

type ShapeKind string

const (
	ShapeCircle    ShapeKind = "circle"
	ShapeRectangle ShapeKind = "rectangle"
)

// Shape describes the geometry of a primitive. Radius is used by circles,
// Width/Height by rectangles.
type Shape struct {
	Kind   ShapeKind
	Radius uint32
	Width  uint32
	Height uint32
}

func Circle(radius uint32) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

func Rectangle(width, height uint32) Shape {
	return Shape{Kind: ShapeRectangle, Width: width, Height: height}
}

// Primitive is a filled shape placed on the canvas. Circles are positioned by
// their centre, rectangles by their top-left corner.
type Primitive struct {
	Shape    Shape
	Position Point
	Fill     Color
}

// Background returns the full-bounds black rectangle every scene starts with.
func Background(width, height uint32) Primitive {
	return Primitive{
		Shape:    Rectangle(width, height),
		Position: Point{X: 0, Y: 0},
		Fill:     Black,
	}
}

// Canvas is a fixed-size drawing surface with an append-only display list.
// Insertion order is paint order.
type Canvas struct {
	width  uint32
	height uint32
	list   []Primitive
}

func NewCanvas(width, height uint32) *Canvas {
	return &Canvas{width: width, height: height}
}

func (c *Canvas) Width() uint32  { return c.width }
func (c *Canvas) Height() uint32 { return c.height }

// Add appends primitives to the display list.
func (c *Canvas) Add(ps ...Primitive) {
	c.list = append(c.list, ps...)
}

// Grow reserves room for n more primitives.
func (c *Canvas) Grow(n int) {
	if n <= 0 || cap(c.list)-len(c.list) >= n {
		return
	}
	next := make([]Primitive, len(c.list), len(c.list)+n)
	copy(next, c.list)
	c.list = next
}

func (c *Canvas) Len() int { return len(c.list) }

func (c *Canvas) At(i int) Primitive { return c.list[i] }

// All iterates the display list in paint order.
func (c *Canvas) All() iter.Seq2[int, Primitive] {
	return func(yield func(int, Primitive) bool) {
		for i, p := range c.list {
			if !yield(i, p) {
				return
			}
		}
	}
}

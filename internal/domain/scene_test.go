package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_AddKeepsPaintOrder(t *testing.T) {
	c := NewCanvas(40, 20)
	c.Add(Background(40, 20))
	c.Add(
		Primitive{Shape: Circle(1), Position: Point{X: 1, Y: 2}, Fill: Color{R: 210, G: 245, B: 245}},
		Primitive{Shape: Circle(2), Position: Point{X: 3, Y: 4}, Fill: Color{R: 255, G: 235, B: 255}},
	)

	require.Equal(t, 3, c.Len())
	assert.Equal(t, ShapeRectangle, c.At(0).Shape.Kind)
	assert.Equal(t, uint32(1), c.At(1).Shape.Radius)
	assert.Equal(t, uint32(2), c.At(2).Shape.Radius)

	var seen []int
	for i, p := range c.All() {
		seen = append(seen, i)
		assert.Equal(t, c.At(i), p)
	}
	assert.Equal(t, []int{0, 1, 2}, seen)
}

func TestCanvas_AllStopsEarly(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Add(Background(10, 10), Background(10, 10), Background(10, 10))

	n := 0
	for range c.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestCanvas_GrowPreservesContents(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Add(Background(10, 10))
	c.Grow(100)
	c.Add(Primitive{Shape: Circle(3)})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, Background(10, 10), c.At(0))
	assert.Equal(t, uint32(3), c.At(1).Shape.Radius)
}

func TestBackground(t *testing.T) {
	bg := Background(4000, 2000)
	assert.Equal(t, Rectangle(4000, 2000), bg.Shape)
	assert.Equal(t, Point{}, bg.Position)
	assert.Equal(t, Black, bg.Fill)
}

func TestSceneStats_Count(t *testing.T) {
	var s SceneStats
	s.Count(Object{Kind: ObjectStar, Primitives: make([]Primitive, 1)})
	s.Count(Object{Kind: ObjectStretchy, Primitives: make([]Primitive, 1)})
	s.Count(Object{Kind: ObjectSwirl, Primitives: make([]Primitive, 20)})

	assert.Equal(t, SceneStats{Objects: 3, Stars: 1, Stretchy: 1, Swirls: 1, Primitives: 22}, s)
}

// Package svgscene serializes a canvas display list as an SVG document.
package svgscene

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/ports"
)

const bufferSize = 64 << 10

// Encoder writes one SVG element per primitive, in paint order.
type Encoder struct{}

func New() *Encoder {
	return &Encoder{}
}

var _ ports.SceneEncoder = (*Encoder)(nil)

func (e *Encoder) Encode(w io.Writer, c *domain.Canvas) error {
	bw := bufio.NewWriterSize(w, bufferSize)

	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		c.Width(), c.Height(), c.Width(), c.Height())

	buf := make([]byte, 0, 128)
	for i, p := range c.All() {
		var err error
		buf, err = appendPrimitive(buf[:0], p)
		if err != nil {
			return &domain.OpError{
				Op:   "svgscene.encode",
				Kind: domain.KindSerialize,
				Err:  fmt.Errorf("primitive %d: %w", i, err),
			}
		}
		_, _ = bw.Write(buf)
	}

	_, _ = bw.WriteString("</svg>\n")

	// bufio keeps the first write error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return &domain.OpError{
			Op:   "svgscene.encode",
			Kind: domain.KindSerialize,
			Err:  err,
		}
	}
	return nil
}

func appendPrimitive(b []byte, p domain.Primitive) ([]byte, error) {
	switch p.Shape.Kind {
	case domain.ShapeCircle:
		b = append(b, `<circle cx="`...)
		b = appendCoord(b, p.Position.X)
		b = append(b, `" cy="`...)
		b = appendCoord(b, p.Position.Y)
		b = append(b, `" r="`...)
		b = strconv.AppendUint(b, uint64(p.Shape.Radius), 10)
	case domain.ShapeRectangle:
		b = append(b, `<rect x="`...)
		b = appendCoord(b, p.Position.X)
		b = append(b, `" y="`...)
		b = appendCoord(b, p.Position.Y)
		b = append(b, `" width="`...)
		b = strconv.AppendUint(b, uint64(p.Shape.Width), 10)
		b = append(b, `" height="`...)
		b = strconv.AppendUint(b, uint64(p.Shape.Height), 10)
	default:
		return b, fmt.Errorf("unsupported shape %q", p.Shape.Kind)
	}

	b = append(b, `" fill="`...)
	b = append(b, Hex(p.Fill)...)
	b = append(b, "\"/>\n"...)
	return b, nil
}

func appendCoord(b []byte, v float32) []byte {
	return strconv.AppendFloat(b, float64(v), 'f', -1, 32)
}

// Hex renders c as #rrggbb.
func Hex(c domain.Color) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

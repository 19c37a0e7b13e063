// Package rasterizer turns an SVG document back into pixels.
package rasterizer

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/ports"
)

// ErrEmptyDocument is returned when a document parses but draws nothing.
var ErrEmptyDocument = errors.New("svg document has no drawable elements")

// Rasterizer parses SVG with oksvg and fills with rasterx's scanner at 1:1.
type Rasterizer struct {
	opacity float64
}

func New() *Rasterizer {
	return &Rasterizer{opacity: 1.0}
}

var _ ports.Rasterizer = (*Rasterizer)(nil)

func (r *Rasterizer) Rasterize(in io.Reader, width, height int) (img *image.RGBA, err error) {
	if width <= 0 || height <= 0 {
		return nil, &domain.OpError{
			Op:   "rasterizer.rasterize",
			Kind: domain.KindRasterize,
			Err:  fmt.Errorf("invalid target size %dx%d", width, height),
		}
	}

	icon, err := oksvg.ReadIconStream(in, oksvg.StrictErrorMode)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "rasterizer.parse",
			Kind: domain.KindParse,
			Err:  err,
		}
	}
	if len(icon.SVGPaths) == 0 {
		return nil, &domain.OpError{
			Op:   "rasterizer.parse",
			Kind: domain.KindParse,
			Err:  ErrEmptyDocument,
		}
	}

	// rasterx panics on some degenerate paths; surface those as failures.
	defer func() {
		if p := recover(); p != nil {
			img = nil
			err = &domain.OpError{
				Op:   "rasterizer.rasterize",
				Kind: domain.KindRasterize,
				Err:  fmt.Errorf("%v", p),
			}
		}
	}()

	icon.SetTarget(0, 0, float64(width), float64(height))

	img = image.NewRGBA(image.Rect(0, 0, width, height))

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, r.opacity)

	return img, nil
}

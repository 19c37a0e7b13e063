package ports

import (
	"image"
	"io"

	"github.com/aalvaropc/starfield/internal/domain"
)

// SceneEncoder serializes a canvas into an intermediate vector document.
type SceneEncoder interface {
	Encode(w io.Writer, c *domain.Canvas) error
}

// Rasterizer parses a vector document and renders it at 1:1 scale.
type Rasterizer interface {
	Rasterize(r io.Reader, width, height int) (*image.RGBA, error)
}

// ImageEncoder persists a pixel buffer in a raster file format.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image) error
}

// Package pngimage persists pixel buffers as PNG files.
package pngimage

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/aalvaropc/starfield/internal/domain"
	"github.com/aalvaropc/starfield/internal/ports"
)

type Encoder struct {
	enc png.Encoder
}

// New returns an encoder for the given compression level. Unknown levels
// fall back to the default.
func New(level domain.PNGCompression) *Encoder {
	return &Encoder{enc: png.Encoder{CompressionLevel: compressionLevel(level)}}
}

var _ ports.ImageEncoder = (*Encoder)(nil)

func (e *Encoder) Encode(w io.Writer, img image.Image) error {
	if img == nil {
		return &domain.OpError{
			Op:   "pngimage.encode",
			Kind: domain.KindImageWrite,
			Err:  fmt.Errorf("nil image"),
		}
	}
	if err := e.enc.Encode(w, img); err != nil {
		return &domain.OpError{
			Op:   "pngimage.encode",
			Kind: domain.KindImageWrite,
			Err:  err,
		}
	}
	return nil
}

func compressionLevel(level domain.PNGCompression) png.CompressionLevel {
	switch level {
	case domain.PNGCompressionNone:
		return png.NoCompression
	case domain.PNGCompressionSpeed:
		return png.BestSpeed
	case domain.PNGCompressionBest:
		return png.BestCompression
	default:
		return png.DefaultCompression
	}
}

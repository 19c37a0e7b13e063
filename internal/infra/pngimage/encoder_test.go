package pngimage

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/starfield/internal/domain"
)

func TestEncode_PreservesPixels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			src.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	src.SetRGBA(2, 1, color.RGBA{R: 210, G: 235, B: 255, A: 255})

	for _, level := range []domain.PNGCompression{
		domain.PNGCompressionDefault,
		domain.PNGCompressionNone,
		domain.PNGCompressionSpeed,
		domain.PNGCompressionBest,
	} {
		var buf bytes.Buffer
		require.NoError(t, New(level).Encode(&buf, src), "level %s", level)

		got, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, src.Bounds(), got.Bounds())

		r, g, b, a := got.At(2, 1).RGBA()
		assert.Equal(t, [4]uint32{210, 235, 255, 255}, [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8})
		r, g, b, a = got.At(0, 0).RGBA()
		assert.Equal(t, [4]uint32{0, 0, 0, 255}, [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8})
	}
}

func TestEncode_NilImage(t *testing.T) {
	err := New(domain.PNGCompressionDefault).Encode(&bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindImageWrite))
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestEncode_WriteFailure(t *testing.T) {
	denied := errors.New("permission denied")
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	err := New(domain.PNGCompressionDefault).Encode(failingWriter{err: denied}, img)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindImageWrite))
	assert.True(t, errors.Is(err, denied))
}

func TestCompressionLevel(t *testing.T) {
	assert.Equal(t, png.DefaultCompression, compressionLevel(""))
	assert.Equal(t, png.DefaultCompression, compressionLevel("bogus"))
	assert.Equal(t, png.NoCompression, compressionLevel(domain.PNGCompressionNone))
	assert.Equal(t, png.BestSpeed, compressionLevel(domain.PNGCompressionSpeed))
	assert.Equal(t, png.BestCompression, compressionLevel(domain.PNGCompressionBest))
}

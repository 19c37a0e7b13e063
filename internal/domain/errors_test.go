package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpError_Error(t *testing.T) {
	cases := []struct {
		name string
		err  *OpError
		want string
	}{
		{
			name: "op and kind only",
			err:  &OpError{Op: "svgscene.encode", Kind: KindSerialize},
			want: "svgscene.encode: serialize",
		},
		{
			name: "with path",
			err:  &OpError{Op: "rasterizer.parse", Kind: KindParse, Path: "stars.svg"},
			want: "rasterizer.parse: parse (path=stars.svg)",
		},
		{
			name: "with path and cause",
			err:  &OpError{Op: "artifactfs.create", Kind: KindImageWrite, Path: "stars.png", Err: errors.New("disk full")},
			want: "artifactfs.create: image_write (path=stars.png): disk full",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.err.Error())
		})
	}
}

func TestOpError_NilReceiver(t *testing.T) {
	var e *OpError
	assert.Equal(t, "<nil>", e.Error())
	assert.NoError(t, e.Unwrap())
}

func TestOpError_UnwrapAndIsKind(t *testing.T) {
	err := fmt.Errorf("render: %w", &OpError{
		Op:   "artifactfs.open",
		Kind: KindParse,
		Err:  fs.ErrNotExist,
	})

	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.True(t, IsKind(err, KindParse))
	assert.False(t, IsKind(err, KindRasterize))
	assert.False(t, IsKind(errors.New("plain"), KindParse))
}

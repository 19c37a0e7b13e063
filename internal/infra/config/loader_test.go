package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/starfield/internal/domain"
)

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("testdata", "starfield.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Canvas.Width)
	assert.Equal(t, 400, cfg.Canvas.Height)
	assert.Equal(t, 2500, cfg.Objects)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, "out/sky.svg", cfg.Output.SVG)
	assert.Equal(t, "out/sky.png", cfg.Output.PNG)
	assert.False(t, cfg.Runs.Enabled)
	assert.Equal(t, "history", cfg.Runs.Dir)
	assert.Equal(t, domain.PNGCompressionBest, cfg.PNG.Compression)
}

func TestLoadFile_AppliesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("testdata", "partial.yaml"))
	require.NoError(t, err)

	want := domain.DefaultConfig()
	want.Objects = 10
	assert.Equal(t, want, cfg)
	assert.Nil(t, cfg.Seed)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join("testdata", "invalid.yaml")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
	assert.Contains(t, err.Error(), path)
}

func TestLoadFile_BadCompression(t *testing.T) {
	path := filepath.Join("testdata", "bad_compression.yaml")
	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
	assert.True(t, strings.Contains(err.Error(), "starfield.png.compression"))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FromRoot(t *testing.T) {
	root := t.TempDir()
	content := []byte("starfield:\n  runs:\n    enabled: false\n")
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), content, 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.False(t, cfg.Runs.Enabled)
	assert.Equal(t, "runs", cfg.Runs.Dir)
	assert.Equal(t, 4000, cfg.Canvas.Width)
}

func TestParseCompression(t *testing.T) {
	for in, want := range map[string]domain.PNGCompression{
		"default": domain.PNGCompressionDefault,
		"NONE":    domain.PNGCompressionNone,
		" speed ": domain.PNGCompressionSpeed,
		"best":    domain.PNGCompressionBest,
	} {
		got, err := ParseCompression(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseCompression("fast")
	assert.Error(t, err)
}

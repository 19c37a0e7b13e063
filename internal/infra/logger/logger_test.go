package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	require.NoError(t, err)
	require.NoError(t, IsReady())

	want := filepath.Join(root, ".starfield", "logs", "starfield.log")
	assert.Equal(t, want, Path())
	assert.False(t, InitTime().IsZero())

	L().Debug("scene.built", "objects", 10)
	require.NoError(t, cleanup())

	f, err := os.Open(want)
	require.NoError(t, err)
	defer f.Close()

	var msgs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line))
		msgs = append(msgs, line["msg"].(string))
	}
	assert.Equal(t, []string{"logger.initialized", "scene.built"}, msgs)
}

func TestCleanup_ResetsToDiscard(t *testing.T) {
	cleanup, err := Setup(Config{Root: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, cleanup())

	assert.Error(t, IsReady())
	assert.Empty(t, Path())
	assert.True(t, InitTime().IsZero())
	assert.NotNil(t, L())
}

func TestSetup_UnwritableRoot(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, ".starfield")
	require.NoError(t, os.WriteFile(blocker, []byte("file, not dir"), 0o644))

	cleanup, err := Setup(Config{Root: root})
	assert.Error(t, err)
	assert.Nil(t, cleanup)
	assert.Error(t, IsReady())
}

func TestFor_TagsComponent(t *testing.T) {
	root := t.TempDir()
	cleanup, err := Setup(Config{Root: root})
	require.NoError(t, err)

	For("render").Info("render.start")
	require.NoError(t, cleanup())

	b, err := os.ReadFile(filepath.Join(root, ".starfield", "logs", "starfield.log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"component":"render"`)
}

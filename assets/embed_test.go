package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAssetPath(t *testing.T) {
	cases := map[string]string{
		"":                              "",
		"sounds/discover.wav":           "sounds/discover.wav",
		"assets/sounds/discover.wav":    "sounds/discover.wav",
		"/images/truck/truck.png":       "truck.png",
		"/srv/game/assets/images/a.png": "images/a.png",
	}
	for in, want := range cases {
		assert.Equal(t, want, cleanAssetPath(in), in)
	}
}

func TestLoadFileEmbeddedAndDisk(t *testing.T) {
	b, err := LoadFile(SoundDiscover)
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(b[:4]))

	dir := t.TempDir()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "images"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "images", "x.txt"), []byte("disk"), 0o644))

	b, err = LoadFile("assets/images/x.txt")
	require.NoError(t, err)
	assert.Equal(t, "disk", string(b))

	_, err = LoadFile("images/missing.png")
	require.Error(t, err)
}

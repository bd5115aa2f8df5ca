package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Journey.Places, cfg.Journey.Places)
	assert.Equal(t, def.SynthesisDelay, cfg.SynthesisDelay)
}

func TestLoadPartialConfigBackfillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
journey:
  places:
    - name: Lisbon
      lat: 38.7223
      lng: -9.1393
    - name: Porto
      lat: 41.1579
      lng: -8.6291
  move_interval: 10s
synthesis_delay: 500ms
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Journey.Places, 2)
	assert.Equal(t, "Lisbon", cfg.Journey.Places[0].Name)
	assert.Equal(t, 10*time.Second, cfg.Journey.MoveInterval.Std())
	assert.Equal(t, 500*time.Millisecond, cfg.SynthesisDelay.Std())

	// Omitted sections fall back to defaults.
	def := Default()
	assert.Equal(t, def.Speech.Utterances, cfg.Speech.Utterances)
	assert.Equal(t, def.Photos.Patterns, cfg.Photos.Patterns)
}

func TestLoadRejectsUnnamedPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
journey:
  places:
    - lat: 1.0
      lng: 2.0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "name is required")
}

func TestLoadRejectsBadPhotoPattern(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
photos:
  patterns: ["[unclosed"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid photo pattern")
}

func TestWaypointsConversion(t *testing.T) {
	cfg := Default()
	wps := cfg.Waypoints()
	require.Len(t, wps, len(cfg.Journey.Places))
	assert.Equal(t, cfg.Journey.Places[0].Name, wps[0].Name)
	assert.Equal(t, cfg.Journey.Places[0].Lat, wps[0].Lat)
}

func TestPhotoMatcher(t *testing.T) {
	m, err := NewPhotoMatcher([]string{"*.jpg", "*.png"})
	require.NoError(t, err)

	assert.True(t, m.Match("beach.jpg"))
	assert.True(t, m.Match("temple.png"))
	assert.False(t, m.Match("notes.txt"))
	assert.False(t, m.Match("archive.jpg.bak"))
}

func TestPhotoMatcherListPhotos(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.jpg", "skip.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0750))

	m, err := NewPhotoMatcher([]string{"*.jpg"})
	require.NoError(t, err)

	files, err := m.ListPhotos(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.jpg"), files[0], "results are sorted")
	assert.Equal(t, filepath.Join(dir, "b.jpg"), files[1])
}

func TestPhotoMatcherMissingDir(t *testing.T) {
	m, err := NewPhotoMatcher([]string{"*.jpg"})
	require.NoError(t, err)

	files, err := m.ListPhotos(filepath.Join(t.TempDir(), "gone"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

package modelstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathLayout(t *testing.T) {
	s := New("/data")
	got := s.Path("lat", "tokenizers/sentence", "lat_punkt.json")
	want := filepath.Join("/data", "lat", "model", "lat_models", "tokenizers", "sentence", "lat_punkt.json")
	assert.Equal(t, want, got)
}

func TestInstallAndLoad(t *testing.T) {
	s := New(t.TempDir())

	require.False(t, s.Exists("lat", "tokenizers/sentence", "lat_punkt.json"))

	payload := []byte(`{}`)
	require.NoError(t, s.Install("lat", "tokenizers/sentence", "lat_punkt.json", payload))
	require.True(t, s.Exists("lat", "tokenizers/sentence", "lat_punkt.json"))

	data, err := s.Load("lat", "tokenizers/sentence", "lat_punkt.json")
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestLoadMissing(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Load("grc", "tokenizers/sentence", "grc_punkt.json")
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestNewEmptyRootFallsBackToDefault(t *testing.T) {
	t.Setenv(EnvDataDir, "/tmp/glossa-test-data")
	s := New("")
	assert.Equal(t, "/tmp/glossa-test-data", s.Root())
}

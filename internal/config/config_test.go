package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dchen116/nrrd/internal/geometry"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Decode.Workers)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nrrdinfo.yaml")
	data := `
decode:
  workers: 4
  maxBytes: 1048576
geometry:
  origin: [1.5, -2, 3]
  orientations: [L2R, P2A, S2I]
log:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Decode.Workers)
	assert.Equal(t, int64(1<<20), cfg.Decode.MaxBytes)
	assert.Equal(t, []float64{1.5, -2, 3}, cfg.Geometry.Origin)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level, "unset keys keep defaults")

	o, err := cfg.ParsedOrientations()
	require.NoError(t, err)
	assert.Equal(t, []geometry.Orientation{geometry.L2R, geometry.P2A, geometry.S2I}, o)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"bad yaml":        "decode: [",
		"negative":        "decode:\n  workers: -2\n",
		"bad orientation": "geometry:\n  orientations: [up]\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "c.yaml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

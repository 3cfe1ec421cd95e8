package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	body := "sim: light\nseed: 0\nscale: 2\nparams:\n  w: 64\n  diffusion: 0.10\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "light", f.Sim)
	require.NotNil(t, f.Seed)
	assert.Zero(t, *f.Seed)
	assert.Equal(t, 2, f.Scale)
	assert.Zero(t, f.TPS)

	params, err := f.SimParams()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"w": "64", "diffusion": "0.10"}, params)
}

func TestDecodeEmpty(t *testing.T) {
	f, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, f.Seed)
	params, err := f.SimParams()
	require.NoError(t, err)
	assert.Nil(t, params)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("sim: life\nspeed: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Decode(strings.NewReader("params:\n  w: [1, 2]\n"))
	assert.ErrorIs(t, err, ErrNotScalar)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

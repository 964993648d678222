package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "definitely-missing.yml"))
	// An explicit path that does not exist is an error...
	assert.Error(t, err)
	assert.Nil(t, cfg)

	// ...but no path at all falls back to defaults.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), cfg.Seed.Default)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "framelab.pcap", cfg.Output.PcapPath)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "framelab.yml")
	content := []byte(`
seed:
  default: 1234
log:
  level: debug
  file:
    enabled: true
    path: /tmp/framelab.log
output:
  pcap_path: out/lab.pcap
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint32(1234), cfg.Seed.Default)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.File.Enabled)
	assert.Equal(t, "/tmp/framelab.log", cfg.Log.File.Path)
	assert.Equal(t, "out/lab.pcap", cfg.Output.PcapPath)
	// Untouched keys keep their defaults.
	assert.Equal(t, "%time [%level] %field %msg%n", cfg.Log.Pattern)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnradial/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	// repeated calls are fine
	for range 3 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gnradial"),
		filepath.Join(tmpDir, ".cache", "gnradial"),
		filepath.Join(tmpDir, ".local", "share", "gnradial", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err, v)
		assert.True(t, info.IsDir(), v)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), v)
	}
}

func TestTouchDir(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")

	require.NoError(t, touchDir(newDir))
	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// a file in the way cannot become a directory
	blocker := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	err = touchDir(filepath.Join(blocker, "dir"))
	assert.Error(t, err)
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureConfigFile(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "gnradial", "config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content))

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	custom := "view:\n  budget: 10\n"
	require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	content, err = os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, custom, string(content),
		"existing config file should not be overwritten")
}

// TestConfigYAMLDefaults verifies the embedded template agrees with
// config.New.
func TestConfigYAMLDefaults(t *testing.T) {
	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &cfg))

	def := config.New()
	assert.Equal(t, def.Data, cfg.Data)
	assert.Equal(t, def.View, cfg.View)
	assert.Equal(t, def.Log, cfg.Log)
	assert.Zero(t, cfg.JobsNumber)
}

func TestCreateOutput(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "tree.svg")

	f, err := CreateOutput(path)
	require.NoError(t, err)
	_, err = f.WriteString("<svg/>")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = CreateOutput(filepath.Join(tmpDir, "missing", "tree.svg"))
	assert.Error(t, err)
}

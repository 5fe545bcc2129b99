package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/taxdump/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	dirs := []string{
		filepath.Join(tmpDir, ".config", "taxdump"),
		filepath.Join(tmpDir, ".cache", "taxdump"),
		filepath.Join(tmpDir, ".cache", "taxdump", "dump"),
		filepath.Join(tmpDir, ".local", "share", "taxdump", "logs"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), dir)
		assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), dir)
	}
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	for range 3 {
		err := EnsureDirs(tmpDir)
		require.NoError(t, err)
	}
}

func TestTouchDir_CreatesNewDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	newDir := filepath.Join(tmpDir, "test", "subdir")

	err := touchDir(newDir)
	require.NoError(t, err)

	info, err := os.Stat(newDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestTouchDir_FileInTheWay(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	err := touchDir(filepath.Join(path, "sub"))
	require.Error(t, err)
}

// TestEnsureConfigFile_ContentCorrect verifies config file
// content matches embedded template.
func TestEnsureConfigFile_ContentCorrect(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "taxdump", "config.yaml")
	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(content),
		"Config file content should match embedded template")

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

// TestEnsureConfigFile_Idempotent verifies existing file
// is not overwritten.
func TestEnsureConfigFile_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	configPath := filepath.Join(tmpDir, ".config", "taxdump", "config.yaml")
	customContent := "# Custom config\nstore:\n  cache_size: 10"
	err = os.WriteFile(configPath, []byte(customContent), 0644)
	require.NoError(t, err)

	err = EnsureConfigFile(tmpDir)
	require.NoError(t, err)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, customContent, string(content),
		"Existing config file should not be overwritten")
}

func TestEnsureConfigFile_NoDir(t *testing.T) {
	err := EnsureConfigFile(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

// TestConfigYAML_Valid verifies that the template is valid YAML and that
// all its values are commented out, so defaults stay in charge.
func TestConfigYAML_Valid(t *testing.T) {
	assert.Contains(t, ConfigYAML, "dump:")
	assert.Contains(t, ConfigYAML, "log:")

	var cfg config.Config
	err := yaml.Unmarshal([]byte(ConfigYAML), &cfg)
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, cfg)
	assert.Empty(t, cfg.ToOptions())
}

// TestConfigYAML_Uncommented verifies that uncommented template values
// map to the config fields.
func TestConfigYAML_Uncommented(t *testing.T) {
	doc := `
dump:
  source: /tmp/new_taxdump.zip
  store_file: tmp.sqlite
  archive_name: out.zip
store:
  cache_size: 500
classes:
  authority: synonym
log:
  format: text
  level: debug
  destination: stderr
metrics_file: /tmp/metrics.prom
with_progress: false
`
	var yc config.Config
	err := yaml.Unmarshal([]byte(doc), &yc)
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update(yc.ToOptions())
	assert.Equal(t, "/tmp/new_taxdump.zip", cfg.Dump.Source)
	assert.Equal(t, "tmp.sqlite", cfg.Dump.StoreFile)
	assert.Equal(t, "out.zip", cfg.Dump.ArchiveName)
	assert.Equal(t, 500, cfg.Store.CacheSize)
	assert.Equal(t, map[string]string{"authority": "synonym"}, cfg.Classes)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "stderr", cfg.Log.Destination)
	assert.Equal(t, "/tmp/metrics.prom", cfg.MetricsFile)
	assert.False(t, cfg.ShowProgress())
}

func TestPrepareOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")

	err := PrepareOutputDir(dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)

	old := filepath.Join(dir, "taxa.txt")
	require.NoError(t, os.WriteFile(old, []byte("old"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))

	err = PrepareOutputDir(dir)
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

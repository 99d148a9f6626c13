package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDelimiter, cfg.Delimiter)
	assert.Equal(t, DefaultNullValues(), cfg.NullValues)
	assert.Equal(t, DefaultHistoryFile, cfg.HistoryPath)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leapprep.yaml")
	content := `delimiter: ";"
null_values: ["", "missing"]
output: csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, []string{"", "missing"}, cfg.NullValues)
	assert.Equal(t, "csv", cfg.OutputFormat)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultHistoryFile, cfg.HistoryPath)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigFileDiscovery(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("leapprep.yml", []byte("output: json\n"), 0o644))

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, "leapprep.yml", GetConfigFileUsed())
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "leapprep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: csv\n"), 0o644))
	t.Setenv("LEAPPREP_OUTPUT", "json")
	t.Setenv("LEAPPREP_VERBOSE", "true")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.Verbose)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LEAPPREP_OUTPUT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", DefaultOutput, "")
	flags.String("delimiter", DefaultDelimiter, "")
	require.NoError(t, flags.Parse([]string{"--output", "table", "--delimiter", "\t"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, "\t", cfg.Delimiter)
}

func TestCurrentBeforeLoad(t *testing.T) {
	prev := currentConfig
	currentConfig = nil
	t.Cleanup(func() { currentConfig = prev })

	assert.Equal(t, DefaultConfig(), Current())
}

func TestCurrentAfterLoad(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Same(t, cfg, Current())
}

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ",", cfg.Delimiter)
	assert.Contains(t, cfg.NullValues, "NaN")
	assert.Equal(t, ".leapprep/history.db", cfg.HistoryPath)
	assert.Equal(t, "auto", cfg.OutputFormat)
}

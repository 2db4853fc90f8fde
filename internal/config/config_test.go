package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.Equal(t, OutputPretty, cfg.Output)
	assert.Empty(t, cfg.Catalog)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "formgate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: es\noutput: json\n"), 0o600))
	t.Setenv("FORMGATE_OUTPUT", "pretty")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, OutputPretty, cfg.Output, "environment should win over the file")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_LeavesValidationToCaller(t *testing.T) {
	path := filepath.Join(t.TempDir(), "formgate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: table\nverbose: true\n"), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err, "flag overrides may still replace the file value")
	assert.Equal(t, "table", cfg.Output)
	assert.True(t, cfg.Verbose)
	require.Error(t, cfg.Validate())

	cfg.Output = OutputJSON
	require.NoError(t, cfg.Validate())
}

func TestValidate_RejectsUnknownOutput(t *testing.T) {
	err := Config{Locale: "en", Output: "xml"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

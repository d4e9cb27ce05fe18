package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), *settings)
}

func TestLoadSettings_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.yaml")
	content := `
logging:
  level: debug
  format: json
output:
  format: csv
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", settings.Logging.Level)
	assert.Equal(t, "json", settings.Logging.Format)
	assert.Equal(t, OutputFormatCSV, settings.Output.Format)
	assert.True(t, settings.Output.Pretty, "unset keys keep their defaults")
}

func TestLoadSettings_EnvironmentOverride(t *testing.T) {
	t.Setenv("ADVISOR_LOGGING_LEVEL", "error")
	t.Setenv("ADVISOR_OUTPUT_FORMAT", "json")

	settings, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "error", settings.Logging.Level)
	assert.Equal(t, OutputFormatJSON, settings.Output.Format)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings file")
}

func TestLoadSettings_InvalidOutputFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0644))

	_, err := LoadSettings(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"table", "json", "csv", "JSON"} {
		assert.NoError(t, ValidateOutputFormat(format), format)
	}
	assert.Error(t, ValidateOutputFormat(""))
	assert.Error(t, ValidateOutputFormat("html"))
}

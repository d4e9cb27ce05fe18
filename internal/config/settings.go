package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSettingsFile is looked up in the working directory when no --config flag is given
const DefaultSettingsFile = "advisor.yaml"

// EnvPrefix prefixes every environment override, e.g. ADVISOR_LOGGING_LEVEL
const EnvPrefix = "ADVISOR"

// Output format names accepted by the CLI
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatCSV   = "csv"
)

// Settings holds CLI behaviour that is independent of any one profile
type Settings struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// LoggingConfig configures the zap logger built by the CLI
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // console or json
	OutputFile string `mapstructure:"output_file"` // empty means stderr
}

// OutputConfig selects how reports are rendered
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Pretty bool   `mapstructure:"pretty"`
}

// DefaultSettings returns the settings used when no file or environment overrides exist
func DefaultSettings() Settings {
	return Settings{
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		Output:  OutputConfig{Format: OutputFormatTable, Pretty: true},
	}
}

// LoadSettings reads settings from path, layered over the defaults and under ADVISOR_*
// environment variables. An empty path loads defaults and environment only; a path
// that does not exist is an error.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	defaults := DefaultSettings()
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.output_file", defaults.Logging.OutputFile)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.pretty", defaults.Output.Pretty)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if err := ValidateOutputFormat(settings.Output.Format); err != nil {
		return nil, err
	}
	return &settings, nil
}

// ValidateOutputFormat reports whether format is one the report package can render
func ValidateOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case OutputFormatTable, OutputFormatJSON, OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format %q (valid: table, json, csv)", format)
	}
}

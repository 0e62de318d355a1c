package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "csvfleet/internal/errors"
)

// Config represents the complete csvfleet configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	CSV     CSVConfig     `yaml:"csv" envconfig:"CSV"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/csvfleet.log" validate:"required_unless=Output console"`
}

// CSVConfig holds the defaults handed to the csvhelper operations
type CSVConfig struct {
	PreviewRows  int    `yaml:"preview_rows" envconfig:"PREVIEW_ROWS" default:"5" validate:"gte=0"`
	PreviewChars int    `yaml:"preview_chars" envconfig:"PREVIEW_CHARS" default:"70"`
	SniffBytes   int    `yaml:"sniff_bytes" envconfig:"SNIFF_BYTES" default:"9999" validate:"gt=0"`
	NARep        string `yaml:"na_rep" envconfig:"NA_REP" default:"NaN"`
	IncludeFirst bool   `yaml:"include_first" envconfig:"INCLUDE_FIRST" default:"true"`
	BOMPrefix    bool   `yaml:"bom_prefix" envconfig:"BOM_PREFIX" default:"false"`
}

// EnvPrefix namespaces every environment variable read by Load
const EnvPrefix = "CSVFLEET"

// Default returns the built-in configuration without reading the environment
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/csvfleet.log",
		},
		CSV: CSVConfig{
			PreviewRows:  5,
			PreviewChars: 70,
			SniffBytes:   9999,
			NARep:        "NaN",
			IncludeFirst: true,
		},
	}
}

// Load loads configuration from environment variables and an optional YAML file.
// Environment values take precedence over the file. An empty configFile falls back
// to CSVFLEET_CONFIG_FILE; a missing file is not an error.
func Load(configFile string) (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if configFile == "" {
		configFile = os.Getenv(EnvPrefix + "_CONFIG_FILE")
	}
	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, apperrors.NewConfigError("failed to load config from file "+configFile, err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file. Keys absent from the file
// keep their Default values.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence).
// A field counts as set in the environment only when its variable is present,
// since envconfig fills unset fields with their defaults.
func mergeConfigs(fileConfig, envConfig Config) Config {
	merged := fileConfig

	inEnv := func(name string) bool {
		_, ok := os.LookupEnv(EnvPrefix + "_" + name)
		return ok
	}

	if inEnv("LOGGING_LEVEL") {
		merged.Logging.Level = envConfig.Logging.Level
	}
	if inEnv("LOGGING_FORMAT") {
		merged.Logging.Format = envConfig.Logging.Format
	}
	if inEnv("LOGGING_OUTPUT") {
		merged.Logging.Output = envConfig.Logging.Output
	}
	if inEnv("LOGGING_FILE_PATH") {
		merged.Logging.FilePath = envConfig.Logging.FilePath
	}
	if inEnv("CSV_PREVIEW_ROWS") {
		merged.CSV.PreviewRows = envConfig.CSV.PreviewRows
	}
	if inEnv("CSV_PREVIEW_CHARS") {
		merged.CSV.PreviewChars = envConfig.CSV.PreviewChars
	}
	if inEnv("CSV_SNIFF_BYTES") {
		merged.CSV.SniffBytes = envConfig.CSV.SniffBytes
	}
	if inEnv("CSV_NA_REP") {
		merged.CSV.NARep = envConfig.CSV.NARep
	}
	if inEnv("CSV_INCLUDE_FIRST") {
		merged.CSV.IncludeFirst = envConfig.CSV.IncludeFirst
	}
	if inEnv("CSV_BOM_PREFIX") {
		merged.CSV.BOMPrefix = envConfig.CSV.BOMPrefix
	}

	return merged
}

// Validate checks the configuration with the struct tags above
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
			}
			return apperrors.NewConfigError("invalid configuration: "+strings.Join(msgs, "; "), nil)
		}
		return apperrors.NewConfigError("invalid configuration", err)
	}
	return nil
}

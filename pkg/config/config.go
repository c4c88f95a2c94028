// Package config provides configuration management for gohead.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-andiamo/splitter"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/sgaunet/gohead/pkg/constants"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidDebugLevel is returned for an unknown log level.
	ErrInvalidDebugLevel = errors.New("invalid debug level")
	// ErrInvalidS3Config is returned when the S3 settings are unusable.
	ErrInvalidS3Config = errors.New("invalid S3 configuration")
)

// S3Config holds the settings used to read s3:// sources.
type S3Config struct {
	Endpoint          string  `env:"S3ENDPOINT"             env-default:""   env-description:"S3-compatible endpoint URL"           yaml:"endpoint"`
	Region            string  `env:"S3REGION"               env-default:""   env-description:"AWS region; enables s3:// sources"    yaml:"region"`
	AccessKey         string  `env:"AWS_ACCESS_KEY_ID"                       env-description:"S3 access key"                       yaml:"accessKey"`
	SecretKey         string  `env:"AWS_SECRET_ACCESS_KEY"                   env-description:"S3 secret key"                       yaml:"secretKey"`
	RequestsPerSecond float64 `env:"S3_REQUESTS_PER_SECOND" env-default:"10" env-description:"maximum GetObject requests per second" yaml:"requestsPerSecond"`
	RequestBurst      int     `env:"S3_REQUEST_BURST"       env-default:"1"  env-description:"GetObject request burst"             yaml:"requestBurst"`
}

// Config holds the settings read from the environment or a YAML file.
// Command-line flags are applied on top of it.
type Config struct {
	Options    string   `env:"GOHEAD_OPTIONS"    env-default:""      env-description:"options read before the command line" yaml:"options"`
	DebugLevel string   `env:"GOHEAD_DEBUGLEVEL" env-default:"warn"  env-description:"debug, info, warn or error"            yaml:"debugLevel"`
	NoLogTime  bool     `env:"GOHEAD_NOLOGTIME"  env-default:"false" env-description:"omit timestamps from log lines"        yaml:"noLogTime"`
	S3cfg      S3Config `yaml:"s3cfg"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		DebugLevel: "warn",
		S3cfg: S3Config{
			RequestsPerSecond: constants.DefaultS3RequestsPerSecond,
			RequestBurst:      constants.DefaultS3RequestBurst,
		},
	}
}

// NewConfigFromFile returns a new Config struct from the given file.
// Environment variables override values from the file.
func NewConfigFromFile(filePath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(filePath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from file %s: %w", filePath, err)
	}
	return &cfg, nil
}

// NewConfigFromEnv returns a new Config struct from the environment variables.
func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	switch c.DebugLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q (want debug, info, warn or error)", ErrInvalidDebugLevel, c.DebugLevel)
	}
	if c.S3cfg.RequestsPerSecond <= 0 {
		return fmt.Errorf("%w: requestsPerSecond must be positive, got %v", ErrInvalidS3Config, c.S3cfg.RequestsPerSecond)
	}
	if c.S3cfg.RequestBurst < 1 {
		return fmt.Errorf("%w: requestBurst must be at least 1, got %d", ErrInvalidS3Config, c.S3cfg.RequestBurst)
	}
	if (c.S3cfg.AccessKey == "") != (c.S3cfg.SecretKey == "") {
		return fmt.Errorf("%w: access key and secret key must be set together", ErrInvalidS3Config)
	}
	return nil
}

// IsS3ConfigValid returns true if s3:// sources can be served.
func (c *Config) IsS3ConfigValid() bool {
	return len(c.S3cfg.Region) > 0
}

// SplitOptions splits the Options string into arguments. Single and double
// quotes group words and are removed from the result.
func (c *Config) SplitOptions() ([]string, error) {
	if strings.TrimSpace(c.Options) == "" {
		return nil, nil
	}
	optSplitter, err := splitter.NewSplitter(' ', splitter.SingleQuotes, splitter.DoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("failed to create options splitter: %w", err)
	}
	parts, err := optSplitter.Split(c.Options, splitter.Trim("'\""))
	if err != nil {
		return nil, fmt.Errorf("failed to parse options '%s': %w", c.Options, err)
	}
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			args = append(args, p)
		}
	}
	return args, nil
}

// Redacted returns a YAML representation of the config with sensitive fields redacted.
func (c *Config) Redacted() string {
	redacted := *c
	if redacted.S3cfg.AccessKey != "" {
		redacted.S3cfg.AccessKey = constants.RedactedValue
	}
	if redacted.S3cfg.SecretKey != "" {
		redacted.S3cfg.SecretKey = constants.RedactedValue
	}
	cyaml, err := yaml.Marshal(redacted)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return string(cyaml)
}

// Description lists the environment variables understood by the config.
func (c *Config) Description() (string, error) {
	header := "Environment variables:"
	desc, err := cleanenv.GetDescription(c, &header)
	if err != nil {
		return "", fmt.Errorf("failed to describe configuration: %w", err)
	}
	return desc, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultPort      = 3000
	defaultLogLevel  = "INFO"
	defaultLogFormat = "json"
)

// ErrNoConfigFile is returned when none of the candidate paths exist
var ErrNoConfigFile = errors.New("no config file found")

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration and stores it in Config.
// Candidate paths are tried in order; with none given it looks for config.yml.
func LoadAppConfig(paths ...string) error {
	cfg, err := Load(paths...)
	if err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Load reads the first existing file among paths and returns the validated configuration.
// ErrNoConfigFile is returned when none of them exist.
func Load(paths ...string) (AppConfig, error) {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return AppConfig{}, fmt.Errorf("read config %s: %w", p, err)
		}
		return Parse(data)
	}
	return AppConfig{}, ErrNoConfigFile
}

// Parse decodes yaml bytes, applies defaults and validates the result.
func Parse(data []byte) (AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("decode config: %w", err)
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogFormat
	}
}

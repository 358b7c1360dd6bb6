// Package config loads host settings for the tumble CLI.
//
// Sources are applied in order: defaults, the YAML file, a .env file, then
// TUMBLE_* environment variables. The result is validated before use.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/tumble/internal/logging"
	"github.com/aretw0/tumble/pkg/domain"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "TUMBLE_"

// Config holds the host settings.
type Config struct {
	LogLevel    string        `mapstructure:"log_level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn warning error"`
	HoldDelay   time.Duration `mapstructure:"hold_delay" env:"HOLD_DELAY" validate:"gte=0,lte=10s"`
	Seed        int64         `mapstructure:"seed" env:"SEED"`
	DefaultKind string        `mapstructure:"default_kind" env:"DEFAULT_KIND" validate:"required,oneof=d4 d6 d8 d10 d12 d20 d100 d%"`
	DebugAddr   string        `mapstructure:"debug_addr" env:"DEBUG_ADDR" validate:"omitempty,hostname_port"`
	Headless    bool          `mapstructure:"headless" env:"HEADLESS"`
	Color       bool          `mapstructure:"color" env:"COLOR"`
}

// Options selects the files Load reads.
type Options struct {
	// Path is an optional YAML config file.
	Path string
	// EnvFile is an optional dotenv file. When empty, ./.env is read if present.
	EnvFile string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:    "info",
		HoldDelay:   time.Second,
		DefaultKind: "d6",
		Color:       true,
	}
}

// Load resolves the configuration from every source.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	if opts.Path != "" {
		if err := decodeFile(opts.Path, &cfg); err != nil {
			return nil, err
		}
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	} else {
		// A missing .env is fine, real env vars may be set.
		_ = godotenv.Load()
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid config: %s failed %q", verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Kind returns the default die kind.
func (c Config) Kind() domain.Kind {
	k, err := domain.ParseKind(c.DefaultKind)
	if err != nil {
		return domain.D6
	}
	return k
}

// Level returns the log level, falling back to info.
func (c Config) Level() slog.Level {
	lvl, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func decodeFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		return fmt.Errorf("read config: %w", err)
	}

	var values map[string]any
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return fmt.Errorf("config decoder: %w", err)
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

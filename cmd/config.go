package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Seed    int64         `mapstructure:"seed"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Clock   ClockConfig   `mapstructure:"clock"`
	Log     LogConfig     `mapstructure:"log"`
}

type CatalogConfig struct {
	File string `mapstructure:"file"` // empty for the built-in catalog
	Path string `mapstructure:"path"` // JSONPath of the asset list in File
}

type ClockConfig struct {
	Timezone string        `mapstructure:"timezone"`
	Label    string        `mapstructure:"label"`
	Interval time.Duration `mapstructure:"interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// LoadConfig reads configuration from defaults, the optional file, a .env
// file and environment variables prefixed with CRYPTODASH_.
func LoadConfig(file string) (*Config, error) {
	v := viper.New()

	// .env variables become real environment variables, existing ones win.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}

	v.SetDefault("seed", 0)
	v.SetDefault("catalog.file", "")
	v.SetDefault("catalog.path", "$.assets")
	v.SetDefault("clock.timezone", "Europe/Moscow")
	v.SetDefault("clock.label", "UTC+3")
	v.SetDefault("clock.interval", time.Second)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %q: %w", file, err)
		}
	}

	// "clock.interval" is read from CRYPTODASH_CLOCK_INTERVAL.
	v.SetEnvPrefix("CRYPTODASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v, "seed", "catalog.file", "catalog.path")
	bindEnv(v, "clock.timezone", "clock.label", "clock.interval")
	bindEnv(v, "log.level", "log.format")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if cfg.Clock.Interval <= 0 {
		return nil, fmt.Errorf("clock interval must be positive, got %v", cfg.Clock.Interval)
	}
	return &cfg, nil
}

// Location returns the clock time zone.
func (c ClockConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid clock timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// bindEnv is a helper to bind multiple keys at once
func bindEnv(v *viper.Viper, keys ...string) {
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("could not bind env var")
		}
	}
}

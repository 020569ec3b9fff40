// Package config loads the launcher configuration: built-in defaults, then an
// optional YAML file, then environment overrides, then validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/monbon24/launcher/internal/models"
)

const DefaultPath = "launcher.yaml"

// Config holds the complete application configuration.
type Config struct {
	Server        ServerConfig   `yaml:"server"`
	Logging       LoggingConfig  `yaml:"logging"`
	Database      DatabaseConfig `yaml:"database"`
	StrictAccents bool           `yaml:"strict_accents"`
	Meta          models.Meta    `yaml:"meta"`
	Profile       models.Profile `yaml:"profile"`
	Tiles         []models.Tile  `yaml:"tiles" validate:"unique=Title,dive"`
	Hub           models.Hub     `yaml:"hub"`
	Status        StatusConfig   `yaml:"status"`
}

type ServerConfig struct {
	Port       string        `yaml:"port" validate:"required,numeric"`
	RateLimit  int           `yaml:"rate_limit" validate:"gt=0"`
	RateWindow time.Duration `yaml:"rate_window" validate:"gt=0"`
	CacheTTL   time.Duration `yaml:"cache_ttl" validate:"gte=0"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// SlogLevel maps the configured level name onto slog.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DatabaseConfig selects the Postgres source when URL is set.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// StatusConfig is the status pill descriptor plus the optional probe target.
// Without a ProbeURL the configured state is shown as is.
type StatusConfig struct {
	models.Status `yaml:",inline"`
	ProbeURL      string        `yaml:"probe_url" validate:"omitempty,http_url"`
	ProbeTimeout  time.Duration `yaml:"probe_timeout" validate:"gte=0"`
	ProbeInterval time.Duration `yaml:"probe_interval" validate:"gte=0"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       "8080",
			RateLimit:  500,
			RateWindow: time.Minute,
			CacheTTL:   60 * time.Minute,
		},
		Logging: LoggingConfig{Level: "info"},
		Meta: models.Meta{
			Title:           "Launchpad",
			ShortName:       "Launchpad",
			Description:     "Personal app launcher",
			ThemeColor:      "#f7f3ff",
			BackgroundColor: "#fdfbff",
			StatusBarStyle:  "black-translucent",
			AppleTouchIcon:  "/static/icon.svg",
			Icons: []models.Icon{
				{Src: "/static/icon.svg", Sizes: "any", Type: "image/svg+xml"},
			},
		},
		Profile: models.Profile{
			Title:     "Launchpad",
			Subtitle:  "Everything for today, one tap away",
			BrandMark: "✦",
		},
		Tiles: []models.Tile{
			{
				Title:       "Homeschool Planner",
				Description: "Lessons, schedules and progress",
				Icon:        "📚",
				Href:        "https://planner.example.com",
				Accent:      models.AccentPink,
				External:    true,
			},
			{
				Title:       "Command Center",
				Description: "Tasks, calendar and household ops",
				Icon:        "🧭",
				Href:        "https://command.example.com",
				Accent:      models.AccentLavender,
				External:    true,
			},
		},
		Hub: models.Hub{
			Title:       "OneNote Hub",
			Description: "All notebooks in one place",
			Icon:        "🗂",
			Href:        "https://onenote.example.com",
		},
		Status: StatusConfig{
			Status:        models.Status{State: models.StatusOnline},
			ProbeTimeout:  3 * time.Second,
			ProbeInterval: time.Minute,
		},
	}
}

// Load reads the configuration from LAUNCHER_CONFIG, or launcher.yaml when
// unset. A missing default file is not an error; a missing explicit file is.
func Load() (*Config, error) {
	path := os.Getenv("LAUNCHER_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg, err := LoadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No config file found, using defaults", slog.String("path", path))
			cfg = DefaultConfig()
		} else {
			return nil, err
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a YAML file over the defaults without env overrides or validation.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults. Lists given in the document replace
// the default lists entirely.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Tiles = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Tiles == nil {
		cfg.Tiles = DefaultConfig().Tiles
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		c.Database.URL = dbURL
	}
	if strict := os.Getenv("LAUNCHER_STRICT_ACCENTS"); strict != "" {
		c.StrictAccents = strict == "true"
	}
	if level := os.Getenv("LAUNCHER_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

// Validate checks the whole configuration. Unknown accents are rejected only
// with StrictAccents; otherwise they are logged and rendered with the default
// treatment.
func (c *Config) Validate() error {
	v := NewValidator(c.StrictAccents)
	if err := v.validate.Struct(c); err != nil {
		return newValidationError(err)
	}
	return v.accents(c.Tiles)
}

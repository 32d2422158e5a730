package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rozvrh-svg/rozvrh/core/factory"
	"github.com/rozvrh-svg/rozvrh/core/metrics"
	"github.com/rozvrh-svg/rozvrh/core/timetable"
)

// EnvPrefix marks environment variables that override file settings.
// ROZVRH_SERVER__ADDRESS maps to server.address.
const EnvPrefix = "ROZVRH_"

type Config struct {
	Server   ServerConfig         `json:"server"`
	Source   factory.ModuleConfig `json:"source"`
	Layout   timetable.Layout     `json:"layout"`
	Semester SemesterConfig       `json:"semester"`
	Metrics  metrics.Config       `json:"metrics"`
	Sentry   SentryConfig         `json:"sentry"`
}

// Load reads the configuration file at path, applies environment overrides
// and defaults, and validates the result. An empty path skips the file so
// that defaults and environment alone are used.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SetDefaults fills every unset section.
func (c *Config) SetDefaults() {
	c.Server.SetDefaults()
	c.Layout.SetDefaults()
	c.Semester.SetDefaults()
	if c.Source.Type == "" {
		c.Source = factory.ModuleConfig{Type: "json", Conf: map[string]any{"path": "events.json"}}
	}
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Semester.Validate(); err != nil {
		return fmt.Errorf("semester: %w", err)
	}
	return nil
}

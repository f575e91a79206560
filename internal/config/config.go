package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rsanghvi/courtsched/internal/scheduler"
)

// Config is the full application configuration. Every field has a working
// default, so running without a config file is supported.
type Config struct {
	DBPath     string           `json:"db_path"`
	Scheduling scheduler.Policy `json:"scheduling"`
}

// DefaultDBPath resolves the database location when no config overrides it.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "courtsched.db"
	}
	return filepath.Join(home, ".courtsched", "courtsched.db")
}

func (c *Config) SetDefaults() {
	if c.DBPath == "" {
		c.DBPath = DefaultDBPath()
	}
	c.Scheduling.SetDefaults()
}

func (c *Config) Validate() error {
	return c.Scheduling.Validate()
}

// Load reads configuration from an optional YAML or JSON file and applies
// COURTSCHED_ environment overrides on top. An empty path loads defaults
// plus environment only. Double underscores nest, so
// COURTSCHED_SCHEDULING__HORIZON_DAYS maps to scheduling.horizon_days.
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
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("COURTSCHED_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "courtsched_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/transito/transito/pkg/journeygraph"
	"github.com/transito/transito/pkg/util"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Listen string `yaml:"listen" validate:"required"`
}

// PlannerConfig carries the constants the graph builder and heuristic use.
// They live here, not as package globals, so a session can run with different
// values without touching any other session.
type PlannerConfig struct {
	EarthRadiusMetres      float64 `yaml:"earthRadiusMetres" validate:"gt=0"`
	CruisingSpeedMPS       float64 `yaml:"cruisingSpeedMps" validate:"gt=0"`
	DefaultTransferSeconds int     `yaml:"defaultTransferSeconds" validate:"gt=0"`
}

type CacheConfig struct {
	Enabled           bool `yaml:"enabled"`
	ExpirationMinutes int  `yaml:"expirationMinutes" validate:"gte=0"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Planner PlannerConfig `yaml:"planner"`
	Cache   CacheConfig   `yaml:"cache"`
}

func defaults() *Config {
	graphDefaults := journeygraph.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Listen: ":8080",
		},
		Planner: PlannerConfig{
			EarthRadiusMetres:      graphDefaults.EarthRadiusMetres,
			CruisingSpeedMPS:       graphDefaults.CruisingSpeedMPS,
			DefaultTransferSeconds: graphDefaults.DefaultTransferSeconds,
		},
		Cache: CacheConfig{
			Enabled:           false,
			ExpirationMinutes: 90,
		},
	}
}

// Load reads the YAML config file, falling back to defaults when no file is
// present. The path can be overridden with TRANSITO_CONFIG.
func Load(path string) (*Config, error) {
	cfg := defaults()

	env := util.GetEnvironmentVariables()
	if env["TRANSITO_CONFIG"] != "" {
		path = env["TRANSITO_CONFIG"]
	}

	if path != "" {
		contents, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(contents, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// GraphConfig maps the planner settings onto the graph builder's config value.
func (c *Config) GraphConfig() journeygraph.Config {
	return journeygraph.Config{
		EarthRadiusMetres:      c.Planner.EarthRadiusMetres,
		CruisingSpeedMPS:       c.Planner.CruisingSpeedMPS,
		DefaultTransferSeconds: c.Planner.DefaultTransferSeconds,
	}
}

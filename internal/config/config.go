// Package config loads the stenomods configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/stenomods"
	"github.com/aretw0/stenomods/internal/logging"
	"github.com/aretw0/stenomods/pkg/tables"
)

// DefaultFile is read when no path is given and it exists in the working directory.
const DefaultFile = "stenomods.yaml"

// Defaults.
const (
	DefaultHTTPPort     = 8080
	DefaultMCPPort      = 8081
	DefaultMCPTransport = "stdio"
	DefaultFallback     = "-"
	DefaultLogLevel     = "info"
)

// Config is the application configuration.
type Config struct {
	// Engines are registered in order, ahead of the literal dictionaries.
	Engines []string `mapstructure:"engines" yaml:"engines"`

	// SpellingMethod overrides every engine's fingerspelling alphabet.
	SpellingMethod string `mapstructure:"spelling_method" yaml:"spelling_method,omitempty"`

	// Enders overrides the ender chords of the ender engine.
	Enders []string `mapstructure:"enders" yaml:"enders,omitempty"`

	// Dictionaries are literal dictionary files (JSON or YAML) consulted
	// after the engines.
	Dictionaries []string `mapstructure:"dictionaries" yaml:"dictionaries,omitempty"`

	// Vaults are Loam document directories, each served as one dictionary
	// named after its directory.
	Vaults []string `mapstructure:"vaults" yaml:"vaults,omitempty"`

	// Redis serves dictionaries stored as Redis hashes.
	Redis RedisConfig `mapstructure:"redis" yaml:"redis,omitempty"`

	// Fallback is printed by the run command for unmatched entries.
	Fallback string `mapstructure:"fallback" yaml:"fallback"`

	LogLevel string     `mapstructure:"log_level" yaml:"log_level"`
	HTTP     HTTPConfig `mapstructure:"http" yaml:"http"`
	MCP      MCPConfig  `mapstructure:"mcp" yaml:"mcp"`
}

// HTTPConfig configures the serve command.
type HTTPConfig struct {
	Port    int  `mapstructure:"port" yaml:"port"`
	Metrics bool `mapstructure:"metrics" yaml:"metrics"`
}

// RedisConfig locates the Redis-backed dictionaries.
type RedisConfig struct {
	Addr         string   `mapstructure:"addr" yaml:"addr"`
	Password     string   `mapstructure:"password" yaml:"password,omitempty"`
	DB           int      `mapstructure:"db" yaml:"db,omitempty"`
	Prefix       string   `mapstructure:"prefix" yaml:"prefix,omitempty"`
	Dictionaries []string `mapstructure:"dictionaries" yaml:"dictionaries,omitempty"`
}

// MCPConfig configures the mcp command.
type MCPConfig struct {
	Transport string `mapstructure:"transport" yaml:"transport"`
	Port      int    `mapstructure:"port" yaml:"port"`
}

// Default returns the configuration used without a file.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the file at path. An empty path loads DefaultFile when present,
// otherwise the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			return Default(), nil
		}
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration data, applies defaults and validates it.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Engines) == 0 {
		c.Engines = stenomods.Engines()
	}
	if c.Fallback == "" {
		c.Fallback = DefaultFallback
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = DefaultHTTPPort
	}
	if c.MCP.Transport == "" {
		c.MCP.Transport = DefaultMCPTransport
	}
	if c.MCP.Port == 0 {
		c.MCP.Port = DefaultMCPPort
	}
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	known := stenomods.Engines()
	seen := make(map[string]bool)
	for _, e := range c.Engines {
		if !slices.Contains(known, e) {
			errs = append(errs, fmt.Errorf("unknown engine %q (want one of %v)", e, known))
		}
		if seen[e] {
			errs = append(errs, fmt.Errorf("engine %q listed twice", e))
		}
		seen[e] = true
	}

	if c.SpellingMethod != "" {
		if _, err := tables.Spelling(c.SpellingMethod); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Enders) > 0 && !seen[stenomods.EngineEnder] {
		errs = append(errs, fmt.Errorf("enders set but the %s engine is not enabled", stenomods.EngineEnder))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.HTTP.Port < 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid http port %d", c.HTTP.Port))
	}
	if c.MCP.Port < 0 || c.MCP.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid mcp port %d", c.MCP.Port))
	}
	if len(c.Redis.Dictionaries) > 0 && c.Redis.Addr == "" {
		errs = append(errs, fmt.Errorf("redis dictionaries set without redis.addr"))
	}
	if c.Redis.DB < 0 {
		errs = append(errs, fmt.Errorf("invalid redis db %d", c.Redis.DB))
	}
	if c.MCP.Transport != "stdio" && c.MCP.Transport != "sse" {
		errs = append(errs, fmt.Errorf("unknown mcp transport %q", c.MCP.Transport))
	}

	return errors.Join(errs...)
}

// Package config loads process configuration from an optional YAML file,
// an optional .env file, and environment variables. Configuration is read
// once at startup and never re-read.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/voxrelay/deepgram-mcp/internal/deepgram"
	"github.com/voxrelay/deepgram-mcp/internal/logger"
	"github.com/voxrelay/deepgram-mcp/internal/relay"
)

// ServiceName identifies this process in logs and config lookup.
const ServiceName = "deepgram-mcp"

// Config is the process configuration.
type Config struct {
	Deepgram deepgram.Config `mapstructure:"deepgram"`
	Relay    relay.Config    `mapstructure:"relay"`
	Server   ServerConfig    `mapstructure:"server"`
	Logging  logger.Config   `mapstructure:"logging"`
}

// ServerConfig selects the MCP transport.
type ServerConfig struct {
	// Transport is "stdio" (default) or "http".
	Transport string `mapstructure:"transport" validate:"omitempty,oneof=stdio http"`
	// Addr is the listen address for the HTTP transport.
	Addr string `mapstructure:"addr"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Server.Transport == "" {
		c.Server.Transport = "stdio"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	c.Logging.ApplyDefaults()
}

// envBindings maps config keys to their environment variables.
var envBindings = map[string]string{
	"deepgram.api_key":    "DEEPGRAM_API_KEY",
	"deepgram.project_id": "DEEPGRAM_PROJECT_ID",
	"deepgram.base_url":   "DEEPGRAM_BASE_URL",
	"relay.callback_url":  "RELAY_CALLBACK_URL",
	"server.transport":    "SERVER_TRANSPORT",
	"server.addr":         "SERVER_ADDR",
	"logging.level":       "LOG_LEVEL",
	"logging.format":      "LOG_FORMAT",
	"logging.output":      "LOG_OUTPUT",
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) { o.envFile = path }
}

// Load reads, defaults, and validates the process configuration.
func Load(opts ...Option) (*Config, error) {
	var lo loadOptions
	for _, opt := range opts {
		opt(&lo)
	}

	envFile := lo.envFile
	if envFile == "" && exists(".env") {
		envFile = ".env"
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load env file %s: %v\n", envFile, err)
		}
	}

	v := viper.New()

	configFile := lo.configFile
	if configFile == "" {
		for _, candidate := range []string{"./config.yml", "./config/config.yml"} {
			if exists(candidate) {
				configFile = candidate
				break
			}
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the listen addresses and the identity the service
// reports to clients.
type ServerConfig struct {
	ServiceName string `yaml:"service_name"`
	GRPCPort    string `yaml:"grpc_port"`
	HTTPPort    string `yaml:"http_port"`
	// Endpoint is the address advertised to game frontends in asset config.
	Endpoint string `yaml:"endpoint"`
}

// RedisConfig holds the game-state store connection settings.
type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
}

// Addr returns host:port for the Redis client.
func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

// FlagdConfig points at the flagd REST surface used for feature flags.
type FlagdConfig struct {
	Host     string `yaml:"host"`
	HTTPPort string `yaml:"http_port"`
}

// BaseURL returns the flagd evaluation API base URL.
func (f FlagdConfig) BaseURL() string {
	return "http://" + net.JoinHostPort(f.Host, f.HTTPPort)
}

// ScoringConfig points at the casino scoring service.
type ScoringConfig struct {
	URL string `yaml:"url"`
}

// TelemetryConfig holds the OTLP trace collector endpoint. Empty means
// tracing stays off.
type TelemetryConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// Config is the full service configuration: defaults, overridden by the
// optional YAML file, overridden by environment variables.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Redis     RedisConfig     `yaml:"redis"`
	Flagd     FlagdConfig     `yaml:"flagd"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// Default returns the configuration used when nothing else is provided.
func Default() Config {
	return Config{
		Server: ServerConfig{
			ServiceName: "vegas-roulette-service",
			GRPCPort:    "50052",
			HTTPPort:    "8082",
			Endpoint:    "localhost:50052",
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: 6379,
		},
		Flagd: FlagdConfig{
			Host:     "localhost",
			HTTPPort: "8013",
		},
		Scoring: ScoringConfig{
			URL: "http://localhost:8085",
		},
		Telemetry: TelemetryConfig{
			Endpoint: "localhost:4317",
		},
	}
}

// Load builds the configuration from the YAML file at path (missing files are
// fine, parse errors are not) and then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := readYAML(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// readYAML loads a YAML file over cfg. Missing files leave cfg untouched.
func readYAML(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(b, cfg)
}

func applyEnv(cfg *Config) {
	cfg.Server.ServiceName = getEnv("SERVICE_NAME", cfg.Server.ServiceName)
	cfg.Server.GRPCPort = getEnv("GRPC_PORT", cfg.Server.GRPCPort)
	cfg.Server.HTTPPort = getEnv("PORT", cfg.Server.HTTPPort)
	cfg.Server.Endpoint = getEnv("SERVICE_ENDPOINT", cfg.Server.Endpoint)

	cfg.Redis.Host = getEnv("REDIS_HOST", cfg.Redis.Host)
	if v := os.Getenv("REDIS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Redis.Port = port
		}
	}
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)

	cfg.Flagd.Host = getEnv("FLAGD_HOST", cfg.Flagd.Host)
	cfg.Flagd.HTTPPort = getEnv("FLAGD_HTTP_PORT", cfg.Flagd.HTTPPort)

	cfg.Scoring.URL = getEnv("SCORING_SERVICE_URL", cfg.Scoring.URL)

	cfg.Telemetry.Endpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.Endpoint)
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

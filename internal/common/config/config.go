package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Topology source kinds.
const (
	SourceBuiltin  = "builtin"
	SourceCSV      = "csv"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

type Config struct {
	Topology TopologyConfig
	Database DatabaseConfig
	Resolver ResolverConfig
	Delay    DelayConfig
	Logging  LoggingConfig
}

// TopologyConfig selects where the station network is loaded from.
type TopologyConfig struct {
	Source string
	File   string
	URL    string
}

type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	ConnectTimeout time.Duration
}

type ResolverConfig struct {
	CacheSize int
}

type DelayConfig struct {
	MaxHops      int
	HopIncrement int
}

type LoggingConfig struct {
	Level    string
	FilePath string
	Console  bool
}

func Load() (*Config, error) {
	cfg := &Config{
		Topology: TopologyConfig{
			Source: strings.ToLower(getEnv("TOPOLOGY_SOURCE", SourceBuiltin)),
			File:   getEnv("TOPOLOGY_FILE", ""),
			URL:    getEnv("TOPOLOGY_URL", ""),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", ""),
			DBName:         getEnv("DB_NAME", "metronav"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			ConnectTimeout: getDurationEnv("DB_CONNECT_TIMEOUT", 5*time.Second),
		},
		Resolver: ResolverConfig{
			CacheSize: getIntEnv("RESOLVER_CACHE_SIZE", 256),
		},
		Delay: DelayConfig{
			MaxHops:      getIntEnv("DELAY_MAX_HOPS", 3),
			HopIncrement: getIntEnv("DELAY_HOP_INCREMENT", 3),
		},
		Logging: LoggingConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			FilePath: getEnv("LOG_FILE", "metronav.log"),
			Console:  getBoolEnv("LOG_CONSOLE", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Topology.Source {
	case SourceBuiltin, SourcePostgres:
	case SourceCSV:
		if c.Topology.File == "" {
			return fmt.Errorf("TOPOLOGY_FILE is required when TOPOLOGY_SOURCE=%s", SourceCSV)
		}
	case SourceHTTP:
		if c.Topology.URL == "" {
			return fmt.Errorf("TOPOLOGY_URL is required when TOPOLOGY_SOURCE=%s", SourceHTTP)
		}
	default:
		return fmt.Errorf("unknown topology source %q", c.Topology.Source)
	}

	if c.Resolver.CacheSize < 0 {
		return fmt.Errorf("RESOLVER_CACHE_SIZE must not be negative, got %d", c.Resolver.CacheSize)
	}
	if c.Delay.MaxHops < 0 {
		return fmt.Errorf("DELAY_MAX_HOPS must not be negative, got %d", c.Delay.MaxHops)
	}
	if c.Delay.HopIncrement < 0 {
		return fmt.Errorf("DELAY_HOP_INCREMENT must not be negative, got %d", c.Delay.HopIncrement)
	}

	if c.Topology.Source == SourcePostgres {
		return c.Database.Validate()
	}
	return nil
}

func (c *DatabaseConfig) Validate() error {
	if c.Host == "" || c.Port == "" || c.User == "" || c.DBName == "" {
		return fmt.Errorf("database host, port, user and name are required")
	}
	if c.ConnectTimeout <= 0 {
		return fmt.Errorf("DB_CONNECT_TIMEOUT must be positive, got %s", c.ConnectTimeout)
	}
	return nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode, int(c.ConnectTimeout.Seconds()))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Catalog     CatalogConfig  `mapstructure:"catalog"`
	Log         LogConfig      `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host                string   `mapstructure:"host"`
	Port                int      `mapstructure:"port"`
	CORSOrigin          string   `mapstructure:"cors_origin"`
	MaxBodyBytes        int64    `mapstructure:"max_body_bytes"`
	AllowedContentTypes []string `mapstructure:"allowed_content_types"`
}

// DatabaseConfig holds PostgreSQL configuration. An empty URL selects the
// in-memory store.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
	MinConns int32  `mapstructure:"min_conns"`
}

// CatalogConfig holds catalog behaviour settings
type CatalogConfig struct {
	OwnerID      int64 `mapstructure:"owner_id"`
	SeedDemoData bool  `mapstructure:"seed_demo_data"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

var environments = map[string]bool{
	"development": true,
	"test":        true,
	"production":  true,
}

// Load reads configuration from environment variables and an optional
// config.yaml in . or ./config
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("environment", "development")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors_origin", "http://localhost:5173")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.allowed_content_types", []string{"application/json"})
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 25)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("catalog.owner_id", 1)
	v.SetDefault("catalog.seed_demo_data", true)
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unprefixed names kept for existing deployments
	_ = v.BindEnv("database.url", "CATALOG_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("server.port", "CATALOG_SERVER_PORT", "PORT")
	_ = v.BindEnv("server.host", "CATALOG_SERVER_HOST", "HOST")
	_ = v.BindEnv("environment", "CATALOG_ENVIRONMENT", "ENVIRONMENT")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !environments[c.Environment] {
		return fmt.Errorf("environment must be one of development, test, production; got %q", c.Environment)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive")
	}

	if len(c.Server.AllowedContentTypes) == 0 {
		return fmt.Errorf("server.allowed_content_types must not be empty")
	}
	for _, ct := range c.Server.AllowedContentTypes {
		if strings.TrimSpace(ct) == "" {
			return fmt.Errorf("server.allowed_content_types must not contain blank entries")
		}
	}

	if c.Database.URL != "" && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns must not exceed database.max_conns")
	}

	if c.Catalog.OwnerID <= 0 {
		return fmt.Errorf("catalog.owner_id must be positive")
	}

	return nil
}

// Addr returns the host:port the server listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// UsesDatabase reports whether a PostgreSQL URL is configured
func (c *Config) UsesDatabase() bool {
	return c.Database.URL != ""
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

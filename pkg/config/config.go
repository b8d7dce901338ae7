package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the server settings
type Config struct {
	Port     int    `mapstructure:"port"`
	GinMode  string `mapstructure:"gin_mode"`
	Timezone string `mapstructure:"timezone"`

	DatabaseURL string `mapstructure:"database_url"`
	DataPath    string `mapstructure:"data_path"`

	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	AdminEmail    string        `mapstructure:"admin_email"`
	AdminPassword string        `mapstructure:"admin_password"`

	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// LoadDotEnv loads the first .env found in the working directory or its parents
func LoadDotEnv() {
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}
}

// Load reads the configuration from the environment. Variables are prefixed
// with PLANNER_, e.g. PLANNER_JWT_SECRET; PORT and DATABASE_URL are also read unprefixed.
func Load() (*Config, error) {
	LoadDotEnv()

	v := viper.New()
	v.SetDefault("port", 8000)
	v.SetDefault("gin_mode", "release")
	v.SetDefault("timezone", "Europe/Paris")
	v.SetDefault("database_url", "")
	v.SetDefault("data_path", "planner.db")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("admin_email", "admin@example.com")
	v.SetDefault("admin_password", "")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", "5m")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetEnvPrefix("PLANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// platform conventions
	_ = v.BindEnv("port", "PLANNER_PORT", "PORT")
	_ = v.BindEnv("database_url", "PLANNER_DATABASE_URL", "DATABASE_URL")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("config: jwt_secret must be at least 16 characters")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port must be between 1 and 65535")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("config: timezone: %w", err)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("config: cache_ttl must not be negative")
	}
	return nil
}

// Location returns the timezone shops' wall clocks are read in
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

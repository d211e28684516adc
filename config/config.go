// Package config loads mortgage-calculator settings from an optional YAML
// file with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"mortgage-calculator/service"
)

// EnvPrefix is prepended to every environment override,
// e.g. MORTGAGE_SERVER_ADDR or MORTGAGE_CACHE_DRIVER.
const EnvPrefix = "MORTGAGE"

// Config represents the complete application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    yaml:"server"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit" yaml:"ratelimit"`
	Cache     CacheConfig     `mapstructure:"cache"     yaml:"cache"`
	Records   RecordsConfig   `mapstructure:"records"   yaml:"records"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"             yaml:"addr"`
	Mode            string        `mapstructure:"mode"             yaml:"mode"` // "debug" or "release"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"     yaml:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    yaml:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"     yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// RateLimitConfig bounds requests per client IP.
type RateLimitConfig struct {
	Requests int           `mapstructure:"requests" yaml:"requests"`
	Window   time.Duration `mapstructure:"window"   yaml:"window"`
}

// CacheConfig selects the payment cache backend.
type CacheConfig struct {
	Driver        string        `mapstructure:"driver"         yaml:"driver"` // "memory" or "redis"
	RedisAddr     string        `mapstructure:"redis_addr"     yaml:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password" yaml:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"       yaml:"redis_db"`
	TTL           time.Duration `mapstructure:"ttl"            yaml:"ttl"`
}

// RecordsConfig describes the batch input file.
type RecordsConfig struct {
	Path    string   `mapstructure:"path"    yaml:"path"`
	Columns []string `mapstructure:"columns" yaml:"columns"`
}

// Load reads the configuration. With an empty path it looks for
// config.yaml in ./config and the working directory, and a missing file is
// not an error. An explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("ratelimit.requests", 5)
	v.SetDefault("ratelimit.window", time.Minute)

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("cache.ttl", service.DefaultCacheTTL)

	v.SetDefault("records.path", "data/pixell_river_mortgages.txt")
	v.SetDefault("records.columns", service.DefaultColumns)
}

// Validate checks settings that cannot be expressed as defaults.
func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case "memory", "redis":
	default:
		return fmt.Errorf("cache.driver must be \"memory\" or \"redis\", got %q", c.Cache.Driver)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return errors.New("ratelimit.requests and ratelimit.window must be positive")
	}
	if _, err := c.Layout(); err != nil {
		return fmt.Errorf("records.columns: %w", err)
	}
	return nil
}

// Layout returns the record layout described by Records.Columns.
func (c *Config) Layout() (service.Layout, error) {
	return service.NewLayout(c.Records.Columns)
}

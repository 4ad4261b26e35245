package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	USDA       USDAConfig
	Cache      CacheConfig
	RateLimit  RateLimitConfig
	Validation ValidationConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// USDAConfig holds USDA FoodData Central configuration. The API key is
// optional: without one, reference-data refreshes skip USDA enrichment and
// the service runs on the curated seed tables alone.
type USDAConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute per client IP
	USDA  int `mapstructure:"usda"`   // USDA requests per hour
}

// ValidationConfig holds the unit validation engine's tunables.
type ValidationConfig struct {
	SimilarityThreshold float64       `mapstructure:"similarity_threshold"`
	FuzzyEditDistance   int           `mapstructure:"fuzzy_edit_distance"`
	MagnitudeWarnLimit  float64       `mapstructure:"magnitude_warn_limit"`
	CountWarnLimit      float64       `mapstructure:"count_warn_limit"`
	BatchWorkers        int           `mapstructure:"batch_workers"`
	RefreshInterval     time.Duration `mapstructure:"refresh_interval"`
	EnableDebugLogging  bool          `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pantrychef/")

	// Environment variable settings
	v.SetEnvPrefix("PANTRYCHEF")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// USDA defaults
	v.SetDefault("usda.base_url", "https://api.nal.usda.gov/fdc")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "720h") // 30 days

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.usda", 1000)

	// Validation engine defaults
	v.SetDefault("validation.similarity_threshold", 0.6)
	v.SetDefault("validation.fuzzy_edit_distance", 1)
	v.SetDefault("validation.magnitude_warn_limit", 1000)
	v.SetDefault("validation.count_warn_limit", 100)
	v.SetDefault("validation.batch_workers", 4)
	v.SetDefault("validation.refresh_interval", "24h")
	v.SetDefault("validation.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if t := config.Validation.SimilarityThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("validation similarity threshold must be in (0, 1], got: %v", t)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("per-IP rate limit must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}

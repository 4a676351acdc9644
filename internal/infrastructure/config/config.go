package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the advisor service.
type Config struct {
	Environment string            `mapstructure:"environment"`
	LogLevel    string            `mapstructure:"log_level"`
	Server      ServerConfig      `mapstructure:"server"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Marketplace MarketplaceConfig `mapstructure:"marketplace"`
	Advisory    AdvisoryConfig    `mapstructure:"advisory"`
	Trending    TrendingConfig    `mapstructure:"trending"`
}

type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	Host            string   `mapstructure:"host"`
	ReadTimeout     int      `mapstructure:"read_timeout"`
	WriteTimeout    int      `mapstructure:"write_timeout"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	RateLimitPerMin int      `mapstructure:"rate_limit_per_min"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

// MarketplaceConfig points at the upstream Marketplace API.
type MarketplaceConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// AdvisoryConfig tunes the recommendation engine boundary.
type AdvisoryConfig struct {
	MinScore        float64 `mapstructure:"min_score"`
	MaxResults      int     `mapstructure:"max_results"`
	CacheTTLSeconds int     `mapstructure:"cache_ttl_seconds"`
}

// TrendingConfig tunes the trending-assets background worker.
type TrendingConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
	Limit    int    `mapstructure:"limit"`
}

// Load reads configuration from configs/config.yaml (when present), the
// environment, and built-in defaults, in increasing precedence.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	viper.SetDefault("server.port", 8086)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.read_timeout", 30)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:5173", "http://localhost:4000", "http://localhost:9002"})
	viper.SetDefault("server.rate_limit_per_min", 100)

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.enabled", true)

	viper.SetDefault("marketplace.base_url", "http://localhost:8085")
	viper.SetDefault("marketplace.timeout_seconds", 5)

	viper.SetDefault("advisory.min_score", 0.6)
	viper.SetDefault("advisory.max_results", 10)
	viper.SetDefault("advisory.cache_ttl_seconds", 60)

	viper.SetDefault("trending.enabled", true)
	viper.SetDefault("trending.schedule", "@every 15m")
	viper.SetDefault("trending.limit", 5)
}

func validate(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Marketplace.BaseURL == "" {
		return fmt.Errorf("marketplace.base_url is required")
	}
	if config.Advisory.MinScore < 0 || config.Advisory.MinScore > 1 {
		return fmt.Errorf("advisory.min_score must be within [0,1], got %v", config.Advisory.MinScore)
	}
	if config.Advisory.MaxResults <= 0 {
		return fmt.Errorf("advisory.max_results must be positive, got %d", config.Advisory.MaxResults)
	}
	return nil
}

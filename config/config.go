package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is populated from environment variables (a .env file is loaded by
// main before this runs). Environment always wins over defaults.
type Config struct {
	Port          string        `mapstructure:"port"`
	AppEnv        string        `mapstructure:"app_env"`
	MongoURI      string        `mapstructure:"mongo_uri"`
	DBName        string        `mapstructure:"db_name"`
	JWTSecret     string        `mapstructure:"jwt_secret"`
	TokenTTL      time.Duration `mapstructure:"token_ttl"`
	PointsDivisor int           `mapstructure:"points_divisor"`
	LowStockLimit int           `mapstructure:"low_stock_limit"`
	LogLevel      string        `mapstructure:"log_level"`
}

// Load reads configuration from the environment. JWT_SECRET is mandatory in
// production; development falls back to a fixed dev secret so the server can
// run without a .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("port", "5000")
	v.SetDefault("app_env", "development")
	v.SetDefault("mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("db_name", "web_kasir")
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("points_divisor", 1000)
	v.SetDefault("low_stock_limit", 10)
	v.SetDefault("log_level", "INFO")

	for _, key := range []string{"port", "app_env", "mongo_uri", "db_name", "jwt_secret", "token_ttl", "points_divisor", "low_stock_limit", "log_level"} {
		_ = v.BindEnv(key)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if strings.EqualFold(cfg.AppEnv, "production") {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "dev_secret_key_change_me"
	}
	if cfg.PointsDivisor <= 0 {
		return nil, fmt.Errorf("POINTS_DIVISOR must be positive, got %d", cfg.PointsDivisor)
	}

	return &cfg, nil
}

package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	MetricsAddr     string
	ParseTimeout    time.Duration
	DefaultCurrency string
	IsProduction    bool
	EnableDBCheck   bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("METRICS_ADDR", ":9090")
	viper.SetDefault("PARSE_TIMEOUT", "30s")
	viper.SetDefault("DEFAULT_CURRENCY", "GBP")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	parseTimeoutStr := viper.GetString("PARSE_TIMEOUT")
	parseTimeout, err := time.ParseDuration(parseTimeoutStr)
	if err != nil {
		parseTimeout = 30 * time.Second
		if parseTimeoutStr != "" {
			log.Printf("Warning: Invalid value for PARSE_TIMEOUT ('%s'). Defaulting to %s.\n", parseTimeoutStr, parseTimeout.String())
		}
	}

	cfg.MetricsAddr = viper.GetString("METRICS_ADDR")
	cfg.ParseTimeout = parseTimeout
	cfg.DefaultCurrency = viper.GetString("DEFAULT_CURRENCY")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
}

package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Report engine knobs
	ReportTimeout        time.Duration
	ReportMaxConcurrency int
	MonthlyRevenueTarget decimal.Decimal

	// CORS
	FrontendBaseURL string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "hotel-ops-backend")
	viper.SetDefault("REPORT_TIMEOUT", "30s")
	viper.SetDefault("REPORT_MAX_CONCURRENCY", 8)
	viper.SetDefault("MONTHLY_REVENUE_TARGET", "5000000")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION: %w", err)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	reportTimeout, err := time.ParseDuration(viper.GetString("REPORT_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEOUT: %w", err)
	}
	cfg.ReportTimeout = reportTimeout

	cfg.ReportMaxConcurrency = viper.GetInt("REPORT_MAX_CONCURRENCY")
	if cfg.ReportMaxConcurrency < 1 {
		return nil, fmt.Errorf("REPORT_MAX_CONCURRENCY must be at least 1, got %d", cfg.ReportMaxConcurrency)
	}

	target, err := decimal.NewFromString(viper.GetString("MONTHLY_REVENUE_TARGET"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONTHLY_REVENUE_TARGET: %w", err)
	}
	cfg.MonthlyRevenueTarget = target

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	return cfg, nil
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Rate limit applied to the auth route group, in ulule/limiter
	// formatted notation (e.g. "10-M" = ten requests per minute).
	AuthRateLimit string

	// Opaque assistant backend. Empty endpoint disables the relay and
	// the assistant answers with its canned fallback.
	AssistantEndpoint string
	AssistantAPIKey   string

	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env
// file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "business-registry-app")
	viper.SetDefault("AUTH_RATE_LIMIT", "10-M")
	viper.SetDefault("ASSISTANT_ENDPOINT", "")
	viper.SetDefault("ASSISTANT_API_KEY", "")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	expiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	expiry, err := time.ParseDuration(expiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION %q: %w", expiryStr, err)
	}

	cfg := &Config{
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		JWTSecret:         viper.GetString("JWT_SECRET"),
		JWTExpiryDuration: expiry,
		JWTIssuer:         viper.GetString("JWT_ISSUER"),
		AuthRateLimit:     viper.GetString("AUTH_RATE_LIMIT"),
		AssistantEndpoint: viper.GetString("ASSISTANT_ENDPOINT"),
		AssistantAPIKey:   viper.GetString("ASSISTANT_API_KEY"),
		CORSAllowOrigins:  strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ","),
	}
	return cfg, nil
}

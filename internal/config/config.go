package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// IBE backend
	BackendBaseURL string
	BackendAPIKey  string
	BackendTimeout time.Duration
	TenantID       int

	// Redis (itinerary session store)
	RedisURL string

	// Identity provider token verification
	JWTSecret string

	// Checkout
	CheckoutWindow time.Duration

	// CORS
	AllowedOrigins []string

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		BackendBaseURL: getEnv("IBE_BACKEND_URL", "https://team-11-ibe-apim.azure-api.net"),
		BackendAPIKey:  getEnv("IBE_BACKEND_API_KEY", ""),
		BackendTimeout: time.Duration(parseInt(getEnv("IBE_BACKEND_TIMEOUT_SECONDS", "10"), 10)) * time.Second,
		TenantID:       parseInt(getEnv("IBE_TENANT_ID", "1"), 1),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		JWTSecret: getEnv("JWT_SECRET", "super-secret-key-change-me"),

		CheckoutWindow: parseDuration(getEnv("CHECKOUT_WINDOW", "10m"), 10*time.Minute),

		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

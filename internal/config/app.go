package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// AppConfig holds everything the HTTP server needs besides the database
type AppConfig struct {
	JWTSecret         string
	JWTTTL            time.Duration
	ServerPort        string
	InitialAdminEmail string
	LogLevel          string
	LogFormat         string
	GinMode           string
}

// LoadAppConfig reads the application settings from the environment
func LoadAppConfig() (*AppConfig, error) {
	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}

	ttlMinutes := int64(60)
	if raw := os.Getenv("JWT_EXPIRATION_MINUTES"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES %q", raw)
		}
		ttlMinutes = parsed
	}

	return &AppConfig{
		JWTSecret:         secret,
		JWTTTL:            time.Duration(ttlMinutes) * time.Minute,
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		InitialAdminEmail: os.Getenv("INITIAL_ADMIN_EMAIL"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		GinMode:           getEnv("GIN_MODE", "release"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Issuer string // Issuer claim for tokens (default: campuspass-accounts)

	DatabaseFile string // Path to SQLite database file (default: ./accounts.db)
	PepperFile   string // Path to file containing pepper for password hashing (default: ./pepper)

	TokenTTL time.Duration // Access token lifetime (default: 8h)

	MaxLoginAttempts int           // Failures before the account is locked (default: 5)
	AttemptWindow    time.Duration // How long a failure streak is remembered (default: 15m)
	RedisAddr        string        // Optional: address of a Redis used to share attempt counts
	RedisPassword    string        // Optional: Redis auth

	SMTPHost     string // Optional: SMTP relay host; empty means log-only delivery
	SMTPPort     int    // SMTP relay port (default: 587)
	SMTPUsername string // Optional: SMTP auth
	SMTPPassword string // Optional: SMTP auth
	SMTPFrom     string // Sender address for recovery mail

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	// Load a local .env when present; real environments set vars directly.
	_ = godotenv.Load()

	cfg := Config{
		Issuer:       getEnvOrDefault("ACCOUNTS_ISSUER", "campuspass-accounts"),
		DatabaseFile: getEnvOrDefault("ACCOUNTS_DATABASE_FILE", "accounts.db"),
		PepperFile:   getEnvOrDefault("ACCOUNTS_PEPPER_FILE", "pepper"),

		TokenTTL: getEnvDurationOrDefault("ACCOUNTS_TOKEN_TTL", 8*time.Hour),

		MaxLoginAttempts: getEnvIntOrDefault("ACCOUNTS_MAX_LOGIN_ATTEMPTS", 5),
		AttemptWindow:    getEnvDurationOrDefault("ACCOUNTS_ATTEMPT_WINDOW", 15*time.Minute),
		RedisAddr:        os.Getenv("ACCOUNTS_REDIS_ADDR"),
		RedisPassword:    os.Getenv("ACCOUNTS_REDIS_PASSWORD"),

		SMTPHost:     os.Getenv("ACCOUNTS_SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("ACCOUNTS_SMTP_PORT", 587),
		SMTPUsername: os.Getenv("ACCOUNTS_SMTP_USERNAME"),
		SMTPPassword: os.Getenv("ACCOUNTS_SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("ACCOUNTS_SMTP_FROM", "no-reply@campuspass.local"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

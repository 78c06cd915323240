package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DBConfig selects and addresses the relational store.
type DBConfig struct {
	Driver     string // "mysql" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SQLitePath string
}

// Config holds everything the application reads from the environment.
type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	DB DBConfig

	SessionSecret     string
	SessionCookieName string
	SessionTTL        time.Duration
	CookieSecure      bool

	// LoginPath is where anonymous requests to guarded routes are sent.
	// Empty means respond 401 instead of redirecting.
	LoginPath string
	// RedirectAuthenticated sends signed-in users away from /login and
	// /register. Off by default.
	RedirectAuthenticated bool

	MemcachedHost   string
	ListingCacheTTL time.Duration

	RabbitMQURL   string
	RabbitMQQueue string
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() *Config {
	// Missing .env is fine, production sets real variables.
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("SERVER_PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "release"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		DB: DBConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", "mysql")),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "3306"),
			User:       getEnv("DB_USER", "rentals_user"),
			Password:   getEnv("DB_PASSWORD", "rentals_password"),
			Name:       getEnv("DB_NAME", "rentals_db"),
			SQLitePath: getEnv("SQLITE_PATH", "rentals.db"),
		},
		SessionSecret:         getEnv("SESSION_SECRET", "default-secret-change-in-production"),
		SessionCookieName:     getEnv("SESSION_COOKIE_NAME", "rentals_session"),
		SessionTTL:            getEnvAsDuration("SESSION_TTL", 30*24*time.Hour),
		CookieSecure:          getEnvAsBool("COOKIE_SECURE", false),
		LoginPath:             getEnv("AUTH_LOGIN_PATH", "/login"),
		RedirectAuthenticated: getEnvAsBool("AUTH_REDIRECT_AUTHENTICATED", false),
		MemcachedHost:         os.Getenv("MEMCACHED_HOST"),
		ListingCacheTTL:       getEnvAsDuration("LISTING_CACHE_TTL", 5*time.Minute),
		RabbitMQURL:           os.Getenv("RABBITMQ_URL"),
		RabbitMQQueue:         getEnv("RABBITMQ_QUEUE", "properties_queue"),
	}

	// AUTH_LOGIN_PATH="" is a deliberate choice for 401 responses.
	if v, ok := os.LookupEnv("AUTH_LOGIN_PATH"); ok && v == "" {
		cfg.LoginPath = ""
	}

	return cfg
}

// getEnv returns the variable or defaultValue when unset or empty.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("720h") or plain seconds.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

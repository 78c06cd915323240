package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "DB_DRIVER", "SESSION_TTL", "AUTH_REDIRECT_AUTHENTICATED", "RABBITMQ_URL"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mysql", cfg.DB.Driver)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "/login", cfg.LoginPath)
	assert.False(t, cfg.RedirectAuthenticated)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "properties_queue", cfg.RabbitMQQueue)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SESSION_TTL", "3600")
	t.Setenv("LISTING_CACHE_TTL", "90s")
	t.Setenv("AUTH_REDIRECT_AUTHENTICATED", "true")
	t.Setenv("COOKIE_SECURE", "not-a-bool")

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, 90*time.Second, cfg.ListingCacheTTL)
	assert.True(t, cfg.RedirectAuthenticated)
	assert.False(t, cfg.CookieSecure)
}

func TestLoadConfig_EmptyLoginPathMeans401(t *testing.T) {
	t.Setenv("AUTH_LOGIN_PATH", "")

	cfg := LoadConfig()

	assert.Empty(t, cfg.LoginPath)
}

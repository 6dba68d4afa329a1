package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8001, cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10, cfg.Dashboard.RecentLimit)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/budget.db")
	t.Setenv("DB_QUERY_TIMEOUT", "750ms")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://budget.example.com ,")
	t.Setenv("DASHBOARD_RECENT_LIMIT", "25")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/budget.db", cfg.Database.DSN())
	assert.Equal(t, 750*time.Millisecond, cfg.Database.QueryTimeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://budget.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 25, cfg.Dashboard.RecentLimit)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-port")
	t.Setenv("REDIS_ENABLED", "maybe")
	t.Setenv("DB_QUERY_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 8001, cfg.Server.Port)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
}

func TestDatabaseConfig_PostgresDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Driver:   DriverPostgres,
		Host:     "db",
		Port:     5432,
		User:     "u",
		Password: "p",
		Name:     "budget",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=budget sslmode=disable TimeZone=UTC", cfg.DSN())
}

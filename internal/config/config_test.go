package config

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_NAME", "brokeria")
	t.Setenv("JWT_TTL_HOURS", "")
	t.Setenv("ADMIN_BOOTSTRAP_USERNAME", "admin")
	t.Setenv("ADMIN_BOOTSTRAP_RESET", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "admin", cfg.Auth.AdminUsername)
	assert.False(t, cfg.Auth.AdminResetPassword)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("ADMIN_BOOTSTRAP_RESET", "true")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("DB_CONNECTION_STRING", "postgres://u:p@db:5432/brokeria")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.AdminResetPassword)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "postgres://u:p@db:5432/brokeria", cfg.Database.DSN())
}

func TestValidateRequiresSecret(t *testing.T) {
	cfg := &Config{
		Auth:     AuthConfig{TokenTTL: time.Hour},
		Database: DatabaseConfig{Name: "brokeria"},
	}
	require.Error(t, cfg.Validate())

	cfg.Auth.JWTSecret = "x"
	require.NoError(t, cfg.Validate())

	cfg.Database.Name = ""
	require.Error(t, cfg.Validate())
}

func TestDiscreteDSN(t *testing.T) {
	// Keep libpq fallbacks from filling in an empty password.
	t.Setenv("PGPASSWORD", "")
	t.Setenv("PGPASSFILE", "/nonexistent/pgpass")

	tests := []struct {
		name     string
		password string
	}{
		{name: "plain password", password: "pw"},
		{name: "empty password", password: ""},
		{name: "password with spaces", password: "p w"},
		{name: "password with url characters", password: "a@b/c:d?e#f%g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DatabaseConfig{Host: "db", Port: "5433", Name: "brokeria", User: "bot", Password: tt.password, SSLMode: "disable"}

			parsed, err := pgconn.ParseConfig(d.DSN())
			require.NoError(t, err)
			assert.Equal(t, "db", parsed.Host)
			assert.Equal(t, uint16(5433), parsed.Port)
			assert.Equal(t, "brokeria", parsed.Database)
			assert.Equal(t, "bot", parsed.User)
			assert.Equal(t, tt.password, parsed.Password)
			assert.Nil(t, parsed.TLSConfig)
		})
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CLIENT_ID", "dompet_app")
	t.Setenv("CLIENT_SECRET_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "dompet_app", cfg.ClientID)
	assert.Equal(t, int64(1800), cfg.AppTokenTTLSeconds)
	assert.Equal(t, "dompet.db", cfg.LedgerDBPath)
	assert.False(t, cfg.DemoMode)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CLIENT_ID", "dompet_app")
	t.Setenv("CLIENT_SECRET_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_TOKEN_TTL_SECONDS", "60")
	t.Setenv("LEDGER_DB_PATH", ":memory:")
	t.Setenv("DEMO_MODE", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, int64(60), cfg.AppTokenTTLSeconds)
	assert.Equal(t, ":memory:", cfg.LedgerDBPath)
	assert.True(t, cfg.DemoMode)
}

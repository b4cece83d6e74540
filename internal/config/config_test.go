package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "value")
	t.Setenv("X_BOOL", "yes")
	t.Setenv("X_INT", "42")
	t.Setenv("X_DUR", "250ms")
	t.Setenv("X_BAD_INT", "forty-two")

	assert.Equal(t, "value", envStr("X_STR", "d"))
	assert.Equal(t, "d", envStr("X_UNSET", "d"))
	assert.True(t, envBool("X_BOOL", false))
	assert.False(t, envBool("X_UNSET", false))
	assert.Equal(t, 42, envInt("X_INT", 0))
	assert.Equal(t, 7, envInt("X_BAD_INT", 7))
	assert.Equal(t, 250*time.Millisecond, envDur("X_DUR", time.Second))
	assert.Equal(t, time.Second, envDur("X_UNSET", time.Second))
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "APP_PORT", "SEED_CATALOG", "EVENTS_ENABLED"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.SeedCatalog)
	assert.False(t, cfg.EventsEnabled)
}

func TestLoadRateLimitConfigClampsValues(t *testing.T) {
	t.Setenv("RATE_LIMIT_LIMIT", "-5")
	t.Setenv("RATE_LIMIT_WINDOW", "0s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Limit)
	assert.Equal(t, time.Minute, cfg.Window)
	assert.True(t, cfg.Enabled)
}

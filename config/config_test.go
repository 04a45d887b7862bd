package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "redis", cfg.DraftStore)
	assert.Equal(t, 24*time.Hour, cfg.DraftTTL)
	assert.Equal(t, 15*time.Second, cfg.BookingAPITimeout)
	assert.Equal(t, "KES", cfg.Currency)
	assert.False(t, cfg.RequireAuth)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("DRAFT_STORE", "memory")
	t.Setenv("DRAFT_TTL", "2h")
	t.Setenv("REQUIRE_AUTH", "true")
	t.Setenv("BOOKING_API_URL", "http://bookings.local/api/bookings")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.DraftStore)
	assert.Equal(t, 2*time.Hour, cfg.DraftTTL)
	assert.True(t, cfg.RequireAuth)
	assert.Equal(t, "http://bookings.local/api/bookings", cfg.BookingAPIURL)
}

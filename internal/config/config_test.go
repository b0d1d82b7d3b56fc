package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("STRIPE_CURRENCY", "")

	cfg := LoadConfig()

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, "inr", cfg.Stripe.Currency)
	assert.Equal(t, time.Hour, cfg.Maintenance.TokenSweepInterval)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "not-a-duration")
	t.Setenv("RATE_LIMIT_BURST", "7")
	t.Setenv("CHATBOT_BASE_URL", "http://bot.local/")
	t.Setenv("GIN_MODE", "release")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 7, cfg.RateLimit.Burst)
	assert.Equal(t, "http://bot.local", cfg.Chatbot.BaseURL)
	assert.True(t, cfg.IsRelease())
}

func TestLoadConfig_NonPositiveDurationsFallBack(t *testing.T) {
	for _, value := range []string{"0s", "-1m"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("TOKEN_SWEEP_INTERVAL", value)
			t.Setenv("CHATBOT_TIMEOUT", value)
			t.Setenv("ACCESS_TOKEN_EXPIRY", value)

			cfg := LoadConfig()

			assert.Equal(t, time.Hour, cfg.Maintenance.TokenSweepInterval)
			assert.Equal(t, 15*time.Second, cfg.Chatbot.Timeout)
			assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
		})
	}
}

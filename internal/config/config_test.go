package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ANALYTICS_BASE_URL", "")
	t.Setenv("FOLLOWUP_DELAY_SECONDS", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, DefaultAnalyticsURL, cfg.AnalyticsBaseURL)
	assert.Equal(t, time.Duration(0), cfg.AnalyticsTimeout)
	assert.Equal(t, 3, cfg.FollowupDelaySeconds)
	assert.Equal(t, time.Minute, cfg.HealthInterval)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ANALYTICS_BASE_URL", "http://localhost:9000/")
	t.Setenv("ANALYTICS_TIMEOUT", "15s")
	t.Setenv("MAIL_PORT", "2525")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("APP_ENV", "Production")

	cfg := Load()

	assert.Equal(t, "http://localhost:9000", cfg.AnalyticsBaseURL)
	assert.Equal(t, 15*time.Second, cfg.AnalyticsTimeout)
	assert.Equal(t, 2525, cfg.MailPort)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("MAIL_PORT", "smtp")
	t.Setenv("HEALTH_INTERVAL", "sometimes")

	cfg := Load()

	assert.Equal(t, 587, cfg.MailPort)
	assert.Equal(t, time.Minute, cfg.HealthInterval)
}

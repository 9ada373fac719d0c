package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAnalyticsURL é a origem fixa do backend de analytics do escritório.
const DefaultAnalyticsURL = "https://law-firm-backend-936902782519.us-central1.run.app"

type AppConfig struct {
	HTTPAddr string
	AppEnv   string

	AnalyticsBaseURL string
	// Zero = sem timeout.
	AnalyticsTimeout time.Duration

	// DSNs vazios ativam os fallbacks em memória.
	DatabaseURL string
	AMQPURL     string
	RedisAddr   string
	RedisPass   string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	CORSOrigins []string

	FollowupDelaySeconds int
	HealthInterval       time.Duration
}

// Load lê as variáveis de ambiente (o .env já deve ter sido carregado pelo main).
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		AppEnv:   getEnv("APP_ENV", "development"),

		AnalyticsBaseURL: strings.TrimRight(getEnv("ANALYTICS_BASE_URL", DefaultAnalyticsURL), "/"),
		AnalyticsTimeout: getEnvDuration("ANALYTICS_TIMEOUT", 0),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		AMQPURL:     getEnv("AMQP_URL", ""),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		RedisPass:   getEnv("REDIS_PASS", ""),

		MailHost: getEnv("MAIL_HOST", ""),
		MailPort: getEnvInt("MAIL_PORT", 587),
		MailUser: getEnv("MAIL_USER", ""),
		MailPass: getEnv("MAIL_PASS", ""),
		MailFrom: getEnv("MAIL_FROM", "nao-responda@escritorio.com.br"),

		CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{"http://localhost:5173"}),

		FollowupDelaySeconds: getEnvInt("FOLLOWUP_DELAY_SECONDS", 3),
		HealthInterval:       getEnvDuration("HEALTH_INTERVAL", time.Minute),
	}
}

func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getEnvSlice(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	Server struct {
		Port            string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
		ShutdownTimeout time.Duration
		AllowedOrigins  []string

		// TrustedProxyHops is how many proxies append to X-Forwarded-For
		// in front of the server. Zero means the header is ignored.
		TrustedProxyHops int
	}

	// DatabaseURL is the Supabase Postgres connection string. Empty disables
	// every data route.
	DatabaseURL string
	RedisURL    string
	CacheTTL    time.Duration
	RateLimit   int

	PingMessage string

	OpenAI struct {
		APIKey  string
		Model   string
		BaseURL string
	}

	Mail struct {
		SendGridKey string
		From        string
		FeedbackTo  string
	}
}

// Load reads the environment. Outside production a .env file is loaded first
// when present.
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	cfg.AppEnv = getEnv("APP_ENV", "development")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.Server.Port = getEnv("PORT", "8080")
	cfg.Server.ReadTimeout = getEnvAsDuration("SERVER_READ_TIMEOUT", "10s")
	cfg.Server.WriteTimeout = getEnvAsDuration("SERVER_WRITE_TIMEOUT", "30s")
	cfg.Server.IdleTimeout = getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s")
	cfg.Server.ShutdownTimeout = getEnvAsDuration("SHUTDOWN_TIMEOUT", "10s")
	cfg.Server.AllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	cfg.Server.TrustedProxyHops = getEnvAsInt("TRUSTED_PROXY_HOPS", 0)

	cfg.DatabaseURL = getEnv("DATABASE_URL", os.Getenv("SUPABASE_DB_URL"))
	cfg.RedisURL = getEnv("REDIS_URL", "")
	cfg.CacheTTL = getEnvAsDuration("CACHE_TTL", "60s")
	cfg.RateLimit = getEnvAsInt("RATE_LIMIT_PER_MINUTE", 10)

	cfg.PingMessage = getEnv("PING_MESSAGE", "ping")

	cfg.OpenAI.APIKey = getEnv("OPENAI_API_KEY", "")
	cfg.OpenAI.Model = getEnv("OPENAI_MODEL", "gpt-4o-mini")
	cfg.OpenAI.BaseURL = getEnv("OPENAI_BASE_URL", "")

	cfg.Mail.SendGridKey = getEnv("SENDGRID_API_KEY", "")
	cfg.Mail.From = getEnv("MAIL_FROM", "noreply@famcal.app")
	cfg.Mail.FeedbackTo = getEnv("FEEDBACK_NOTIFY_EMAIL", "")

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// getEnv treats an empty variable as unset.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	duration, err := time.ParseDuration(getEnv(key, defaultValue))
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}

func getEnvAsInt(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return defaultValue
	}
	return intVal
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBMaxConns  int

	JWTSecret string
	JWTIssuer string

	GeminiAPIKey string
	GeminiModel  string

	// Weekly sweep schedule, in the server's local time.
	SweepWeekday    time.Weekday
	SweepHour       int
	SweepMinute     int
	SweepBatchLimit int
	// SweepCheckInterval is how often the scheduler polls the clock.
	SweepCheckInterval time.Duration
	// SweepDebugInterval, when positive, overrides the weekly schedule.
	SweepDebugInterval time.Duration

	ReconcileTimeout time.Duration

	LogLevel  string
	LogFormat string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 10),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer: getEnv("JWT_ISSUER", "careerhub"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		SweepWeekday:       time.Weekday(getEnvInt("SWEEP_WEEKDAY", int(time.Sunday))),
		SweepHour:          getEnvInt("SWEEP_HOUR", 0),
		SweepMinute:        getEnvInt("SWEEP_MINUTE", 0),
		SweepBatchLimit:    getEnvInt("SWEEP_BATCH_LIMIT", 100),
		SweepCheckInterval: getEnvDuration("SWEEP_CHECK_INTERVAL", time.Minute),
		SweepDebugInterval: getEnvDuration("SWEEP_DEBUG_INTERVAL", 0),

		ReconcileTimeout: getEnvDuration("RECONCILE_TIMEOUT", 15*time.Second),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
	if cfg.SweepWeekday < time.Sunday || cfg.SweepWeekday > time.Saturday {
		cfg.SweepWeekday = time.Sunday
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

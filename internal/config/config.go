package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	ServerAddr     string
	DatabaseURL    string
	RunMigrations  bool
	FrontendOrigin string

	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseJWTSecret  string

	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	RateLimitContact   int
	RateLimitBooking   int
	RateLimitWindowSec int

	ResendAPIKey    string
	NotifyEmailTo   string
	NotifyEmailFrom string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// Load reads configuration from the environment once at startup. An ENV_FILE
// override is honored before any variable is read; required variables fail
// here rather than at first use.
func Load() (*Config, error) {
	// A missing env file is fine; variables may come from the real environment.
	_ = godotenv.Load(getEnv("ENV_FILE", ".env"))

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		ServerAddr:         "127.0.0.1:" + getEnv("PORT", "5050"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", false),
		FrontendOrigin:     getEnv("FRONTEND_ORIGIN", "http://localhost:8080"),
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseJWTSecret:  os.Getenv("SUPABASE_JWT_SECRET"),
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds:    getEnvInt("CACHE_TTL_SECONDS", 60),
		RateLimitContact:   getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitBooking:   getEnvInt("RATE_LIMIT_BOOKING", 10),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		ResendAPIKey:       getEnv("RESEND_API_KEY", ""),
		NotifyEmailTo:      getEnv("NOTIFY_EMAIL_TO", ""),
		NotifyEmailFrom:    getEnv("NOTIFY_EMAIL_FROM", "notifications@thecanopi.ai"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("missing DATABASE_URL")
	}
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("missing SUPABASE_URL")
	}
	if cfg.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("missing SUPABASE_SERVICE_ROLE_KEY")
	}

	return cfg, nil
}

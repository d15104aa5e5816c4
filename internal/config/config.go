package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config carries everything the process needs, sourced from the environment
// at startup. Secrets are never defaulted and never appear in source.
type Config struct {
	ServerAddr        string
	DatabaseURL       string
	JWTSecret         string
	TokenTTL          time.Duration
	CORSAllowedOrigin string
	RedisAddr         string
	RateLimitEnabled  bool
	LoginMaxFailures  int
	LoginLockout      time.Duration
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("TOKEN_TTL_MINUTES", 30)
	v.SetDefault("CORS_ALLOWED_ORIGIN", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT_ENABLED", true)
	v.SetDefault("LOGIN_MAX_FAILURES", 10)
	v.SetDefault("LOGIN_LOCKOUT_MINUTES", 15)

	cfg := Config{
		ServerAddr:        v.GetString("SERVER_ADDR"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		TokenTTL:          time.Duration(v.GetInt("TOKEN_TTL_MINUTES")) * time.Minute,
		CORSAllowedOrigin: v.GetString("CORS_ALLOWED_ORIGIN"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		RateLimitEnabled:  v.GetBool("RATE_LIMIT_ENABLED"),
		LoginMaxFailures:  v.GetInt("LOGIN_MAX_FAILURES"),
		LoginLockout:      time.Duration(v.GetInt("LOGIN_LOCKOUT_MINUTES")) * time.Minute,
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

package config

import (
	"errors"
	"log"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	Port           string        `env:"PORT,default=8080"`
	BackendURL     string        `env:"BACKEND_URL,default=http://localhost:8080/"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT,default=10s"`
	SessionSecret  string        `env:"SESSION_SECRET"`
	SessionTTL     time.Duration `env:"SESSION_TTL,default=30m"`
	RateLimit      float64       `env:"RATE_LIMIT,default=10"`
	RateBurst      int           `env:"RATE_BURST,default=20"`
	LogLevel       string        `env:"LOG_LEVEL,default=info"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS"`
}

func LoadConfig() (Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using environment and defaults")
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, err
	}

	if cfg.RateBurst < 1 {
		cfg.RateBurst = 1
	}

	return cfg, nil
}

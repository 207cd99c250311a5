package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	AppPort string

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret        string
	JWTLifetimeHours int

	SessionTTLSeconds int

	BcryptCost int
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; real environment
// variables win over file values.
func Load() Config {

	_ = godotenv.Load()

	cfg := Config{

		AppPort: getEnv("APP_PORT", "8080"),

		DatabaseDSN: getEnv("DATABASE_DSN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DATABASE", 0),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTLifetimeHours: getEnvInt("JWT_LIFETIME_HOURS", 24),

		SessionTTLSeconds: getEnvInt("SESSION_TTL_SECONDS", 86400),

		BcryptCost: getEnvInt("BCRYPT_COST", 12),
	}

	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > bcrypt.MaxCost {
		cfg.BcryptCost = 12
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
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

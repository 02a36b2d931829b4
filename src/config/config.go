package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	ClientID           string
	ClientSecretHash   string
	JWTSecret          string
	AppTokenTTLSeconds int64
	LedgerDBPath       string
	DemoMode           bool
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:               getEnv("PORT", "8080"),
		ClientID:           getEnv("CLIENT_ID", ""),
		ClientSecretHash:   getEnv("CLIENT_SECRET_HASH", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AppTokenTTLSeconds: getEnvInt64("APP_TOKEN_TTL_SECONDS", 1800),
		LedgerDBPath:       getEnv("LEDGER_DB_PATH", "dompet.db"),
		DemoMode:           getEnv("DEMO_MODE", "false") == "true",
	}

	if cfg.ClientID == "" {
		log.Fatal("CLIENT_ID is required")
	}
	if cfg.ClientSecretHash == "" {
		log.Fatal("CLIENT_SECRET_HASH is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			log.Fatalf("%s must be an integer: %v", key, err)
		}
		return parsed
	}
	return fallback
}

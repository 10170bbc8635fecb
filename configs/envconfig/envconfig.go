package envconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadIfDev reads a local .env file when APP_ENV is not production. Missing
// files are fine; real deployments set the environment directly.
func LoadIfDev() {
	if IsProd() {
		return
	}
	_ = godotenv.Load()
}

func IsProd() bool {
	return os.Getenv("APP_ENV") == "production"
}

func String(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func Int(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func Bool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

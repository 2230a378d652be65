package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyVar is the environment variable holding the provider credential.
const APIKeyVar = "OPENROUTER_API_KEY"

// LoadEnv loads a local .env file if present. Absence is normal (CI passes
// variables directly), so it is logged at debug only.
func LoadEnv(logger *slog.Logger) {
	if err := godotenv.Load(".env"); err != nil {
		logger.Debug("no .env file loaded", "err", err)
	}
}

// APIKey returns the provider credential. A missing credential aborts the
// run before any task executes.
func APIKey() (string, error) {
	key := os.Getenv(APIKeyVar)
	if key == "" {
		return "", fmt.Errorf("missing API credential: set %s", APIKeyVar)
	}
	return key, nil
}

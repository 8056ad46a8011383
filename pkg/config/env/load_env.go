package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv seeds the process environment from the .env file at ENV_PATH, or at
// defaultPath when ENV_PATH is unset. Variables already set are kept.
// A missing file is an error only in local mode (env "local" or empty).
func LoadDotEnv(env string, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err != nil {
		if env == "local" || env == "" {
			return err
		}
		slog.Debug("Skipping .env", "path", envPath, "env", env)
		return nil
	}

	slog.Info("Loaded .env", "path", envPath)
	return nil
}

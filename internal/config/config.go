package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr      string
	DBPath          string
	LogLevel        string
	AnthropicAPIKey string
	AnthropicModel  string
}

// Load reads configuration from the environment (and a .env file if one
// exists). LISTEN_ADDR and DB_PATH are required; startup must not
// proceed without them.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:      os.Getenv("LISTEN_ADDR"),
		DBPath:          os.Getenv("DB_PATH"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-3-5-haiku-latest"),
	}

	if cfg.ListenAddr == "" {
		return nil, fmt.Errorf("LISTEN_ADDR is required")
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("DB_PATH is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

const (
	EnvYouTubeAPIKey = "YOUTUBE_API_KEY"
	EnvTelegramToken = "TELEGRAM_BOT_TOKEN"
)

// Config holds the secrets the frontends need. TelegramToken is only
// required when FromEnv is asked for it.
type Config struct {
	YouTubeAPIKey string
	TelegramToken string
}

// MissingVarError names the environment variable a frontend cannot
// start without.
type MissingVarError struct {
	Var string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("missing required environment variable %s", e.Var)
}

func LoadEnv() {
	if err := gotenv.Load(); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// FromEnv reads and validates the configuration. With needBot set the
// Telegram token becomes required as well.
func FromEnv(needBot bool) (Config, error) {
	cfg := Config{
		YouTubeAPIKey: os.Getenv(EnvYouTubeAPIKey),
		TelegramToken: os.Getenv(EnvTelegramToken),
	}

	if cfg.YouTubeAPIKey == "" {
		return Config{}, &MissingVarError{Var: EnvYouTubeAPIKey}
	}
	if needBot && cfg.TelegramToken == "" {
		return Config{}, &MissingVarError{Var: EnvTelegramToken}
	}

	return cfg, nil
}

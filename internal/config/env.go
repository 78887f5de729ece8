package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/genai"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

// Storage backends
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Env is the process configuration read from DNDAI_* variables
type Env struct {
	StorageBackend string `env:"DNDAI_STORAGE_BACKEND" envDefault:"sqlite"`
	RedisAddr      string `env:"DNDAI_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisURL       string `env:"DNDAI_REDIS_URL"`
	SQLitePath     string `env:"DNDAI_SQLITE_PATH" envDefault:"dnd-ai-toolkit.db"`
	SettingsPath   string `env:"DNDAI_SETTINGS_PATH"`

	GeminiAPIKey  string `env:"DNDAI_GEMINI_API_KEY"`
	OpenAIAPIKey  string `env:"DNDAI_OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"DNDAI_OPENAI_BASE_URL"`
	Proxy         string `env:"DNDAI_PROXY"`
	SRDBaseURL    string `env:"DNDAI_SRD_BASE_URL"`

	OTelEndpoint string `env:"DNDAI_OTEL_ENDPOINT"`
	LogLevel     string `env:"DNDAI_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"DNDAI_LOG_FORMAT" envDefault:"text"`
}

// ParseEnv reads Env from the process environment
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return Env{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values
func (e *Env) Validate() error {
	vb := errors.NewValidationBuilder()

	e.StorageBackend = strings.ToLower(strings.TrimSpace(e.StorageBackend))
	errors.ValidateEnum("DNDAI_STORAGE_BACKEND", e.StorageBackend, []string{BackendRedis, BackendSQLite}, vb)
	errors.ValidateEnum("DNDAI_LOG_FORMAT", strings.ToLower(e.LogFormat), []string{"text", "json"}, vb)
	if _, err := ParseLogLevel(e.LogLevel); err != nil {
		vb.InvalidField("DNDAI_LOG_LEVEL", errors.GetMessage(err))
	}

	return vb.Build()
}

// ProviderConfig combines the environment's credentials with the settings'
// provider and model choices
func (e Env) ProviderConfig(settings Settings) *genai.ProviderConfig {
	return &genai.ProviderConfig{
		TextProvider:  settings.TextProvider,
		GeminiAPIKey:  e.GeminiAPIKey,
		OpenAIAPIKey:  e.OpenAIAPIKey,
		OpenAIBaseURL: e.OpenAIBaseURL,
		TextModel:     settings.TextModel,
		ImageModel:    settings.ImageModel,
		Proxy:         e.Proxy,
	}
}

// ParseLogLevel maps debug, info, warn and error onto slog levels
func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", level)
	}
	return l, nil
}

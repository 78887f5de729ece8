package main

import (
	"context"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/app"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/config"
)

// settingsPath resolves the settings file from the environment or the
// user config directory
func settingsPath(env config.Env) (string, error) {
	if env.SettingsPath != "" {
		return env.SettingsPath, nil
	}
	return config.DefaultSettingsPath()
}

// loadConfig reads the environment and the settings file, writing default
// settings on first run
func loadConfig() (*app.Config, error) {
	env, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}

	path, err := settingsPath(env)
	if err != nil {
		return nil, err
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}

	return &app.Config{Env: env, Settings: settings}, nil
}

// buildApp wires every service from the process configuration
func buildApp(ctx context.Context) (*app.App, *app.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return a, cfg, nil
}

// Package config loads the DM's settings file and the process environment.
package config

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/genai"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/prompts"
)

// AppDir names the settings directory under the user config dir
const AppDir = "dnd-ai-toolkit"

// SettingsFile is the settings file name inside AppDir
const SettingsFile = "settings.yaml"

// Themes
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Settings are the DM's preferences. They are passed by value to whatever
// needs them.
type Settings struct {
	ActiveLanguage   string            `yaml:"active_language"`
	ActiveWorldID    string            `yaml:"active_world_id,omitempty"`
	ActiveCampaignID string            `yaml:"active_campaign_id,omitempty"`
	TextProvider     string            `yaml:"text_provider"`
	// TextModel empty selects the provider's default model
	TextModel        string            `yaml:"text_model"`
	ImageModel       string            `yaml:"image_model"`
	Theme            string            `yaml:"theme"`
	Prompts          map[string]string `yaml:"prompts,omitempty"`
}

// DefaultSettings returns the settings written on first run
func DefaultSettings() Settings {
	return Settings{
		ActiveLanguage: entities.DefaultLanguage,
		TextProvider:   genai.ProviderGemini,
		ImageModel:     genai.DefaultImagenModel,
		Theme:          ThemeSystem,
	}
}

// Validate normalizes the language and checks enumerated values
func (s *Settings) Validate() error {
	vb := errors.NewValidationBuilder()

	lang, err := entities.NormalizeLanguage(s.ActiveLanguage)
	if err != nil {
		vb.InvalidField("active_language", errors.GetMessage(err))
	} else {
		s.ActiveLanguage = lang
	}

	errors.ValidateEnum("theme", s.Theme, []string{ThemeLight, ThemeDark, ThemeSystem}, vb)
	errors.ValidateEnum("text_provider", strings.ToLower(s.TextProvider),
		[]string{genai.ProviderGemini, genai.ProviderOpenAI}, vb)

	known := make(map[string]struct{})
	for _, name := range prompts.NewRegistry(nil).Names() {
		known[name] = struct{}{}
	}
	for name := range s.Prompts {
		if _, ok := known[name]; !ok {
			vb.InvalidField("prompts."+name, "unknown template")
		}
	}

	return vb.Build()
}

// PromptRegistry builds the prompt registry with the settings' overrides
func (s Settings) PromptRegistry() *prompts.Registry {
	return prompts.NewRegistry(s.Prompts)
}

// DefaultSettingsPath returns $XDG_CONFIG_HOME/dnd-ai-toolkit/settings.yaml,
// or the platform config dir when XDG_CONFIG_HOME is unset
func DefaultSettingsPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", errors.WrapWithCode(err, errors.CodeFailedPrecondition, "no user config directory")
		}
		base = dir
	}
	return filepath.Join(base, AppDir, SettingsFile), nil
}

// LoadSettings reads the settings at path. A missing file is created with
// DefaultSettings. Keys absent from the file keep their defaults.
func LoadSettings(path string) (Settings, error) {
	if path == "" {
		return Settings{}, errors.InvalidArgument("settings path is required")
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		settings := DefaultSettings()
		if err := SaveSettings(path, settings); err != nil {
			return Settings{}, err
		}
		slog.Info("wrote default settings", "path", path)
		return settings, nil
	}
	if err != nil {
		return Settings{}, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read settings")
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "settings file is not valid YAML").
			WithMeta("path", path)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, errors.Wrapf(err, "invalid settings in %s", path)
	}

	return settings, nil
}

// SaveSettings validates settings and writes them to path, creating the
// directory when needed
func SaveSettings(path string, settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return errors.Wrap(err, "failed to encode settings")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create settings directory")
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write settings")
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to replace settings")
	}

	return nil
}

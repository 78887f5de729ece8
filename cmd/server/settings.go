package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/config"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the settings file",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current settings",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(cfg.Settings)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting. Keys: active_language, active_world_id,
active_campaign_id, text_provider, text_model, image_model, theme.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsSet(_ *cobra.Command, args []string) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}
	path, err := settingsPath(env)
	if err != nil {
		return err
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "active_language":
		settings.ActiveLanguage = value
	case "active_world_id":
		settings.ActiveWorldID = value
	case "active_campaign_id":
		settings.ActiveCampaignID = value
	case "text_provider":
		settings.TextProvider = value
	case "text_model":
		settings.TextModel = value
	case "image_model":
		settings.ImageModel = value
	case "theme":
		settings.Theme = value
	default:
		return errors.InvalidArgumentf("unknown setting %q", key)
	}

	if err := config.SaveSettings(path, settings); err != nil {
		return err
	}
	fmt.Printf("%s = %s (%s)\n", key, value, path)
	return nil
}

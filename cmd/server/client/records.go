package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	toolkitv1alpha1 "github.com/KirkDiggler/dnd-ai-toolkit/internal/handlers/toolkit/v1alpha1"
)

var (
	worldName     string
	worldLore     string
	worldLang     string
	campaignLang  string
	worldID       string
	campaignID    string
	campaignName  string
	characterKind string

	playerName  string
	playerRace  string
	playerClass string
	rollMethod  string

	editLore    string
	editHistory string
)

var listWorldsCmd = &cobra.Command{
	Use:   "list-worlds",
	Short: "List all worlds",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("list worlds", nil, toolkitv1alpha1.ToolkitServiceClient.ListWorlds)
	},
}

var createWorldCmd = &cobra.Command{
	Use:   "create-world",
	Short: "Create a world with a name and lore in one language",
	RunE: func(_ *cobra.Command, _ []string) error {
		world := map[string]any{"name": map[string]any{worldLang: worldName}}
		if worldLore != "" {
			world["lore"] = map[string]any{worldLang: worldLore}
		}
		return invoke("create world", map[string]any{"world": world}, toolkitv1alpha1.ToolkitServiceClient.CreateWorld)
	},
}

var getWorldCmd = &cobra.Command{
	Use:   "get-world <id>",
	Short: "Show a world",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("get world", map[string]any{"id": args[0]}, toolkitv1alpha1.ToolkitServiceClient.GetWorld)
	},
}

var updateWorldCmd = &cobra.Command{
	Use:   "update-world <id>",
	Short: "Set a world's name or lore in one language, keeping the others",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		world := map[string]any{"id": args[0]}
		if worldName != "" {
			world["name"] = map[string]any{worldLang: worldName}
		}
		if editLore != "" {
			world["lore"] = map[string]any{worldLang: editLore}
		}
		return invoke("update world", map[string]any{"world": world}, toolkitv1alpha1.ToolkitServiceClient.UpdateWorld)
	},
}

var deleteWorldCmd = &cobra.Command{
	Use:   "delete-world <id>",
	Short: "Delete a world with its campaigns and characters",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("delete world", map[string]any{"id": args[0]}, toolkitv1alpha1.ToolkitServiceClient.DeleteWorld)
	},
}

var listCampaignsCmd = &cobra.Command{
	Use:   "list-campaigns",
	Short: "List campaigns, optionally of one world",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("list campaigns", withoutEmpty(map[string]any{"world_id": worldID}),
			toolkitv1alpha1.ToolkitServiceClient.ListCampaigns)
	},
}

var createCampaignCmd = &cobra.Command{
	Use:   "create-campaign",
	Short: "Create a campaign in a world",
	RunE: func(_ *cobra.Command, _ []string) error {
		campaign := withoutEmpty(map[string]any{
			"world_id": worldID,
			"language": campaignLang,
		})
		if campaignName != "" {
			if campaignLang == "" {
				return errors.InvalidArgument("--language is required with --name")
			}
			campaign["name"] = map[string]any{campaignLang: campaignName}
		}
		return invoke("create campaign", map[string]any{"campaign": campaign},
			toolkitv1alpha1.ToolkitServiceClient.CreateCampaign)
	},
}

var getCampaignCmd = &cobra.Command{
	Use:   "get-campaign <id>",
	Short: "Show a campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("get campaign", map[string]any{"id": args[0]}, toolkitv1alpha1.ToolkitServiceClient.GetCampaign)
	},
}

var updateCampaignCmd = &cobra.Command{
	Use:   "update-campaign <id>",
	Short: "Set a campaign's name or session history in one language",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		campaign := map[string]any{"id": args[0]}
		if campaignName != "" {
			campaign["name"] = map[string]any{campaignLang: campaignName}
		}
		if editHistory != "" {
			campaign["session_history"] = map[string]any{campaignLang: editHistory}
		}
		return invoke("update campaign", map[string]any{"campaign": campaign},
			toolkitv1alpha1.ToolkitServiceClient.UpdateCampaign)
	},
}

var deleteCampaignCmd = &cobra.Command{
	Use:   "delete-campaign <id>",
	Short: "Delete a campaign with its characters",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("delete campaign", map[string]any{"id": args[0]}, toolkitv1alpha1.ToolkitServiceClient.DeleteCampaign)
	},
}

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List characters of a world or campaign",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("list characters", withoutEmpty(map[string]any{
			"world_id":    worldID,
			"campaign_id": campaignID,
			"kind":        characterKind,
		}), toolkitv1alpha1.ToolkitServiceClient.ListCharacters)
	},
}

var createPlayerCmd = &cobra.Command{
	Use:   "create-player",
	Short: "Create a player character with rolled ability scores",
	RunE: func(_ *cobra.Command, _ []string) error {
		player := withoutEmpty(map[string]any{
			"world_id":    worldID,
			"campaign_id": campaignID,
			"player_name": playerName,
			"race":        playerRace,
			"class":       playerClass,
		})
		return invoke("create player character", withoutEmpty(map[string]any{
			"character": map[string]any{"kind": "player", "player": player},
			"method":    rollMethod,
		}), toolkitv1alpha1.ToolkitServiceClient.SaveCharacter)
	},
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character <id>",
	Short: "Show a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("get character", map[string]any{"id": args[0]}, toolkitv1alpha1.ToolkitServiceClient.GetCharacter)
	},
}

var deleteCharacterCmd = &cobra.Command{
	Use:   "delete-character <id>",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return invoke("delete character", map[string]any{"id": args[0]}, toolkitv1alpha1.ToolkitServiceClient.DeleteCharacter)
	},
}

var rollScoresCmd = &cobra.Command{
	Use:   "roll-scores",
	Short: "Roll a set of ability scores without saving them",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("roll ability scores", withoutEmpty(map[string]any{"method": rollMethod}),
			toolkitv1alpha1.ToolkitServiceClient.RollAbilityScores)
	},
}

func init() {
	createWorldCmd.Flags().StringVar(&worldName, "name", "", "World name")
	createWorldCmd.Flags().StringVar(&worldLore, "lore", "", "World lore")
	createWorldCmd.Flags().StringVar(&worldLang, "language", "en", "Language of the lore")
	_ = createWorldCmd.MarkFlagRequired("name")

	updateWorldCmd.Flags().StringVar(&worldName, "name", "", "World name")
	updateWorldCmd.Flags().StringVar(&editLore, "lore", "", "World lore")
	updateWorldCmd.Flags().StringVar(&worldLang, "language", "en", "Language of the edited text")

	listCampaignsCmd.Flags().StringVar(&worldID, "world", "", "World ID")

	createCampaignCmd.Flags().StringVar(&worldID, "world", "", "World ID")
	createCampaignCmd.Flags().StringVar(&campaignName, "name", "", "Campaign name")
	createCampaignCmd.Flags().StringVar(&campaignLang, "language", "", "Campaign language (defaults to the world's)")
	_ = createCampaignCmd.MarkFlagRequired("world")

	updateCampaignCmd.Flags().StringVar(&campaignName, "name", "", "Campaign name")
	updateCampaignCmd.Flags().StringVar(&editHistory, "history", "", "Session history")
	updateCampaignCmd.Flags().StringVar(&campaignLang, "language", "en", "Language of the edited text")

	listCharactersCmd.Flags().StringVar(&worldID, "world", "", "World ID")
	listCharactersCmd.Flags().StringVar(&campaignID, "campaign", "", "Campaign ID")
	listCharactersCmd.Flags().StringVar(&characterKind, "kind", "", "player or npc")

	createPlayerCmd.Flags().StringVar(&worldID, "world", "", "World ID")
	createPlayerCmd.Flags().StringVar(&campaignID, "campaign", "", "Campaign ID")
	createPlayerCmd.Flags().StringVar(&playerName, "player", "", "Player name")
	createPlayerCmd.Flags().StringVar(&playerRace, "race", "", "Race")
	createPlayerCmd.Flags().StringVar(&playerClass, "class", "", "Class")
	createPlayerCmd.Flags().StringVar(&rollMethod, "method", "", "4d6_drop_lowest or 3d6")
	_ = createPlayerCmd.MarkFlagRequired("world")

	rollScoresCmd.Flags().StringVar(&rollMethod, "method", "", "4d6_drop_lowest or 3d6")
}

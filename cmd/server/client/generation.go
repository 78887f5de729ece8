package client

import (
	"github.com/spf13/cobra"

	toolkitv1alpha1 "github.com/KirkDiggler/dnd-ai-toolkit/internal/handlers/toolkit/v1alpha1"
)

var (
	genWorldID    string
	genCampaignID string
	genLanguage   string
	genModel      string
	genTags       = map[string]*string{}

	simNPCID   string
	simMessage string

	trType   string
	trID     string
	trSource string
	trTarget string
	trFields []string
	trSave   bool

	optionsKind string
)

var assembleContextCmd = &cobra.Command{
	Use:   "assemble-context",
	Short: "Show the world and campaign context a generation would use",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("assemble context", withoutEmpty(map[string]any{
			"world_id":    genWorldID,
			"campaign_id": genCampaignID,
			"language":    genLanguage,
		}), toolkitv1alpha1.ToolkitServiceClient.AssembleContext)
	},
}

var generateNPCCmd = &cobra.Command{
	Use:   "generate-npc",
	Short: "Generate an NPC preview; save it with the npc command or SaveCharacter",
	RunE: func(_ *cobra.Command, _ []string) error {
		tags := map[string]any{}
		for name, value := range genTags {
			if *value != "" {
				tags[name] = *value
			}
		}
		return invoke("generate npc", withoutEmpty(map[string]any{
			"world_id":    genWorldID,
			"campaign_id": genCampaignID,
			"language":    genLanguage,
			"model":       genModel,
			"tags":        tags,
		}), toolkitv1alpha1.ToolkitServiceClient.GenerateNPC)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Talk to a stored NPC",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("simulate npc", withoutEmpty(map[string]any{
			"npc_id":   simNPCID,
			"message":  simMessage,
			"language": genLanguage,
			"model":    genModel,
		}), toolkitv1alpha1.ToolkitServiceClient.SimulateNPC)
	},
}

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a stored record's localized fields",
	RunE: func(_ *cobra.Command, _ []string) error {
		fields := make([]any, 0, len(trFields))
		for _, f := range trFields {
			fields = append(fields, f)
		}
		return invoke("translate", withoutEmpty(map[string]any{
			"type":            trType,
			"id":              trID,
			"source_language": trSource,
			"target_language": trTarget,
			"fields":          fields,
			"model":           genModel,
			"save":            trSave,
		}), toolkitv1alpha1.ToolkitServiceClient.TranslateRecord)
	},
}

var listOptionsCmd = &cobra.Command{
	Use:   "list-options",
	Short: "List SRD races or classes",
	RunE: func(_ *cobra.Command, _ []string) error {
		return invoke("list options", map[string]any{"kind": optionsKind}, toolkitv1alpha1.ToolkitServiceClient.ListOptions)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{assembleContextCmd, generateNPCCmd} {
		cmd.Flags().StringVar(&genWorldID, "world", "", "World ID")
		cmd.Flags().StringVar(&genCampaignID, "campaign", "", "Campaign ID")
		_ = cmd.MarkFlagRequired("world")
	}
	for _, cmd := range []*cobra.Command{assembleContextCmd, generateNPCCmd, simulateCmd} {
		cmd.Flags().StringVar(&genLanguage, "language", "", "Language code")
	}
	for _, cmd := range []*cobra.Command{generateNPCCmd, simulateCmd, translateCmd} {
		cmd.Flags().StringVar(&genModel, "model", "", "Model override")
	}

	for _, tag := range []string{"gender", "attitude", "rarity", "environment", "race", "class", "background"} {
		value := new(string)
		genTags[tag] = value
		generateNPCCmd.Flags().StringVar(value, tag, "", "NPC "+tag)
	}

	simulateCmd.Flags().StringVar(&simNPCID, "id", "", "NPC ID")
	simulateCmd.Flags().StringVar(&simMessage, "message", "", "What the DM says")
	_ = simulateCmd.MarkFlagRequired("id")
	_ = simulateCmd.MarkFlagRequired("message")

	translateCmd.Flags().StringVar(&trType, "type", "", "world, campaign or character")
	translateCmd.Flags().StringVar(&trID, "id", "", "Record ID")
	translateCmd.Flags().StringVar(&trSource, "from", "", "Source language")
	translateCmd.Flags().StringVar(&trTarget, "to", "", "Target language")
	translateCmd.Flags().StringSliceVar(&trFields, "fields", nil, "Fields to translate (default all with source text)")
	translateCmd.Flags().BoolVar(&trSave, "save", false, "Store the translated record")
	for _, name := range []string{"type", "id", "from", "to"} {
		_ = translateCmd.MarkFlagRequired(name)
	}

	listOptionsCmd.Flags().StringVar(&optionsKind, "kind", "races", "races or classes")
}

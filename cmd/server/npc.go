package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/generation"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/translation"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/workspace"
)

var (
	npcWorldID     string
	npcCampaignID  string
	npcLanguage    string
	npcTags        generation.NPCTags
	npcPortrait    bool
	npcPortraitOut string
	npcTranslate   []string
	npcSave        bool

	talkNPCID   string
	talkMessage string
)

var npcCmd = &cobra.Command{
	Use:   "npc",
	Short: "Generate and talk to NPCs without a server",
}

var npcGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an NPC for the active world and campaign",
	Long: `Generate an NPC in a local workspace, optionally add a portrait and
translations, and save it. World, campaign and language default to the
active ones in the settings file.`,
	RunE: runNPCGenerate,
}

var npcTalkCmd = &cobra.Command{
	Use:   "talk",
	Short: "Say something to a stored NPC and print the in-character reply",
	RunE:  runNPCTalk,
}

func init() {
	npcGenerateCmd.Flags().StringVar(&npcWorldID, "world", "", "World ID (defaults to the active world)")
	npcGenerateCmd.Flags().StringVar(&npcCampaignID, "campaign", "", "Campaign ID (defaults to the active campaign)")
	npcGenerateCmd.Flags().StringVar(&npcLanguage, "language", "", "Language code to generate in")
	npcGenerateCmd.Flags().StringVar(&npcTags.Gender, "gender", "", "Gender")
	npcGenerateCmd.Flags().StringVar(&npcTags.Attitude, "attitude", "", "Attitude towards the party")
	npcGenerateCmd.Flags().StringVar(&npcTags.Rarity, "rarity", "", "Rarity")
	npcGenerateCmd.Flags().StringVar(&npcTags.Environment, "environment", "", "Environment")
	npcGenerateCmd.Flags().StringVar(&npcTags.Race, "race", "", "Race (SRD key or free text)")
	npcGenerateCmd.Flags().StringVar(&npcTags.Class, "class", "", "Class (SRD key or free text)")
	npcGenerateCmd.Flags().StringVar(&npcTags.Background, "background", "", "Background")
	npcGenerateCmd.Flags().BoolVar(&npcPortrait, "portrait", false, "Generate a portrait")
	npcGenerateCmd.Flags().StringVar(&npcPortraitOut, "portrait-out", "", "Write the portrait image to this file")
	npcGenerateCmd.Flags().StringSliceVar(&npcTranslate, "translate", nil, "Languages to translate the NPC into")
	npcGenerateCmd.Flags().BoolVar(&npcSave, "save", false, "Save the NPC")

	npcTalkCmd.Flags().StringVar(&talkNPCID, "id", "", "NPC ID")
	npcTalkCmd.Flags().StringVar(&talkMessage, "message", "", "What the DM says")
	_ = npcTalkCmd.MarkFlagRequired("id")
	_ = npcTalkCmd.MarkFlagRequired("message")

	npcCmd.AddCommand(npcGenerateCmd)
	npcCmd.AddCommand(npcTalkCmd)
}

func runNPCGenerate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, cfg, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	worldID := firstNonEmpty(npcWorldID, cfg.Settings.ActiveWorldID)
	campaignID := firstNonEmpty(npcCampaignID, cfg.Settings.ActiveCampaignID)
	if worldID == "" {
		return errors.InvalidArgument("no world given and no active world in settings")
	}

	ws, err := a.NewWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	draft := &entities.NonPlayerCharacter{
		CharacterBase: entities.CharacterBase{WorldID: worldID, CampaignID: campaignID},
	}
	if err := ws.Open(draft); err != nil {
		return err
	}

	outcome := <-ws.GenerateNPC(ctx, generation.GenerateNPCInput{
		WorldID:    worldID,
		CampaignID: campaignID,
		Language:   npcLanguage,
		Tags:       npcTags,
	})
	if outcome.Err != nil {
		return fmt.Errorf("failed to generate npc: %w", outcome.Err)
	}
	npc, ok := outcome.Record.(*entities.NonPlayerCharacter)
	if !ok {
		return errors.Internal("generation returned no npc")
	}
	lang := npc.Language

	if npcPortrait {
		outcome = <-ws.Portrait(ctx, generation.GeneratePortraitInput{Language: lang})
		switch {
		case errors.IsBillingRequired(outcome.Err):
			fmt.Fprintf(os.Stderr, "Portrait generation needs a billed account. Use this prompt in another tool:\n\n%s\n\n",
				errors.GetMeta(outcome.Err)[errors.MetaManualPrompt])
		case outcome.Err != nil:
			return fmt.Errorf("failed to generate portrait: %w", outcome.Err)
		}
	}

	for _, target := range npcTranslate {
		outcome = <-ws.Translate(ctx, translation.TranslateInput{
			SourceLanguage: lang,
			TargetLanguage: target,
		})
		if outcome.Err != nil {
			slog.WarnContext(ctx, "translation incomplete",
				"target_language", target,
				"failed_fields", errors.FailedFields(outcome.Err),
				"error", outcome.Err)
		}
	}

	if npcSave {
		if _, err := ws.Save(ctx); err != nil {
			return fmt.Errorf("failed to save npc: %w", err)
		}
	}

	return printNPC(ws)
}

func printNPC(ws *workspace.Workspace) error {
	npc, ok := ws.Active().(*entities.NonPlayerCharacter)
	if !ok {
		return errors.Internal("workspace lost the npc")
	}

	if npc.Portrait != nil && npcPortraitOut != "" {
		if err := os.WriteFile(npcPortraitOut, npc.Portrait.Data, 0o600); err != nil {
			return fmt.Errorf("failed to write portrait: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Portrait written to %s\n", npcPortraitOut)
	}

	// image bytes make the JSON unreadable
	printable := npc.Clone()
	if printable.Portrait != nil {
		printable.Portrait = &entities.Portrait{MIMEType: printable.Portrait.MIMEType, Prompt: printable.Portrait.Prompt}
	}

	out, err := json.MarshalIndent(printable, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runNPCTalk(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, _, err := buildApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	character, err := a.Storage.GetCharacter(ctx, talkNPCID)
	if err != nil {
		return err
	}
	npc, ok := character.(*entities.NonPlayerCharacter)
	if !ok {
		return errors.InvalidArgumentf("character %s is not an npc", talkNPCID)
	}

	return talk(ctx, a.Generation, npc, talkMessage)
}

func talk(ctx context.Context, svc generation.Service, npc *entities.NonPlayerCharacter, message string) error {
	out, err := svc.Simulate(ctx, &generation.SimulateInput{NPC: npc, Message: message})
	if err != nil {
		return err
	}
	fmt.Println(out.Reply)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

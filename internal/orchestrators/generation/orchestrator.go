// Package generation creates NPCs, portraits and in-character replies from the
// configured generators. Nothing here persists; callers save the preview.
package generation

//go:generate mockgen -destination=mock/mock_service.go -package=generationmock github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/generation Service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/genai"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/srd"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/parser"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/inflight"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/prompts"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/services/contextassembler"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/storage"
)

const tracerName = "github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/generation"

// unspecified fills tags the DM left empty
const unspecified = "any"

// NPCFields are the keys a generated NPC must carry, in sheet order
var NPCFields = []string{
	entities.FieldName,
	entities.FieldRaceClass,
	entities.FieldAppearance,
	entities.FieldPersonality,
	entities.FieldBackstory,
	entities.FieldRoleplayingTips,
	entities.FieldPlotHooks,
}

// Service defines the interface for generation operations
type Service interface {
	// GenerateNPC fills one language slot of a new or existing NPC from a
	// single completion. The NPC is returned for preview and not stored.
	// Returns errors.MalformedGenerationResult when the completion lacks a field.
	GenerateNPC(ctx context.Context, input *GenerateNPCInput) (*GenerateNPCOutput, error)

	// GeneratePortrait renders the NPC's appearance into an image.
	// Returns errors.BillingRequired carrying the prompt for manual use.
	GeneratePortrait(ctx context.Context, input *GeneratePortraitInput) (*GeneratePortraitOutput, error)

	// Simulate replies to a DM message in the NPC's voice
	Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error)
}

// Config holds the dependencies for the generation orchestrator
type Config struct {
	Storage        storage.Storage
	TextGenerator  genai.TextGenerator
	ImageGenerator genai.ImageGenerator
	Parser         parser.Parser
	Prompts        *prompts.Registry
	Catalog        srd.Catalog
	InFlight       *inflight.Set
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Storage == nil {
		vb.RequiredField("Storage")
	}
	if c.TextGenerator == nil {
		vb.RequiredField("TextGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	storage  storage.Storage
	text     genai.TextGenerator
	image    genai.ImageGenerator
	parser   parser.Parser
	prompts  *prompts.Registry
	catalog  srd.Catalog
	inFlight *inflight.Set
	tracer   trace.Tracer
}

// New creates a new generation orchestrator. ImageGenerator and Catalog are
// optional; without an image generator GeneratePortrait is unimplemented.
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		storage:  cfg.Storage,
		text:     cfg.TextGenerator,
		image:    cfg.ImageGenerator,
		parser:   cfg.Parser,
		prompts:  cfg.Prompts,
		catalog:  cfg.Catalog,
		inFlight: cfg.InFlight,
		tracer:   otel.Tracer(tracerName),
	}
	if o.parser == nil {
		o.parser = parser.NewJSONExtractor()
	}
	if o.prompts == nil {
		o.prompts = prompts.NewRegistry(nil)
	}
	if o.inFlight == nil {
		o.inFlight = inflight.New()
	}

	return o, nil
}

func (o *orchestrator) GenerateNPC(ctx context.Context, input *GenerateNPCInput) (*GenerateNPCOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	key := input.LockKey
	if key == "" {
		key = input.NPCID
	}
	if key == "" {
		key = fmt.Sprintf("draft:%p", input)
	}
	release, ok := o.inFlight.TryAcquire(key)
	if !ok {
		return nil, errors.GenerationInProgress(key)
	}
	defer release()

	ctx, span := o.tracer.Start(ctx, "generation.GenerateNPC", trace.WithAttributes(
		attribute.String("world.id", input.WorldID),
		attribute.String("campaign.id", input.CampaignID),
		attribute.String("npc.id", input.NPCID),
	))
	defer span.End()

	npc, err := o.baseNPC(ctx, input)
	if err != nil {
		return nil, fail(span, err)
	}

	world, err := o.storage.GetWorld(ctx, npc.WorldID)
	if err != nil {
		return nil, fail(span, err)
	}

	var campaign *entities.Campaign
	if npc.CampaignID != "" {
		campaign, err = o.storage.GetCampaign(ctx, npc.CampaignID)
		if err != nil {
			return nil, fail(span, err)
		}
		if campaign.WorldID != world.ID {
			return nil, fail(span, errors.FailedPreconditionf("campaign %s does not belong to world %s", campaign.ID, world.ID))
		}
	}

	lang, err := npcLanguage(input.Language, npc, world, campaign)
	if err != nil {
		return nil, fail(span, err)
	}
	npc.Language = lang
	span.SetAttributes(attribute.String("language", lang))

	o.applyTags(ctx, npc, input.Tags)

	values := contextassembler.Assemble(world, campaign, lang).Values()
	values["language"] = entities.LanguageName(lang)
	values["gender"] = orUnspecified(npc.Gender)
	values["attitude"] = orUnspecified(npc.Attitude)
	values["rarity"] = orUnspecified(npc.Rarity)
	values["environment"] = orUnspecified(npc.Environment)
	values["race"] = orUnspecified(npc.Race)
	values["class"] = orUnspecified(npc.Class)
	values["background"] = orUnspecified(npc.Background)

	prompt, err := o.prompts.Render(prompts.NPCGeneration, values)
	if err != nil {
		return nil, fail(span, err)
	}

	raw, err := o.text.Complete(ctx, prompt, input.ModelID)
	if err != nil {
		slog.ErrorContext(ctx, "npc generation call failed",
			"world_id", world.ID,
			"error", err.Error())
		return nil, fail(span, err)
	}

	fields, err := o.parser.Parse(raw, NPCFields)
	if err != nil {
		slog.WarnContext(ctx, "npc generation returned malformed result",
			"world_id", world.ID,
			"error", err.Error())
		return nil, fail(span, err)
	}

	localized := npc.LocalizedFields()
	for _, name := range NPCFields {
		value, _ := fields.String(name)
		localized[name].Set(lang, strings.TrimSpace(value))
	}

	slog.InfoContext(ctx, "npc generated",
		"world_id", world.ID,
		"campaign_id", npc.CampaignID,
		"npc_id", npc.ID,
		"language", lang)

	return &GenerateNPCOutput{
		NPC:      npc,
		Language: lang,
		Prompt:   prompt,
		Raw:      raw,
	}, nil
}

// baseNPC returns a copy of the NPC being regenerated, or a fresh one
func (o *orchestrator) baseNPC(ctx context.Context, input *GenerateNPCInput) (*entities.NonPlayerCharacter, error) {
	var npc *entities.NonPlayerCharacter

	switch {
	case input.NPCID != "":
		stored, err := o.storage.GetCharacter(ctx, input.NPCID)
		if err != nil {
			return nil, err
		}
		existing, ok := stored.(*entities.NonPlayerCharacter)
		if !ok {
			return nil, errors.InvalidArgumentf("character %s is not an npc", input.NPCID)
		}
		npc = existing.Clone()
	case input.Draft != nil:
		npc = input.Draft.Clone()
	default:
		npc = &entities.NonPlayerCharacter{}
	}

	if input.WorldID != "" {
		if npc.WorldID != "" && npc.WorldID != input.WorldID {
			return nil, errors.FailedPreconditionf("npc belongs to world %s", npc.WorldID)
		}
		npc.WorldID = input.WorldID
	}
	if input.CampaignID != "" {
		npc.CampaignID = input.CampaignID
	}
	if npc.WorldID == "" {
		return nil, errors.InvalidArgument("world id is required")
	}

	return npc, nil
}

// npcLanguage picks the slot to write: the request, then the NPC's own
// language, then the campaign's, then the world's only language.
func npcLanguage(requested string, npc *entities.NonPlayerCharacter, world *entities.World, campaign *entities.Campaign) (string, error) {
	switch {
	case requested != "":
	case npc.Language != "":
		requested = npc.Language
	case campaign != nil && campaign.Language != "":
		requested = campaign.Language
	default:
		requested = entities.DefaultLanguage
		if langs := world.Languages(); len(langs) == 1 {
			requested = langs[0]
		}
	}
	return entities.NormalizeLanguage(requested)
}

// applyTags overlays the requested tags and resolves race and class names
func (o *orchestrator) applyTags(ctx context.Context, npc *entities.NonPlayerCharacter, tags NPCTags) {
	set := func(dst *string, value string) {
		if value = strings.TrimSpace(value); value != "" {
			*dst = value
		}
	}
	set(&npc.Gender, tags.Gender)
	set(&npc.Attitude, tags.Attitude)
	set(&npc.Rarity, tags.Rarity)
	set(&npc.Environment, tags.Environment)
	set(&npc.Race, tags.Race)
	set(&npc.Class, tags.Class)
	set(&npc.Background, tags.Background)

	if o.catalog == nil {
		return
	}
	if npc.Race != "" {
		npc.Race = o.catalog.ResolveRace(ctx, npc.Race)
	}
	if npc.Class != "" {
		npc.Class = o.catalog.ResolveClass(ctx, npc.Class)
	}
}

func (o *orchestrator) GeneratePortrait(ctx context.Context, input *GeneratePortraitInput) (*GeneratePortraitOutput, error) {
	if input == nil || input.NPC == nil {
		return nil, errors.InvalidArgument("npc is required")
	}
	if o.image == nil {
		return nil, errors.New(errors.CodeUnimplemented, "no image generator configured")
	}

	lang := input.Language
	if lang == "" {
		lang = input.NPC.Language
	}
	lang, err := entities.NormalizeLanguage(lang)
	if err != nil {
		return nil, err
	}

	appearance, ok := input.NPC.Appearance.Get(lang)
	if !ok || strings.TrimSpace(appearance) == "" {
		return nil, errors.NoSourceText(entities.FieldAppearance, lang)
	}
	name, _ := input.NPC.Name.Get(lang)
	raceClass, _ := input.NPC.RaceClass.Get(lang)

	key := recordKey(input.LockKey, input.NPC)
	release, ok := o.inFlight.TryAcquire(key)
	if !ok {
		return nil, errors.GenerationInProgress(key)
	}
	defer release()

	ctx, span := o.tracer.Start(ctx, "generation.GeneratePortrait", trace.WithAttributes(
		attribute.String("npc.id", input.NPC.ID),
		attribute.String("language", lang),
	))
	defer span.End()

	prompt, err := o.prompts.Render(prompts.Portrait, map[string]string{
		"name":       name,
		"race_class": raceClass,
		"appearance": appearance,
	})
	if err != nil {
		return nil, fail(span, err)
	}

	image, err := o.image.Generate(ctx, prompt, input.ModelID)
	if err != nil {
		if errors.IsBillingRequired(err) {
			slog.WarnContext(ctx, "portrait generation requires billing",
				"npc_id", input.NPC.ID)
			return nil, fail(span, errors.BillingRequired(prompt, err))
		}
		slog.ErrorContext(ctx, "portrait generation failed",
			"npc_id", input.NPC.ID,
			"error", err.Error())
		return nil, fail(span, err)
	}
	if image == nil || len(image.Data) == 0 {
		return nil, fail(span, errors.MalformedGenerationResult("", fmt.Errorf("image generator returned no data")))
	}

	npc := input.NPC.Clone()
	npc.Portrait = &entities.Portrait{
		MIMEType: image.MIMEType,
		Data:     image.Data,
		Prompt:   prompt,
	}

	slog.InfoContext(ctx, "portrait generated",
		"npc_id", npc.ID,
		"bytes", len(image.Data))

	return &GeneratePortraitOutput{NPC: npc, Prompt: prompt}, nil
}

func (o *orchestrator) Simulate(ctx context.Context, input *SimulateInput) (*SimulateOutput, error) {
	if input == nil || input.NPC == nil {
		return nil, errors.InvalidArgument("npc is required")
	}
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, errors.InvalidArgument("message is required")
	}

	lang := input.Language
	if lang == "" {
		lang = input.NPC.Language
	}
	lang, err := entities.NormalizeLanguage(lang)
	if err != nil {
		return nil, err
	}

	key := recordKey(input.LockKey, input.NPC)
	release, ok := o.inFlight.TryAcquire(key)
	if !ok {
		return nil, errors.GenerationInProgress(key)
	}
	defer release()

	ctx, span := o.tracer.Start(ctx, "generation.Simulate", trace.WithAttributes(
		attribute.String("npc.id", input.NPC.ID),
		attribute.String("language", lang),
		attribute.Int("history", len(input.History)),
	))
	defer span.End()

	world, campaign, err := o.npcSetting(ctx, input.NPC)
	if err != nil {
		return nil, fail(span, err)
	}

	values := contextassembler.Assemble(world, campaign, lang).Values()
	values["language"] = entities.LanguageName(lang)
	values["name"] = localizedOr(input.NPC.Name, lang)
	values["race_class"] = localizedOr(input.NPC.RaceClass, lang)
	values["personality"] = localizedOr(input.NPC.Personality, lang)
	values["roleplaying_tips"] = localizedOr(input.NPC.RoleplayingTips, lang)
	values["history"] = renderHistory(input.History)
	values["message"] = message

	prompt, err := o.prompts.Render(prompts.NPCSimulation, values)
	if err != nil {
		return nil, fail(span, err)
	}

	raw, err := o.text.Complete(ctx, prompt, input.ModelID)
	if err != nil {
		slog.ErrorContext(ctx, "simulation call failed",
			"npc_id", input.NPC.ID,
			"error", err.Error())
		return nil, fail(span, err)
	}

	reply := strings.TrimSpace(raw)
	if reply == "" {
		return nil, fail(span, errors.MalformedGenerationResult(raw, fmt.Errorf("empty reply")))
	}

	return &SimulateOutput{Reply: reply, Prompt: prompt}, nil
}

// npcSetting loads the world and campaign an NPC belongs to. Either may be
// nil for an NPC that is not attached yet.
func (o *orchestrator) npcSetting(ctx context.Context, npc *entities.NonPlayerCharacter) (*entities.World, *entities.Campaign, error) {
	var (
		world    *entities.World
		campaign *entities.Campaign
		err      error
	)
	if npc.WorldID != "" {
		if world, err = o.storage.GetWorld(ctx, npc.WorldID); err != nil {
			return nil, nil, err
		}
	}
	if npc.CampaignID != "" {
		if campaign, err = o.storage.GetCampaign(ctx, npc.CampaignID); err != nil {
			return nil, nil, err
		}
	}
	return world, campaign, nil
}

func renderHistory(history []Exchange) string {
	if len(history) == 0 {
		return contextassembler.Placeholder
	}
	lines := make([]string, 0, len(history))
	for _, ex := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", ex.Speaker, strings.TrimSpace(ex.Text)))
	}
	return strings.Join(lines, "\n")
}

func localizedOr(text entities.LocalizedText, lang string) string {
	value, ok := text.Get(lang)
	if !ok || strings.TrimSpace(value) == "" {
		return contextassembler.Placeholder
	}
	return value
}

func orUnspecified(tag string) string {
	if tag == "" {
		return unspecified
	}
	return tag
}

func recordKey(lockKey string, npc *entities.NonPlayerCharacter) string {
	if lockKey != "" {
		return lockKey
	}
	if npc.ID != "" {
		return npc.ID
	}
	return fmt.Sprintf("draft:%p", npc)
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

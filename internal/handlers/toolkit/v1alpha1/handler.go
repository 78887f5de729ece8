// Package v1alpha1 handles the toolkit gRPC service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/clients/srd"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/characters"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/generation"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/orchestrators/translation"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/services/contextassembler"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/storage"
)

// HandlerConfig holds dependencies for the toolkit handler
type HandlerConfig struct {
	Storage     storage.Storage
	Generation  generation.Service
	Translation translation.Service
	Characters  characters.Service
	// Catalog backs ListOptions. Optional.
	Catalog srd.Catalog
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Storage == nil {
		vb.RequiredField("Storage")
	}
	if c.Generation == nil {
		vb.RequiredField("Generation")
	}
	if c.Translation == nil {
		vb.RequiredField("Translation")
	}
	if c.Characters == nil {
		vb.RequiredField("Characters")
	}

	return vb.Build()
}

// Handler implements ToolkitServiceServer
type Handler struct {
	storage     storage.Storage
	generation  generation.Service
	translation translation.Service
	characters  characters.Service
	catalog     srd.Catalog
}

var _ ToolkitServiceServer = (*Handler)(nil)

// NewHandler creates a new toolkit handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		storage:     cfg.Storage,
		generation:  cfg.Generation,
		translation: cfg.Translation,
		characters:  cfg.Characters,
		catalog:     cfg.Catalog,
	}, nil
}

// CreateWorld stores {"world": {...}} and returns {"world": {...}}
func (h *Handler) CreateWorld(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var world entities.World
	ok, err := decodeField(req, "world", &world)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgument("world is required"))
	}

	stored, err := h.storage.CreateWorld(ctx, &world)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{"world": stored})
}

// GetWorld loads {"id"}
func (h *Handler) GetWorld(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireString(req, "id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	world, err := h.storage.GetWorld(ctx, id)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{"world": world})
}

// UpdateWorld saves an edited {"world": {...}}. Languages missing from the
// request keep their stored text.
func (h *Handler) UpdateWorld(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var world entities.World
	ok, err := decodeField(req, "world", &world)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgument("world is required"))
	}

	stored, err := h.storage.UpdateWorld(ctx, &world)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{"world": stored})
}

// ListWorlds returns {"worlds": [...]}
func (h *Handler) ListWorlds(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	worlds, err := h.storage.ListWorlds(ctx)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if worlds == nil {
		worlds = []*entities.World{}
	}

	return grpcResponse(map[string]any{"worlds": worlds})
}

// DeleteWorld removes {"id"} with its campaigns and characters
func (h *Handler) DeleteWorld(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireString(req, "id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if err := h.storage.DeleteWorld(ctx, id); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// CreateCampaign stores {"campaign": {...}}
func (h *Handler) CreateCampaign(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var campaign entities.Campaign
	ok, err := decodeField(req, "campaign", &campaign)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgument("campaign is required"))
	}

	stored, err := h.storage.CreateCampaign(ctx, &campaign)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{"campaign": stored})
}

// GetCampaign loads {"id"}
func (h *Handler) GetCampaign(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireString(req, "id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	campaign, err := h.storage.GetCampaign(ctx, id)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{"campaign": campaign})
}

// UpdateCampaign saves an edited {"campaign": {...}}
func (h *Handler) UpdateCampaign(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var campaign entities.Campaign
	ok, err := decodeField(req, "campaign", &campaign)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if !ok {
		return nil, errors.ToGRPCError(errors.InvalidArgument("campaign is required"))
	}

	stored, err := h.storage.UpdateCampaign(ctx, &campaign)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{"campaign": stored})
}

// ListCampaigns returns the campaigns of {"world_id"}, or every campaign
func (h *Handler) ListCampaigns(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	campaigns, err := h.storage.ListCampaigns(ctx, storage.CampaignFilter{
		WorldID: stringField(req, "world_id"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if campaigns == nil {
		campaigns = []*entities.Campaign{}
	}

	return grpcResponse(map[string]any{"campaigns": campaigns})
}

// DeleteCampaign removes {"id"} with its characters
func (h *Handler) DeleteCampaign(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireString(req, "id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if err := h.storage.DeleteCampaign(ctx, id); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// ListCharacters filters by {"world_id", "campaign_id", "kind"}
func (h *Handler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	kind := entities.CharacterKind(stringField(req, "kind"))
	switch kind {
	case "", entities.CharacterKindPlayer, entities.CharacterKindNPC:
	default:
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("unknown character kind %q", kind))
	}

	list, err := h.storage.ListCharacters(ctx, storage.CharacterFilter{
		WorldID:    stringField(req, "world_id"),
		CampaignID: stringField(req, "campaign_id"),
		Kind:       kind,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{"characters": envelopes(list)})
}

// GetCharacter loads {"id"} as an envelope
func (h *Handler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireString(req, "id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	character, err := h.storage.GetCharacter(ctx, id)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{"character": entities.Envelope(character)})
}

// SaveCharacter stores {"character": envelope}. Player characters without
// an id are created with any missing ability scores rolled.
func (h *Handler) SaveCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	character, err := decodeCharacter(req, "character")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if pc, ok := character.(*entities.PlayerCharacter); ok && pc.ID == "" {
		out, err := h.characters.CreatePlayerCharacter(ctx, &characters.CreatePlayerCharacterInput{
			Character: pc,
			Method:    stringField(req, "method"),
		})
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		return grpcResponse(map[string]any{
			"character": entities.Envelope(out.Character),
			"created":   true,
			"rolls":     out.Rolls,
		})
	}

	out, err := h.characters.SaveCharacter(ctx, &characters.SaveCharacterInput{Character: character})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{
		"character": entities.Envelope(out.Character),
		"created":   out.Created,
	})
}

// DeleteCharacter removes {"id"}
func (h *Handler) DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := requireString(req, "id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.characters.DeleteCharacter(ctx, &characters.DeleteCharacterInput{ID: id}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{}, nil
}

// RollAbilityScores rolls a full set of scores with {"method"} without
// storing anything
func (h *Handler) RollAbilityScores(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.characters.RollAbilityScores(ctx, &characters.RollAbilityScoresInput{
		Method: stringField(req, "method"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{
		"scores": out.Scores,
		"rolls":  out.Rolls,
	})
}

// AssembleContext resolves {"world_id", "campaign_id", "language"} into the
// generation context. Missing text becomes the placeholder.
func (h *Handler) AssembleContext(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	worldID, err := requireString(req, "world_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	world, err := h.storage.GetWorld(ctx, worldID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	var campaign *entities.Campaign
	if id := stringField(req, "campaign_id"); id != "" {
		if campaign, err = h.storage.GetCampaign(ctx, id); err != nil {
			return nil, errors.ToGRPCError(err)
		}
	}

	lang := stringField(req, "language")
	switch {
	case lang != "":
	case campaign != nil:
		lang = campaign.Language
	default:
		lang = entities.DefaultLanguage
	}
	lang, err = entities.NormalizeLanguage(lang)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	assembled := contextassembler.Assemble(world, campaign, lang)

	return grpcResponse(map[string]any{
		"language": lang,
		"context":  map[string]string(assembled),
		"block":    assembled.Block(),
	})
}

// GenerateNPC returns a preview NPC; the caller saves it with SaveCharacter
func (h *Handler) GenerateNPC(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	input := &generation.GenerateNPCInput{
		WorldID:    stringField(req, "world_id"),
		CampaignID: stringField(req, "campaign_id"),
		Language:   stringField(req, "language"),
		NPCID:      stringField(req, "npc_id"),
		ModelID:    stringField(req, "model"),
		LockKey:    stringField(req, "lock_key"),
	}

	var tags struct {
		Gender      string `json:"gender"`
		Attitude    string `json:"attitude"`
		Rarity      string `json:"rarity"`
		Environment string `json:"environment"`
		Race        string `json:"race"`
		Class       string `json:"class"`
		Background  string `json:"background"`
	}
	if _, err := decodeField(req, "tags", &tags); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	input.Tags = generation.NPCTags(tags)

	out, err := h.generation.GenerateNPC(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{
		"character": entities.Envelope(out.NPC),
		"language":  out.Language,
	})
}

// GeneratePortrait attaches a portrait to {"npc_id"} or {"character"}. With
// "save" the stored NPC is updated.
func (h *Handler) GeneratePortrait(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	npc, err := h.requestNPC(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.generation.GeneratePortrait(ctx, &generation.GeneratePortraitInput{
		NPC:      npc,
		Language: stringField(req, "language"),
		ModelID:  stringField(req, "model"),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	result := entities.Character(out.NPC)
	if boolField(req, "save") && out.NPC.ID != "" {
		if result, err = h.storage.UpdateCharacter(ctx, out.NPC); err != nil {
			return nil, errors.ToGRPCError(err)
		}
	}

	return grpcResponse(map[string]any{
		"character": entities.Envelope(result),
		"prompt":    out.Prompt,
	})
}

// SimulateNPC replies to {"message"} as the NPC, given optional
// {"history": [{"speaker", "text"}]}
func (h *Handler) SimulateNPC(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	npc, err := h.requestNPC(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	var history []struct {
		Speaker string `json:"speaker"`
		Text    string `json:"text"`
	}
	if _, err := decodeField(req, "history", &history); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	input := &generation.SimulateInput{
		NPC:      npc,
		Language: stringField(req, "language"),
		Message:  stringField(req, "message"),
		ModelID:  stringField(req, "model"),
	}
	for _, ex := range history {
		input.History = append(input.History, generation.Exchange{Speaker: ex.Speaker, Text: ex.Text})
	}

	out, err := h.generation.Simulate(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return grpcResponse(map[string]any{"reply": out.Reply})
}

// TranslateRecord translates the stored record {"type", "id"}. Fields that
// fail are listed in "failed_fields"; the call only errors when every field
// fails. With "save" the merged record is stored.
func (h *Handler) TranslateRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	entityType := entities.EntityType(stringField(req, "type"))
	id, err := requireString(req, "id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	record, err := h.storage.Read(ctx, entityType, id)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.translation.Translate(ctx, &translation.TranslateInput{
		Record:         record,
		SourceLanguage: stringField(req, "source_language"),
		TargetLanguage: stringField(req, "target_language"),
		Fields:         stringList(req, "fields"),
		ModelID:        stringField(req, "model"),
	})
	if out == nil || out.State == translation.StateFailed {
		return nil, errors.ToGRPCError(err)
	}

	result := out.Record
	if boolField(req, "save") {
		if result, err = h.storage.Update(ctx, out.Record); err != nil {
			return nil, errors.ToGRPCError(err)
		}
	}

	failed := make(map[string]string)
	for _, r := range out.Failed() {
		failed[r.Field] = errors.GetMessage(r.Err)
	}

	return grpcResponse(map[string]any{
		"record":        recordValue(result),
		"state":         string(out.State),
		"failed_fields": failed,
	})
}

// ListOptions lists SRD {"kind": "races" | "classes"}
func (h *Handler) ListOptions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if h.catalog == nil {
		return nil, errors.ToGRPCError(errors.New(errors.CodeUnimplemented, "no SRD catalog configured"))
	}

	var (
		options []srd.Option
		err     error
	)
	switch kind := stringField(req, "kind"); kind {
	case "races":
		options, err = h.catalog.ListRaces(ctx)
	case "classes":
		options, err = h.catalog.ListClasses(ctx)
	default:
		return nil, errors.ToGRPCError(errors.InvalidArgumentf("kind must be races or classes, got %q", kind))
	}
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if options == nil {
		options = []srd.Option{}
	}

	return grpcResponse(map[string]any{"options": options})
}

// requestNPC loads {"npc_id"} from storage or decodes {"character"}
func (h *Handler) requestNPC(ctx context.Context, req *structpb.Struct) (*entities.NonPlayerCharacter, error) {
	var (
		character entities.Character
		err       error
	)
	if id := stringField(req, "npc_id"); id != "" {
		character, err = h.storage.GetCharacter(ctx, id)
	} else {
		character, err = decodeCharacter(req, "character")
	}
	if err != nil {
		return nil, err
	}

	npc, ok := character.(*entities.NonPlayerCharacter)
	if !ok {
		return nil, errors.InvalidArgumentf("character %s is not an npc", character.GetID())
	}
	return npc, nil
}

func recordValue(r entities.Record) any {
	if c, ok := r.(entities.Character); ok {
		return entities.Envelope(c)
	}
	return r
}

func grpcResponse(fields map[string]any) (*structpb.Struct, error) {
	out, err := response(fields)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

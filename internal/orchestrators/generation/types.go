package generation

import "github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"

// NPCTags steer NPC generation. Empty tags are left to the model.
type NPCTags struct {
	Gender      string
	Attitude    string
	Rarity      string
	Environment string
	Race        string
	Class       string
	Background  string
}

// GenerateNPCInput defines the request for generating an NPC
type GenerateNPCInput struct {
	WorldID    string
	CampaignID string

	// Language is the slot the generated text is written to. Defaults to
	// the campaign's language, then the world's only language.
	Language string

	Tags NPCTags

	// NPCID regenerates a stored NPC. The stored tags fill any empty tag.
	NPCID string

	// Draft regenerates an unsaved NPC. Ignored when NPCID is set.
	Draft *entities.NonPlayerCharacter

	ModelID string

	// LockKey claims the record while generating. Defaults to NPCID; new
	// NPCs should pass the workspace draft key.
	LockKey string
}

// GenerateNPCOutput defines the response for generating an NPC
type GenerateNPCOutput struct {
	// NPC is a preview and has not been stored
	NPC      *entities.NonPlayerCharacter
	Language string
	Prompt   string
	Raw      string
}

// GeneratePortraitInput defines the request for generating an NPC portrait
type GeneratePortraitInput struct {
	NPC      *entities.NonPlayerCharacter
	Language string
	ModelID  string
	LockKey  string
}

// GeneratePortraitOutput defines the response for generating an NPC portrait
type GeneratePortraitOutput struct {
	// NPC is a copy of the input with the portrait attached
	NPC    *entities.NonPlayerCharacter
	Prompt string
}

// Exchange is one line of a simulated conversation
type Exchange struct {
	Speaker string
	Text    string
}

// SimulateInput defines the request for an in-character reply
type SimulateInput struct {
	NPC      *entities.NonPlayerCharacter
	Language string
	Message  string
	History  []Exchange
	ModelID  string
	LockKey  string
}

// SimulateOutput defines the response for an in-character reply
type SimulateOutput struct {
	Reply  string
	Prompt string
}

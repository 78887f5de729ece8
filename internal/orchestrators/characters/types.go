package characters

import "github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"

// Ability score rolling methods
const (
	MethodStandard = "4d6_drop_lowest"
	MethodClassic  = "3d6"
)

// AbilityRoll is the roll behind one ability score
type AbilityRoll struct {
	Ability string `json:"ability"`
	Dice    []int  `json:"dice"`
	Dropped []int  `json:"dropped"`
	Total   int    `json:"total"`
}

// RollAbilityScoresInput defines the request for rolling a set of scores
type RollAbilityScoresInput struct {
	// Method defaults to MethodStandard
	Method string
}

// RollAbilityScoresOutput defines the response for rolling a set of scores
type RollAbilityScoresOutput struct {
	Scores entities.AbilityScores
	Rolls  []AbilityRoll
}

// CreatePlayerCharacterInput defines the request for creating a player character
type CreatePlayerCharacterInput struct {
	Character *entities.PlayerCharacter

	// Method rolls every ability score left at zero. Defaults to MethodStandard.
	Method string
}

// CreatePlayerCharacterOutput defines the response for creating a player character
type CreatePlayerCharacterOutput struct {
	Character *entities.PlayerCharacter
	// Rolls holds one entry per ability that was rolled
	Rolls []AbilityRoll
}

// SaveCharacterInput defines the request for saving an edited character
type SaveCharacterInput struct {
	Character entities.Character
}

// SaveCharacterOutput defines the response for saving an edited character
type SaveCharacterOutput struct {
	Character entities.Character
	Created   bool
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	ID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

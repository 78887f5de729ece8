package builders

import (
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/testutils"
)

// PlayerBuilder provides a fluent interface for building test player characters
type PlayerBuilder struct {
	pc *entities.PlayerCharacter
}

// NewPlayerBuilder creates a builder for an unsaved level 1 character with
// no ability scores
func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{
		pc: &entities.PlayerCharacter{
			CharacterBase: entities.CharacterBase{
				Language: entities.DefaultLanguage,
				Name:     entities.NewLocalizedText(entities.DefaultLanguage, testutils.TestCharacterName),
			},
			PlayerName: testutils.TestPlayerName,
			Level:      1,
		},
	}
}

// WithID sets the character ID
func (b *PlayerBuilder) WithID(id string) *PlayerBuilder {
	b.pc.ID = id
	return b
}

// InWorld sets the world and optionally the campaign
func (b *PlayerBuilder) InWorld(worldID, campaignID string) *PlayerBuilder {
	b.pc.WorldID = worldID
	b.pc.CampaignID = campaignID
	return b
}

// WithRaceAndClass sets race and class
func (b *PlayerBuilder) WithRaceAndClass(race, class string) *PlayerBuilder {
	b.pc.Race = race
	b.pc.Class = class
	return b
}

// WithAbilityScores sets every ability score
func (b *PlayerBuilder) WithAbilityScores(scores entities.AbilityScores) *PlayerBuilder {
	b.pc.AbilityScores = scores
	return b
}

// Build returns a copy so the builder can be reused
func (b *PlayerBuilder) Build() *entities.PlayerCharacter {
	return b.pc.Clone()
}

// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/testutils"
)

// NPCBuilder provides a fluent interface for building test NPCs
type NPCBuilder struct {
	npc *entities.NonPlayerCharacter
}

// NewNPCBuilder creates a builder for an unsaved English NPC with a name
func NewNPCBuilder() *NPCBuilder {
	return &NPCBuilder{
		npc: &entities.NonPlayerCharacter{
			CharacterBase: entities.CharacterBase{
				Language: entities.DefaultLanguage,
				Name:     entities.NewLocalizedText(entities.DefaultLanguage, testutils.TestNPCName),
			},
		},
	}
}

// WithID sets the NPC ID
func (b *NPCBuilder) WithID(id string) *NPCBuilder {
	b.npc.ID = id
	return b
}

// InWorld sets the world and optionally the campaign
func (b *NPCBuilder) InWorld(worldID, campaignID string) *NPCBuilder {
	b.npc.WorldID = worldID
	b.npc.CampaignID = campaignID
	return b
}

// WithLanguage sets the NPC's primary language
func (b *NPCBuilder) WithLanguage(lang string) *NPCBuilder {
	b.npc.Language = lang
	return b
}

// WithText sets one localized field in lang
func (b *NPCBuilder) WithText(field, lang, text string) *NPCBuilder {
	if target, ok := b.npc.LocalizedFields()[field]; ok {
		target.Set(lang, text)
	}
	return b
}

// WithAppearance sets the appearance in the NPC's language
func (b *NPCBuilder) WithAppearance(text string) *NPCBuilder {
	return b.WithText(entities.FieldAppearance, b.npc.Language, text)
}

// WithPortrait attaches a portrait
func (b *NPCBuilder) WithPortrait(mimeType string, data []byte) *NPCBuilder {
	b.npc.Portrait = &entities.Portrait{MIMEType: mimeType, Data: data}
	return b
}

// Build returns a copy so the builder can be reused
func (b *NPCBuilder) Build() *entities.NonPlayerCharacter {
	return b.npc.Clone()
}

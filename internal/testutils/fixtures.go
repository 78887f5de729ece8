package testutils

import (
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
)

// Fixture values shared by tests
const (
	TestWorldName     = "Forgotten Realms"
	TestWorldLore     = "A world of high magic and fallen empires"
	TestCampaignName  = "Lost Mine of Phandelver"
	TestPartyInfo     = "Four adventurers escorting a wagon"
	TestNPCName       = "Toblen Stonehill"
	TestPlayerName    = "Alex"
	TestCharacterName = "Thorin Oakenshield"
)

// CreateTestWorld creates an unsaved world with English lore
func CreateTestWorld() *entities.World {
	return &entities.World{
		Name: entities.NewLocalizedText(entities.DefaultLanguage, TestWorldName),
		Lore: entities.NewLocalizedText(entities.DefaultLanguage, TestWorldLore),
	}
}

// CreateTestWorldWithID creates CreateTestWorld as if it had been stored
func CreateTestWorldWithID(id string) *entities.World {
	world := CreateTestWorld()
	world.ID = id
	return world
}

// CreateTestCampaign creates an unsaved English campaign in worldID with
// party info but no session history
func CreateTestCampaign(worldID string) *entities.Campaign {
	return &entities.Campaign{
		WorldID:   worldID,
		Language:  entities.DefaultLanguage,
		Name:      entities.NewLocalizedText(entities.DefaultLanguage, TestCampaignName),
		PartyInfo: entities.NewLocalizedText(entities.DefaultLanguage, TestPartyInfo),
	}
}

// CreateTestCampaignWithID creates CreateTestCampaign as if it had been stored
func CreateTestCampaignWithID(id, worldID string) *entities.Campaign {
	campaign := CreateTestCampaign(worldID)
	campaign.ID = id
	return campaign
}

// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	storagemock "github.com/KirkDiggler/dnd-ai-toolkit/internal/storage/mock"
)

// ExpectSetting sets up the world and campaign loads a generation makes.
// campaign may be nil. Any context is accepted since orchestrators pass
// span contexts.
func ExpectSetting(mockStorage *storagemock.MockStorage, world *entities.World, campaign *entities.Campaign) {
	mockStorage.EXPECT().
		GetWorld(gomock.Any(), world.ID).
		Return(world, nil)

	if campaign != nil {
		mockStorage.EXPECT().
			GetCampaign(gomock.Any(), campaign.ID).
			Return(campaign, nil)
	}
}

// ExpectCharacter sets up a single character load
func ExpectCharacter(mockStorage *storagemock.MockStorage, character entities.Character) {
	mockStorage.EXPECT().
		GetCharacter(gomock.Any(), character.GetID()).
		Return(character, nil)
}

// ExpectMissingCharacter makes a character load fail with NotFound
func ExpectMissingCharacter(mockStorage *storagemock.MockStorage, id string) {
	mockStorage.EXPECT().
		GetCharacter(gomock.Any(), id).
		Return(nil, errors.NotFoundf("character %s not found", id))
}

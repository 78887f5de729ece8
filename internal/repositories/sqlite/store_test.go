package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/campaigns"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/sqlite"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/worlds"
)

type StoreTestSuite struct {
	suite.Suite
	path  string
	store *sqlite.Store
	ctx   context.Context
	now   time.Time
}

func (s *StoreTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "toolkit.db")
	store, err := sqlite.Open(s.path)
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *StoreTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StoreTestSuite) seed() {
	_, err := s.store.Worlds().Create(s.ctx, worlds.CreateInput{World: &entities.World{
		ID:        "world_1",
		Name:      entities.NewLocalizedText("en", "Greyhawk"),
		Lore:      entities.NewLocalizedText("en", "The Flanaess"),
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}})
	s.Require().NoError(err)

	_, err = s.store.Campaigns().Create(s.ctx, campaigns.CreateInput{Campaign: &entities.Campaign{
		ID:        "campaign_1",
		WorldID:   "world_1",
		Language:  "en",
		Name:      entities.NewLocalizedText("en", "Temple of Elemental Evil"),
		CreatedAt: s.now,
		UpdatedAt: s.now,
	}})
	s.Require().NoError(err)

	for i, c := range []entities.Character{
		&entities.NonPlayerCharacter{CharacterBase: entities.CharacterBase{
			ID: "char_1", WorldID: "world_1", CampaignID: "campaign_1", Language: "en",
			Name: entities.NewLocalizedText("en", "Elmo"), CreatedAt: s.now, UpdatedAt: s.now,
		}},
		&entities.PlayerCharacter{CharacterBase: entities.CharacterBase{
			ID: "char_2", WorldID: "world_1", CampaignID: "campaign_1", Language: "en",
			Name:      entities.NewLocalizedText("en", "Mialee"),
			CreatedAt: s.now.Add(time.Second), UpdatedAt: s.now.Add(time.Second),
		}, Level: 2},
		&entities.NonPlayerCharacter{CharacterBase: entities.CharacterBase{
			ID: "char_3", WorldID: "world_1", Language: "en",
			Name:      entities.NewLocalizedText("en", "Wandering sage"),
			CreatedAt: s.now.Add(2 * time.Second), UpdatedAt: s.now.Add(2 * time.Second),
		}},
	} {
		_, err := s.store.Characters().Create(s.ctx, characters.CreateInput{Character: c})
		s.Require().NoError(err, "character %d", i)
	}
}

func (s *StoreTestSuite) TestOpenRequiresPath() {
	_, err := sqlite.Open("  ")
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestReopenKeepsData() {
	s.seed()
	s.Require().NoError(s.store.Close())

	store, err := sqlite.Open(s.path)
	s.Require().NoError(err)
	s.store = store

	out, err := s.store.Worlds().Get(s.ctx, worlds.GetInput{ID: "world_1"})
	s.Require().NoError(err)
	lore, ok := out.World.Lore.Get("en")
	s.True(ok)
	s.Equal("The Flanaess", lore)
}

func (s *StoreTestSuite) TestRoundTripKeepsVariants() {
	s.seed()

	got, err := s.store.Characters().Get(s.ctx, characters.GetInput{ID: "char_2"})
	s.Require().NoError(err)
	pc, ok := got.Character.(*entities.PlayerCharacter)
	s.Require().True(ok)
	s.Equal(2, pc.Level)
	s.Equal(s.now.Add(time.Second), pc.CreatedAt)
}

func (s *StoreTestSuite) TestDuplicateID() {
	s.seed()

	_, err := s.store.Worlds().Create(s.ctx, worlds.CreateInput{World: &entities.World{ID: "world_1"}})
	s.True(errors.IsAlreadyExists(err))
}

func (s *StoreTestSuite) TestForeignKeyRejectsOrphans() {
	_, err := s.store.Campaigns().Create(s.ctx, campaigns.CreateInput{Campaign: &entities.Campaign{
		ID: "campaign_x", WorldID: "world_missing", Language: "en",
	}})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *StoreTestSuite) TestListFilters() {
	s.seed()

	byCampaign, err := s.store.Characters().ListByCampaignID(s.ctx,
		characters.ListByCampaignIDInput{CampaignID: "campaign_1"})
	s.Require().NoError(err)
	s.Require().Len(byCampaign.Characters, 2)
	s.Equal("char_1", byCampaign.Characters[0].GetID())
	s.Equal("char_2", byCampaign.Characters[1].GetID())

	byWorld, err := s.store.Characters().ListByWorldID(s.ctx,
		characters.ListByWorldIDInput{WorldID: "world_1"})
	s.Require().NoError(err)
	s.Len(byWorld.Characters, 3)

	camps, err := s.store.Campaigns().ListByWorldID(s.ctx, campaigns.ListByWorldIDInput{WorldID: "world_1"})
	s.Require().NoError(err)
	s.Len(camps.Campaigns, 1)
}

func (s *StoreTestSuite) TestDeleteWorldCascades() {
	s.seed()

	_, err := s.store.Worlds().Delete(s.ctx, worlds.DeleteInput{ID: "world_1"})
	s.Require().NoError(err)

	camps, err := s.store.Campaigns().List(s.ctx, campaigns.ListInput{})
	s.Require().NoError(err)
	s.Empty(camps.Campaigns)

	chars, err := s.store.Characters().List(s.ctx, characters.ListInput{})
	s.Require().NoError(err)
	s.Empty(chars.Characters)
}

func (s *StoreTestSuite) TestDeleteCampaignCascades() {
	s.seed()

	_, err := s.store.Campaigns().Delete(s.ctx, campaigns.DeleteInput{ID: "campaign_1"})
	s.Require().NoError(err)

	chars, err := s.store.Characters().ListByWorldID(s.ctx, characters.ListByWorldIDInput{WorldID: "world_1"})
	s.Require().NoError(err)
	s.Require().Len(chars.Characters, 1)
	s.Equal("char_3", chars.Characters[0].GetID())
}

func (s *StoreTestSuite) TestUpdateAndDeleteMissing() {
	_, err := s.store.Worlds().Update(s.ctx, worlds.UpdateInput{World: &entities.World{ID: "nope"}})
	s.True(errors.IsNotFound(err))

	_, err = s.store.Characters().Delete(s.ctx, characters.DeleteInput{ID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.store.Campaigns().Get(s.ctx, campaigns.GetInput{ID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *StoreTestSuite) TestUpdateCharacter() {
	s.seed()

	got, err := s.store.Characters().Get(s.ctx, characters.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	npc := got.Character.(*entities.NonPlayerCharacter).Clone()
	npc.Backstory.Set("cs", "Bývalý voják")
	_, err = s.store.Characters().Update(s.ctx, characters.UpdateInput{Character: npc})
	s.Require().NoError(err)

	again, err := s.store.Characters().Get(s.ctx, characters.GetInput{ID: "char_1"})
	s.Require().NoError(err)
	text, ok := again.Character.Base().Backstory.Get("cs")
	s.True(ok)
	s.Equal("Bývalý voják", text)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

package storage_test

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/clock"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/idgen"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/campaigns"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/sqlite"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/worlds"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/storage"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/testutils"
)

// storageSuite runs the same behavior against each backend
type storageSuite struct {
	suite.Suite
	open    func() (worlds.Repository, campaigns.Repository, characters.Repository, func())
	cleanup func()
	clock   *clock.Fixed
	store   storage.Storage
	ctx     context.Context
}

func (s *storageSuite) SetupTest() {
	w, c, ch, cleanup := s.open()
	s.cleanup = cleanup
	s.clock = clock.NewFixed(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))

	store, err := storage.New(&storage.Config{
		Worlds:       w,
		Campaigns:    c,
		Characters:   ch,
		WorldIDs:     idgen.NewSequential(idgen.PrefixWorld),
		CampaignIDs:  idgen.NewSequential(idgen.PrefixCampaign),
		CharacterIDs: idgen.NewSequential(idgen.PrefixCharacter),
		Clock:        s.clock,
	})
	s.Require().NoError(err)
	s.store = store
	s.ctx = context.Background()
}

func (s *storageSuite) TearDownTest() {
	s.cleanup()
}

func (s *storageSuite) createWorld(langs ...string) *entities.World {
	world := &entities.World{}
	for _, lang := range langs {
		world.Name.Set(lang, "Eberron")
		world.Lore.Set(lang, "lore in "+lang)
	}
	created, err := s.store.CreateWorld(s.ctx, world)
	s.Require().NoError(err)
	return created
}

func (s *storageSuite) createCampaign(worldID, lang string) *entities.Campaign {
	created, err := s.store.CreateCampaign(s.ctx, &entities.Campaign{
		WorldID:  worldID,
		Language: lang,
		Name:     entities.NewLocalizedText(lang, "Rising from the Last War"),
	})
	s.Require().NoError(err)
	return created
}

func (s *storageSuite) createNPC(worldID, campaignID string) entities.Character {
	created, err := s.store.CreateCharacter(s.ctx, &entities.NonPlayerCharacter{
		CharacterBase: entities.CharacterBase{
			WorldID:    worldID,
			CampaignID: campaignID,
			Name:       entities.NewLocalizedText("en", "Merrix d'Cannith"),
		},
	})
	s.Require().NoError(err)
	return created
}

func (s *storageSuite) TestCreateWorldAssignsIDAndTimestamps() {
	world := &entities.World{Name: entities.NewLocalizedText("en", "Eberron"), Lore: entities.NewLocalizedText("en", "Magic as industry")}

	created, err := s.store.CreateWorld(s.ctx, world)
	s.Require().NoError(err)

	s.Equal("world_1", created.ID)
	s.Equal(s.clock.Now(), created.CreatedAt)
	s.Equal(s.clock.Now(), created.UpdatedAt)
	s.Empty(world.ID, "caller's record is not mutated")

	got, err := s.store.GetWorld(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created, got)
}

func (s *storageSuite) TestCreateRejectsClientIDs() {
	_, err := s.store.CreateWorld(s.ctx, &entities.World{ID: "mine"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.store.Create(s.ctx, &entities.PlayerCharacter{CharacterBase: entities.CharacterBase{ID: "mine"}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *storageSuite) TestUpdateWorldKeepsCreatedAt() {
	world := s.createWorld("en")
	s.clock.Advance(time.Hour)

	world.Lore.Set("cs", "Magie jako průmysl")
	updated, err := s.store.UpdateWorld(s.ctx, world)
	s.Require().NoError(err)

	s.Equal(world.CreatedAt, updated.CreatedAt)
	s.Equal(s.clock.Now(), updated.UpdatedAt)
	s.Equal([]string{"cs", "en"}, updated.Languages())

	_, err = s.store.UpdateWorld(s.ctx, &entities.World{ID: "world_missing"})
	s.True(errors.IsNotFound(err))
}

func (s *storageSuite) TestCreateCampaignChecksWorld() {
	_, err := s.store.CreateCampaign(s.ctx, &entities.Campaign{WorldID: "world_missing", Language: "en"})
	s.True(errors.IsFailedPrecondition(err))

	_, err = s.store.CreateCampaign(s.ctx, &entities.Campaign{Language: "en"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *storageSuite) TestCampaignLanguageMustExistOnWorld() {
	world := s.createWorld("en", "cs")

	_, err := s.store.CreateCampaign(s.ctx, &entities.Campaign{WorldID: world.ID, Language: "de"})
	s.True(errors.IsFailedPrecondition(err))

	campaign := s.createCampaign(world.ID, "CS")
	s.Equal("cs", campaign.Language)

	_, err = s.store.CreateCampaign(s.ctx, &entities.Campaign{WorldID: world.ID, Language: "not a language!"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *storageSuite) TestCampaignLanguageDefaultsToOnlyWorldLanguage() {
	world := s.createWorld("de")

	campaign, err := s.store.CreateCampaign(s.ctx, &entities.Campaign{WorldID: world.ID})
	s.Require().NoError(err)
	s.Equal("de", campaign.Language)
}

func (s *storageSuite) TestCharacterInheritsCampaign() {
	world := s.createWorld("en")
	campaign := s.createCampaign(world.ID, "en")

	created, err := s.store.CreateCharacter(s.ctx, &entities.PlayerCharacter{
		CharacterBase: entities.CharacterBase{CampaignID: campaign.ID},
		Level:         1,
	})
	s.Require().NoError(err)

	s.Equal("char_1", created.GetID())
	s.Equal(world.ID, created.Base().WorldID)
	s.Equal("en", created.Base().Language)
}

func (s *storageSuite) TestCharacterParentChecks() {
	world := s.createWorld("en", "cs")
	other := s.createWorld("en")
	campaign := s.createCampaign(world.ID, "en")

	_, err := s.store.CreateCharacter(s.ctx, &entities.NonPlayerCharacter{
		CharacterBase: entities.CharacterBase{WorldID: other.ID, CampaignID: campaign.ID},
	})
	s.True(errors.IsFailedPrecondition(err), "campaign of another world")

	_, err = s.store.CreateCharacter(s.ctx, &entities.NonPlayerCharacter{
		CharacterBase: entities.CharacterBase{CampaignID: "campaign_missing"},
	})
	s.True(errors.IsFailedPrecondition(err), "missing campaign")

	_, err = s.store.CreateCharacter(s.ctx, &entities.NonPlayerCharacter{
		CharacterBase: entities.CharacterBase{CampaignID: campaign.ID, Language: "cs"},
	})
	s.True(errors.IsFailedPrecondition(err), "language differs from campaign")

	_, err = s.store.CreateCharacter(s.ctx, &entities.NonPlayerCharacter{})
	s.True(errors.IsInvalidArgument(err), "no parent at all")
}

func (s *storageSuite) TestUpdateCharacterCannotChangeKind() {
	world := s.createWorld("en")
	npc := s.createNPC(world.ID, "")

	pc := &entities.PlayerCharacter{CharacterBase: *npc.Base()}
	_, err := s.store.UpdateCharacter(s.ctx, pc)
	s.True(errors.IsInvalidArgument(err))
}

func (s *storageSuite) TestUpdateCharacterStampsTime() {
	world := s.createWorld("en")
	npc := s.createNPC(world.ID, "").(*entities.NonPlayerCharacter)
	s.clock.Advance(time.Minute)

	npc.PlotHooks.Set("en", "Owes the party a favor")
	updated, err := s.store.UpdateCharacter(s.ctx, npc)
	s.Require().NoError(err)

	s.Equal(npc.CreatedAt, updated.Base().CreatedAt)
	s.Equal(s.clock.Now(), updated.Base().UpdatedAt)

	got, err := s.store.GetCharacter(s.ctx, npc.ID)
	s.Require().NoError(err)
	hook, ok := got.(*entities.NonPlayerCharacter).PlotHooks.Get("en")
	s.True(ok)
	s.Equal("Owes the party a favor", hook)
}

func (s *storageSuite) TestUpdateWorldKeepsOtherLanguages() {
	world := s.createWorld("en", "cs")
	campaign := s.createCampaign(world.ID, "cs")

	updated, err := s.store.UpdateWorld(s.ctx, &entities.World{
		ID:   world.ID,
		Name: entities.NewLocalizedText("en", "Eberron"),
		Lore: entities.NewLocalizedText("en", "edited"),
	})
	s.Require().NoError(err)
	s.Equal([]string{"cs", "en"}, updated.Languages())

	got, err := s.store.GetWorld(s.ctx, world.ID)
	s.Require().NoError(err)
	en, _ := got.Lore.Get("en")
	s.Equal("edited", en)
	cs, ok := got.Lore.Get("cs")
	s.True(ok, "cs translation survives a save in en")
	s.Equal("lore in cs", cs)

	// the cs campaign still has cs lore to draw on
	_, err = s.store.UpdateCampaign(s.ctx, campaign)
	s.NoError(err)
}

func (s *storageSuite) TestUpdateCampaignKeepsOtherLanguages() {
	world := s.createWorld("en")
	campaign := s.createCampaign(world.ID, "en")
	campaign.PartyInfo.Set("de", "Vier Abenteurer")
	_, err := s.store.UpdateCampaign(s.ctx, campaign)
	s.Require().NoError(err)

	updated, err := s.store.UpdateCampaign(s.ctx, &entities.Campaign{
		ID:        campaign.ID,
		PartyInfo: entities.NewLocalizedText("en", "Four adventurers"),
	})
	s.Require().NoError(err)

	name, ok := updated.Name.Get("en")
	s.True(ok)
	s.Equal("Rising from the Last War", name)
	s.Equal([]string{"de", "en"}, updated.PartyInfo.Languages())
}

func (s *storageSuite) TestUpdateCharacterKeepsOtherLanguages() {
	world := s.createWorld("en")
	npc := s.createNPC(world.ID, "").(*entities.NonPlayerCharacter)
	npc.Name.Set("cs", "Merrix z Cannithu")
	_, err := s.store.UpdateCharacter(s.ctx, npc)
	s.Require().NoError(err)

	edit := &entities.NonPlayerCharacter{
		CharacterBase: entities.CharacterBase{
			ID:         npc.ID,
			Appearance: entities.NewLocalizedText("en", "Tall, with a warforged arm"),
		},
	}
	_, err = s.store.UpdateCharacter(s.ctx, edit)
	s.Require().NoError(err)

	got, err := s.store.GetCharacter(s.ctx, npc.ID)
	s.Require().NoError(err)
	s.Equal([]string{"cs", "en"}, got.Base().Name.Languages())
	appearance, _ := got.Base().Appearance.Get("en")
	s.Equal("Tall, with a warforged arm", appearance)
}

func (s *storageSuite) TestLanguageKeysAreCanonical() {
	world := &entities.World{Name: entities.NewLocalizedText("EN", "Eberron")}
	world.Lore.Set("pt_br", "Magia como indústria")
	created, err := s.store.CreateWorld(s.ctx, world)
	s.Require().NoError(err)

	got, err := s.store.GetWorld(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal([]string{"en", "pt-BR"}, got.Languages())

	campaign := s.createCampaign(created.ID, "pt-br")
	s.Equal("pt-BR", campaign.Language)
}

func (s *storageSuite) TestDeleteWorldCascades() {
	world := s.createWorld("en")
	keep := s.createWorld("en")
	first := s.createCampaign(world.ID, "en")
	second := s.createCampaign(world.ID, "en")
	s.createNPC(world.ID, first.ID)
	s.createNPC(world.ID, second.ID)
	s.createNPC(world.ID, "")
	survivor := s.createNPC(keep.ID, "")

	s.Require().NoError(s.store.DeleteWorld(s.ctx, world.ID))

	_, err := s.store.GetWorld(s.ctx, world.ID)
	s.True(errors.IsNotFound(err))

	camps, err := s.store.ListCampaigns(s.ctx, storage.CampaignFilter{WorldID: world.ID})
	s.Require().NoError(err)
	s.Empty(camps)

	for _, campaignID := range []string{first.ID, second.ID} {
		chars, err := s.store.ListCharacters(s.ctx, storage.CharacterFilter{CampaignID: campaignID})
		s.Require().NoError(err)
		s.Empty(chars)
	}

	chars, err := s.store.ListCharacters(s.ctx, storage.CharacterFilter{WorldID: world.ID})
	s.Require().NoError(err)
	s.Empty(chars)

	all, err := s.store.ListCharacters(s.ctx, storage.CharacterFilter{})
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(survivor.GetID(), all[0].GetID())
}

func (s *storageSuite) TestDeleteCampaignCascades() {
	world := s.createWorld("en")
	campaign := s.createCampaign(world.ID, "en")
	s.createNPC(world.ID, campaign.ID)
	loose := s.createNPC(world.ID, "")

	s.Require().NoError(s.store.DeleteCampaign(s.ctx, campaign.ID))

	chars, err := s.store.ListCharacters(s.ctx, storage.CharacterFilter{WorldID: world.ID})
	s.Require().NoError(err)
	s.Require().Len(chars, 1)
	s.Equal(loose.GetID(), chars[0].GetID())

	s.True(errors.IsNotFound(s.store.DeleteCampaign(s.ctx, campaign.ID)))
}

func (s *storageSuite) TestListCharactersByKind() {
	world := s.createWorld("en")
	s.createNPC(world.ID, "")
	_, err := s.store.CreateCharacter(s.ctx, &entities.PlayerCharacter{
		CharacterBase: entities.CharacterBase{WorldID: world.ID},
	})
	s.Require().NoError(err)

	players, err := s.store.ListCharacters(s.ctx, storage.CharacterFilter{
		WorldID: world.ID,
		Kind:    entities.CharacterKindPlayer,
	})
	s.Require().NoError(err)
	s.Require().Len(players, 1)
	s.Equal(entities.CharacterKindPlayer, players[0].Kind())
}

func (s *storageSuite) TestListCharactersChecksCampaignWorld() {
	world := s.createWorld("en")
	other := s.createWorld("en")
	campaign := s.createCampaign(world.ID, "en")
	s.createNPC(world.ID, campaign.ID)

	_, err := s.store.ListCharacters(s.ctx, storage.CharacterFilter{
		WorldID:    other.ID,
		CampaignID: campaign.ID,
	})
	s.True(errors.IsInvalidArgument(err))

	list, err := s.store.ListCharacters(s.ctx, storage.CharacterFilter{
		WorldID:    world.ID,
		CampaignID: campaign.ID,
	})
	s.Require().NoError(err)
	s.Len(list, 1)

	list, err = s.store.ListCharacters(s.ctx, storage.CharacterFilter{
		WorldID:    world.ID,
		CampaignID: "campaign_missing",
	})
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *storageSuite) TestGenericOperations() {
	worldID, err := s.store.Create(s.ctx, &entities.World{Lore: entities.NewLocalizedText("en", "lore")})
	s.Require().NoError(err)

	campaignID, err := s.store.Create(s.ctx, &entities.Campaign{WorldID: worldID, Language: "en"})
	s.Require().NoError(err)

	record, err := s.store.Read(s.ctx, entities.EntityTypeCampaign, campaignID)
	s.Require().NoError(err)
	s.Equal(entities.EntityTypeCampaign, record.EntityType())

	campaign := record.(*entities.Campaign)
	campaign.SessionHistory.Set("en", "The party met in a tavern")
	updated, err := s.store.Update(s.ctx, campaign)
	s.Require().NoError(err)
	history, ok := updated.(*entities.Campaign).SessionHistory.Get("en")
	s.True(ok)
	s.Equal("The party met in a tavern", history)

	listed, err := s.store.List(s.ctx, storage.ListFilter{Type: entities.EntityTypeCampaign, WorldID: worldID})
	s.Require().NoError(err)
	s.Len(listed, 1)

	s.Require().NoError(s.store.Delete(s.ctx, entities.EntityTypeWorld, worldID))

	_, err = s.store.Read(s.ctx, entities.EntityTypeCampaign, campaignID)
	s.True(errors.IsNotFound(err))

	record, err = s.store.Read(s.ctx, entities.EntityTypeWorld, worldID)
	s.True(errors.IsNotFound(err))
	s.Nil(record)

	_, err = s.store.Read(s.ctx, "dragon", "x")
	s.True(errors.IsInvalidArgument(err))
}

type RedisStorageTestSuite struct {
	storageSuite
}

func TestRedisStorageTestSuite(t *testing.T) {
	s := new(RedisStorageTestSuite)
	s.open = func() (worlds.Repository, campaigns.Repository, characters.Repository, func()) {
		client, cleanup := testutils.CreateTestRedisClient(t)
		w, err := worlds.NewRedis(&worlds.RedisConfig{Client: client})
		require.NoError(t, err)
		c, err := campaigns.NewRedis(&campaigns.RedisConfig{Client: client})
		require.NoError(t, err)
		ch, err := characters.NewRedis(&characters.RedisConfig{Client: client})
		require.NoError(t, err)
		return w, c, ch, cleanup
	}
	suite.Run(t, s)
}

type SQLiteStorageTestSuite struct {
	storageSuite
}

func TestSQLiteStorageTestSuite(t *testing.T) {
	s := new(SQLiteStorageTestSuite)
	s.open = func() (worlds.Repository, campaigns.Repository, characters.Repository, func()) {
		store, err := sqlite.Open(filepath.Join(t.TempDir(), "storage.db"))
		require.NoError(t, err)
		return store.Worlds(), store.Campaigns(), store.Characters(), func() { _ = store.Close() }
	}
	suite.Run(t, s)
}

func TestNewRequiresRepositories(t *testing.T) {
	_, err := storage.New(&storage.Config{})
	require.Error(t, err)
	require.True(t, errors.IsInvalidArgument(err))

	_, err = storage.New(nil)
	require.True(t, errors.IsInvalidArgument(err))
}

func TestBackendFailureIsStorageUnavailable(t *testing.T) {
	client, mock := redismock.NewClientMock()
	w, err := worlds.NewRedis(&worlds.RedisConfig{Client: client})
	require.NoError(t, err)
	c, err := campaigns.NewRedis(&campaigns.RedisConfig{Client: client})
	require.NoError(t, err)
	ch, err := characters.NewRedis(&characters.RedisConfig{Client: client})
	require.NoError(t, err)

	store, err := storage.New(&storage.Config{Worlds: w, Campaigns: c, Characters: ch})
	require.NoError(t, err)

	mock.ExpectGet("world:world_1").SetErr(stderrors.New("dial tcp 127.0.0.1:6379: connect: connection refused"))
	_, err = store.GetWorld(context.Background(), "world_1")
	require.Error(t, err)
	require.True(t, errors.IsStorageUnavailable(err))
	require.True(t, errors.IsUnavailable(err))

	mock.ExpectSMembers("worlds:all").SetErr(stderrors.New("i/o timeout"))
	_, err = store.ListWorlds(context.Background())
	require.True(t, errors.IsStorageUnavailable(err))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCanceledContextIsNotUnavailable(t *testing.T) {
	client, cleanup := testutils.CreateTestRedisClient(t)
	defer cleanup()
	w, err := worlds.NewRedis(&worlds.RedisConfig{Client: client})
	require.NoError(t, err)
	c, err := campaigns.NewRedis(&campaigns.RedisConfig{Client: client})
	require.NoError(t, err)
	ch, err := characters.NewRedis(&characters.RedisConfig{Client: client})
	require.NoError(t, err)

	store, err := storage.New(&storage.Config{Worlds: w, Campaigns: c, Characters: ch})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.ListWorlds(ctx)
	require.Error(t, err)
	require.True(t, errors.IsCanceled(err))
}

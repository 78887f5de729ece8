package worlds_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/worlds"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	cleanup func()
	repo    worlds.Repository
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := worlds.NewRedis(&worlds.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) newWorld(id string, created time.Time) *entities.World {
	return &entities.World{
		ID:        id,
		Name:      entities.NewLocalizedText("en", "Faerûn"),
		Lore:      entities.NewLocalizedText("en", "A world of swords and sorcery."),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedisRequiresClient() {
	_, err := worlds.NewRedis(&worlds.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = worlds.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	world := s.newWorld("world_1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	world.Lore.Set("cs", "Svět mečů a magie.")

	_, err := s.repo.Create(s.ctx, worlds.CreateInput{World: world})
	s.Require().NoError(err)

	s.True(s.mr.Exists("world:world_1"))
	members, err := s.mr.SMembers("worlds:all")
	s.Require().NoError(err)
	s.Equal([]string{"world_1"}, members)

	got, err := s.repo.Get(s.ctx, worlds.GetInput{ID: "world_1"})
	s.Require().NoError(err)
	s.Equal(world, got.World)
}

func (s *RedisRepositoryTestSuite) TestCreateValidation() {
	_, err := s.repo.Create(s.ctx, worlds.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, worlds.CreateInput{World: &entities.World{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicate() {
	world := s.newWorld("world_1", time.Now().UTC())
	_, err := s.repo.Create(s.ctx, worlds.CreateInput{World: world})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, worlds.CreateInput{World: world})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, worlds.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, worlds.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestUpdate() {
	world := s.newWorld("world_1", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err := s.repo.Create(s.ctx, worlds.CreateInput{World: world})
	s.Require().NoError(err)

	updated := world.Clone()
	updated.Lore.Set("de", "Eine Welt voller Schwerter.")
	_, err = s.repo.Update(s.ctx, worlds.UpdateInput{World: updated})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, worlds.GetInput{ID: "world_1"})
	s.Require().NoError(err)
	s.Equal([]string{"de", "en"}, got.World.Lore.Languages())

	_, err = s.repo.Update(s.ctx, worlds.UpdateInput{World: s.newWorld("missing", time.Now())})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	world := s.newWorld("world_1", time.Now().UTC())
	_, err := s.repo.Create(s.ctx, worlds.CreateInput{World: world})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, worlds.DeleteInput{ID: "world_1"})
	s.Require().NoError(err)

	s.False(s.mr.Exists("world:world_1"))
	_, err = s.repo.Get(s.ctx, worlds.GetInput{ID: "world_1"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, worlds.DeleteInput{ID: "world_1"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListOrdersByCreation() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"world_c", "world_a", "world_b"} {
		_, err := s.repo.Create(s.ctx, worlds.CreateInput{
			World: s.newWorld(id, base.Add(time.Duration(i)*time.Hour)),
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, worlds.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Worlds, 3)
	s.Equal("world_c", out.Worlds[0].ID)
	s.Equal("world_a", out.Worlds[1].ID)
	s.Equal("world_b", out.Worlds[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListCleansStaleIndexEntries() {
	_, err := s.repo.Create(s.ctx, worlds.CreateInput{World: s.newWorld("world_1", time.Now().UTC())})
	s.Require().NoError(err)
	_, err = s.mr.SAdd("worlds:all", "world_gone")
	s.Require().NoError(err)

	out, err := s.repo.List(s.ctx, worlds.ListInput{})
	s.Require().NoError(err)
	s.Len(out.Worlds, 1)

	members, err := s.mr.SMembers("worlds:all")
	s.Require().NoError(err)
	s.Equal([]string{"world_1"}, members)
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	out, err := s.repo.List(s.ctx, worlds.ListInput{})
	s.Require().NoError(err)
	s.Empty(out.Worlds)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

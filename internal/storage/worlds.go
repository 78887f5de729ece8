package storage

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/campaigns"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/worlds"
)

func (s *service) CreateWorld(ctx context.Context, world *entities.World) (*entities.World, error) {
	if world == nil {
		return nil, errors.InvalidArgument("world is required")
	}
	if world.ID != "" {
		return nil, errors.InvalidArgument("world id is assigned by storage")
	}

	stored := world.Clone()
	stored.ID = s.worldIDs.Generate()
	stored.CreatedAt = s.timestamp()
	stored.UpdatedAt = stored.CreatedAt

	if _, err := s.worlds.Create(ctx, worlds.CreateInput{World: stored}); err != nil {
		return nil, convertError(err, "create world")
	}

	slog.InfoContext(ctx, "world created", "world_id", stored.ID)

	return stored.Clone(), nil
}

func (s *service) GetWorld(ctx context.Context, id string) (*entities.World, error) {
	if id == "" {
		return nil, errors.InvalidArgument("world id is required")
	}

	out, err := s.worlds.Get(ctx, worlds.GetInput{ID: id})
	if err != nil {
		return nil, convertError(err, "get world")
	}
	return out.World, nil
}

func (s *service) UpdateWorld(ctx context.Context, world *entities.World) (*entities.World, error) {
	if world == nil {
		return nil, errors.InvalidArgument("world is required")
	}
	if world.ID == "" {
		return nil, errors.InvalidArgument("world id is required")
	}

	existing, err := s.GetWorld(ctx, world.ID)
	if err != nil {
		return nil, err
	}

	stored := world.Clone()
	entities.KeepLanguages(stored, existing)
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = s.timestamp()

	if _, err := s.worlds.Update(ctx, worlds.UpdateInput{World: stored}); err != nil {
		return nil, convertError(err, "update world")
	}

	return stored.Clone(), nil
}

func (s *service) DeleteWorld(ctx context.Context, id string) error {
	if _, err := s.GetWorld(ctx, id); err != nil {
		return err
	}

	camps, err := s.campaigns.ListByWorldID(ctx, campaigns.ListByWorldIDInput{WorldID: id})
	if err != nil {
		return convertError(err, "delete world")
	}
	for _, c := range camps.Campaigns {
		if err := s.deleteCampaignTree(ctx, c.ID); err != nil {
			return err
		}
	}

	// characters that reference the world without a campaign
	chars, err := s.characters.ListByWorldID(ctx, characters.ListByWorldIDInput{WorldID: id})
	if err != nil {
		return convertError(err, "delete world")
	}
	for _, c := range chars.Characters {
		if err := s.deleteCharacter(ctx, c.GetID()); err != nil {
			return err
		}
	}

	if _, err := s.worlds.Delete(ctx, worlds.DeleteInput{ID: id}); err != nil && !errors.IsNotFound(err) {
		return convertError(err, "delete world")
	}

	slog.InfoContext(ctx, "world deleted",
		"world_id", id,
		"campaigns", len(camps.Campaigns),
		"loose_characters", len(chars.Characters))

	return nil
}

func (s *service) ListWorlds(ctx context.Context) ([]*entities.World, error) {
	out, err := s.worlds.List(ctx, worlds.ListInput{})
	if err != nil {
		return nil, convertError(err, "list worlds")
	}
	return out.Worlds, nil
}

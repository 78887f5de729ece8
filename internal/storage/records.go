package storage

import (
	"context"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

func (s *service) Create(ctx context.Context, record entities.Record) (string, error) {
	switch r := record.(type) {
	case *entities.World:
		w, err := s.CreateWorld(ctx, r)
		if err != nil {
			return "", err
		}
		return w.ID, nil
	case *entities.Campaign:
		c, err := s.CreateCampaign(ctx, r)
		if err != nil {
			return "", err
		}
		return c.ID, nil
	case entities.Character:
		c, err := s.CreateCharacter(ctx, r)
		if err != nil {
			return "", err
		}
		return c.GetID(), nil
	default:
		return "", errors.InvalidArgumentf("unsupported record type %T", record)
	}
}

func (s *service) Read(ctx context.Context, entityType entities.EntityType, id string) (entities.Record, error) {
	var (
		record entities.Record
		err    error
	)

	switch entityType {
	case entities.EntityTypeWorld:
		record, err = asRecord[*entities.World](s.GetWorld(ctx, id))
	case entities.EntityTypeCampaign:
		record, err = asRecord[*entities.Campaign](s.GetCampaign(ctx, id))
	case entities.EntityTypeCharacter:
		record, err = asRecord[entities.Character](s.GetCharacter(ctx, id))
	default:
		return nil, errors.InvalidArgumentf("unknown entity type %q", entityType)
	}

	return record, err
}

func (s *service) Update(ctx context.Context, record entities.Record) (entities.Record, error) {
	switch r := record.(type) {
	case *entities.World:
		return asRecord[*entities.World](s.UpdateWorld(ctx, r))
	case *entities.Campaign:
		return asRecord[*entities.Campaign](s.UpdateCampaign(ctx, r))
	case entities.Character:
		return asRecord[entities.Character](s.UpdateCharacter(ctx, r))
	default:
		return nil, errors.InvalidArgumentf("unsupported record type %T", record)
	}
}

func (s *service) Delete(ctx context.Context, entityType entities.EntityType, id string) error {
	switch entityType {
	case entities.EntityTypeWorld:
		return s.DeleteWorld(ctx, id)
	case entities.EntityTypeCampaign:
		return s.DeleteCampaign(ctx, id)
	case entities.EntityTypeCharacter:
		return s.DeleteCharacter(ctx, id)
	default:
		return errors.InvalidArgumentf("unknown entity type %q", entityType)
	}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]entities.Record, error) {
	var out []entities.Record

	switch filter.Type {
	case entities.EntityTypeWorld:
		list, err := s.ListWorlds(ctx)
		if err != nil {
			return nil, err
		}
		for _, w := range list {
			out = append(out, w)
		}
	case entities.EntityTypeCampaign:
		list, err := s.ListCampaigns(ctx, CampaignFilter{WorldID: filter.WorldID})
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			out = append(out, c)
		}
	case entities.EntityTypeCharacter:
		list, err := s.ListCharacters(ctx, CharacterFilter{WorldID: filter.WorldID, CampaignID: filter.CampaignID})
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			out = append(out, c)
		}
	default:
		return nil, errors.InvalidArgumentf("unknown entity type %q", filter.Type)
	}

	return out, nil
}

// asRecord keeps a failed typed lookup from becoming a non-nil Record
func asRecord[T entities.Record](r T, err error) (entities.Record, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

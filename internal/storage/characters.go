package storage

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/characters"
)

func cloneCharacter(c entities.Character) entities.Character {
	return c.CloneRecord().(entities.Character)
}

// resolveCharacterParents fills the world from the campaign when only the
// campaign is given and applies the language rules: a campaign character
// speaks its campaign's language, a loose character one of its world's.
func (s *service) resolveCharacterParents(ctx context.Context, base *entities.CharacterBase, operation string) error {
	if base.CampaignID != "" {
		campaign, err := s.parentCampaign(ctx, base.CampaignID, operation)
		if err != nil {
			return err
		}
		if base.WorldID == "" {
			base.WorldID = campaign.WorldID
		}
		if base.WorldID != campaign.WorldID {
			return errors.FailedPreconditionf("campaign %s does not belong to world %s",
				campaign.ID, base.WorldID)
		}
		if base.Language == "" {
			base.Language = campaign.Language
		}
		lang, err := entities.NormalizeLanguage(base.Language)
		if err != nil {
			return err
		}
		if lang != campaign.Language {
			return errors.FailedPreconditionf("character language %s differs from campaign language %s",
				lang, campaign.Language).WithMeta("language", lang)
		}
		base.Language = lang
	}

	world, err := s.parentWorld(ctx, base.WorldID, operation)
	if err != nil {
		return err
	}

	if base.CampaignID == "" {
		lang, err := campaignLanguage(world, base.Language)
		if err != nil {
			return err
		}
		base.Language = lang
	}

	return nil
}

func (s *service) CreateCharacter(ctx context.Context, character entities.Character) (entities.Character, error) {
	if entities.IsNilCharacter(character) {
		return nil, errors.InvalidArgument("character is required")
	}
	if character.GetID() != "" {
		return nil, errors.InvalidArgument("character id is assigned by storage")
	}

	stored := cloneCharacter(character)
	base := stored.Base()
	if err := s.resolveCharacterParents(ctx, base, "create character"); err != nil {
		return nil, err
	}

	base.ID = s.characterIDs.Generate()
	base.CreatedAt = s.timestamp()
	base.UpdatedAt = base.CreatedAt

	if _, err := s.characters.Create(ctx, characters.CreateInput{Character: stored}); err != nil {
		return nil, convertError(err, "create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", base.ID,
		"kind", stored.Kind(),
		"campaign_id", base.CampaignID)

	return cloneCharacter(stored), nil
}

func (s *service) GetCharacter(ctx context.Context, id string) (entities.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character id is required")
	}

	out, err := s.characters.Get(ctx, characters.GetInput{ID: id})
	if err != nil {
		return nil, convertError(err, "get character")
	}
	return out.Character, nil
}

func (s *service) UpdateCharacter(ctx context.Context, character entities.Character) (entities.Character, error) {
	if entities.IsNilCharacter(character) {
		return nil, errors.InvalidArgument("character is required")
	}
	if character.GetID() == "" {
		return nil, errors.InvalidArgument("character id is required")
	}

	existing, err := s.GetCharacter(ctx, character.GetID())
	if err != nil {
		return nil, err
	}
	if existing.Kind() != character.Kind() {
		return nil, errors.InvalidArgumentf("character %s is a %s, not a %s",
			character.GetID(), existing.Kind(), character.Kind())
	}

	stored := cloneCharacter(character)
	entities.KeepLanguages(stored, existing)
	base := stored.Base()
	if base.WorldID == "" && base.CampaignID == "" {
		base.WorldID = existing.Base().WorldID
		base.CampaignID = existing.Base().CampaignID
	}
	if err := s.resolveCharacterParents(ctx, base, "update character"); err != nil {
		return nil, err
	}

	base.CreatedAt = existing.Base().CreatedAt
	base.UpdatedAt = s.timestamp()

	if _, err := s.characters.Update(ctx, characters.UpdateInput{Character: stored}); err != nil {
		return nil, convertError(err, "update character")
	}

	return cloneCharacter(stored), nil
}

func (s *service) DeleteCharacter(ctx context.Context, id string) error {
	if _, err := s.GetCharacter(ctx, id); err != nil {
		return err
	}
	return s.deleteCharacter(ctx, id)
}

func (s *service) deleteCharacter(ctx context.Context, id string) error {
	if _, err := s.characters.Delete(ctx, characters.DeleteInput{ID: id}); err != nil && !errors.IsNotFound(err) {
		return convertError(err, "delete character")
	}
	return nil
}

func (s *service) ListCharacters(ctx context.Context, filter CharacterFilter) ([]entities.Character, error) {
	var (
		list []entities.Character
		err  error
	)

	if filter.CampaignID != "" && filter.WorldID != "" {
		campaign, err := s.GetCampaign(ctx, filter.CampaignID)
		switch {
		case errors.IsNotFound(err):
			return []entities.Character{}, nil
		case err != nil:
			return nil, err
		case campaign.WorldID != filter.WorldID:
			return nil, errors.InvalidArgumentf("campaign %s does not belong to world %s",
				filter.CampaignID, filter.WorldID)
		}
	}

	switch {
	case filter.CampaignID != "":
		var out *characters.ListByCampaignIDOutput
		out, err = s.characters.ListByCampaignID(ctx, characters.ListByCampaignIDInput{CampaignID: filter.CampaignID})
		if out != nil {
			list = out.Characters
		}
	case filter.WorldID != "":
		var out *characters.ListByWorldIDOutput
		out, err = s.characters.ListByWorldID(ctx, characters.ListByWorldIDInput{WorldID: filter.WorldID})
		if out != nil {
			list = out.Characters
		}
	default:
		var out *characters.ListOutput
		out, err = s.characters.List(ctx, characters.ListInput{})
		if out != nil {
			list = out.Characters
		}
	}
	if err != nil {
		return nil, convertError(err, "list characters")
	}

	if filter.Kind == "" {
		return list, nil
	}
	filtered := make([]entities.Character, 0, len(list))
	for _, c := range list {
		if c.Kind() == filter.Kind {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

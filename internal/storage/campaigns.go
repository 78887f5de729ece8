package storage

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/campaigns"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/characters"
)

// campaignLanguage resolves and checks the language a campaign is played in
func campaignLanguage(world *entities.World, requested string) (string, error) {
	if requested == "" {
		if langs := world.Languages(); len(langs) == 1 {
			return langs[0], nil
		}
		requested = entities.DefaultLanguage
	}

	lang, err := entities.NormalizeLanguage(requested)
	if err != nil {
		return "", err
	}
	if !languageAllowed(world, lang) {
		return "", errors.FailedPreconditionf("world %s has no lore in language %s", world.ID, lang).
			WithMeta("language", lang)
	}
	return lang, nil
}

func (s *service) CreateCampaign(ctx context.Context, campaign *entities.Campaign) (*entities.Campaign, error) {
	if campaign == nil {
		return nil, errors.InvalidArgument("campaign is required")
	}
	if campaign.ID != "" {
		return nil, errors.InvalidArgument("campaign id is assigned by storage")
	}

	world, err := s.parentWorld(ctx, campaign.WorldID, "create campaign")
	if err != nil {
		return nil, err
	}

	stored := campaign.Clone()
	if stored.Language, err = campaignLanguage(world, campaign.Language); err != nil {
		return nil, err
	}
	stored.ID = s.campaignIDs.Generate()
	stored.CreatedAt = s.timestamp()
	stored.UpdatedAt = stored.CreatedAt

	if _, err := s.campaigns.Create(ctx, campaigns.CreateInput{Campaign: stored}); err != nil {
		return nil, convertError(err, "create campaign")
	}

	slog.InfoContext(ctx, "campaign created",
		"campaign_id", stored.ID,
		"world_id", stored.WorldID,
		"language", stored.Language)

	return stored.Clone(), nil
}

func (s *service) GetCampaign(ctx context.Context, id string) (*entities.Campaign, error) {
	if id == "" {
		return nil, errors.InvalidArgument("campaign id is required")
	}

	out, err := s.campaigns.Get(ctx, campaigns.GetInput{ID: id})
	if err != nil {
		return nil, convertError(err, "get campaign")
	}
	return out.Campaign, nil
}

func (s *service) UpdateCampaign(ctx context.Context, campaign *entities.Campaign) (*entities.Campaign, error) {
	if campaign == nil {
		return nil, errors.InvalidArgument("campaign is required")
	}
	if campaign.ID == "" {
		return nil, errors.InvalidArgument("campaign id is required")
	}

	existing, err := s.GetCampaign(ctx, campaign.ID)
	if err != nil {
		return nil, err
	}

	stored := campaign.Clone()
	entities.KeepLanguages(stored, existing)
	if stored.WorldID == "" {
		stored.WorldID = existing.WorldID
	}
	if stored.Language == "" {
		stored.Language = existing.Language
	}

	world, err := s.parentWorld(ctx, stored.WorldID, "update campaign")
	if err != nil {
		return nil, err
	}
	if stored.Language, err = campaignLanguage(world, stored.Language); err != nil {
		return nil, err
	}

	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = s.timestamp()

	if _, err := s.campaigns.Update(ctx, campaigns.UpdateInput{Campaign: stored}); err != nil {
		return nil, convertError(err, "update campaign")
	}

	return stored.Clone(), nil
}

func (s *service) DeleteCampaign(ctx context.Context, id string) error {
	if _, err := s.GetCampaign(ctx, id); err != nil {
		return err
	}
	return s.deleteCampaignTree(ctx, id)
}

// deleteCampaignTree removes a campaign's characters before the campaign so an
// interrupted delete never leaves characters pointing at a missing campaign
func (s *service) deleteCampaignTree(ctx context.Context, id string) error {
	chars, err := s.characters.ListByCampaignID(ctx, characters.ListByCampaignIDInput{CampaignID: id})
	if err != nil {
		return convertError(err, "delete campaign")
	}
	for _, c := range chars.Characters {
		if err := s.deleteCharacter(ctx, c.GetID()); err != nil {
			return err
		}
	}

	if _, err := s.campaigns.Delete(ctx, campaigns.DeleteInput{ID: id}); err != nil && !errors.IsNotFound(err) {
		return convertError(err, "delete campaign")
	}

	slog.InfoContext(ctx, "campaign deleted",
		"campaign_id", id,
		"characters", len(chars.Characters))

	return nil
}

func (s *service) ListCampaigns(ctx context.Context, filter CampaignFilter) ([]*entities.Campaign, error) {
	if filter.WorldID == "" {
		out, err := s.campaigns.List(ctx, campaigns.ListInput{})
		if err != nil {
			return nil, convertError(err, "list campaigns")
		}
		return out.Campaigns, nil
	}

	out, err := s.campaigns.ListByWorldID(ctx, campaigns.ListByWorldIDInput{WorldID: filter.WorldID})
	if err != nil {
		return nil, convertError(err, "list campaigns")
	}
	return out.Campaigns, nil
}

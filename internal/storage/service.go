package storage

import (
	"context"
	stderrors "errors"
	"log/slog"
	"slices"
	"time"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/clock"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/pkg/idgen"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/campaigns"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/worlds"
)

// Config holds the dependencies for the storage facade
type Config struct {
	Worlds     worlds.Repository
	Campaigns  campaigns.Repository
	Characters characters.Repository

	// Id generators default to prefixed UUIDs
	WorldIDs     idgen.Generator
	CampaignIDs  idgen.Generator
	CharacterIDs idgen.Generator

	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Worlds == nil {
		vb.RequiredField("Worlds")
	}
	if c.Campaigns == nil {
		vb.RequiredField("Campaigns")
	}
	if c.Characters == nil {
		vb.RequiredField("Characters")
	}

	return vb.Build()
}

type service struct {
	worlds       worlds.Repository
	campaigns    campaigns.Repository
	characters   characters.Repository
	worldIDs     idgen.Generator
	campaignIDs  idgen.Generator
	characterIDs idgen.Generator
	clock        clock.Clock
}

// New creates the storage facade over the configured repositories
func New(cfg *Config) (Storage, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid storage config")
	}

	s := &service{
		worlds:       cfg.Worlds,
		campaigns:    cfg.Campaigns,
		characters:   cfg.Characters,
		worldIDs:     cfg.WorldIDs,
		campaignIDs:  cfg.CampaignIDs,
		characterIDs: cfg.CharacterIDs,
		clock:        cfg.Clock,
	}
	if s.worldIDs == nil {
		s.worldIDs = idgen.NewUUID(idgen.PrefixWorld)
	}
	if s.campaignIDs == nil {
		s.campaignIDs = idgen.NewUUID(idgen.PrefixCampaign)
	}
	if s.characterIDs == nil {
		s.characterIDs = idgen.NewUUID(idgen.PrefixCharacter)
	}
	if s.clock == nil {
		s.clock = clock.New()
	}

	return s, nil
}

// convertError keeps caller-facing codes and reports everything else as the
// backend being unavailable
func convertError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.WrapWithCode(err, errors.CodeCanceled, operation+" canceled")
	}

	switch errors.GetCode(err) {
	case errors.CodeNotFound,
		errors.CodeInvalidArgument,
		errors.CodeAlreadyExists,
		errors.CodeFailedPrecondition,
		errors.CodeCanceled:
		return err
	}
	if errors.IsStorageUnavailable(err) {
		return err
	}

	slog.Error("storage backend failure",
		"operation", operation,
		"error", err.Error())

	return errors.StorageUnavailable(err, operation)
}

func (s *service) timestamp() time.Time {
	return s.clock.Now().UTC()
}

// languageAllowed reports whether lang may be used under a world. A world
// without any localized text does not restrict its children yet.
func languageAllowed(world *entities.World, lang string) bool {
	langs := world.Languages()
	return len(langs) == 0 || slices.Contains(langs, lang)
}

// parentWorld loads the world a child record points at. A missing parent is a
// failed precondition for the child, not a not-found for the caller.
func (s *service) parentWorld(ctx context.Context, id, operation string) (*entities.World, error) {
	if id == "" {
		return nil, errors.InvalidArgument("world id is required")
	}
	out, err := s.worlds.Get(ctx, worlds.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPreconditionf("world %s does not exist", id)
		}
		return nil, convertError(err, operation)
	}
	return out.World, nil
}

func (s *service) parentCampaign(ctx context.Context, id, operation string) (*entities.Campaign, error) {
	out, err := s.campaigns.Get(ctx, campaigns.GetInput{ID: id})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.FailedPreconditionf("campaign %s does not exist", id)
		}
		return nil, convertError(err, operation)
	}
	return out.Campaign, nil
}

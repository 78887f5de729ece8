// Package storage is the single persistence entry point for the toolkit. It
// assigns ids and timestamps, checks parent records and language consistency,
// cascades deletes down the world → campaign → character hierarchy and
// reports backend failures as StorageUnavailable.
package storage

//go:generate mockgen -destination=mock/mock_storage.go -package=storagemock github.com/KirkDiggler/dnd-ai-toolkit/internal/storage Storage

import (
	"context"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
)

// Storage persists worlds, campaigns and characters
type Storage interface {
	// CreateWorld assigns an id and timestamps and stores the world.
	// The world must not already have an id.
	CreateWorld(ctx context.Context, world *entities.World) (*entities.World, error)
	GetWorld(ctx context.Context, id string) (*entities.World, error)
	UpdateWorld(ctx context.Context, world *entities.World) (*entities.World, error)
	// DeleteWorld removes the world with its campaigns and characters
	DeleteWorld(ctx context.Context, id string) error
	ListWorlds(ctx context.Context) ([]*entities.World, error)

	// CreateCampaign requires an existing world. The campaign language
	// defaults to the only world language and must be one of the world's
	// languages when the world has any.
	CreateCampaign(ctx context.Context, campaign *entities.Campaign) (*entities.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*entities.Campaign, error)
	UpdateCampaign(ctx context.Context, campaign *entities.Campaign) (*entities.Campaign, error)
	// DeleteCampaign removes the campaign and its characters
	DeleteCampaign(ctx context.Context, id string) error
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]*entities.Campaign, error)

	// CreateCharacter requires an existing world and, when set, a campaign
	// of that world. The character language defaults to the campaign's.
	CreateCharacter(ctx context.Context, character entities.Character) (entities.Character, error)
	GetCharacter(ctx context.Context, id string) (entities.Character, error)
	UpdateCharacter(ctx context.Context, character entities.Character) (entities.Character, error)
	DeleteCharacter(ctx context.Context, id string) error
	ListCharacters(ctx context.Context, filter CharacterFilter) ([]entities.Character, error)

	// Create stores any record and returns its assigned id
	Create(ctx context.Context, record entities.Record) (string, error)
	// Read loads a record of the given type
	Read(ctx context.Context, entityType entities.EntityType, id string) (entities.Record, error)
	// Update replaces a stored record and returns the stored copy
	Update(ctx context.Context, record entities.Record) (entities.Record, error)
	// Delete removes a record of the given type, cascading to its children
	Delete(ctx context.Context, entityType entities.EntityType, id string) error
	// List returns records of one type narrowed by the filter's parent ids
	List(ctx context.Context, filter ListFilter) ([]entities.Record, error)
}

// CampaignFilter narrows ListCampaigns. Empty means every campaign.
type CampaignFilter struct {
	WorldID string
}

// CharacterFilter narrows ListCharacters. When both parent ids are set the
// campaign must belong to the world. Kind is applied after the parent filter.
type CharacterFilter struct {
	WorldID    string
	CampaignID string
	Kind       entities.CharacterKind
}

// ListFilter narrows the generic List
type ListFilter struct {
	Type       entities.EntityType
	WorldID    string
	CampaignID string
}

// Package characters provides the interface for character persistence.
// Player characters and NPCs share one repository; values are stored as
// entities.CharacterEnvelope.
package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=charactersmock github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/characters Repository

import (
	"context"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for nil characters, empty IDs or empty world IDs
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.DataLoss if the stored envelope cannot be decoded
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character
	// Returns errors.InvalidArgument for nil characters or empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every character
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByWorldID returns every character that references a world,
	// whether or not it belongs to a campaign
	// Returns errors.InvalidArgument for empty world IDs
	// Returns errors.Internal for storage failures
	ListByWorldID(ctx context.Context, input ListByWorldIDInput) (*ListByWorldIDOutput, error)

	// ListByCampaignID returns the characters of one campaign
	// Returns errors.InvalidArgument for empty campaign IDs
	// Returns errors.Internal for storage failures
	ListByCampaignID(ctx context.Context, input ListByCampaignIDInput) (*ListByCampaignIDOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing all characters
type ListInput struct{}

// ListOutput defines the output for listing all characters
type ListOutput struct {
	Characters []entities.Character
}

// ListByWorldIDInput defines the input for listing characters by world
type ListByWorldIDInput struct {
	WorldID string
}

// ListByWorldIDOutput defines the output for listing characters by world
type ListByWorldIDOutput struct {
	Characters []entities.Character
}

// ListByCampaignIDInput defines the input for listing characters by campaign
type ListByCampaignIDInput struct {
	CampaignID string
}

// ListByCampaignIDOutput defines the output for listing characters by campaign
type ListByCampaignIDOutput struct {
	Characters []entities.Character
}

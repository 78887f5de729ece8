// Package campaigns provides the interface for campaign persistence
package campaigns

//go:generate mockgen -destination=mock/mock_repository.go -package=campaignsmock github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/campaigns Repository

import (
	"context"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
)

// Repository defines the interface for campaign persistence.
// Parent existence is checked by the storage facade, not here.
type Repository interface {
	// Create stores a new campaign
	// Returns errors.InvalidArgument for nil campaigns, empty IDs or empty world IDs
	// Returns errors.AlreadyExists if a campaign with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a campaign by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the campaign doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing campaign, moving it between world indexes
	// when its world changes
	// Returns errors.InvalidArgument for nil campaigns or empty IDs
	// Returns errors.NotFound if the campaign doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a campaign by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the campaign doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every campaign
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByWorldID returns the campaigns of one world
	// Returns errors.InvalidArgument for empty world IDs
	// Returns errors.Internal for storage failures
	ListByWorldID(ctx context.Context, input ListByWorldIDInput) (*ListByWorldIDOutput, error)
}

// CreateInput defines the input for creating a campaign
type CreateInput struct {
	Campaign *entities.Campaign
}

// CreateOutput defines the output for creating a campaign
type CreateOutput struct {
	Campaign *entities.Campaign
}

// GetInput defines the input for getting a campaign
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a campaign
type GetOutput struct {
	Campaign *entities.Campaign
}

// UpdateInput defines the input for updating a campaign
type UpdateInput struct {
	Campaign *entities.Campaign
}

// UpdateOutput defines the output for updating a campaign
type UpdateOutput struct {
	Campaign *entities.Campaign
}

// DeleteInput defines the input for deleting a campaign
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a campaign
type DeleteOutput struct{}

// ListInput defines the input for listing all campaigns
type ListInput struct{}

// ListOutput defines the output for listing all campaigns
type ListOutput struct {
	Campaigns []*entities.Campaign
}

// ListByWorldIDInput defines the input for listing campaigns by world
type ListByWorldIDInput struct {
	WorldID string
}

// ListByWorldIDOutput defines the output for listing campaigns by world
type ListByWorldIDOutput struct {
	Campaigns []*entities.Campaign
}

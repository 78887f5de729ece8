// Package worlds provides the interface for world persistence
package worlds

//go:generate mockgen -destination=mock/mock_repository.go -package=worldsmock github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/worlds Repository

import (
	"context"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/entities"
)

// Repository defines the interface for world persistence
type Repository interface {
	// Create stores a new world
	// Returns errors.InvalidArgument for nil worlds or empty IDs
	// Returns errors.AlreadyExists if a world with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a world by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the world doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing world
	// Returns errors.InvalidArgument for nil worlds or empty IDs
	// Returns errors.NotFound if the world doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a world by ID. Dependent records are not touched here.
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the world doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every world
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a world
type CreateInput struct {
	World *entities.World
}

// CreateOutput defines the output for creating a world
type CreateOutput struct {
	World *entities.World
}

// GetInput defines the input for getting a world
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a world
type GetOutput struct {
	World *entities.World
}

// UpdateInput defines the input for updating a world
type UpdateInput struct {
	World *entities.World
}

// UpdateOutput defines the output for updating a world
type UpdateOutput struct {
	World *entities.World
}

// DeleteInput defines the input for deleting a world
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a world
type DeleteOutput struct{}

// ListInput defines the input for listing worlds
type ListInput struct{}

// ListOutput defines the output for listing worlds
type ListOutput struct {
	Worlds []*entities.World
}

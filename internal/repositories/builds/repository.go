// Package builds provides persistence for character builds
package builds

//go:generate mockgen -destination=mock/mock_repository.go -package=buildsmock github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/builds Repository

import (
	"context"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
)

// Repository defines the interface for build persistence
type Repository interface {
	// Create stores a new build and stamps its timestamps
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a build with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a build by ID
	// Returns errors.NotFound if the build doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing build, keeping its creation time
	// Returns errors.NotFound if the build doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a build
	// Returns errors.NotFound if the build doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns builds, most recently updated first
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a build
type CreateInput struct {
	Build *entities.Build
}

// CreateOutput defines the output for creating a build
type CreateOutput struct {
	Build *entities.Build
}

// GetInput defines the input for getting a build
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a build
type GetOutput struct {
	Build *entities.Build
}

// UpdateInput defines the input for updating a build
type UpdateInput struct {
	Build *entities.Build
}

// UpdateOutput defines the output for updating a build
type UpdateOutput struct {
	Build *entities.Build
}

// DeleteInput defines the input for deleting a build
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a build
type DeleteOutput struct{}

// ListInput defines the input for listing builds
type ListInput struct {
	// Tag keeps only builds carrying this tag when set
	Tag string
}

// ListOutput defines the output for listing builds
type ListOutput struct {
	Builds []*entities.Build
}

// Package scenarios provides persistence for combat scenarios
package scenarios

//go:generate mockgen -destination=mock/mock_repository.go -package=scenariosmock github.com/Pallarran/Ultimate-D-D-Tools/internal/repositories/scenarios Repository

import (
	"context"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
)

// Repository defines the interface for scenario persistence
type Repository interface {
	// Save creates or replaces a scenario. A replaced scenario keeps its
	// creation time.
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a scenario by ID
	// Returns errors.NotFound if the scenario doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a scenario
	// Returns errors.NotFound if the scenario doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns all scenarios ordered by name
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for saving a scenario
type SaveInput struct {
	Scenario *entities.Scenario
}

// SaveOutput defines the output for saving a scenario
type SaveOutput struct {
	Scenario *entities.Scenario
	Created  bool
}

// GetInput defines the input for getting a scenario
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a scenario
type GetOutput struct {
	Scenario *entities.Scenario
}

// DeleteInput defines the input for deleting a scenario
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a scenario
type DeleteOutput struct{}

// ListInput defines the input for listing scenarios
type ListInput struct{}

// ListOutput defines the output for listing scenarios
type ListOutput struct {
	Scenarios []*entities.Scenario
}

package scenarios

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/Pallarran/Ultimate-D-D-Tools/internal/entities"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/errors"
	"github.com/Pallarran/Ultimate-D-D-Tools/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]entities.Scenario
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string]entities.Scenario),
		clock: c,
	}
}

// Save creates or replaces a scenario
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Scenario == nil {
		return nil, errors.InvalidArgument(errScenarioNil)
	}
	if input.Scenario.ID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	scenario := *input.Scenario
	now := r.clock.Now().Unix()

	existing, exists := r.store[scenario.ID]
	if exists {
		scenario.CreatedAt = existing.CreatedAt
	} else {
		scenario.CreatedAt = now
	}
	scenario.UpdatedAt = now
	r.store[scenario.ID] = scenario

	out := scenario
	return &SaveOutput{Scenario: &out, Created: !exists}, nil
}

// Get retrieves a scenario by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	scenario, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("scenario with ID %s not found", input.ID)
	}

	return &GetOutput{Scenario: &scenario}, nil
}

// Delete removes a scenario
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errScenarioIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("scenario with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns all scenarios ordered by name
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	scenarios := make([]*entities.Scenario, 0, len(r.store))
	for _, s := range r.store {
		scenarios = append(scenarios, &s)
	}

	slices.SortFunc(scenarios, func(a, b *entities.Scenario) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return &ListOutput{Scenarios: scenarios}, nil
}

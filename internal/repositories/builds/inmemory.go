package builds

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
	store map[string]*entities.Build
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository. A nil clock uses the
// system clock.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string]*entities.Build),
		clock: c,
	}
}

// Create stores a build
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Build == nil {
		return nil, errors.InvalidArgument(errBuildNil)
	}
	if input.Build.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Build.ID]; exists {
		return nil, errors.AlreadyExistsf("build with ID %s already exists", input.Build.ID)
	}

	build := input.Build.Clone()
	now := r.clock.Now().Unix()
	if build.CreatedAt == 0 {
		build.CreatedAt = now
	}
	build.UpdatedAt = now
	r.store[build.ID] = build

	return &CreateOutput{Build: build.Clone()}, nil
}

// Get retrieves a build by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	build, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("build with ID %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{Build: build.Clone()}, nil
}

// Update replaces an existing build
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Build == nil {
		return nil, errors.InvalidArgument(errBuildNil)
	}
	if input.Build.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.store[input.Build.ID]
	if !exists {
		return nil, errors.NotFoundf("build with ID %s not found", input.Build.ID)
	}

	build := input.Build.Clone()
	build.CreatedAt = existing.CreatedAt
	build.UpdatedAt = r.clock.Now().Unix()
	r.store[build.ID] = build

	return &UpdateOutput{Build: build.Clone()}, nil
}

// Delete removes a build
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBuildIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("build with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns builds, most recently updated first
func (r *InMemoryRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	builds := make([]*entities.Build, 0, len(r.store))
	for _, b := range r.store {
		if input.Tag != "" && !hasTag(b, input.Tag) {
			continue
		}
		builds = append(builds, b.Clone())
	}

	slices.SortFunc(builds, func(a, b *entities.Build) int {
		if a.UpdatedAt != b.UpdatedAt {
			if a.UpdatedAt > b.UpdatedAt {
				return -1
			}
			return 1
		}
		return strings.Compare(a.ID, b.ID)
	})

	return &ListOutput{Builds: builds}, nil
}

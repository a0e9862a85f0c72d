package maps

import (
	"context"
	"sync"

	"github.com/KirkDiggler/tactics-api/internal/errors"
	"github.com/KirkDiggler/tactics-api/internal/pkg/clock"
	"github.com/KirkDiggler/tactics-api/internal/pkg/idgen"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	clock clock.Clock
	idGen idgen.Generator

	mu    sync.RWMutex
	store map[string]*Snapshot
}

// InMemoryConfig holds the dependencies for the in-memory repository
type InMemoryConfig struct {
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *InMemoryConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// NewInMemory creates a new in-memory repository
func NewInMemory(cfg *InMemoryConfig) (*InMemoryRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &InMemoryRepository{
		clock: cfg.Clock,
		idGen: cfg.IDGenerator,
		store: make(map[string]*Snapshot),
	}, nil
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Save stores a snapshot, assigning an ID and timestamps
func (r *InMemoryRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil || input.Snapshot == nil {
		return nil, errors.InvalidArgument("snapshot is required")
	}

	now := r.clock.Now()
	stored := *input.Snapshot
	if stored.ID == "" {
		stored.ID = r.idGen.Generate()
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[stored.ID] = &stored

	return &SaveOutput{Snapshot: &stored}, nil
}

// Get retrieves a snapshot by ID
func (r *InMemoryRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.SnapshotID == "" {
		return nil, errors.InvalidArgument("snapshot ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.store[input.SnapshotID]
	if !exists {
		return nil, errors.NotFoundf("map snapshot %q not found", input.SnapshotID)
	}

	copied := *snapshot
	return &GetOutput{Snapshot: &copied}, nil
}

// Delete removes a snapshot by ID
func (r *InMemoryRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SnapshotID == "" {
		return nil, errors.InvalidArgument("snapshot ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.SnapshotID]; !exists {
		return nil, errors.NotFoundf("map snapshot %q not found", input.SnapshotID)
	}
	delete(r.store, input.SnapshotID)

	return &DeleteOutput{Success: true}, nil
}

// List returns the IDs of all stored snapshots
func (r *InMemoryRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	return &ListOutput{SnapshotIDs: ids}, nil
}

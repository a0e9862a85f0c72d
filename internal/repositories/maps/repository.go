// Package maps provides storage for authored game map snapshots
package maps

//go:generate mockgen -destination=mock/mock_repository.go -package=mapsmock github.com/KirkDiggler/tactics-api/internal/repositories/maps Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/tactics-api/internal/entities"
)

// Repository defines the storage interface for map snapshots
type Repository interface {
	// Save stores a snapshot, assigning an ID when the snapshot has none
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a snapshot by ID
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete removes a snapshot by ID
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns the IDs of all stored snapshots
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// Snapshot is the persistent form of a GameMap: terrain rows plus placed
// objects in insertion order. Restoring a snapshot replays object placement,
// so instance ids are reassigned from 0 on the restored map.
type Snapshot struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name,omitempty"`
	Width     int                    `json:"width"`
	Height    int                    `json:"height"`
	Terrain   [][]entities.Terrain   `json:"terrain"`
	Objects   []*entities.MapObject  `json:"objects"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// SaveInput defines the request for saving a snapshot
type SaveInput struct {
	Snapshot *Snapshot
}

// SaveOutput defines the response for saving a snapshot
type SaveOutput struct {
	Snapshot *Snapshot
}

// GetInput defines the request for retrieving a snapshot
type GetInput struct {
	SnapshotID string
}

// GetOutput defines the response for retrieving a snapshot
type GetOutput struct {
	Snapshot *Snapshot
}

// DeleteInput defines the request for deleting a snapshot
type DeleteInput struct {
	SnapshotID string
}

// DeleteOutput defines the response for deleting a snapshot
type DeleteOutput struct {
	Success bool
}

// ListInput defines the request for listing snapshots
type ListInput struct{}

// ListOutput defines the response for listing snapshots
type ListOutput struct {
	SnapshotIDs []string
}

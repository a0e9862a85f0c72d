package maps

import (
	"context"
	"encoding/json"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/tactics-api/internal/errors"
	"github.com/KirkDiggler/tactics-api/internal/pkg/clock"
	"github.com/KirkDiggler/tactics-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/tactics-api/internal/redis"
)

// Key pattern: map_snapshot:{id}
const snapshotKeyPrefix = "map_snapshot:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// NewRedisRepository creates a new Redis repository for map snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		idGen:  cfg.IDGenerator,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores a snapshot as JSON with no expiry. Snapshots without an ID
// receive one.
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
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

	snapshotJSON, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal snapshot")
	}

	if err := r.client.Set(ctx, r.buildKey(stored.ID), snapshotJSON, 0).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to store snapshot in Redis")
	}

	return &SaveOutput{Snapshot: &stored}, nil
}

// Get retrieves a snapshot by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.SnapshotID == "" {
		return nil, errors.InvalidArgument("snapshot ID is required")
	}

	snapshotJSON, err := r.client.Get(ctx, r.buildKey(input.SnapshotID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("map snapshot %q not found", input.SnapshotID)
		}
		return nil, errors.Wrap(err, "failed to get snapshot from Redis")
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal snapshot")
	}

	return &GetOutput{Snapshot: &snapshot}, nil
}

// Delete removes a snapshot by ID
func (r *redisRepository) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SnapshotID == "" {
		return nil, errors.InvalidArgument("snapshot ID is required")
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.SnapshotID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete snapshot from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("map snapshot %q not found", input.SnapshotID)
	}

	return &DeleteOutput{Success: true}, nil
}

// List returns the IDs of all stored snapshots
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	var ids []string
	iter := r.client.Scan(ctx, 0, snapshotKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), snapshotKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan snapshot keys")
	}

	return &ListOutput{SnapshotIDs: ids}, nil
}

func (r *redisRepository) buildKey(id string) string {
	return snapshotKeyPrefix + id
}

// Package movement implements the pathfinder facade: it selects between the
// built-in search engine and an optionally injected external path provider,
// falling back to the built-in engine whenever a provider result is
// unusable.
package movement

//go:generate mockgen -destination=mock/mock_service.go -package=movementmock github.com/KirkDiggler/tactics-api/internal/orchestrators/movement Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/tactics-api/internal/engine"
	"github.com/KirkDiggler/tactics-api/internal/entities"
	"github.com/KirkDiggler/tactics-api/internal/errors"
)

// Service defines the interface for movement queries
type Service interface {
	// FindPath computes the cheapest path between two positions
	FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error)

	// GetReachablePositions computes the set of positions reachable within
	// a movement point budget
	GetReachablePositions(ctx context.Context, input *GetReachablePositionsInput) (*GetReachablePositionsOutput, error)

	// CalculatePathCost sums the step costs along a path
	CalculatePathCost(ctx context.Context, input *CalculatePathCostInput) (*CalculatePathCostOutput, error)

	// CanReachPosition checks whether a mover with the given movement
	// points can reach a position this turn
	CanReachPosition(ctx context.Context, input *CanReachPositionInput) (*CanReachPositionOutput, error)
}

// Config holds the dependencies for the movement orchestrator
type Config struct {
	// Provider is an optional external path provider tried before the
	// built-in engine. Leave nil to always use the built-in engine.
	Provider engine.Engine
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	// The provider is optional; the built-in engine is constructed
	// internally.
	return nil
}

type orchestrator struct {
	provider engine.Engine
	builtin  engine.Engine
}

// NewOrchestrator creates a new movement orchestrator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	builtin, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create built-in engine")
	}

	return &orchestrator{
		provider: cfg.Provider,
		builtin:  builtin,
	}, nil
}

// FindPath computes the cheapest path between two positions. A provider
// result is used verbatim when it is a non-empty path; otherwise the
// built-in engine answers.
func (o *orchestrator) FindPath(ctx context.Context, input *FindPathInput) (*FindPathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	path := o.findPath(input)
	return &FindPathOutput{
		Path: path,
		Cost: o.builtin.CalculatePathCost(input.Map, path),
	}, nil
}

// GetReachablePositions computes the positions reachable within the given
// movement point budget
func (o *orchestrator) GetReachablePositions(ctx context.Context, input *GetReachablePositionsInput) (*GetReachablePositionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if o.provider != nil {
		if positions := o.provider.GetReachablePositions(input.Map, input.Start, input.MovementPoints); positions != nil {
			return &GetReachablePositionsOutput{Positions: positions}, nil
		}
		slog.Debug("external provider returned no reachable set, using built-in engine",
			"start_x", input.Start.X,
			"start_y", input.Start.Y,
			"movement_points", input.MovementPoints,
		)
	}

	return &GetReachablePositionsOutput{
		Positions: o.builtin.GetReachablePositions(input.Map, input.Start, input.MovementPoints),
	}, nil
}

// CalculatePathCost sums the step costs along a path. A negative provider
// cost means the provider could not price the path and the built-in engine
// answers instead.
func (o *orchestrator) CalculatePathCost(ctx context.Context, input *CalculatePathCostInput) (*CalculatePathCostOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if o.provider != nil {
		if cost := o.provider.CalculatePathCost(input.Map, input.Path); cost >= 0 {
			return &CalculatePathCostOutput{Cost: cost}, nil
		}
		slog.Debug("external provider returned negative path cost, using built-in engine",
			"path_len", len(input.Path),
		)
	}

	return &CalculatePathCostOutput{
		Cost: o.builtin.CalculatePathCost(input.Map, input.Path),
	}, nil
}

// CanReachPosition reports whether a path exists whose cost fits within the
// mover's movement points
func (o *orchestrator) CanReachPosition(ctx context.Context, input *CanReachPositionInput) (*CanReachPositionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	path := o.findPath(&FindPathInput{Map: input.Map, Start: input.Start, End: input.End})
	if len(path) == 0 {
		return &CanReachPositionOutput{}, nil
	}

	cost := o.builtin.CalculatePathCost(input.Map, path)
	return &CanReachPositionOutput{
		CanReach: cost <= input.MovementPoints,
		Path:     path,
		Cost:     cost,
	}, nil
}

// findPath applies the provider-then-builtin selection shared by FindPath
// and CanReachPosition
func (o *orchestrator) findPath(input *FindPathInput) []entities.Position {
	if o.provider != nil {
		if path := o.provider.FindPath(input.Map, input.Start, input.End); len(path) > 0 {
			return path
		}
		slog.Debug("external provider returned no path, using built-in engine",
			"start_x", input.Start.X,
			"start_y", input.Start.Y,
			"end_x", input.End.X,
			"end_y", input.End.Y,
		)
	}
	return o.builtin.FindPath(input.Map, input.Start, input.End)
}

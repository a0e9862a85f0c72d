// Package engine provides shortest-path and reachability search over a
// GameMap.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/tactics-api/internal/engine Engine

import (
	"github.com/KirkDiggler/tactics-api/internal/entities"
)

// Engine computes paths and reachable sets over a map snapshot. All methods
// are pure functions of their arguments: search state is allocated per call
// and degenerate inputs (nil map, out-of-bounds endpoints, non-positive
// budget) yield nil results, never errors. A nil path means "no path", a
// normal outcome.
//
// External pathfinding providers implement this same interface and are
// injected into the movement orchestrator, which falls back to the built-in
// engine when a provider result is unusable.
type Engine interface {
	// FindPath returns the cheapest sequence of positions from start to end
	// inclusive, or nil when no path exists.
	FindPath(m *entities.GameMap, start, end entities.Position) []entities.Position

	// GetReachablePositions returns every position reachable from start
	// within the given movement point budget. The result never includes
	// start itself.
	GetReachablePositions(m *entities.GameMap, start entities.Position, movementPoints int) []entities.Position

	// CalculatePathCost sums the per-step movement cost along path. Paths
	// with fewer than two positions cost 0.
	CalculatePathCost(m *entities.GameMap, path []entities.Position) int
}

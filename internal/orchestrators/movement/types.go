package movement

import "github.com/KirkDiggler/tactics-api/internal/entities"

// FindPathInput defines the request for a shortest-path query
type FindPathInput struct {
	Map   *entities.GameMap
	Start entities.Position
	End   entities.Position
}

// FindPathOutput defines the response for a shortest-path query. A nil Path
// means no path exists; Cost is the summed step cost of the returned path.
type FindPathOutput struct {
	Path []entities.Position
	Cost int
}

// GetReachablePositionsInput defines the request for a reachable-set query
type GetReachablePositionsInput struct {
	Map            *entities.GameMap
	Start          entities.Position
	MovementPoints int
}

// GetReachablePositionsOutput defines the response for a reachable-set
// query. Positions never contains the start position.
type GetReachablePositionsOutput struct {
	Positions []entities.Position
}

// CalculatePathCostInput defines the request for a path-cost query
type CalculatePathCostInput struct {
	Map  *entities.GameMap
	Path []entities.Position
}

// CalculatePathCostOutput defines the response for a path-cost query
type CalculatePathCostOutput struct {
	Cost int
}

// CanReachPositionInput defines the request for a reachability probe
type CanReachPositionInput struct {
	Map            *entities.GameMap
	Start          entities.Position
	End            entities.Position
	MovementPoints int
}

// CanReachPositionOutput defines the response for a reachability probe: a
// path exists and its cost fits within the mover's movement points.
type CanReachPositionOutput struct {
	CanReach bool
	Path     []entities.Position
	Cost     int
}

package engine

import (
	"github.com/KirkDiggler/tactics-api/internal/entities"
	"github.com/KirkDiggler/tactics-api/internal/pkg/pathqueue"
)

// searchNode is one explored cell. Cost fields are mutated in place on
// relaxation, followed by a queue reposition.
type searchNode struct {
	pos    entities.Position
	g      int // accumulated cost from start
	h      int // heuristic estimate to goal, 0 for budgeted expansion
	parent *searchNode
}

func (n *searchNode) f() int {
	return n.g + n.h
}

// lessNode orders the open set by f-cost, breaking ties toward the node
// closer to the goal so path selection is deterministic.
func lessNode(a, b *searchNode) bool {
	if a.f() != b.f() {
		return a.f() < b.f()
	}
	return a.h < b.h
}

type builtIn struct{}

// Config holds the dependencies for the built-in engine
type Config struct{}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	return nil
}

// New creates the built-in A*/Dijkstra engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &builtIn{}, nil
}

// FindPath runs A* with a Manhattan-distance heuristic. The heuristic is
// admissible for this cost model: the cheapest terrain costs 100 per step
// and diagonal steps are never cheaper than axis-aligned ones, so Manhattan
// distance in tiles never overestimates remaining cost.
func (e *builtIn) FindPath(m *entities.GameMap, start, end entities.Position) []entities.Position {
	if m == nil || !m.IsInBounds(start) || !m.IsInBounds(end) {
		return nil
	}
	if start == end {
		return []entities.Position{start}
	}

	endTile, err := m.GetTile(end)
	if err != nil || !endTile.IsPassable() {
		return nil
	}

	open := pathqueue.New(lessNode)
	nodes := make(map[entities.Position]*searchNode)
	closed := make(map[entities.Position]bool)

	startNode := &searchNode{pos: start, h: start.ManhattanDistanceTo(end)}
	nodes[start] = startNode
	open.Enqueue(startNode)

	for open.Len() > 0 {
		current, _ := open.Dequeue()
		if current.pos == end {
			return reconstructPath(current)
		}
		closed[current.pos] = true

		for _, neighborPos := range m.AdjacentPositions(current.pos) {
			if closed[neighborPos] {
				continue
			}
			if !m.CanMoveBetween(current.pos, neighborPos) {
				continue
			}

			tentativeG := current.g + m.GetMovementCost(current.pos, neighborPos)
			neighbor, seen := nodes[neighborPos]
			if !seen {
				neighbor = &searchNode{
					pos:    neighborPos,
					g:      tentativeG,
					h:      neighborPos.ManhattanDistanceTo(end),
					parent: current,
				}
				nodes[neighborPos] = neighbor
				open.Enqueue(neighbor)
				continue
			}
			if tentativeG < neighbor.g {
				neighbor.g = tentativeG
				neighbor.parent = current
				open.UpdatePriority(neighbor)
			}
		}
	}

	return nil
}

// GetReachablePositions runs a budgeted Dijkstra expansion (h = 0): a
// neighbor is explored only while its cumulative cost stays within
// movementPoints, and every dequeued position except start is reachable.
func (e *builtIn) GetReachablePositions(m *entities.GameMap, start entities.Position, movementPoints int) []entities.Position {
	if m == nil || !m.IsInBounds(start) || movementPoints <= 0 {
		return nil
	}

	open := pathqueue.New(lessNode)
	nodes := make(map[entities.Position]*searchNode)
	closed := make(map[entities.Position]bool)

	startNode := &searchNode{pos: start}
	nodes[start] = startNode
	open.Enqueue(startNode)

	var reachable []entities.Position
	for open.Len() > 0 {
		current, _ := open.Dequeue()
		closed[current.pos] = true
		if current.pos != start {
			reachable = append(reachable, current.pos)
		}

		for _, neighborPos := range m.AdjacentPositions(current.pos) {
			if closed[neighborPos] {
				continue
			}
			if !m.CanMoveBetween(current.pos, neighborPos) {
				continue
			}

			tentativeG := current.g + m.GetMovementCost(current.pos, neighborPos)
			if tentativeG > movementPoints {
				continue
			}
			neighbor, seen := nodes[neighborPos]
			if !seen {
				neighbor = &searchNode{pos: neighborPos, g: tentativeG, parent: current}
				nodes[neighborPos] = neighbor
				open.Enqueue(neighbor)
				continue
			}
			if tentativeG < neighbor.g {
				neighbor.g = tentativeG
				neighbor.parent = current
				open.UpdatePriority(neighbor)
			}
		}
	}

	return reachable
}

// CalculatePathCost sums GetMovementCost over consecutive path pairs. An
// illegal step contributes the ImpassableCost sentinel to the sum.
func (e *builtIn) CalculatePathCost(m *entities.GameMap, path []entities.Position) int {
	if m == nil || len(path) < 2 {
		return 0
	}

	total := 0
	for i := 1; i < len(path); i++ {
		total += m.GetMovementCost(path[i-1], path[i])
	}
	return total
}

func reconstructPath(end *searchNode) []entities.Position {
	var path []entities.Position
	for node := end; node != nil; node = node.parent {
		path = append(path, node.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Package entities provides the core spatial data model for tactics-api:
// positions, tiles, map objects, and the game map that owns them.
package entities

// Position is an immutable 2D grid coordinate. It is a value type: compare
// with ==, use as a map key.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPosition creates a position at the given coordinates
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// ManhattanDistanceTo returns |dx| + |dy| to the other position
func (p Position) ManhattanDistanceTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// ChebyshevDistanceTo returns max(|dx|, |dy|) to the other position.
// This is the number of king-moves between the two cells.
func (p Position) ChebyshevDistanceTo(other Position) int {
	dx := abs(p.X - other.X)
	dy := abs(p.Y - other.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// IsAdjacentTo reports whether other is one of this position's 8 neighbors.
// A position is never adjacent to itself.
func (p Position) IsAdjacentTo(other Position) bool {
	return p != other && p.ChebyshevDistanceTo(other) == 1
}

// AdjacentPositions returns the 8 neighboring positions in a fixed scan
// order. No bounds are applied; use GameMap.AdjacentPositions for in-bounds
// neighbors only.
func (p Position) AdjacentPositions() []Position {
	neighbors := make([]Position, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			neighbors = append(neighbors, Position{X: p.X + dx, Y: p.Y + dy})
		}
	}
	return neighbors
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

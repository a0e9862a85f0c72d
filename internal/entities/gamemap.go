package entities

import (
	"github.com/KirkDiggler/tactics-api/internal/errors"
)

// DefaultTerrain is the terrain every tile starts with on a fresh map
const DefaultTerrain = TerrainGrass

// GameMap is the authoritative grid for one game session. It owns every tile
// and every placed object, assigns object instance ids, and answers the
// adjacency, cost, and legality queries the pathfinding engine drives.
//
// GameMap is not safe for concurrent mutation: confine all mutation and
// queries to a single goroutine, or serialize access externally.
type GameMap struct {
	width  int
	height int
	tiles  [][]*MapTile

	objects map[int]*MapObject
	// objectIDs preserves insertion order for the object queries. Instance
	// ids are never reused, even after removal.
	objectIDs []int
	nextID    int
}

// NewGameMap creates a width×height map with every tile set to
// DefaultTerrain. Both dimensions must be positive.
func NewGameMap(width, height int) (*GameMap, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.InvalidArgumentf("map dimensions must be positive, got %dx%d", width, height)
	}

	tiles := make([][]*MapTile, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]*MapTile, width)
		for x := 0; x < width; x++ {
			tiles[y][x] = newMapTile(DefaultTerrain)
		}
	}

	return &GameMap{
		width:   width,
		height:  height,
		tiles:   tiles,
		objects: make(map[int]*MapObject),
	}, nil
}

// Width returns the map width in tiles
func (m *GameMap) Width() int {
	return m.width
}

// Height returns the map height in tiles
func (m *GameMap) Height() int {
	return m.height
}

// IsInBounds reports whether pos lies within the map grid
func (m *GameMap) IsInBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < m.width && pos.Y >= 0 && pos.Y < m.height
}

// GetTile returns the tile at pos, or an OutOfRange error when pos is
// outside the grid.
func (m *GameMap) GetTile(pos Position) (*MapTile, error) {
	if !m.IsInBounds(pos) {
		return nil, errors.OutOfRangef("position (%d,%d) is outside %dx%d map", pos.X, pos.Y, m.width, m.height)
	}
	return m.tiles[pos.Y][pos.X], nil
}

// SetTerrain reassigns the terrain at pos, recomputing that tile's derived
// passability and cost. Coastal flags are not touched: callers batching
// terrain edits near water must call CalculateCoastalTiles afterwards.
func (m *GameMap) SetTerrain(pos Position, terrain Terrain) error {
	tile, err := m.GetTile(pos)
	if err != nil {
		return err
	}
	tile.setTerrain(terrain)
	return nil
}

// AddObject places obj on the map, assigning it the next instance id and
// attaching the id to every tile the object blocks or is visitable from.
// Visitable ids are appended, so the most recently added object is the top
// of each tile's visiting stack. Returns an OutOfRange error when the
// object's anchor is outside the grid.
func (m *GameMap) AddObject(obj *MapObject) (int, error) {
	if obj == nil {
		return 0, errors.InvalidArgument("object is required")
	}
	if !m.IsInBounds(obj.Position) {
		return 0, errors.OutOfRangef("object anchor (%d,%d) is outside %dx%d map",
			obj.Position.X, obj.Position.Y, m.width, m.height)
	}

	obj.ID = m.nextID
	m.nextID++
	m.objects[obj.ID] = obj
	m.objectIDs = append(m.objectIDs, obj.ID)

	for _, pos := range obj.BlockedPositions() {
		if tile, err := m.GetTile(pos); err == nil {
			tile.attachBlocking(obj.ID)
		}
	}
	for _, pos := range obj.VisitablePositions() {
		if tile, err := m.GetTile(pos); err == nil {
			tile.attachVisitable(obj.ID)
		}
	}

	return obj.ID, nil
}

// RemoveObject detaches the object with the given id from every tile it was
// attached to and drops it from the map. Returns false when the id is
// unknown. Removed ids are never reused.
func (m *GameMap) RemoveObject(id int) bool {
	obj, ok := m.objects[id]
	if !ok {
		return false
	}

	for _, pos := range obj.BlockedPositions() {
		if tile, err := m.GetTile(pos); err == nil {
			tile.detachObject(id)
		}
	}
	for _, pos := range obj.VisitablePositions() {
		if tile, err := m.GetTile(pos); err == nil {
			tile.detachObject(id)
		}
	}

	delete(m.objects, id)
	for i, objectID := range m.objectIDs {
		if objectID == id {
			m.objectIDs = append(m.objectIDs[:i], m.objectIDs[i+1:]...)
			break
		}
	}
	return true
}

// GetObject returns the object with the given instance id
func (m *GameMap) GetObject(id int) (*MapObject, bool) {
	obj, ok := m.objects[id]
	return obj, ok
}

// GetObjectsAt returns every object anchored at pos, in insertion order
func (m *GameMap) GetObjectsAt(pos Position) []*MapObject {
	var result []*MapObject
	for _, id := range m.objectIDs {
		if obj := m.objects[id]; obj.Position == pos {
			result = append(result, obj)
		}
	}
	return result
}

// GetObjectsByType returns every object of the given variant, in insertion
// order
func (m *GameMap) GetObjectsByType(objectType ObjectType) []*MapObject {
	var result []*MapObject
	for _, id := range m.objectIDs {
		if obj := m.objects[id]; obj.Type == objectType {
			result = append(result, obj)
		}
	}
	return result
}

// Objects returns every placed object in insertion order
func (m *GameMap) Objects() []*MapObject {
	result := make([]*MapObject, 0, len(m.objectIDs))
	for _, id := range m.objectIDs {
		result = append(result, m.objects[id])
	}
	return result
}

// ObjectCount returns the number of objects currently on the map
func (m *GameMap) ObjectCount() int {
	return len(m.objects)
}

// CanMoveBetween reports whether a single step from a to b is legal: both in
// bounds, 8-adjacent, and b's tile passable and unblocked. Diagonal steps
// between two orthogonally blocked corners are allowed; corner-cutting is
// not checked.
func (m *GameMap) CanMoveBetween(a, b Position) bool {
	if !m.IsInBounds(a) || !m.IsInBounds(b) {
		return false
	}
	if !a.IsAdjacentTo(b) {
		return false
	}
	return m.tiles[b.Y][b.X].IsClear()
}

// GetMovementCost returns the cost of stepping from a to b: the destination
// tile's movement cost when the step is legal, ImpassableCost otherwise.
func (m *GameMap) GetMovementCost(a, b Position) int {
	if !m.CanMoveBetween(a, b) {
		return ImpassableCost
	}
	return m.tiles[b.Y][b.X].MovementCost()
}

// AdjacentPositions returns the in-bounds neighbors of pos: up to 8, fewer
// at map edges and corners.
func (m *GameMap) AdjacentPositions(pos Position) []Position {
	neighbors := make([]Position, 0, 8)
	for _, n := range pos.AdjacentPositions() {
		if m.IsInBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// CalculateCoastalTiles recomputes the coastal flag for the whole grid: a
// land tile is coastal iff at least one of its 8 neighbors is water. The
// flag is cleared everywhere else. This is the only operation that touches
// coastal state; SetTerrain never triggers it.
func (m *GameMap) CalculateCoastalTiles() {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			tile := m.tiles[y][x]
			if tile.terrain == TerrainWater {
				tile.setCoastal(false)
				continue
			}
			tile.setCoastal(m.hasWaterNeighbor(Position{X: x, Y: y}))
		}
	}
}

func (m *GameMap) hasWaterNeighbor(pos Position) bool {
	for _, n := range m.AdjacentPositions(pos) {
		if m.tiles[n.Y][n.X].terrain == TerrainWater {
			return true
		}
	}
	return false
}

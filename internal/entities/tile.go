package entities

import "math"

// ImpassableCost is the sentinel movement cost for a move that is illegal or
// onto impassable terrain.
const ImpassableCost = math.MaxInt32

// Terrain identifies a tile's terrain type
type Terrain string

// Terrain types
const (
	TerrainDirt         Terrain = "dirt"
	TerrainGrass        Terrain = "grass"
	TerrainSand         Terrain = "sand"
	TerrainSnow         Terrain = "snow"
	TerrainSwamp        Terrain = "swamp"
	TerrainRough        Terrain = "rough"
	TerrainSubterranean Terrain = "subterranean"
	TerrainLava         Terrain = "lava"
	TerrainWater        Terrain = "water"
	TerrainRock         Terrain = "rock"
)

// terrainCosts holds the per-step cost of entering a tile of each terrain.
// Impassable terrains are absent.
var terrainCosts = map[Terrain]int{
	TerrainDirt:         100,
	TerrainGrass:        100,
	TerrainSand:         150,
	TerrainSnow:         150,
	TerrainSwamp:        175,
	TerrainRough:        125,
	TerrainSubterranean: 100,
	TerrainLava:         100,
}

// MovementCost returns the cost of entering a tile of this terrain, or
// ImpassableCost when the terrain cannot be walked on.
func (t Terrain) MovementCost() int {
	if cost, ok := terrainCosts[t]; ok {
		return cost
	}
	return ImpassableCost
}

// IsPassable reports whether the terrain can be walked on
func (t Terrain) IsPassable() bool {
	_, ok := terrainCosts[t]
	return ok
}

// IsValid reports whether t is a known terrain type
func (t Terrain) IsValid() bool {
	switch t {
	case TerrainDirt, TerrainGrass, TerrainSand, TerrainSnow, TerrainSwamp,
		TerrainRough, TerrainSubterranean, TerrainLava, TerrainWater, TerrainRock:
		return true
	}
	return false
}

// MapTile is one grid cell's state: its terrain with the derived movement
// cost and passability, the coastal flag, and the ids of objects blocking or
// visitable from the cell. Tiles are owned and mutated exclusively by
// GameMap; everything exported here is a read accessor.
type MapTile struct {
	terrain      Terrain
	coastal      bool
	visitableIDs []int
	blockingIDs  map[int]struct{}
}

func newMapTile(terrain Terrain) *MapTile {
	return &MapTile{terrain: terrain}
}

// Terrain returns the tile's terrain type
func (t *MapTile) Terrain() Terrain {
	return t.terrain
}

// MovementCost returns the cost of entering this tile, ImpassableCost when
// the terrain is impassable
func (t *MapTile) MovementCost() int {
	return t.terrain.MovementCost()
}

// IsPassable reports whether the tile's terrain can be walked on
func (t *MapTile) IsPassable() bool {
	return t.terrain.IsPassable()
}

// IsCoastal reports whether the tile was marked coastal by the last
// GameMap.CalculateCoastalTiles pass. The flag is a derived cache and goes
// stale when terrain changes until the next recompute.
func (t *MapTile) IsCoastal() bool {
	return t.coastal
}

// IsBlocked reports whether any object blocks movement onto this tile
func (t *MapTile) IsBlocked() bool {
	return len(t.blockingIDs) > 0
}

// IsClear reports whether a mover may end a step on this tile
func (t *MapTile) IsClear() bool {
	return t.IsPassable() && !t.IsBlocked()
}

// VisitableObjectIDs returns the ids of objects visitable from this tile in
// attach order. The last entry is the top of the visiting stack.
func (t *MapTile) VisitableObjectIDs() []int {
	ids := make([]int, len(t.visitableIDs))
	copy(ids, t.visitableIDs)
	return ids
}

// TopVisitableObjectID returns the most recently attached visitable object
// id, or false when no object is visitable from this tile.
func (t *MapTile) TopVisitableObjectID() (int, bool) {
	if len(t.visitableIDs) == 0 {
		return 0, false
	}
	return t.visitableIDs[len(t.visitableIDs)-1], true
}

// BlockingObjectIDs returns the ids of objects blocking this tile. Order is
// unspecified.
func (t *MapTile) BlockingObjectIDs() []int {
	ids := make([]int, 0, len(t.blockingIDs))
	for id := range t.blockingIDs {
		ids = append(ids, id)
	}
	return ids
}

func (t *MapTile) setTerrain(terrain Terrain) {
	t.terrain = terrain
}

func (t *MapTile) setCoastal(coastal bool) {
	t.coastal = coastal
}

func (t *MapTile) attachVisitable(id int) {
	t.visitableIDs = append(t.visitableIDs, id)
}

func (t *MapTile) attachBlocking(id int) {
	if t.blockingIDs == nil {
		t.blockingIDs = make(map[int]struct{})
	}
	t.blockingIDs[id] = struct{}{}
}

func (t *MapTile) detachObject(id int) {
	delete(t.blockingIDs, id)
	for i, visitableID := range t.visitableIDs {
		if visitableID == id {
			t.visitableIDs = append(t.visitableIDs[:i], t.visitableIDs[i+1:]...)
			break
		}
	}
}

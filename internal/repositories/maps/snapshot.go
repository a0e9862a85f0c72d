package maps

import (
	"github.com/KirkDiggler/tactics-api/internal/entities"
	"github.com/KirkDiggler/tactics-api/internal/errors"
)

// NewSnapshot captures the terrain grid and object list of a live map
func NewSnapshot(m *entities.GameMap) (*Snapshot, error) {
	if m == nil {
		return nil, errors.InvalidArgument("map is required")
	}

	terrain := make([][]entities.Terrain, m.Height())
	for y := 0; y < m.Height(); y++ {
		terrain[y] = make([]entities.Terrain, m.Width())
		for x := 0; x < m.Width(); x++ {
			tile, err := m.GetTile(entities.Position{X: x, Y: y})
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read tile (%d,%d)", x, y)
			}
			terrain[y][x] = tile.Terrain()
		}
	}

	// Objects are cloned so the snapshot never shares mutable state with
	// the live map it was taken from.
	objects := make([]*entities.MapObject, 0, m.ObjectCount())
	for _, obj := range m.Objects() {
		objects = append(objects, obj.Clone())
	}

	return &Snapshot{
		Width:   m.Width(),
		Height:  m.Height(),
		Terrain: terrain,
		Objects: objects,
	}, nil
}

// Restore rebuilds a live map from the snapshot: terrain first, then object
// placement replayed in insertion order. Coastal flags are recomputed once
// at the end.
func (s *Snapshot) Restore() (*entities.GameMap, error) {
	m, err := entities.NewGameMap(s.Width, s.Height)
	if err != nil {
		return nil, errors.Wrap(err, "invalid snapshot dimensions")
	}

	if len(s.Terrain) != s.Height {
		return nil, errors.InvalidArgumentf("snapshot has %d terrain rows, want %d", len(s.Terrain), s.Height)
	}
	for y, row := range s.Terrain {
		if len(row) != s.Width {
			return nil, errors.InvalidArgumentf("terrain row %d has %d cells, want %d", y, len(row), s.Width)
		}
		for x, terrain := range row {
			if !terrain.IsValid() {
				return nil, errors.InvalidArgumentf("unknown terrain %q at (%d,%d)", terrain, x, y)
			}
			if err := m.SetTerrain(entities.Position{X: x, Y: y}, terrain); err != nil {
				return nil, err
			}
		}
	}

	// Each restore places fresh clones: AddObject assigns ids in place,
	// and the snapshot's own objects must stay untouched so it can be
	// restored again.
	for _, obj := range s.Objects {
		if _, err := m.AddObject(obj.Clone()); err != nil {
			return nil, errors.Wrapf(err, "failed to place %s object at (%d,%d)",
				obj.Type, obj.Position.X, obj.Position.Y)
		}
	}

	m.CalculateCoastalTiles()
	return m, nil
}

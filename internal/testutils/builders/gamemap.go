// Package builders provides test data builders following the builder pattern
package builders

import (
	"github.com/KirkDiggler/tactics-api/internal/entities"
)

// MapBuilder builds scenario maps for tests. Terrain edits are applied
// before objects so object placement sees final passability.
type MapBuilder struct {
	width   int
	height  int
	terrain map[entities.Position]entities.Terrain
	objects []*entities.MapObject
	coastal bool
}

// NewMapBuilder creates a builder for a 10x10 all-grass map
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{
		width:   10,
		height:  10,
		terrain: make(map[entities.Position]entities.Terrain),
	}
}

// WithSize sets the map dimensions
func (b *MapBuilder) WithSize(width, height int) *MapBuilder {
	b.width = width
	b.height = height
	return b
}

// WithTerrain sets the terrain at one position
func (b *MapBuilder) WithTerrain(pos entities.Position, terrain entities.Terrain) *MapBuilder {
	b.terrain[pos] = terrain
	return b
}

// WithTerrainRect fills a rectangle of terrain, corners inclusive
func (b *MapBuilder) WithTerrainRect(from, to entities.Position, terrain entities.Terrain) *MapBuilder {
	for y := from.Y; y <= to.Y; y++ {
		for x := from.X; x <= to.X; x++ {
			b.terrain[entities.Position{X: x, Y: y}] = terrain
		}
	}
	return b
}

// WithObject places an object on the built map
func (b *MapBuilder) WithObject(obj *entities.MapObject) *MapBuilder {
	b.objects = append(b.objects, obj)
	return b
}

// WithCoastalTiles triggers a coastal recompute after terrain is applied
func (b *MapBuilder) WithCoastalTiles() *MapBuilder {
	b.coastal = true
	return b
}

// Build constructs the map. Panics on invalid builder state; tests should
// fail loudly.
func (b *MapBuilder) Build() *entities.GameMap {
	m, err := entities.NewGameMap(b.width, b.height)
	if err != nil {
		panic(err)
	}
	for pos, terrain := range b.terrain {
		if err := m.SetTerrain(pos, terrain); err != nil {
			panic(err)
		}
	}
	for _, obj := range b.objects {
		if _, err := m.AddObject(obj); err != nil {
			panic(err)
		}
	}
	if b.coastal {
		m.CalculateCoastalTiles()
	}
	return m
}

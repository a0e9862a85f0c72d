// Package mapload builds GameMaps from YAML map definitions. Each object
// variant has an explicit, statically-typed definition; dispatch is a switch
// on the variant name, never reflection.
package mapload

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/tactics-api/internal/entities"
	"github.com/KirkDiggler/tactics-api/internal/errors"
)

// Definition is an authored map: dimensions, a default terrain, terrain
// patches applied over it, and the objects to place.
type Definition struct {
	Name           string           `yaml:"name"`
	Width          int              `yaml:"width"`
	Height         int              `yaml:"height"`
	DefaultTerrain entities.Terrain `yaml:"default_terrain,omitempty"`
	Terrain        []TerrainPatch   `yaml:"terrain,omitempty"`
	Objects        []ObjectDef      `yaml:"objects,omitempty"`
}

// PositionDef is a YAML grid coordinate
type PositionDef struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Position converts the definition coordinate to an entity position
func (p PositionDef) Position() entities.Position {
	return entities.Position{X: p.X, Y: p.Y}
}

// TerrainPatch fills the rectangle From..To (corners inclusive) with one
// terrain. A patch without To covers the single From cell.
type TerrainPatch struct {
	Terrain entities.Terrain `yaml:"terrain"`
	From    PositionDef      `yaml:"from"`
	To      *PositionDef     `yaml:"to,omitempty"`
}

// ObjectDef is one authored object. Type selects the variant; the variant's
// fields are read and the rest ignored.
type ObjectDef struct {
	Type     entities.ObjectType  `yaml:"type"`
	Position PositionDef          `yaml:"position"`
	Owner    entities.PlayerColor `yaml:"owner,omitempty"`

	// Generic fields
	Name           string `yaml:"name,omitempty"`
	BlocksMovement bool   `yaml:"blocks_movement,omitempty"`
	Visitable      bool   `yaml:"visitable,omitempty"`
	Removable      bool   `yaml:"removable,omitempty"`

	// Resource pile fields
	Resource entities.ResourceType `yaml:"resource,omitempty"`
	Amount   int                   `yaml:"amount,omitempty"`

	// Mine fields
	DailyYield int `yaml:"daily_yield,omitempty"`

	// Dwelling fields
	CreatureID   string `yaml:"creature_id,omitempty"`
	Available    int    `yaml:"available,omitempty"`
	WeeklyGrowth int    `yaml:"weekly_growth,omitempty"`
}

// Parse decodes a YAML map definition
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse map definition")
	}
	return &def, nil
}

// LoadFile reads and decodes a YAML map definition from disk
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path) // #nosec G304 // authored map files are caller-chosen
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read map definition %s", path)
	}
	return Parse(data)
}

// BuildMap constructs a live GameMap from the definition: default terrain,
// then patches, then objects, then one coastal recompute.
func (d *Definition) BuildMap() (*entities.GameMap, error) {
	m, err := entities.NewGameMap(d.Width, d.Height)
	if err != nil {
		return nil, err
	}

	if d.DefaultTerrain != "" && d.DefaultTerrain != entities.DefaultTerrain {
		if !d.DefaultTerrain.IsValid() {
			return nil, errors.InvalidArgumentf("unknown default terrain %q", d.DefaultTerrain)
		}
		for y := 0; y < d.Height; y++ {
			for x := 0; x < d.Width; x++ {
				if err := m.SetTerrain(entities.Position{X: x, Y: y}, d.DefaultTerrain); err != nil {
					return nil, err
				}
			}
		}
	}

	for i, patch := range d.Terrain {
		if err := applyPatch(m, patch); err != nil {
			return nil, errors.Wrapf(err, "terrain patch %d", i)
		}
	}

	for i, def := range d.Objects {
		obj, err := def.build()
		if err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
		if _, err := m.AddObject(obj); err != nil {
			return nil, errors.Wrapf(err, "object %d", i)
		}
	}

	m.CalculateCoastalTiles()
	return m, nil
}

func applyPatch(m *entities.GameMap, patch TerrainPatch) error {
	if !patch.Terrain.IsValid() {
		return errors.InvalidArgumentf("unknown terrain %q", patch.Terrain)
	}
	to := patch.From
	if patch.To != nil {
		to = *patch.To
	}
	if to.X < patch.From.X || to.Y < patch.From.Y {
		return errors.InvalidArgumentf("patch rectangle (%d,%d)..(%d,%d) is inverted",
			patch.From.X, patch.From.Y, to.X, to.Y)
	}
	for y := patch.From.Y; y <= to.Y; y++ {
		for x := patch.From.X; x <= to.X; x++ {
			if err := m.SetTerrain(entities.Position{X: x, Y: y}, patch.Terrain); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *ObjectDef) build() (*entities.MapObject, error) {
	switch d.Type {
	case entities.ObjectGeneric:
		obj := entities.NewGenericObject(entities.GenericObjectConfig{
			Position:       d.Position.Position(),
			Name:           d.Name,
			BlocksMovement: d.BlocksMovement,
			Visitable:      d.Visitable,
			Removable:      d.Removable,
		})
		if d.Owner != "" {
			obj.Owner = d.Owner
		}
		return obj, nil
	case entities.ObjectResource:
		return entities.NewResourceObject(entities.ResourceObjectConfig{
			Position: d.Position.Position(),
			Resource: d.Resource,
			Amount:   d.Amount,
		}), nil
	case entities.ObjectMine:
		return entities.NewMineObject(entities.MineObjectConfig{
			Position:   d.Position.Position(),
			Resource:   d.Resource,
			DailyYield: d.DailyYield,
			Owner:      d.Owner,
		}), nil
	case entities.ObjectDwelling:
		return entities.NewDwellingObject(entities.DwellingObjectConfig{
			Position:     d.Position.Position(),
			CreatureID:   d.CreatureID,
			Available:    d.Available,
			WeeklyGrowth: d.WeeklyGrowth,
			Owner:        d.Owner,
		}), nil
	default:
		return nil, errors.InvalidArgumentf("unknown object type %q", d.Type)
	}
}

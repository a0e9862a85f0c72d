package entities

// ObjectType tags a MapObject's variant. The set is closed: construction
// dispatch switches over it exhaustively.
type ObjectType string

// Object variants
const (
	ObjectGeneric  ObjectType = "generic"
	ObjectResource ObjectType = "resource"
	ObjectMine     ObjectType = "mine"
	ObjectDwelling ObjectType = "dwelling"
)

// PlayerColor identifies an object's owning player
type PlayerColor string

// Player colors
const (
	PlayerNeutral PlayerColor = "neutral"
	PlayerRed     PlayerColor = "red"
	PlayerBlue    PlayerColor = "blue"
	PlayerTan     PlayerColor = "tan"
	PlayerGreen   PlayerColor = "green"
)

// ResourceType identifies a collectible resource
type ResourceType string

// Resource types
const (
	ResourceGold    ResourceType = "gold"
	ResourceWood    ResourceType = "wood"
	ResourceOre     ResourceType = "ore"
	ResourceCrystal ResourceType = "crystal"
	ResourceGems    ResourceType = "gems"
)

// ResourceData is the payload of a pickable resource pile
type ResourceData struct {
	Resource ResourceType `json:"resource"`
	Amount   int          `json:"amount"`
}

// MineData is the payload of a capturable mine
type MineData struct {
	Resource   ResourceType `json:"resource"`
	DailyYield int          `json:"daily_yield"`
}

// DwellingData is the payload of a creature dwelling
type DwellingData struct {
	CreatureID   string `json:"creature_id"`
	Available    int    `json:"available"`
	WeeklyGrowth int    `json:"weekly_growth"`
}

// MapObject is a placed map entity. Common fields are shared across all
// variants; exactly one payload pointer is non-nil for the non-generic
// variants. The ID is assigned by GameMap.AddObject and is -1 until then.
type MapObject struct {
	ID               int         `json:"id"`
	Type             ObjectType  `json:"type"`
	Position         Position    `json:"position"`
	Owner            PlayerColor `json:"owner"`
	Name             string      `json:"name,omitempty"`
	BlocksMovement   bool        `json:"blocks_movement"`
	Visitable        bool        `json:"visitable"`
	BlockedVisitable bool        `json:"blocked_visitable"`
	Removable        bool        `json:"removable"`

	Resource *ResourceData `json:"resource,omitempty"`
	Mine     *MineData     `json:"mine,omitempty"`
	Dwelling *DwellingData `json:"dwelling,omitempty"`
}

// GenericObjectConfig configures a decorative or plain blocking object
type GenericObjectConfig struct {
	Position       Position
	Name           string
	BlocksMovement bool
	Visitable      bool
	Removable      bool
}

// NewGenericObject creates a generic map object
func NewGenericObject(cfg GenericObjectConfig) *MapObject {
	return &MapObject{
		ID:             -1,
		Type:           ObjectGeneric,
		Position:       cfg.Position,
		Owner:          PlayerNeutral,
		Name:           cfg.Name,
		BlocksMovement: cfg.BlocksMovement,
		Visitable:      cfg.Visitable,
		Removable:      cfg.Removable,
	}
}

// ResourceObjectConfig configures a resource pile
type ResourceObjectConfig struct {
	Position Position
	Resource ResourceType
	Amount   int
}

// NewResourceObject creates a resource pile. Piles block their cell and are
// visited from an adjacent cell, then removed when picked up.
func NewResourceObject(cfg ResourceObjectConfig) *MapObject {
	return &MapObject{
		ID:               -1,
		Type:             ObjectResource,
		Position:         cfg.Position,
		Owner:            PlayerNeutral,
		BlocksMovement:   true,
		Visitable:        true,
		BlockedVisitable: true,
		Removable:        true,
		Resource: &ResourceData{
			Resource: cfg.Resource,
			Amount:   cfg.Amount,
		},
	}
}

// MineObjectConfig configures a mine
type MineObjectConfig struct {
	Position   Position
	Resource   ResourceType
	DailyYield int
	Owner      PlayerColor
}

// NewMineObject creates a capturable mine. Mines block their cell and are
// visited from an adjacent cell; they are never removable.
func NewMineObject(cfg MineObjectConfig) *MapObject {
	owner := cfg.Owner
	if owner == "" {
		owner = PlayerNeutral
	}
	return &MapObject{
		ID:               -1,
		Type:             ObjectMine,
		Position:         cfg.Position,
		Owner:            owner,
		BlocksMovement:   true,
		Visitable:        true,
		BlockedVisitable: true,
		Mine: &MineData{
			Resource:   cfg.Resource,
			DailyYield: cfg.DailyYield,
		},
	}
}

// DwellingObjectConfig configures a creature dwelling
type DwellingObjectConfig struct {
	Position     Position
	CreatureID   string
	Available    int
	WeeklyGrowth int
	Owner        PlayerColor
}

// NewDwellingObject creates a creature dwelling. Dwellings block their cell
// and are visited from an adjacent cell.
func NewDwellingObject(cfg DwellingObjectConfig) *MapObject {
	owner := cfg.Owner
	if owner == "" {
		owner = PlayerNeutral
	}
	return &MapObject{
		ID:               -1,
		Type:             ObjectDwelling,
		Position:         cfg.Position,
		Owner:            owner,
		BlocksMovement:   true,
		Visitable:        true,
		BlockedVisitable: true,
		Dwelling: &DwellingData{
			CreatureID:   cfg.CreatureID,
			Available:    cfg.Available,
			WeeklyGrowth: cfg.WeeklyGrowth,
		},
	}
}

// Clone returns a deep copy of the object, payload included, keeping the
// original's id. The copy belongs to no map until added to one.
func (o *MapObject) Clone() *MapObject {
	copied := *o
	if o.Resource != nil {
		resource := *o.Resource
		copied.Resource = &resource
	}
	if o.Mine != nil {
		mine := *o.Mine
		copied.Mine = &mine
	}
	if o.Dwelling != nil {
		dwelling := *o.Dwelling
		copied.Dwelling = &dwelling
	}
	return &copied
}

// BlockedPositions returns the cells this object occupies such that no mover
// may end a move there. Non-blocking objects return an empty slice.
func (o *MapObject) BlockedPositions() []Position {
	if !o.BlocksMovement {
		return nil
	}
	return []Position{o.Position}
}

// VisitablePositions returns the cells a mover can interact with this object
// from: the object's own cell, or its 8-neighborhood when the object's cell
// is itself blocked.
func (o *MapObject) VisitablePositions() []Position {
	if !o.Visitable {
		return nil
	}
	if o.BlockedVisitable {
		return o.Position.AdjacentPositions()
	}
	return []Position{o.Position}
}

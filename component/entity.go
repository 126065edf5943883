package component

import "github.com/lixenwraith/tunnelman/core"

// Handle is a stable entity identifier, zero is never issued
type Handle uint32

// Kind is the closed set of entity variants
type Kind uint8

const (
	KindPlayer Kind = iota
	KindRegularProtester
	KindHardcoreProtester
	KindBoulder
	KindBarrel
	KindGoldNugget
	KindSonarKit
	KindWaterPool
	KindSquirt
	KindCount
)

var kindNames = [KindCount]string{
	"player", "protester", "hardcore_protester", "boulder",
	"barrel", "gold", "sonar_kit", "water_pool", "squirt",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "unknown"
}

// Draw depth, lower is drawn on top
const (
	DepthAgent  = 0
	DepthHazard = 1
	DepthPickup = 2
)

// Entity is one unit of simulation. Kind selects which payload pointer is set:
// Agent for player and protesters, plus exactly one of Player, Protester, Boulder, Pickup, Squirt
type Entity struct {
	Handle Handle
	Kind   Kind

	// Position is the bottom-left anchor of the footprint
	X, Y   int
	Facing core.Direction

	Alive   bool
	Visible bool

	// Render hints, opaque to the simulation
	Size  float64
	Depth int

	Agent     *Agent
	Player    *Player
	Protester *Protester
	Boulder   *Boulder
	Pickup    *Pickup
	Squirt    *Squirt
}

// Position returns the anchor as a point
func (e *Entity) Position() core.Point {
	return core.Point{X: e.X, Y: e.Y}
}

// MoveTo relocates the anchor
func (e *Entity) MoveTo(x, y int) {
	e.X, e.Y = x, y
}

// DistanceTo returns the Euclidean distance from this anchor to (x, y)
func (e *Entity) DistanceTo(x, y int) float64 {
	return core.Distance(e.X, e.Y, x, y)
}

// IsProtester reports whether the entity is either protester tier
func (e *Entity) IsProtester() bool {
	return e.Kind == KindRegularProtester || e.Kind == KindHardcoreProtester
}

// IsHardcore reports the tier with player tracking and the stun-on-bribe response
func (e *Entity) IsHardcore() bool {
	return e.Kind == KindHardcoreProtester
}

// IsHazard reports whether the entity blocks movers and occupies navigation cells
func (e *Entity) IsHazard() bool {
	return e.Kind == KindBoulder
}

// IsPickup reports whether the entity is a collectible
func (e *Entity) IsPickup() bool {
	return e.Pickup != nil
}

// CanBeAnnoyed reports whether squirts, boulders and bribes affect the entity
// Leaving protesters are immune
func (e *Entity) CanBeAnnoyed() bool {
	return e.Alive && e.IsProtester() && e.Protester.Mode != ModeLeaving
}

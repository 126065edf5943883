package component

import "github.com/lixenwraith/tunnelman/core"

// BoulderState advances one way: Stable, Teetering, Falling
type BoulderState uint8

const (
	BoulderStable BoulderState = iota
	BoulderTeetering
	BoulderFalling
)

func (s BoulderState) String() string {
	switch s {
	case BoulderStable:
		return "stable"
	case BoulderTeetering:
		return "teetering"
	case BoulderFalling:
		return "falling"
	}
	return "unknown"
}

// Boulder is the falling hazard payload
type Boulder struct {
	State       BoulderState
	TeeterTicks int
}

// NewBoulder creates a stable boulder, the caller excavates its footprint
func NewBoulder(x, y int) *Entity {
	return &Entity{
		Kind:    KindBoulder,
		X:       x,
		Y:       y,
		Facing:  core.DirDown,
		Alive:   true,
		Visible: true,
		Size:    1.0,
		Depth:   DepthHazard,
		Boulder: &Boulder{State: BoulderStable},
	}
}

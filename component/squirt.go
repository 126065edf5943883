package component

import (
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/parameter"
)

// Squirt is the projectile payload, direction is the entity's Facing
type Squirt struct {
	Range int
}

// NewSquirt creates a squirt travelling in direction of facing
func NewSquirt(x, y int, facing core.Direction) *Entity {
	return &Entity{
		Kind:    KindSquirt,
		X:       x,
		Y:       y,
		Facing:  facing,
		Alive:   true,
		Visible: true,
		Size:    1.0,
		Depth:   DepthHazard,
		Squirt:  &Squirt{Range: parameter.SquirtRange},
	}
}

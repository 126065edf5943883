package component

import (
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/parameter"
)

// Agent holds hit points shared by the player and protesters
type Agent struct {
	HitPoints int
}

// Player holds the digger's consumables
type Player struct {
	Water int
	Sonar int
	Gold  int
}

// NewPlayer creates the digger at its fixed start position
func NewPlayer() *Entity {
	return &Entity{
		Kind:    KindPlayer,
		X:       parameter.PlayerStartX,
		Y:       parameter.PlayerStartY,
		Facing:  core.DirRight,
		Alive:   true,
		Visible: true,
		Size:    1.0,
		Depth:   DepthAgent,
		Agent:   &Agent{HitPoints: parameter.PlayerHitPoints},
		Player: &Player{
			Water: parameter.PlayerStartWater,
			Sonar: parameter.PlayerStartSonar,
			Gold:  parameter.PlayerStartGold,
		},
	}
}

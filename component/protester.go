package component

import (
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/parameter"
)

// ProtesterMode is the behaviour chosen on the protester's last active tick
type ProtesterMode uint8

const (
	ModeResting ProtesterMode = iota
	ModePatrolling
	ModePursuing
	ModeStunned
	ModeLeaving
)

func (m ProtesterMode) String() string {
	switch m {
	case ModeResting:
		return "resting"
	case ModePatrolling:
		return "patrolling"
	case ModePursuing:
		return "pursuing"
	case ModeStunned:
		return "stunned"
	case ModeLeaving:
		return "leaving"
	}
	return "unknown"
}

// Protester is the adversary state machine payload
type Protester struct {
	Mode ProtesterMode

	// RestTicks counts down idle ticks, the protester acts only at zero
	RestTicks int
	// PatrolSteps is the remaining length of the current patrol leg
	PatrolSteps int

	TicksSincePerpendicularTurn int
	TicksSinceShout             int
}

// NewProtester creates a protester of the given tier at the exit
// patrolSteps seeds the first patrol leg, drawn by the caller's generator
func NewProtester(kind Kind, level, patrolSteps int) *Entity {
	hp := parameter.RegularProtesterHitPoints
	if kind == KindHardcoreProtester {
		hp = parameter.HardcoreProtesterHitPoints
	} else {
		kind = KindRegularProtester
	}

	return &Entity{
		Kind:    kind,
		X:       parameter.ExitX,
		Y:       parameter.ExitY,
		Facing:  core.DirLeft,
		Alive:   true,
		Visible: true,
		Size:    1.0,
		Depth:   DepthAgent,
		Agent:   &Agent{HitPoints: hp},
		Protester: &Protester{
			Mode:                        ModeResting,
			RestTicks:                   parameter.ProtesterRestTicks(level),
			PatrolSteps:                 patrolSteps,
			TicksSincePerpendicularTurn: parameter.PerpendicularTurnTicks,
			TicksSinceShout:             parameter.ShoutIntervalTicks,
		},
	}
}

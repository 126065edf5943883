package system

import (
	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/parameter"
)

// RandomPatrolSteps draws a patrol leg length
func RandomPatrolSteps(ctx Context) int {
	return parameter.PatrolMinSteps + ctx.Rand().Intn(parameter.PatrolMaxSteps-parameter.PatrolMinSteps+1)
}

func updateProtester(ctx Context, e *component.Entity) {
	p := e.Protester

	if p.RestTicks > 0 {
		p.RestTicks--
		return
	}

	rest := parameter.ProtesterRestTicks(ctx.Level())
	p.RestTicks = rest
	p.TicksSincePerpendicularTurn++
	p.TicksSinceShout++

	if p.Mode == component.ModeLeaving {
		p.RestTicks = 0
		if e.X == parameter.ExitX && e.Y == parameter.ExitY {
			e.Alive = false
			return
		}
		if d := ctx.DirectionToExit(e.X, e.Y); d != core.DirNone {
			stepProtester(e, d)
		}
		return
	}

	player := ctx.Player()
	dist := e.DistanceTo(player.X, player.Y)

	if dist <= parameter.ShoutRadius && isFacing(e, player) && p.TicksSinceShout >= parameter.ShoutIntervalTicks {
		ctx.PlayCue(core.SoundProtesterYell)
		AnnoyPlayer(ctx, player, parameter.ShoutDamage)
		p.TicksSinceShout = 0
		p.RestTicks = max(parameter.ShoutRestTicks, rest)
		p.Mode = component.ModePursuing
		return
	}

	if e.IsHardcore() && dist > parameter.ShoutRadius {
		d := ctx.DirectionToPlayer(e.X, e.Y, parameter.HardcoreTrackingHops(ctx.Level()))
		if d != core.DirNone {
			stepProtester(e, d)
			p.Mode = component.ModePursuing
			return
		}
	}

	if dist > parameter.ShoutRadius && hasLineOfSight(ctx, e, player) {
		var d core.Direction
		switch {
		case player.Y == e.Y && player.X < e.X:
			d = core.DirLeft
		case player.Y == e.Y:
			d = core.DirRight
		case player.Y < e.Y:
			d = core.DirDown
		default:
			d = core.DirUp
		}
		stepProtester(e, d)
		p.PatrolSteps = 0
		p.Mode = component.ModePursuing
		return
	}

	patrol(ctx, e)
}

func patrol(ctx Context, e *component.Entity) {
	p := e.Protester
	p.Mode = component.ModePatrolling

	p.PatrolSteps--
	if p.PatrolSteps <= 0 {
		pickNewDirection(ctx, e)
	} else if p.TicksSincePerpendicularTurn > parameter.PerpendicularTurnTicks {
		tryPerpendicularTurn(ctx, e)
	}

	nx, ny := core.Step(e.X, e.Y, e.Facing)
	if ctx.Accessible(nx, ny) {
		e.MoveTo(nx, ny)
	} else {
		p.PatrolSteps = 0
	}
}

// pickNewDirection chooses uniformly among accessible directions
// With none accessible the leg is left at zero and retried next active tick
func pickNewDirection(ctx Context, e *component.Entity) {
	var open [4]core.Direction
	n := 0
	for _, d := range [4]core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		if nx, ny := core.Step(e.X, e.Y, d); ctx.Accessible(nx, ny) {
			open[n] = d
			n++
		}
	}
	if n == 0 {
		e.Protester.PatrolSteps = 0
		return
	}
	e.Facing = open[ctx.Rand().Intn(n)]
	e.Protester.PatrolSteps = RandomPatrolSteps(ctx)
}

func tryPerpendicularTurn(ctx Context, e *component.Entity) {
	d1, d2 := e.Facing.Perpendicular()
	x1, y1 := core.Step(e.X, e.Y, d1)
	x2, y2 := core.Step(e.X, e.Y, d2)
	can1 := d1 != core.DirNone && ctx.Accessible(x1, y1)
	can2 := d2 != core.DirNone && ctx.Accessible(x2, y2)

	switch {
	case can1 && can2:
		if ctx.Rand().Intn(2) == 0 {
			e.Facing = d1
		} else {
			e.Facing = d2
		}
	case can1:
		e.Facing = d1
	case can2:
		e.Facing = d2
	default:
		return
	}
	e.Protester.PatrolSteps = RandomPatrolSteps(ctx)
	e.Protester.TicksSincePerpendicularTurn = 0
}

func stepProtester(e *component.Entity, d core.Direction) {
	e.Facing = d
	e.MoveTo(core.Step(e.X, e.Y, d))
}

func isFacing(e, target *component.Entity) bool {
	switch e.Facing {
	case core.DirLeft:
		return target.X < e.X
	case core.DirRight:
		return target.X > e.X
	case core.DirUp:
		return target.Y > e.Y
	case core.DirDown:
		return target.Y < e.Y
	}
	return false
}

// hasLineOfSight reports a straight, fully accessible row or column between e and target
func hasLineOfSight(ctx Context, e, target *component.Entity) bool {
	switch {
	case target.X == e.X:
		lo, hi := min(e.Y, target.Y), max(e.Y, target.Y)
		for y := lo; y <= hi; y++ {
			if !ctx.Accessible(e.X, y) {
				return false
			}
		}
		return true
	case target.Y == e.Y:
		lo, hi := min(e.X, target.X), max(e.X, target.X)
		for x := lo; x <= hi; x++ {
			if !ctx.Accessible(x, e.Y) {
				return false
			}
		}
		return true
	}
	return false
}

// AnnoyProtester applies damage; survivors are stunned, the rest give up and leave
// Leaving protesters ignore damage
func AnnoyProtester(ctx Context, e *component.Entity, points int) {
	p := e.Protester
	if p == nil || p.Mode == component.ModeLeaving {
		return
	}

	e.Agent.HitPoints -= points
	if e.Agent.HitPoints > 0 {
		ctx.PlayCue(core.SoundProtesterAnnoyed)
		p.RestTicks = parameter.ProtesterStunTicks(ctx.Level())
		p.Mode = component.ModeStunned
		return
	}

	p.Mode = component.ModeLeaving
	p.RestTicks = 0
	ctx.PlayCue(core.SoundProtesterGiveUp)
}

// BribeProtester hands over a nugget. Regular protesters leave, hardcore ones
// only freeze in place for a larger reward. Always accepted.
func BribeProtester(ctx Context, e *component.Entity) bool {
	p := e.Protester
	ctx.PlayCue(core.SoundProtesterFoundGold)

	if e.IsHardcore() {
		ctx.AdjustScore(parameter.HardcoreBribeScore)
		p.RestTicks = parameter.ProtesterStunTicks(ctx.Level())
		return true
	}

	ctx.AdjustScore(parameter.RegularBribeScore)
	p.Mode = component.ModeLeaving
	p.RestTicks = 0
	return true
}

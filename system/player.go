package system

import (
	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/parameter"
)

const maxAnchor = parameter.MaxAnchor

func updatePlayer(ctx Context, e *component.Entity) {
	if ctx.Excavate(e.X, e.Y) {
		ctx.PlayCue(core.SoundDig)
	}

	action, ok := ctx.PollInput()
	if !ok {
		return
	}

	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		d := action.Direction()
		if e.Facing != d {
			e.Facing = d
			return
		}
		// Earth does not block the player, it is carved on arrival
		nx, ny := core.Step(e.X, e.Y, d)
		if InAnchorBounds(nx, ny) && !ctx.HazardAt(nx, ny, e.Handle) {
			e.MoveTo(nx, ny)
		}

	case core.ActionSquirt:
		fireSquirt(ctx, e)

	case core.ActionSonar:
		p := e.Player
		if p.Sonar > 0 {
			p.Sonar--
			ctx.Reveal(e.X, e.Y, parameter.SonarRadius)
			ctx.PlayCue(core.SoundSonar)
		}

	case core.ActionDropGold:
		p := e.Player
		if p.Gold > 0 {
			p.Gold--
			ctx.Spawn(component.NewDroppedGold(e.X, e.Y))
		}

	case core.ActionQuit:
		e.Alive = false
	}
}

func fireSquirt(ctx Context, e *component.Entity) {
	p := e.Player
	if p.Water <= 0 {
		return
	}
	p.Water--
	ctx.PlayCue(core.SoundPlayerSquirt)

	sx, sy := core.StepN(e.X, e.Y, e.Facing, parameter.SquirtSpawnOffset)
	if ctx.Accessible(sx, sy) {
		ctx.Spawn(component.NewSquirt(sx, sy, e.Facing))
	}
}

// AnnoyPlayer removes hit points, the player dies at zero or below
func AnnoyPlayer(ctx Context, e *component.Entity, points int) {
	if !e.Alive {
		return
	}
	e.Agent.HitPoints -= points
	if e.Agent.HitPoints <= 0 {
		e.Alive = false
		ctx.PlayCue(core.SoundPlayerGiveUp)
	}
}

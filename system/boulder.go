package system

import (
	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/parameter"
)

func updateBoulder(ctx Context, e *component.Entity) {
	b := e.Boulder

	switch b.State {
	case component.BoulderStable:
		if !ctx.SupportBelow(e.X, e.Y) {
			b.State = component.BoulderTeetering
		}

	case component.BoulderTeetering:
		b.TeeterTicks++
		if b.TeeterTicks >= parameter.BoulderTeeterTicks {
			b.State = component.BoulderFalling
			ctx.PlayCue(core.SoundFallingRock)
		}

	case component.BoulderFalling:
		ny := e.Y - 1
		if ny >= 0 && !ctx.EarthAt(e.X, ny) && !ctx.HazardAt(e.X, ny, e.Handle) {
			e.MoveTo(e.X, ny)
			ctx.HazardMoved()
			ctx.AnnoyAllNear(e.X, e.Y, parameter.BoulderHitRadius, parameter.BoulderDamage)
			return
		}
		e.Alive = false
		ctx.HazardMoved()
	}
}

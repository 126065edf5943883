package system

import (
	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/parameter"
)

// updateSquirt hits first, then spends range, then advances
func updateSquirt(ctx Context, e *component.Entity) {
	s := e.Squirt

	if ctx.AnnoyProtesters(e.X, e.Y, parameter.SquirtHitRadius, parameter.SquirtDamage) {
		e.Alive = false
		return
	}

	if s.Range <= 0 {
		e.Alive = false
		return
	}
	s.Range--

	nx, ny := core.Step(e.X, e.Y, e.Facing)
	if !ctx.Accessible(nx, ny) {
		e.Alive = false
		return
	}
	e.MoveTo(nx, ny)
}

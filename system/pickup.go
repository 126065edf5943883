package system

import (
	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/parameter"
)

func updatePickup(ctx Context, e *component.Entity) {
	p := e.Pickup

	if p.Perishable {
		p.TicksToLive--
		if p.TicksToLive <= 0 {
			e.Alive = false
			return
		}
	}

	if p.PlayerPickup {
		player := ctx.Player()
		dist := e.DistanceTo(player.X, player.Y)
		if dist <= parameter.PickupRadius {
			e.Alive = false
			ctx.PlayCue(p.Sound)
			ctx.AdjustScore(p.Score)
			applyPickup(ctx, p.Effect, player)
			return
		}
		if dist <= parameter.RevealRadius {
			e.Visible = true
		}
	}

	if p.ProtesterPickup && ctx.BribeNear(e.X, e.Y, parameter.BribeRadius) {
		e.Alive = false
	}
}

func applyPickup(ctx Context, effect component.PickupEffect, player *component.Entity) {
	switch effect {
	case component.EffectBarrel:
		ctx.CollectBarrel()
	case component.EffectGold:
		player.Player.Gold += parameter.GoldNuggetAmount
	case component.EffectSonar:
		player.Player.Sonar += parameter.SonarKitCharges
	case component.EffectWater:
		player.Player.Water += parameter.WaterPoolRefill
	}
}

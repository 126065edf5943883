package component

import (
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/parameter"
)

// PickupEffect selects what collecting the item grants
type PickupEffect uint8

const (
	EffectBarrel PickupEffect = iota
	EffectGold
	EffectSonar
	EffectWater
)

// Pickup is the shared payload of activatable items
type Pickup struct {
	Score  int
	Sound  core.SoundType
	Effect PickupEffect

	Perishable  bool
	TicksToLive int

	PlayerPickup    bool // Player can collect it
	ProtesterPickup bool // Protesters can take it as a bribe
}

func newPickup(kind Kind, x, y int, visible bool, p *Pickup) *Entity {
	return &Entity{
		Kind:    kind,
		X:       x,
		Y:       y,
		Facing:  core.DirRight,
		Alive:   true,
		Visible: visible,
		Size:    1.0,
		Depth:   DepthPickup,
		Pickup:  p,
	}
}

// NewBarrel creates a hidden oil barrel, collecting all of them completes the level
func NewBarrel(x, y int) *Entity {
	return newPickup(KindBarrel, x, y, false, &Pickup{
		Score:        parameter.BarrelScore,
		Sound:        core.SoundFoundOil,
		Effect:       EffectBarrel,
		PlayerPickup: true,
	})
}

// NewBuriedGold creates a hidden, permanent nugget the player can collect
func NewBuriedGold(x, y int) *Entity {
	return newPickup(KindGoldNugget, x, y, false, &Pickup{
		Score:        parameter.GoldScore,
		Sound:        core.SoundGotGoodie,
		Effect:       EffectGold,
		PlayerPickup: true,
	})
}

// NewDroppedGold creates a visible, short-lived bribe only protesters can take
func NewDroppedGold(x, y int) *Entity {
	return newPickup(KindGoldNugget, x, y, true, &Pickup{
		Score:           parameter.GoldScore,
		Sound:           core.SoundGotGoodie,
		Effect:          EffectGold,
		Perishable:      true,
		TicksToLive:     parameter.DroppedGoldLifetime,
		ProtesterPickup: true,
	})
}

// NewSonarKit creates a perishable sonar kit at its fixed location
func NewSonarKit(level int) *Entity {
	return newPickup(KindSonarKit, parameter.SonarKitX, parameter.SonarKitY, true, &Pickup{
		Score:        parameter.SonarKitScore,
		Sound:        core.SoundGotGoodie,
		Effect:       EffectSonar,
		Perishable:   true,
		TicksToLive:  parameter.GoodieLifetime(level),
		PlayerPickup: true,
	})
}

// NewWaterPool creates a perishable water refill
func NewWaterPool(x, y, level int) *Entity {
	return newPickup(KindWaterPool, x, y, true, &Pickup{
		Score:        parameter.WaterPoolScore,
		Sound:        core.SoundGotGoodie,
		Effect:       EffectWater,
		Perishable:   true,
		TicksToLive:  parameter.GoodieLifetime(level),
		PlayerPickup: true,
	})
}

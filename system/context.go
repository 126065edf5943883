package system

import (
	"math/rand"

	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/core"
)

// Context is the world as seen by an updating entity
// It exposes grid queries, cross-entity effects, spawning and scoring, nothing else
type Context interface {
	Level() int
	Player() *component.Entity
	Rand() *rand.Rand

	// Excavate clears earth in the footprint at (x, y), true if anything was removed
	Excavate(x, y int) bool
	// EarthAt reports earth anywhere in the footprint at (x, y)
	EarthAt(x, y int) bool
	// SupportBelow reports earth in the row directly under the footprint at (x, y)
	SupportBelow(x, y int) bool
	// HazardAt reports a live hazard footprint overlapping the footprint at (x, y), ignoring self
	HazardAt(x, y int, self component.Handle) bool
	// Accessible reports an in-bounds anchor with no earth and no hazard
	Accessible(x, y int) bool

	DirectionToExit(x, y int) core.Direction
	DirectionToPlayer(x, y, maxHops int) core.Direction

	PollInput() (core.Action, bool)
	PlayCue(core.SoundType)
	AdjustScore(delta int)

	// Spawn appends a new entity, it first updates on the next tick
	Spawn(e *component.Entity)
	// Reveal makes hidden entities within radius visible
	Reveal(x, y int, radius float64)
	// AnnoyProtesters damages every annoyable protester within radius, true if any was hit
	AnnoyProtesters(x, y int, radius float64, points int) bool
	// AnnoyAllNear damages the player and every annoyable protester within radius
	AnnoyAllNear(x, y int, radius float64, points int)
	// BribeNear offers a bribe to the first annoyable protester within radius, true if one took it
	BribeNear(x, y int, radius float64) bool
	// CollectBarrel decrements the level objective
	CollectBarrel()
	// HazardMoved invalidates navigation that depends on hazard occupancy
	HazardMoved()
}

// updateFunc advances one entity variant by one tick
type updateFunc func(ctx Context, e *component.Entity)

var dispatch = [component.KindCount]updateFunc{
	component.KindPlayer:            updatePlayer,
	component.KindRegularProtester:  updateProtester,
	component.KindHardcoreProtester: updateProtester,
	component.KindBoulder:           updateBoulder,
	component.KindBarrel:            updatePickup,
	component.KindGoldNugget:        updatePickup,
	component.KindSonarKit:          updatePickup,
	component.KindWaterPool:         updatePickup,
	component.KindSquirt:            updateSquirt,
}

// Update advances a live entity by one tick, dead entities are skipped
func Update(ctx Context, e *component.Entity) {
	if e == nil || !e.Alive || e.Kind >= component.KindCount {
		return
	}
	dispatch[e.Kind](ctx, e)
}

// InAnchorBounds reports whether (x, y) is a valid footprint anchor
func InAnchorBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x <= maxAnchor && y <= maxAnchor
}

package engine

import (
	"math/rand"

	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/navigation"
	"github.com/lixenwraith/tunnelman/parameter"
	"github.com/lixenwraith/tunnelman/system"
)

// Status is the outcome of a lifecycle call
type Status uint8

const (
	StatusContinue Status = iota
	StatusPlayerDied
	StatusLevelComplete
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusPlayerDied:
		return "player_died"
	case StatusLevelComplete:
		return "level_complete"
	}
	return "unknown"
}

// World owns the earth, the entity store and the tick loop
// Single-threaded: every method must be called from the goroutine driving the ticks
type World struct {
	svc Services
	rng *rand.Rand

	earth  *EarthGrid
	store  *Store
	player *component.Entity
	occ    *occupancy

	exitField *navigation.FlowFieldCache

	// Player field is reused while neither the player nor the occupancy changed
	playerField   *navigation.FlowField
	playerFieldAt core.Point
	playerFieldOf uint64

	barrelsLeft         int
	ticksSinceProtester int
	targetProtesters    int
	tick                int
	running             bool

	// frozen disables the spawn policy, scenario tests place entities by hand
	frozen bool
}

// NewWorld creates a world driven by a generator seeded with seed
// The generator persists across levels so a whole session replays from one seed
func NewWorld(seed int64, svc Services) *World {
	return &World{
		svc:         svc.withDefaults(),
		rng:         rand.New(rand.NewSource(seed)),
		earth:       NewEarthGrid(parameter.GridWidth, parameter.GridHeight),
		store:       NewStore(),
		occ:         newOccupancy(),
		exitField:   navigation.NewFlowFieldCache(anchorSpan, anchorSpan, parameter.ExitX, parameter.ExitY),
		playerField: navigation.NewFlowField(anchorSpan, anchorSpan),
	}
}

// InitializeLevel builds earth, player and the initial item distribution for the session's level
func (w *World) InitializeLevel() Status {
	if w.running {
		w.TeardownLevel()
	}
	level := w.Level()

	w.barrelsLeft = 0
	w.tick = 0
	w.targetProtesters = parameter.TargetProtesters(level)

	w.earth.Fill()
	w.player = component.NewPlayer()
	w.invalidateNavigation()

	w.distributeItems(parameter.BoulderCount(level), parameter.GoldCount(level), parameter.BarrelCount(level))

	// First protester arrives on the first tick
	w.ticksSinceProtester = parameter.ProtesterSpawnInterval(level)
	w.running = true
	return StatusContinue
}

// AdvanceOneTick runs one simulation step
// The player updates first, then every entity present at tick start in insertion order.
// The loop aborts as soon as the player dies or the last barrel is collected.
func (w *World) AdvanceOneTick() Status {
	w.tick++
	w.svc.Status.ShowStatusLine(w.StatusLine())

	if w.exitField.PendingUpdate {
		w.occ.refresh(w)
		w.exitField.Refresh(w.occ.isBlocked)
	}

	if !w.player.Alive {
		return w.playerDied()
	}
	system.Update(w, w.player)
	if !w.player.Alive {
		return w.playerDied()
	}

	for _, h := range w.store.Handles() {
		e, ok := w.store.Get(h)
		if !ok || !e.Alive {
			continue
		}
		system.Update(w, e)

		if !w.player.Alive {
			return w.playerDied()
		}
		if w.barrelsLeft == 0 {
			w.svc.Cues.PlayCue(core.SoundFinishedLevel)
			return StatusLevelComplete
		}
	}

	w.store.Reap()

	if !w.frozen {
		w.spawnProtester()
		w.spawnGoodie()
	}
	return StatusContinue
}

func (w *World) playerDied() Status {
	w.svc.Session.AdjustLives(-1)
	return StatusPlayerDied
}

// TeardownLevel releases every entity and all earth
func (w *World) TeardownLevel() {
	w.store.Clear()
	w.earth.Clear()
	w.player = nil
	w.barrelsLeft = 0
	w.running = false
	w.invalidateNavigation()
}

func (w *World) invalidateNavigation() {
	w.occ.invalidate()
	w.exitField.MarkDirty()
}

// Tick returns the number of ticks run in the current level
func (w *World) Tick() int {
	return w.tick
}

// BarrelsLeft returns the remaining level objective
func (w *World) BarrelsLeft() int {
	return w.barrelsLeft
}

// Earth exposes the earth grid for rendering
func (w *World) Earth() *EarthGrid {
	return w.earth
}

// Entities returns the live and not yet reaped entities in update order
// The slice is owned by the world and valid until the next tick
func (w *World) Entities() []*component.Entity {
	return w.store.All()
}

// Add places an entity in the world outside of a tick, used by level setup and tests
func (w *World) Add(e *component.Entity) component.Handle {
	h := w.store.Add(e)
	if e.IsHazard() {
		w.HazardMoved()
	}
	if e.Kind == component.KindBarrel {
		w.barrelsLeft++
	}
	return h
}

package engine

import (
	"math/rand"

	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/system"
)

var _ system.Context = (*World)(nil)

func (w *World) Level() int {
	return w.svc.Session.Level()
}

func (w *World) Player() *component.Entity {
	return w.player
}

func (w *World) Rand() *rand.Rand {
	return w.rng
}

func (w *World) Excavate(x, y int) bool {
	if !w.earth.Excavate(x, y) {
		return false
	}
	w.invalidateNavigation()
	return true
}

func (w *World) EarthAt(x, y int) bool {
	return w.earth.Overlaps(x, y)
}

func (w *World) SupportBelow(x, y int) bool {
	return w.earth.SupportBelow(x, y)
}

func (w *World) HazardAt(x, y int, self component.Handle) bool {
	return w.hazardAt(x, y, self)
}

// hazardAt scans live boulders for footprint overlap, self zero matches every boulder
func (w *World) hazardAt(x, y int, self component.Handle) bool {
	for _, e := range w.store.All() {
		if !e.Alive || !e.IsHazard() || e.Handle == self {
			continue
		}
		if abs(e.X-x) < footprint && abs(e.Y-y) < footprint {
			return true
		}
	}
	return false
}

func (w *World) Accessible(x, y int) bool {
	if !system.InAnchorBounds(x, y) {
		return false
	}
	w.occ.refresh(w)
	return !w.occ.isBlocked(x, y)
}

func (w *World) DirectionToExit(x, y int) core.Direction {
	return w.exitField.Field.GetDirection(x, y)
}

// DirectionToPlayer searches from the player's anchor, limited to maxHops
func (w *World) DirectionToPlayer(x, y, maxHops int) core.Direction {
	w.occ.refresh(w)
	at := w.player.Position()
	if !w.playerField.Valid || at != w.playerFieldAt || w.occ.version != w.playerFieldOf {
		w.playerField.Compute(at.X, at.Y, w.occ.isBlocked)
		w.playerFieldAt = at
		w.playerFieldOf = w.occ.version
	}
	return w.playerField.GetDirectionWithin(x, y, maxHops)
}

func (w *World) PollInput() (core.Action, bool) {
	return w.svc.Input.PollInput()
}

func (w *World) PlayCue(s core.SoundType) {
	w.svc.Cues.PlayCue(s)
}

func (w *World) AdjustScore(delta int) {
	w.svc.Session.AdjustScore(delta)
}

func (w *World) Spawn(e *component.Entity) {
	w.Add(e)
}

func (w *World) Reveal(x, y int, radius float64) {
	for _, e := range w.store.All() {
		if !e.Visible && e.DistanceTo(x, y) <= radius {
			e.Visible = true
		}
	}
}

func (w *World) AnnoyProtesters(x, y int, radius float64, points int) bool {
	hit := false
	for _, e := range w.store.All() {
		if e.CanBeAnnoyed() && e.DistanceTo(x, y) <= radius {
			system.AnnoyProtester(w, e, points)
			hit = true
		}
	}
	return hit
}

func (w *World) AnnoyAllNear(x, y int, radius float64, points int) {
	if w.player.Alive && w.player.DistanceTo(x, y) <= radius {
		system.AnnoyPlayer(w, w.player, points)
	}
	w.AnnoyProtesters(x, y, radius, points)
}

func (w *World) BribeNear(x, y int, radius float64) bool {
	for _, e := range w.store.All() {
		if e.CanBeAnnoyed() && e.DistanceTo(x, y) <= radius {
			return system.BribeProtester(w, e)
		}
	}
	return false
}

func (w *World) CollectBarrel() {
	w.barrelsLeft--
}

func (w *World) HazardMoved() {
	w.invalidateNavigation()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

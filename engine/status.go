package engine

import (
	"fmt"

	"github.com/lixenwraith/tunnelman/component"
)

// StatusLine formats the one-line session summary shown every tick
func (w *World) StatusLine() string {
	s := w.svc.Session
	var hp, water, gold, sonar int
	if w.player != nil {
		hp = w.player.Agent.HitPoints
		water = w.player.Player.Water
		gold = w.player.Player.Gold
		sonar = w.player.Player.Sonar
	}
	return fmt.Sprintf("Scr: %06d Lvl: %2d Lives: %d Hlth: %3d%% Wtr: %2d Gld: %2d Oil Left: %2d Sonar: %2d",
		s.Score(), s.Level(), s.Lives(), hp*10, water, gold, w.barrelsLeft, sonar)
}

// EntityView is a read-only copy of one entity for outside consumers
type EntityView struct {
	Handle  component.Handle `json:"id"`
	Kind    string           `json:"kind"`
	X       int              `json:"x"`
	Y       int              `json:"y"`
	Facing  string           `json:"facing"`
	Visible bool             `json:"visible"`
	State   string           `json:"state,omitempty"`
	HP      int              `json:"hp,omitempty"`
}

// Snapshot is the world state after a tick, detached from the live entities
type Snapshot struct {
	Tick           int          `json:"tick"`
	Level          int          `json:"level"`
	Score          int          `json:"score"`
	Lives          int          `json:"lives"`
	BarrelsLeft    int          `json:"barrels_left"`
	EarthRemaining int          `json:"earth_remaining"`
	Player         EntityView   `json:"player"`
	Entities       []EntityView `json:"entities"`
}

// Snapshot copies the current state, including entities awaiting reap
func (w *World) Snapshot() Snapshot {
	s := w.svc.Session
	snap := Snapshot{
		Tick:           w.tick,
		Level:          s.Level(),
		Score:          s.Score(),
		Lives:          s.Lives(),
		BarrelsLeft:    w.barrelsLeft,
		EarthRemaining: w.earth.Remaining(),
		Entities:       make([]EntityView, 0, w.store.Len()),
	}
	if w.player != nil {
		snap.Player = viewOf(w.player)
	}
	for _, e := range w.store.All() {
		if e.Alive {
			snap.Entities = append(snap.Entities, viewOf(e))
		}
	}
	return snap
}

func viewOf(e *component.Entity) EntityView {
	v := EntityView{
		Handle:  e.Handle,
		Kind:    e.Kind.String(),
		X:       e.X,
		Y:       e.Y,
		Facing:  e.Facing.String(),
		Visible: e.Visible,
	}
	if e.Agent != nil {
		v.HP = e.Agent.HitPoints
	}
	switch {
	case e.Protester != nil:
		v.State = e.Protester.Mode.String()
	case e.Boulder != nil:
		v.State = e.Boulder.State.String()
	}
	return v
}

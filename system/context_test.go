package system

import (
	"math/rand"

	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/core"
)

// stubContext is an open field with optional blocked anchors and earth
type stubContext struct {
	level   int
	player  *component.Entity
	rng     *rand.Rand
	blocked map[core.Point]bool
	earth   map[core.Point]bool
	support bool

	actions  []core.Action
	cues     []core.SoundType
	score    int
	spawned  []*component.Entity
	others   []*component.Entity
	barrels  int
	hazards  int
	exitDir  core.Direction
	trackDir core.Direction
}

func newStub() *stubContext {
	return &stubContext{
		player:  component.NewPlayer(),
		rng:     rand.New(rand.NewSource(1)),
		blocked: make(map[core.Point]bool),
		earth:   make(map[core.Point]bool),
	}
}

func (s *stubContext) Level() int                { return s.level }
func (s *stubContext) Player() *component.Entity { return s.player }
func (s *stubContext) Rand() *rand.Rand          { return s.rng }

func (s *stubContext) Excavate(x, y int) bool {
	p := core.Point{X: x, Y: y}
	if s.earth[p] {
		delete(s.earth, p)
		return true
	}
	return false
}

func (s *stubContext) EarthAt(x, y int) bool      { return s.earth[core.Point{X: x, Y: y}] }
func (s *stubContext) SupportBelow(x, y int) bool { return s.support }

func (s *stubContext) HazardAt(x, y int, self component.Handle) bool {
	return s.blocked[core.Point{X: x, Y: y}]
}

func (s *stubContext) Accessible(x, y int) bool {
	p := core.Point{X: x, Y: y}
	return InAnchorBounds(x, y) && !s.blocked[p] && !s.earth[p]
}

func (s *stubContext) DirectionToExit(x, y int) core.Direction { return s.exitDir }

func (s *stubContext) DirectionToPlayer(x, y, maxHops int) core.Direction { return s.trackDir }

func (s *stubContext) PollInput() (core.Action, bool) {
	if len(s.actions) == 0 {
		return core.ActionNone, false
	}
	a := s.actions[0]
	s.actions = s.actions[1:]
	return a, true
}

func (s *stubContext) PlayCue(c core.SoundType) { s.cues = append(s.cues, c) }
func (s *stubContext) AdjustScore(delta int)    { s.score += delta }

func (s *stubContext) Spawn(e *component.Entity) { s.spawned = append(s.spawned, e) }

func (s *stubContext) Reveal(x, y int, radius float64) {
	for _, e := range s.others {
		if e.DistanceTo(x, y) <= radius {
			e.Visible = true
		}
	}
}

func (s *stubContext) AnnoyProtesters(x, y int, radius float64, points int) bool {
	hit := false
	for _, e := range s.others {
		if e.CanBeAnnoyed() && e.DistanceTo(x, y) <= radius {
			AnnoyProtester(s, e, points)
			hit = true
		}
	}
	return hit
}

func (s *stubContext) AnnoyAllNear(x, y int, radius float64, points int) {
	if s.player.DistanceTo(x, y) <= radius {
		AnnoyPlayer(s, s.player, points)
	}
	s.AnnoyProtesters(x, y, radius, points)
}

func (s *stubContext) BribeNear(x, y int, radius float64) bool {
	for _, e := range s.others {
		if e.CanBeAnnoyed() && e.DistanceTo(x, y) <= radius {
			return BribeProtester(s, e)
		}
	}
	return false
}

func (s *stubContext) CollectBarrel() { s.barrels++ }
func (s *stubContext) HazardMoved()   { s.hazards++ }

func (s *stubContext) played(c core.SoundType) bool {
	for _, p := range s.cues {
		if p == c {
			return true
		}
	}
	return false
}

var _ Context = (*stubContext)(nil)

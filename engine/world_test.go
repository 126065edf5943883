package engine

import (
	"testing"

	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/core"
	"github.com/lixenwraith/tunnelman/navigation"
	"github.com/lixenwraith/tunnelman/parameter"
)

type harness struct {
	world  *World
	input  *ScriptedInput
	cues   *RecordingCues
	tally  *Tally
	status *LastStatus
}

// newHarness builds a level-0 world with earth and player only, spawning disabled
// A hidden barrel is buried at the origin so the level does not complete
func newHarness(t *testing.T, actions ...core.Action) *harness {
	t.Helper()
	h := &harness{
		input:  &ScriptedInput{Actions: actions},
		cues:   &RecordingCues{},
		tally:  &Tally{LivesLeft: 3},
		status: &LastStatus{},
	}
	h.world = NewWorld(7, Services{Input: h.input, Cues: h.cues, Status: h.status, Session: h.tally})
	if s := h.world.InitializeLevel(); s != StatusContinue {
		t.Fatalf("Expected continue from init, got %v", s)
	}
	h.world.store.Clear()
	h.world.barrelsLeft = 0
	h.world.earth.Fill()
	h.world.invalidateNavigation()
	h.world.frozen = true
	h.world.Add(component.NewBarrel(0, 0))
	return h
}

func (h *harness) run(t *testing.T, ticks int) Status {
	t.Helper()
	var s Status
	for i := 0; i < ticks; i++ {
		s = h.world.AdvanceOneTick()
		if s != StatusContinue {
			return s
		}
	}
	return s
}

// TestInitializeLevel verifies the level-0 layout and item distribution
func TestInitializeLevel(t *testing.T) {
	tally := &Tally{LivesLeft: 3}
	w := NewWorld(42, Services{Session: tally})
	w.InitializeLevel()

	p := w.Player()
	if p.X != 30 || p.Y != 60 || p.Facing != core.DirRight {
		t.Errorf("Expected player at (30,60) facing right, got (%d,%d) %v", p.X, p.Y, p.Facing)
	}
	if w.BarrelsLeft() != parameter.BarrelCount(0) {
		t.Errorf("Expected %d barrels, got %d", parameter.BarrelCount(0), w.BarrelsLeft())
	}

	counts := make(map[component.Kind]int)
	for _, e := range w.Entities() {
		counts[e.Kind]++
		if e.X > 26 && e.X < 34 && e.Y > 4 {
			t.Errorf("%v placed in shaft exclusion at (%d,%d)", e.Kind, e.X, e.Y)
		}
		if e.IsHazard() && w.EarthAt(e.X, e.Y) {
			t.Errorf("Boulder at (%d,%d) still embedded in earth", e.X, e.Y)
		}
		if e.IsPickup() && e.Visible {
			t.Errorf("%v at (%d,%d) should start hidden", e.Kind, e.X, e.Y)
		}
	}
	if counts[component.KindBoulder] != parameter.BoulderCount(0) {
		t.Errorf("Expected %d boulders, got %d", parameter.BoulderCount(0), counts[component.KindBoulder])
	}
	if counts[component.KindGoldNugget] != parameter.GoldCount(0) {
		t.Errorf("Expected %d gold, got %d", parameter.GoldCount(0), counts[component.KindGoldNugget])
	}

	all := w.Entities()
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			if d := all[i].DistanceTo(all[j].X, all[j].Y); d <= parameter.ItemSpacing {
				t.Errorf("Items %d and %d only %.2f apart", all[i].Handle, all[j].Handle, d)
			}
		}
	}
}

// TestFirstTickSpawnsProtester verifies the forced first arrival at the exit
func TestFirstTickSpawnsProtester(t *testing.T) {
	w := NewWorld(3, Services{})
	w.InitializeLevel()

	if s := w.AdvanceOneTick(); s != StatusContinue {
		t.Fatalf("Expected continue, got %v", s)
	}

	var protesters []*component.Entity
	for _, e := range w.Entities() {
		if e.IsProtester() {
			protesters = append(protesters, e)
		}
	}
	if len(protesters) != 1 {
		t.Fatalf("Expected 1 protester, got %d", len(protesters))
	}
	if p := protesters[0]; p.X != parameter.ExitX || p.Y != parameter.ExitY {
		t.Errorf("Expected protester at exit, got (%d,%d)", p.X, p.Y)
	}

	// Interval restarts, nobody else arrives on the next tick
	w.AdvanceOneTick()
	if n := w.store.CountWhere((*component.Entity).IsProtester); n != 1 {
		t.Errorf("Expected 1 protester after second tick, got %d", n)
	}
}

// TestPlayerTurnsBeforeMoving verifies a new direction only turns, a repeated one moves
func TestPlayerTurnsBeforeMoving(t *testing.T) {
	h := newHarness(t, core.ActionLeft, core.ActionLeft)
	p := h.world.Player()

	h.run(t, 1)
	if p.Facing != core.DirLeft {
		t.Errorf("Expected facing left, got %v", p.Facing)
	}
	if p.X != 30 || p.Y != 60 {
		t.Errorf("Expected no move on turn, got (%d,%d)", p.X, p.Y)
	}

	h.run(t, 1)
	if p.X != 29 || p.Y != 60 {
		t.Errorf("Expected (29,60), got (%d,%d)", p.X, p.Y)
	}
}

// TestPlayerDigsOnEntry verifies earth is carved when the player moves into it
func TestPlayerDigsOnEntry(t *testing.T) {
	h := newHarness(t, core.ActionDown, core.ActionDown, core.ActionLeft, core.ActionLeft)
	p := h.world.Player()

	h.run(t, 4)
	if p.X != 29 || p.Y != 59 {
		t.Fatalf("Expected (29,59), got (%d,%d)", p.X, p.Y)
	}
	if h.cues.Count(core.SoundDig) != 0 {
		t.Error("Expected no dig before the tick following entry")
	}

	h.run(t, 1)
	if h.cues.Count(core.SoundDig) != 1 {
		t.Errorf("Expected 1 dig cue, got %d", h.cues.Count(core.SoundDig))
	}
	if h.world.EarthAt(29, 59) {
		t.Error("Expected footprint cleared")
	}
	if !h.world.exitField.PendingUpdate {
		t.Error("Expected exit field marked dirty after digging")
	}
}

// TestPlayerBlockedByBoulder verifies hazards stop the player but earth does not
func TestPlayerBlockedByBoulder(t *testing.T) {
	h := newHarness(t, core.ActionRight, core.ActionRight)
	h.world.Add(component.NewBoulder(34, 60))
	p := h.world.Player()

	h.run(t, 2)
	if p.X != 30 {
		t.Errorf("Expected player held at x=30, got %d", p.X)
	}
}

// TestSquirtHitsBeforeMoving verifies an adjacent protester is damaged on the squirt's first update
func TestSquirtHitsBeforeMoving(t *testing.T) {
	h := newHarness(t)
	prot := component.NewProtester(component.KindRegularProtester, 0, 10)
	prot.MoveTo(35, 60)
	h.world.Add(prot)
	squirt := component.NewSquirt(34, 60, core.DirRight)
	h.world.Add(squirt)

	h.run(t, 1)

	if squirt.Alive {
		t.Error("Expected squirt to despawn on hit")
	}
	if squirt.X != 34 {
		t.Errorf("Expected squirt never to move, got x=%d", squirt.X)
	}
	if prot.Agent.HitPoints != parameter.RegularProtesterHitPoints-parameter.SquirtDamage {
		t.Errorf("Expected hp %d, got %d", parameter.RegularProtesterHitPoints-parameter.SquirtDamage, prot.Agent.HitPoints)
	}
	if prot.Protester.Mode != component.ModeStunned {
		t.Errorf("Expected stunned, got %v", prot.Protester.Mode)
	}
	if prot.Protester.RestTicks != parameter.ProtesterStunTicks(0) {
		t.Errorf("Expected stun %d, got %d", parameter.ProtesterStunTicks(0), prot.Protester.RestTicks)
	}
	if h.cues.Count(core.SoundProtesterAnnoyed) != 1 {
		t.Error("Expected annoyed cue")
	}
}

// TestSquirtRange verifies a squirt travels its range and despawns on the following update
func TestSquirtRange(t *testing.T) {
	h := newHarness(t)
	squirt := component.NewSquirt(40, 60, core.DirRight)
	h.world.Add(squirt)

	h.run(t, parameter.SquirtRange)
	if !squirt.Alive || squirt.X != 40+parameter.SquirtRange {
		t.Fatalf("Expected squirt alive at x=%d, got alive=%v x=%d", 40+parameter.SquirtRange, squirt.Alive, squirt.X)
	}

	h.run(t, 1)
	if squirt.Alive {
		t.Error("Expected squirt to despawn once range is spent")
	}
}

// TestSquirtSpawnedMidTick verifies a fired squirt first updates on the next tick
func TestSquirtSpawnedMidTick(t *testing.T) {
	h := newHarness(t, core.ActionSquirt)
	p := h.world.Player()

	h.run(t, 1)
	if p.Player.Water != parameter.PlayerStartWater-1 {
		t.Errorf("Expected water %d, got %d", parameter.PlayerStartWater-1, p.Player.Water)
	}

	var squirt *component.Entity
	for _, e := range h.world.Entities() {
		if e.Kind == component.KindSquirt {
			squirt = e
		}
	}
	if squirt == nil {
		t.Fatal("Expected a squirt")
	}
	if squirt.X != 34 || squirt.Squirt.Range != parameter.SquirtRange {
		t.Errorf("Expected untouched squirt at x=34, got x=%d range=%d", squirt.X, squirt.Squirt.Range)
	}

	h.run(t, 1)
	if squirt.X != 35 || squirt.Squirt.Range != parameter.SquirtRange-1 {
		t.Errorf("Expected squirt at x=35 range %d, got x=%d range=%d", parameter.SquirtRange-1, squirt.X, squirt.Squirt.Range)
	}
}

// TestSquirtNotSpawnedIntoEarth verifies water is spent but no squirt appears when the spawn cell is blocked
func TestSquirtNotSpawnedIntoEarth(t *testing.T) {
	h := newHarness(t, core.ActionDown, core.ActionDown, core.ActionLeft, core.ActionSquirt)

	h.run(t, 4)
	if n := h.world.store.CountWhere(func(e *component.Entity) bool { return e.Kind == component.KindSquirt }); n != 0 {
		t.Errorf("Expected no squirt, got %d", n)
	}
	if h.cues.Count(core.SoundPlayerSquirt) != 1 {
		t.Error("Expected squirt cue regardless of spawn")
	}
}

// TestPerishableLifetime verifies a lifetime-100 pickup despawns on exactly its 100th update
func TestPerishableLifetime(t *testing.T) {
	h := newHarness(t)
	gold := component.NewDroppedGold(0, 60)
	h.world.Add(gold)

	h.run(t, parameter.DroppedGoldLifetime-1)
	if !gold.Alive {
		t.Fatal("Expected pickup alive after 99 updates")
	}

	h.run(t, 1)
	if gold.Alive {
		t.Error("Expected pickup gone on the 100th update")
	}
}

// TestPickupCollection verifies score, cue and effect land in the detecting tick
func TestPickupCollection(t *testing.T) {
	h := newHarness(t)
	pool := component.NewWaterPool(32, 60, 0)
	h.world.Add(pool)

	h.run(t, 1)
	if pool.Alive {
		t.Error("Expected water pool collected")
	}
	if h.tally.Points != parameter.WaterPoolScore {
		t.Errorf("Expected score %d, got %d", parameter.WaterPoolScore, h.tally.Points)
	}
	if got := h.world.Player().Player.Water; got != parameter.PlayerStartWater+parameter.WaterPoolRefill {
		t.Errorf("Expected water %d, got %d", parameter.PlayerStartWater+parameter.WaterPoolRefill, got)
	}
	if h.cues.Count(core.SoundGotGoodie) != 1 {
		t.Error("Expected goodie cue")
	}
}

// TestHiddenPickupRevealed verifies the reveal radius uncovers without collecting
func TestHiddenPickupRevealed(t *testing.T) {
	h := newHarness(t)
	gold := component.NewBuriedGold(34, 60)
	h.world.Add(gold)

	h.run(t, 1)
	if !gold.Alive || !gold.Visible {
		t.Errorf("Expected gold revealed and uncollected, got alive=%v visible=%v", gold.Alive, gold.Visible)
	}
}

// TestSonarReveals verifies sonar uncovers hidden entities within its radius only
func TestSonarReveals(t *testing.T) {
	h := newHarness(t, core.ActionSonar, core.ActionSonar)
	near := component.NewBuriedGold(30, 50)
	far := component.NewBuriedGold(0, 10)
	h.world.Add(near)
	h.world.Add(far)

	h.run(t, 2)
	if !near.Visible {
		t.Error("Expected near gold revealed")
	}
	if far.Visible {
		t.Error("Expected far gold still hidden")
	}
	if h.world.Player().Player.Sonar != 0 {
		t.Error("Expected sonar charge spent")
	}
	if h.cues.Count(core.SoundSonar) != 1 {
		t.Errorf("Expected one sonar cue, got %d", h.cues.Count(core.SoundSonar))
	}
}

// TestLevelCompleteAbortsTick verifies entities after the last barrel are not updated that tick
func TestLevelCompleteAbortsTick(t *testing.T) {
	h := newHarness(t)
	h.world.store.Clear()
	h.world.barrelsLeft = 0
	h.world.Add(component.NewBarrel(32, 60))
	gold := component.NewDroppedGold(0, 60)
	h.world.Add(gold)

	if s := h.run(t, 1); s != StatusLevelComplete {
		t.Fatalf("Expected level complete, got %v", s)
	}
	if gold.Pickup.TicksToLive != parameter.DroppedGoldLifetime {
		t.Error("Expected entities after the barrel to be skipped")
	}
	if h.tally.Points != parameter.BarrelScore {
		t.Errorf("Expected score %d, got %d", parameter.BarrelScore, h.tally.Points)
	}
	if h.cues.Count(core.SoundFinishedLevel) != 1 {
		t.Error("Expected finished level cue")
	}
}

// TestQuitKillsPlayer verifies quit ends the tick as a death and costs a life
func TestQuitKillsPlayer(t *testing.T) {
	h := newHarness(t, core.ActionQuit)
	gold := component.NewDroppedGold(0, 60)
	h.world.Add(gold)

	if s := h.run(t, 1); s != StatusPlayerDied {
		t.Fatalf("Expected player died, got %v", s)
	}
	if h.tally.LivesLeft != 2 {
		t.Errorf("Expected 2 lives, got %d", h.tally.LivesLeft)
	}
	if gold.Pickup.TicksToLive != parameter.DroppedGoldLifetime {
		t.Error("Expected no entity updates after the player died")
	}
}

// TestBoulderLifecycle verifies teeter timing, the one-way state machine and the fall
func TestBoulderLifecycle(t *testing.T) {
	h := newHarness(t)
	w := h.world
	w.Excavate(10, 40)
	boulder := component.NewBoulder(10, 40)
	w.Add(boulder)

	h.run(t, 1)
	if boulder.Boulder.State != component.BoulderStable {
		t.Fatalf("Expected stable with support, got %v", boulder.Boulder.State)
	}

	w.Excavate(10, 36)
	h.run(t, 1)
	if boulder.Boulder.State != component.BoulderTeetering {
		t.Fatalf("Expected teetering, got %v", boulder.Boulder.State)
	}

	h.run(t, parameter.BoulderTeeterTicks-1)
	if boulder.Boulder.State != component.BoulderTeetering {
		t.Errorf("Expected still teetering after %d ticks, got %v", parameter.BoulderTeeterTicks-1, boulder.Boulder.State)
	}
	if h.cues.Count(core.SoundFallingRock) != 0 {
		t.Error("Expected no falling cue yet")
	}

	h.run(t, 1)
	if boulder.Boulder.State != component.BoulderFalling {
		t.Fatalf("Expected falling, got %v", boulder.Boulder.State)
	}
	if h.cues.Count(core.SoundFallingRock) != 1 {
		t.Error("Expected falling cue")
	}

	h.run(t, 4)
	if !boulder.Alive || boulder.Y != 36 {
		t.Fatalf("Expected boulder resting at y=36, got alive=%v y=%d", boulder.Alive, boulder.Y)
	}

	h.run(t, 1)
	if boulder.Alive {
		t.Error("Expected boulder consumed when the fall is blocked")
	}
}

// TestTeeteringNeverReverts verifies restored support does not stabilise a teetering boulder
func TestTeeteringNeverReverts(t *testing.T) {
	h := newHarness(t)
	w := h.world
	w.Excavate(10, 40)
	w.Excavate(10, 36)
	boulder := component.NewBoulder(10, 40)
	w.Add(boulder)

	h.run(t, 1)
	if boulder.Boulder.State != component.BoulderTeetering {
		t.Fatalf("Expected teetering, got %v", boulder.Boulder.State)
	}

	for x := 10; x < 14; x++ {
		w.earth.Cells[39*w.earth.Width+x] = true
	}
	h.run(t, parameter.BoulderTeeterTicks)
	if boulder.Boulder.State != component.BoulderFalling {
		t.Errorf("Expected falling despite support, got %v", boulder.Boulder.State)
	}
}

// TestFallingBoulderCrushesPlayer verifies the area damage reaches the player
func TestFallingBoulderCrushesPlayer(t *testing.T) {
	h := newHarness(t)
	w := h.world
	boulder := component.NewBoulder(30, 58)
	boulder.Boulder.State = component.BoulderFalling
	w.Add(boulder)

	// Player stands in the shaft below
	w.Player().MoveTo(30, 54)

	if s := h.run(t, 1); s != StatusPlayerDied {
		t.Fatalf("Expected player died, got %v", s)
	}
	if h.cues.Count(core.SoundPlayerGiveUp) != 1 {
		t.Error("Expected give up cue")
	}
}

// TestDefeatedProtesterLeaves verifies leaving protesters walk to the exit, ignore damage and despawn
func TestDefeatedProtesterLeaves(t *testing.T) {
	h := newHarness(t)
	w := h.world
	prot := component.NewProtester(component.KindRegularProtester, 0, 10)
	prot.MoveTo(40, 60)
	w.Add(prot)

	if !w.AnnoyProtesters(40, 60, 1, parameter.RegularProtesterHitPoints) {
		t.Fatal("Expected protester hit")
	}
	if prot.Protester.Mode != component.ModeLeaving {
		t.Fatalf("Expected leaving, got %v", prot.Protester.Mode)
	}
	if h.cues.Count(core.SoundProtesterGiveUp) != 1 {
		t.Error("Expected give up cue")
	}

	if w.AnnoyProtesters(40, 60, 1, 2) {
		t.Error("Expected leaving protester to be immune")
	}
	if prot.Agent.HitPoints != 0 {
		t.Errorf("Expected hp unchanged at 0, got %d", prot.Agent.HitPoints)
	}

	steps := parameter.ExitX - 40
	h.run(t, steps)
	if prot.X != parameter.ExitX || prot.Y != parameter.ExitY || !prot.Alive {
		t.Fatalf("Expected protester at exit, got (%d,%d) alive=%v", prot.X, prot.Y, prot.Alive)
	}

	h.run(t, 1)
	if prot.Alive {
		t.Error("Expected protester despawned at exit")
	}
}

// TestBribeTiers verifies the regular tier leaves while the hardcore tier freezes for a larger reward
func TestBribeTiers(t *testing.T) {
	tests := []struct {
		kind      component.Kind
		wantMode  component.ProtesterMode
		wantScore int
		wantRest  int
	}{
		{component.KindRegularProtester, component.ModeLeaving, parameter.RegularBribeScore, 0},
		{component.KindHardcoreProtester, component.ModeResting, parameter.HardcoreBribeScore, parameter.ProtesterStunTicks(0)},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			h := newHarness(t)
			prot := component.NewProtester(tt.kind, 0, 10)
			prot.MoveTo(10, 60)
			h.world.Add(prot)
			gold := component.NewDroppedGold(11, 60)
			h.world.Add(gold)

			h.run(t, 1)

			if gold.Alive {
				t.Error("Expected gold taken")
			}
			if prot.Protester.Mode != tt.wantMode {
				t.Errorf("Expected mode %v, got %v", tt.wantMode, prot.Protester.Mode)
			}
			if prot.Protester.RestTicks != tt.wantRest {
				t.Errorf("Expected rest %d, got %d", tt.wantRest, prot.Protester.RestTicks)
			}
			if h.tally.Points != tt.wantScore {
				t.Errorf("Expected score %d, got %d", tt.wantScore, h.tally.Points)
			}
			if h.cues.Count(core.SoundProtesterFoundGold) != 1 {
				t.Error("Expected found gold cue")
			}
		})
	}
}

// TestPlayerCannotPickUpDroppedGold verifies dropped gold is a protester-only item
func TestPlayerCannotPickUpDroppedGold(t *testing.T) {
	h := newHarness(t, core.ActionDropGold)
	p := h.world.Player()
	p.Player.Gold = 1

	h.run(t, 3)
	if p.Player.Gold != 0 {
		t.Errorf("Expected gold spent, got %d", p.Player.Gold)
	}
	dropped := h.world.store.CountWhere(func(e *component.Entity) bool {
		return e.Kind == component.KindGoldNugget && e.Alive && e.Visible
	})
	if dropped != 1 {
		t.Errorf("Expected dropped gold still on the ground, got %d", dropped)
	}
	if h.tally.Points != 0 {
		t.Errorf("Expected no score, got %d", h.tally.Points)
	}
}

// TestHardcoreTracksAroundCorner verifies the player-anchored field steers a hardcore protester
func TestHardcoreTracksAroundCorner(t *testing.T) {
	h := newHarness(t)
	w := h.world
	for x := 31; x <= 38; x++ {
		w.Excavate(x, 50)
	}
	prot := component.NewProtester(component.KindHardcoreProtester, 0, 10)
	prot.MoveTo(34, 50)
	prot.Protester.RestTicks = 0
	w.Add(prot)

	h.run(t, 1)
	if prot.X != 33 || prot.Y != 50 {
		t.Errorf("Expected step left to (33,50), got (%d,%d)", prot.X, prot.Y)
	}
	if prot.Protester.Mode != component.ModePursuing {
		t.Errorf("Expected pursuing, got %v", prot.Protester.Mode)
	}
}

// TestProtesterShoutsWhenFacingPlayer verifies shout damage and the post-shout rest
func TestProtesterShoutsWhenFacingPlayer(t *testing.T) {
	h := newHarness(t)
	prot := component.NewProtester(component.KindRegularProtester, 0, 10)
	prot.MoveTo(33, 60)
	prot.Protester.RestTicks = 0
	h.world.Add(prot)

	h.run(t, 1)
	p := h.world.Player()
	if p.Agent.HitPoints != parameter.PlayerHitPoints-parameter.ShoutDamage {
		t.Errorf("Expected hp %d, got %d", parameter.PlayerHitPoints-parameter.ShoutDamage, p.Agent.HitPoints)
	}
	if prot.Protester.RestTicks != parameter.ShoutRestTicks {
		t.Errorf("Expected rest %d, got %d", parameter.ShoutRestTicks, prot.Protester.RestTicks)
	}
	if h.cues.Count(core.SoundProtesterYell) != 1 {
		t.Error("Expected yell cue")
	}
}

// TestExitFieldFollowsToExit verifies every reachable anchor walks to the exit in exactly its hop count
func TestExitFieldFollowsToExit(t *testing.T) {
	w := NewWorld(11, Services{})
	w.InitializeLevel()
	w.AdvanceOneTick()

	field := w.exitField.Field
	for y := 0; y <= parameter.MaxAnchor; y++ {
		for x := 0; x <= parameter.MaxAnchor; x++ {
			start := field.GetDistance(x, y)
			if start == navigation.Unreachable {
				continue
			}
			cx, cy := x, y
			for step := 0; step < start; step++ {
				d := w.DirectionToExit(cx, cy)
				if d == core.DirNone {
					t.Fatalf("No direction at (%d,%d) on the way from (%d,%d)", cx, cy, x, y)
				}
				nx, ny := core.Step(cx, cy, d)
				if field.GetDistance(nx, ny) >= field.GetDistance(cx, cy) {
					t.Fatalf("Distance did not decrease from (%d,%d) to (%d,%d)", cx, cy, nx, ny)
				}
				cx, cy = nx, ny
			}
			if cx != parameter.ExitX || cy != parameter.ExitY {
				t.Errorf("Walk from (%d,%d) ended at (%d,%d)", x, y, cx, cy)
			}
		}
	}
}

// TestStatusLineFormat verifies the status text layout
func TestStatusLineFormat(t *testing.T) {
	h := newHarness(t)
	h.tally.Points = 1234
	h.run(t, 1)

	want := "Scr: 001234 Lvl:  0 Lives: 3 Hlth: 100% Wtr:  5 Gld:  0 Oil Left:  1 Sonar:  1"
	if h.status.Text != want {
		t.Errorf("Expected %q, got %q", want, h.status.Text)
	}
}

// TestTeardownLevel verifies all state is released
func TestTeardownLevel(t *testing.T) {
	w := NewWorld(5, Services{})
	w.InitializeLevel()
	w.AdvanceOneTick()
	w.TeardownLevel()

	if len(w.Entities()) != 0 {
		t.Errorf("Expected no entities, got %d", len(w.Entities()))
	}
	if w.Earth().Remaining() != 0 {
		t.Errorf("Expected no earth, got %d", w.Earth().Remaining())
	}
	if w.Player() != nil {
		t.Error("Expected player released")
	}
}

// TestSameSeedSameGame verifies two worlds with one seed and one input script stay identical
func TestSameSeedSameGame(t *testing.T) {
	script := []core.Action{core.ActionDown, core.ActionDown, core.ActionDown, core.ActionLeft, core.ActionLeft, core.ActionSquirt}
	run := func() Snapshot {
		w := NewWorld(99, Services{Input: &ScriptedInput{Actions: script}})
		w.InitializeLevel()
		for i := 0; i < 400; i++ {
			if w.AdvanceOneTick() != StatusContinue {
				break
			}
		}
		return w.Snapshot()
	}

	a, b := run(), run()
	if a.Tick != b.Tick || a.Score != b.Score || len(a.Entities) != len(b.Entities) {
		t.Fatalf("Runs diverged: tick %d/%d score %d/%d entities %d/%d",
			a.Tick, b.Tick, a.Score, b.Score, len(a.Entities), len(b.Entities))
	}
	for i := range a.Entities {
		if a.Entities[i] != b.Entities[i] {
			t.Errorf("Entity %d diverged: %+v vs %+v", i, a.Entities[i], b.Entities[i])
		}
	}
}

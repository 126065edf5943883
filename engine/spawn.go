package engine

import (
	"github.com/lixenwraith/tunnelman/component"
	"github.com/lixenwraith/tunnelman/parameter"
	"github.com/lixenwraith/tunnelman/system"
)

// placementAttempts bounds the rejection sampling of one distributed item
const placementAttempts = 10000

// distributeItems scatters boulders, barrels and buried gold, in that order
// Items that cannot be placed after placementAttempts draws are skipped
func (w *World) distributeItems(boulders, gold, barrels int) {
	for i := 0; i < boulders; i++ {
		x, y, ok := w.pickPosition(parameter.BoulderMinY, parameter.BoulderMaxY)
		if !ok {
			continue
		}
		w.earth.Excavate(x, y)
		w.Add(component.NewBoulder(x, y))
	}
	for i := 0; i < barrels; i++ {
		if x, y, ok := w.pickPosition(0, parameter.ItemMaxY); ok {
			w.Add(component.NewBarrel(x, y))
		}
	}
	for i := 0; i < gold; i++ {
		if x, y, ok := w.pickPosition(0, parameter.ItemMaxY); ok {
			w.Add(component.NewBuriedGold(x, y))
		}
	}
}

// pickPosition draws anchors with y in [minY, maxY] until one is clear of the shaft and of other items
func (w *World) pickPosition(minY, maxY int) (int, int, bool) {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		x := w.rng.Intn(parameter.MaxAnchor + 1)
		y := minY + w.rng.Intn(maxY-minY+1)
		if w.validPlacement(x, y) {
			return x, y, true
		}
	}
	return 0, 0, false
}

func (w *World) validPlacement(x, y int) bool {
	if x > parameter.ShaftLeft-parameter.Footprint && x < parameter.ShaftRight+1 && y > parameter.ShaftBottom {
		return false
	}
	for _, e := range w.store.All() {
		if e.DistanceTo(x, y) <= parameter.ItemSpacing {
			return false
		}
	}
	return true
}

// spawnProtester adds one protester at the exit when below the level's target and the interval elapsed
func (w *World) spawnProtester() {
	level := w.Level()
	current := w.store.CountWhere((*component.Entity).CanBeAnnoyed)

	if current < w.targetProtesters && w.ticksSinceProtester >= parameter.ProtesterSpawnInterval(level) {
		kind := component.KindRegularProtester
		if w.rng.Intn(100) < parameter.HardcoreChance(level) {
			kind = component.KindHardcoreProtester
		}
		w.Add(component.NewProtester(kind, level, system.RandomPatrolSteps(w)))
		w.ticksSinceProtester = 0
	}
	w.ticksSinceProtester++
}

// spawnGoodie rolls for a sonar kit or a water pool
func (w *World) spawnGoodie() {
	level := w.Level()
	if w.rng.Intn(parameter.GoodieChance(level)) != 0 {
		return
	}

	if w.rng.Intn(parameter.SonarKitOneIn) == 0 {
		w.Add(component.NewSonarKit(level))
		return
	}

	for k := 0; k < parameter.WaterPlacementAttempts; k++ {
		x := w.rng.Intn(parameter.MaxAnchor + 1)
		y := w.rng.Intn(parameter.MaxAnchor + 1)
		if !w.earth.Overlaps(x, y) && !w.earth.SupportBelow(x, y) && !w.hazardAt(x, y, 0) {
			w.Add(component.NewWaterPool(x, y, level))
			return
		}
	}
}

package engine

import "github.com/lixenwraith/tunnelman/parameter"

// anchorSpan is the number of valid anchors per axis
const anchorSpan = parameter.MaxAnchor + 1

const footprint = parameter.Footprint

// occupancy caches which anchors are blocked by earth or a hazard footprint
// Rebuilt lazily after any excavation or hazard movement
type occupancy struct {
	blocked []bool // index = y*anchorSpan + x
	dirty   bool
	version uint64
}

func newOccupancy() *occupancy {
	return &occupancy{
		blocked: make([]bool, anchorSpan*anchorSpan),
		dirty:   true,
	}
}

func (o *occupancy) invalidate() {
	o.dirty = true
}

// refresh rebuilds the mask from earth and live hazards
func (o *occupancy) refresh(w *World) {
	if !o.dirty {
		return
	}
	for y := 0; y < anchorSpan; y++ {
		for x := 0; x < anchorSpan; x++ {
			o.blocked[y*anchorSpan+x] = w.earth.Overlaps(x, y) || w.hazardAt(x, y, 0)
		}
	}
	o.dirty = false
	o.version++
}

// isBlocked assumes refresh was called, out-of-range anchors are blocked
func (o *occupancy) isBlocked(x, y int) bool {
	if x < 0 || y < 0 || x >= anchorSpan || y >= anchorSpan {
		return true
	}
	return o.blocked[y*anchorSpan+x]
}

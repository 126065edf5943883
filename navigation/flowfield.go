package navigation

import "github.com/lixenwraith/tunnelman/core"

// Unreachable marks cells the search never reached
const Unreachable = -1

// neighbour offsets used during expansion, order does not affect hop counts
var expandVectors = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// WallChecker is a function that returns true if cell blocks navigation
type WallChecker func(x, y int) bool

// FlowField stores breadth-first hop counts toward a single target cell
type FlowField struct {
	Width, Height int
	Distances     []int // Hop count from target, Unreachable if not reached

	// Cache state
	TargetX, TargetY int  // Target position this field was computed for
	Valid            bool // False if field needs recomputation

	// Reusable queue buffer to reduce allocations across recomputes
	queue []int
}

// NewFlowField creates an empty flow field for the given dimensions
func NewFlowField(width, height int) *FlowField {
	size := width * height
	f := &FlowField{
		Width:     width,
		Height:    height,
		Distances: make([]int, size),
		TargetX:   -1,
		TargetY:   -1,
		queue:     make([]int, 0, size),
	}
	for i := range f.Distances {
		f.Distances[i] = Unreachable
	}
	return f
}

// Invalidate marks field for recomputation
func (f *FlowField) Invalidate() {
	f.Valid = false
}

func (f *FlowField) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

// GetDistance returns hop count from target, Unreachable if out of bounds or not reached
func (f *FlowField) GetDistance(x, y int) int {
	if !f.inBounds(x, y) {
		return Unreachable
	}
	return f.Distances[y*f.Width+x]
}

// Compute runs a breadth-first expansion from the target
// A neighbour is expanded only if in bounds, not blocked and not yet reached
func (f *FlowField) Compute(targetX, targetY int, isBlocked WallChecker) {
	for i := range f.Distances {
		f.Distances[i] = Unreachable
	}

	if !f.inBounds(targetX, targetY) {
		f.Valid = false
		return
	}

	w := f.Width
	targetIdx := targetY*w + targetX
	f.Distances[targetIdx] = 0

	f.queue = f.queue[:0]
	f.queue = append(f.queue, targetIdx)

	for head := 0; head < len(f.queue); head++ {
		idx := f.queue[head]
		cx, cy := idx%w, idx/w
		dist := f.Distances[idx]

		for _, v := range expandVectors {
			nx, ny := cx+v[0], cy+v[1]
			if !f.inBounds(nx, ny) {
				continue
			}
			nIdx := ny*w + nx
			if f.Distances[nIdx] != Unreachable {
				continue
			}
			if isBlocked(nx, ny) {
				continue
			}
			f.Distances[nIdx] = dist + 1
			f.queue = append(f.queue, nIdx)
		}
	}

	f.TargetX = targetX
	f.TargetY = targetY
	f.Valid = true
}

// GetDirection returns the first neighbour, in core.LookupOrder, whose hop count is strictly lower
// Returns core.DirNone when the cell is unreachable, is the target, or has no improving neighbour
func (f *FlowField) GetDirection(x, y int) core.Direction {
	current := f.GetDistance(x, y)
	if current == Unreachable {
		return core.DirNone
	}

	for _, d := range core.LookupOrder {
		nx, ny := core.Step(x, y, d)
		nDist := f.GetDistance(nx, ny)
		if nDist != Unreachable && nDist < current {
			return d
		}
	}
	return core.DirNone
}

// GetDirectionWithin is GetDirection limited to cells at most maxHops from the target
func (f *FlowField) GetDirectionWithin(x, y, maxHops int) core.Direction {
	dist := f.GetDistance(x, y)
	if dist == Unreachable || dist > maxHops {
		return core.DirNone
	}
	return f.GetDirection(x, y)
}

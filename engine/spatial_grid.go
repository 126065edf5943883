package engine

import "github.com/lixenwraith/tunnelman/parameter"

// EarthGrid is a dense 2D occupancy map of earth cells, y grows upward
// Earth is only ever removed after Fill
type EarthGrid struct {
	Width  int
	Height int
	Cells  []bool // 1D array: index = y*Width + x, true = earth

	remaining int
}

// NewEarthGrid creates an empty grid with the specified dimensions
func NewEarthGrid(width, height int) *EarthGrid {
	return &EarthGrid{
		Width:  width,
		Height: height,
		Cells:  make([]bool, width*height),
	}
}

// Fill lays the initial earth: every row below EarthTopRow except the pre-carved shaft
func (g *EarthGrid) Fill() {
	g.remaining = 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			earth := y < parameter.EarthTopRow &&
				!(x >= parameter.ShaftLeft && x <= parameter.ShaftRight && y >= parameter.ShaftBottom)
			g.Cells[y*g.Width+x] = earth
			if earth {
				g.remaining++
			}
		}
	}
}

func (g *EarthGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Has reports earth in a single cell, false when out of bounds
func (g *EarthGrid) Has(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.Cells[y*g.Width+x]
}

// Excavate clears every in-bounds earth cell of the footprint anchored at (x, y)
// Returns true if anything was removed
func (g *EarthGrid) Excavate(x, y int) bool {
	dug := false
	for j := y; j < y+parameter.Footprint; j++ {
		for i := x; i < x+parameter.Footprint; i++ {
			if g.Has(i, j) {
				g.Cells[j*g.Width+i] = false
				g.remaining--
				dug = true
			}
		}
	}
	return dug
}

// Overlaps reports earth in any cell of the footprint anchored at (x, y)
func (g *EarthGrid) Overlaps(x, y int) bool {
	for j := y; j < y+parameter.Footprint; j++ {
		for i := x; i < x+parameter.Footprint; i++ {
			if g.Has(i, j) {
				return true
			}
		}
	}
	return false
}

// SupportBelow reports earth in the row directly under the footprint anchored at (x, y)
func (g *EarthGrid) SupportBelow(x, y int) bool {
	for i := x; i < x+parameter.Footprint; i++ {
		if g.Has(i, y-1) {
			return true
		}
	}
	return false
}

// Remaining returns the number of earth cells left
func (g *EarthGrid) Remaining() int {
	return g.remaining
}

// Clear removes all earth
func (g *EarthGrid) Clear() {
	for i := range g.Cells {
		g.Cells[i] = false
	}
	g.remaining = 0
}

package parameter

// World geometry
const (
	// GridWidth and GridHeight are the earth grid dimensions in cells
	GridWidth  = 64
	GridHeight = 64

	// Footprint is the edge length of every mover's square footprint
	Footprint = 4

	// MaxAnchor is the largest valid anchor coordinate for a footprint on either axis
	MaxAnchor = GridWidth - Footprint

	// EarthTopRow is the first row above the initial earth layer
	EarthTopRow = 60

	// Shaft is the pre-carved vertical tunnel, x in [ShaftLeft, ShaftRight], y >= ShaftBottom
	ShaftLeft   = 30
	ShaftRight  = 33
	ShaftBottom = 4

	// ExitX, ExitY is the protester spawn point and the anchor of the exit navigation field
	ExitX = 60
	ExitY = 60
)

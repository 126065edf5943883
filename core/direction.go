package core

// Direction is a facing or movement direction on the 4-connected grid
type Direction int8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// LookupOrder is the neighbour priority used when reading a navigation field
// Ties resolve to the first entry
var LookupOrder = [4]Direction{DirRight, DirLeft, DirUp, DirDown}

// Perpendicular returns the two directions at right angles to d
func (d Direction) Perpendicular() (Direction, Direction) {
	switch d {
	case DirLeft, DirRight:
		return DirUp, DirDown
	case DirUp, DirDown:
		return DirLeft, DirRight
	}
	return DirNone, DirNone
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

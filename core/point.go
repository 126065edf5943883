package core

import "math"

// Point is an integer grid coordinate, bottom-left anchored, y grows upward
type Point struct {
	X, Y int
}

// Distance returns the Euclidean distance between two anchors
func Distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return math.Sqrt(dx*dx + dy*dy)
}

// Step returns the coordinate one cell away in direction d
// DirNone returns the input unchanged
func Step(x, y int, d Direction) (int, int) {
	switch d {
	case DirUp:
		return x, y + 1
	case DirDown:
		return x, y - 1
	case DirLeft:
		return x - 1, y
	case DirRight:
		return x + 1, y
	}
	return x, y
}

// StepN returns the coordinate n cells away in direction d
func StepN(x, y int, d Direction, n int) (int, int) {
	for i := 0; i < n; i++ {
		x, y = Step(x, y, d)
	}
	return x, y
}

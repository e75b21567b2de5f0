package systems

import (
	"math"

	"github.com/pthm-cable/rps/components"
)

// Distance returns the Euclidean distance between two positions.
func Distance(a, b components.Position) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// heading returns the angle from (x, y) to (tx, ty).
// Coincident points give 0; math.Atan2 already returns 0 for (0, 0),
// the explicit check keeps that independent of signed zeros.
func heading(x, y, tx, ty float64) float64 {
	dx, dy := tx-x, ty-y
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

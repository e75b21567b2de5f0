package components

// Position represents an agent's location in field coordinates.
// The field does not clamp positions; edge avoidance only biases movement
// back toward the interior, so agents may briefly sit outside the bounds.
type Position struct {
	X, Y float64
}

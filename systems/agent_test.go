package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/rps/components"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

// testMover returns a mover on the default field with zero jitter.
func testMover() *Mover {
	return NewMover(DefaultParams(), FixedSource{T: 0.5})
}

func TestDistance(t *testing.T) {
	a := components.Position{X: 0, Y: 0}
	b := components.Position{X: 3, Y: 4}

	if d := Distance(a, b); !near(d, 5) {
		t.Errorf("Distance = %v, want 5", d)
	}
	if Distance(a, b) != Distance(b, a) {
		t.Error("Distance should be symmetric")
	}
	if d := Distance(b, b); d != 0 {
		t.Errorf("Distance to self = %v, want 0", d)
	}
}

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name   string
		start  components.Position
		tx, ty float64
		wantX  float64
		wantY  float64
	}{
		{"right", components.Position{X: 400, Y: 700}, 500, 700, 403, 700},
		{"left", components.Position{X: 400, Y: 700}, 300, 700, 397, 700},
		{"down", components.Position{X: 400, Y: 700}, 400, 800, 400, 703},
		{"diagonal", components.Position{X: 400, Y: 700}, 500, 800, 400 + 3*math.Sqrt2/2, 700 + 3*math.Sqrt2/2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMover()
			pos := tt.start
			m.MoveTowards(&pos, tt.tx, tt.ty)
			if !near(pos.X, tt.wantX) || !near(pos.Y, tt.wantY) {
				t.Errorf("got (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMoveAwayFrom(t *testing.T) {
	m := testMover()
	pos := components.Position{X: 400, Y: 700}
	m.MoveAwayFrom(&pos, 500, 700)

	if !near(pos.X, 397) || !near(pos.Y, 700) {
		t.Errorf("got (%v, %v), want (397, 700)", pos.X, pos.Y)
	}
}

func TestMoveJitterPerAxis(t *testing.T) {
	// First draw (x axis) at the low end, second (y axis) at the high end.
	src := &ScriptedSource{Fractions: []float64{0, 1}}
	m := NewMover(DefaultParams(), src)

	pos := components.Position{X: 400, Y: 700}
	m.MoveTowards(&pos, 400+100*math.Cos(math.Pi/3), 700+100*math.Sin(math.Pi/3))

	wantX := 400 + 2.7*math.Cos(math.Pi/3)
	wantY := 700 + 3.3*math.Sin(math.Pi/3)
	if !near(pos.X, wantX) || !near(pos.Y, wantY) {
		t.Errorf("got (%v, %v), want (%v, %v)", pos.X, pos.Y, wantX, wantY)
	}
	if src.Draws() != 2 {
		t.Errorf("draws = %d, want 2", src.Draws())
	}
}

func TestMoveTowardsSelfIsHeadingZero(t *testing.T) {
	m := testMover()
	pos := components.Position{X: 400, Y: 700}
	m.MoveTowards(&pos, 400, 700)

	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
		t.Fatalf("got NaN position (%v, %v)", pos.X, pos.Y)
	}
	if !near(pos.X, 403) || !near(pos.Y, 700) {
		t.Errorf("got (%v, %v), want heading 0 step to (403, 700)", pos.X, pos.Y)
	}
}

func TestRepelFrom(t *testing.T) {
	tests := []struct {
		name  string
		other components.Position
		wantX float64
	}{
		{"inside radius", components.Position{X: 410, Y: 700}, 397},
		{"exactly at radius", components.Position{X: 420, Y: 700}, 400},
		{"outside radius", components.Position{X: 430, Y: 700}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMover()
			pos := components.Position{X: 400, Y: 700}
			other := tt.other
			m.RepelFrom(&pos, other)

			if !near(pos.X, tt.wantX) || !near(pos.Y, 700) {
				t.Errorf("got (%v, %v), want (%v, 700)", pos.X, pos.Y, tt.wantX)
			}
			if other != tt.other {
				t.Error("RepelFrom must not move the other agent")
			}
		})
	}
}

func TestAvoidEdges(t *testing.T) {
	tests := []struct {
		name         string
		start        components.Position
		wantX, wantY float64
	}{
		{"interior untouched", components.Position{X: 400, Y: 700}, 400, 700},
		{"left", components.Position{X: 0, Y: 700}, 3, 700},
		{"right", components.Position{X: 800, Y: 700}, 797, 700},
		{"top", components.Position{X: 400, Y: 10}, 400, 13},
		{"bottom", components.Position{X: 400, Y: 1430}, 400, 1427},
		{"outside left", components.Position{X: -20, Y: 700}, -17, 700},
		// Horizontal nudge first, then the vertical check sees the new x.
		{"top-left corner", components.Position{X: 10, Y: 10}, 13, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := testMover()
			pos := tt.start
			m.AvoidEdges(&pos)
			if !near(pos.X, tt.wantX) || !near(pos.Y, tt.wantY) {
				t.Errorf("got (%v, %v), want (%v, %v)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestEdgeCorrectionIsOneLevel(t *testing.T) {
	src := &ScriptedSource{Fractions: []float64{0.5}}
	m := NewMover(DefaultParams(), src)

	// Step outward to x=-3, then a single corrective step back to x=0.
	// The correction is not itself corrected, even though x=0 is still
	// inside the margin.
	pos := components.Position{X: 0, Y: 700}
	m.MoveTowards(&pos, -100, 700)

	if !near(pos.X, 0) {
		t.Errorf("x = %v, want 0 after one correction", pos.X)
	}
	if src.Draws() != 4 {
		t.Errorf("draws = %d, want 4 (one move + one correction)", src.Draws())
	}
}

package systems

import (
	"math"

	"github.com/pthm-cable/rps/components"
)

// Agent is a view onto one agent's components inside a Population.
// The pointers alias ECS storage, so writes through them mutate the world.
type Agent struct {
	Pos   *components.Position
	Tribe *components.Tribe
}

// Kind returns the agent's current faction.
func (a Agent) Kind() components.Kind {
	return a.Tribe.Kind
}

// DistanceTo returns the Euclidean distance between two agents.
func (a Agent) DistanceTo(other Agent) float64 {
	return Distance(*a.Pos, *other.Pos)
}

// Mover implements the steering primitives shared by every agent:
// seek, flee, same-kind repulsion and soft edge avoidance.
type Mover struct {
	params Params
	rng    Source
}

// NewMover creates a mover for the given rule constants and random source.
func NewMover(params Params, rng Source) *Mover {
	return &Mover{params: params, rng: rng}
}

// MoveTowards displaces pos one step toward (tx, ty), then applies edge avoidance.
func (m *Mover) MoveTowards(pos *components.Position, tx, ty float64) {
	m.move(pos, tx, ty, 1, false)
}

// MoveAwayFrom displaces pos one step directly away from (tx, ty), then
// applies edge avoidance.
func (m *Mover) MoveAwayFrom(pos *components.Position, tx, ty float64) {
	m.move(pos, tx, ty, -1, false)
}

// RepelFrom pushes pos away from other when they are closer than the
// repulsion radius. Only pos is mutated.
func (m *Mover) RepelFrom(pos *components.Position, other components.Position) {
	if Distance(*pos, other) < m.params.RepulsionRadius {
		m.MoveAwayFrom(pos, other.X, other.Y)
	}
}

// AvoidEdges nudges pos toward the interior when it is within the edge
// margin of a border. The horizontal and vertical axes are checked
// independently, so a corner can receive two nudges.
func (m *Mover) AvoidEdges(pos *components.Position) {
	m.avoidEdges(pos)
}

// move applies one displacement of (speed + jitter) along the heading to the
// target, per axis with independent jitter. sign -1 reverses the direction.
// Corrective moves made by edge avoidance pass corrective=true and are not
// corrected again, which bounds the self-correction to one level.
func (m *Mover) move(pos *components.Position, tx, ty, sign float64, corrective bool) {
	h := heading(pos.X, pos.Y, tx, ty)
	p := m.params
	pos.X += sign * (p.Speed + m.rng.Uniform(-p.Jitter, p.Jitter)) * math.Cos(h)
	pos.Y += sign * (p.Speed + m.rng.Uniform(-p.Jitter, p.Jitter)) * math.Sin(h)
	if !corrective {
		m.avoidEdges(pos)
	}
}

func (m *Mover) avoidEdges(pos *components.Position) {
	p := m.params
	margin := p.EdgeMargin

	// Each correction re-reads pos, so a horizontal nudge is visible to the
	// vertical check that follows.
	if pos.X < margin {
		m.move(pos, pos.X+margin, pos.Y, 1, true)
	} else if pos.X > p.Width-margin {
		m.move(pos, pos.X-margin, pos.Y, 1, true)
	}
	if pos.Y < margin {
		m.move(pos, pos.X, pos.Y+margin, 1, true)
	} else if pos.Y > p.Height-margin {
		m.move(pos, pos.X, pos.Y-margin, 1, true)
	}
}

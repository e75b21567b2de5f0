package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/rps/components"
)

// AgentState is the read-only per-agent record handed to renderers and
// written to snapshots.
type AgentState struct {
	X    float64         `json:"x"`
	Y    float64         `json:"y"`
	Kind components.Kind `json:"kind"`
}

// Population is the ordered set of agents, stored as entities in an ECS world.
//
// Evaluation order is spawn order. The entity list is kept explicitly rather
// than relying on query order, because the step's same-frame visibility
// rules depend on it.
type Population struct {
	mapper *ecs.Map2[components.Position, components.Tribe]
	filter *ecs.Filter2[components.Position, components.Tribe]

	entities []ecs.Entity

	// Cached component views, rebuilt after spawning since storage may move.
	agents []Agent
	dirty  bool
}

// NewPopulation creates an empty population backed by a fresh ECS world.
func NewPopulation() *Population {
	world := ecs.NewWorld()
	return &Population{
		mapper: ecs.NewMap2[components.Position, components.Tribe](world),
		filter: ecs.NewFilter2[components.Position, components.Tribe](world),
	}
}

// Spawn appends an agent at (x, y) of the given kind.
func (p *Population) Spawn(x, y float64, kind components.Kind) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	tribe := components.Tribe{Kind: kind}
	e := p.mapper.NewEntity(&pos, &tribe)
	p.entities = append(p.entities, e)
	p.dirty = true
	return e
}

// SpawnStates appends one agent per state, preserving order.
func (p *Population) SpawnStates(states []AgentState) {
	for _, s := range states {
		p.Spawn(s.X, s.Y, s.Kind)
	}
}

// Len returns the number of agents.
func (p *Population) Len() int {
	return len(p.entities)
}

// Agents returns component views in evaluation order.
// The returned slice stays valid until the next Spawn.
func (p *Population) Agents() []Agent {
	if p.dirty || len(p.agents) != len(p.entities) {
		p.agents = p.agents[:0]
		for _, e := range p.entities {
			pos, tribe := p.mapper.Get(e)
			p.agents = append(p.agents, Agent{Pos: pos, Tribe: tribe})
		}
		p.dirty = false
	}
	return p.agents
}

// Agent returns the view for the agent at index i.
func (p *Population) Agent(i int) Agent {
	return p.Agents()[i]
}

// Counts tallies agents per kind.
func (p *Population) Counts() Counts {
	var c Counts
	query := p.filter.Query()
	for query.Next() {
		_, tribe := query.Get()
		c[tribe.Kind]++
	}
	return c
}

// Snapshot copies every agent's position and kind, in evaluation order.
func (p *Population) Snapshot() []AgentState {
	return p.SnapshotInto(nil)
}

// SnapshotInto appends the snapshot to dst[:0] so callers can reuse a buffer.
func (p *Population) SnapshotInto(dst []AgentState) []AgentState {
	dst = dst[:0]
	for _, a := range p.Agents() {
		dst = append(dst, AgentState{X: a.Pos.X, Y: a.Pos.Y, Kind: a.Tribe.Kind})
	}
	return dst
}

// Counts holds the number of agents of each kind, indexed by Kind.
type Counts [components.NumKinds]int

// Total returns the sum over all kinds.
func (c Counts) Total() int {
	return c[components.KindRock] + c[components.KindPaper] + c[components.KindScissors]
}

// Of returns the count for kind k.
func (c Counts) Of(k components.Kind) int {
	return c[k]
}

// Winner reports the kind holding the whole population, if any.
// An empty population has no winner.
func (c Counts) Winner() (components.Kind, bool) {
	total := c.Total()
	if total == 0 {
		return 0, false
	}
	for _, k := range components.Kinds {
		if c[k] == total {
			return k, true
		}
	}
	return 0, false
}

// Alive returns how many kinds still have at least one agent.
func (c Counts) Alive() int {
	n := 0
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}

package systems

import "github.com/pthm-cable/rps/components"

// AgentObserver is notified after each agent has moved during a step,
// with the agent's index and its post-move view.
type AgentObserver func(index int, a Agent)

// Conversion records one agent converting another during a step.
type Conversion struct {
	Pursuer int             // index of the converting agent
	Prey    int             // index of the converted agent
	From    components.Kind // prey kind before conversion
	To      components.Kind // pursuer kind, now also the prey's kind
}

// StepSystem advances a population by one tick of the pursue/flee/convert rules.
//
// Agents are evaluated strictly in population order against a single mutable
// container. Movement of agent i, and any conversion it causes, is visible to
// agent i+1 within the same tick.
type StepSystem struct {
	params Params
	rng    Source
	mover  *Mover

	observer    AgentObserver
	conversions []Conversion
}

// NewStepSystem creates a step system.
func NewStepSystem(params Params, rng Source) *StepSystem {
	return &StepSystem{
		params: params,
		rng:    rng,
		mover:  NewMover(params, rng),
	}
}

// SetObserver installs a per-agent hook, called after each agent moves.
func (s *StepSystem) SetObserver(fn AgentObserver) {
	s.observer = fn
}

// Conversions returns the conversions made during the last Update.
// The slice is reused by the next Update.
func (s *StepSystem) Conversions() []Conversion {
	return s.conversions
}

// Update runs one tick over the whole population and returns the per-kind
// counts afterwards.
func (s *StepSystem) Update(pop *Population) Counts {
	s.conversions = s.conversions[:0]
	agents := pop.Agents()

	for i, a := range agents {
		s.updateAgent(agents, i, a)
		if s.observer != nil {
			s.observer(i, a)
		}
	}

	return pop.Counts()
}

func (s *StepSystem) updateAgent(agents []Agent, i int, a Agent) {
	kind := a.Tribe.Kind
	p := s.params

	// Same-kind repulsion, applied sequentially: each push moves a before
	// the next neighbour is checked.
	for j, b := range agents {
		if j == i || b.Tribe.Kind != kind {
			continue
		}
		s.mover.RepelFrom(a.Pos, *b.Pos)
	}

	target := nearestOfKind(agents, i, kind.Prey())
	threat := nearestOfKind(agents, i, kind.Threat())

	switch {
	case threat >= 0 && a.DistanceTo(agents[threat]) < p.DetectionRadius:
		t := agents[threat].Pos
		s.mover.MoveAwayFrom(a.Pos, t.X, t.Y)

	case target >= 0 && a.DistanceTo(agents[target]) < p.DetectionRadius:
		prey := agents[target]
		s.mover.MoveTowards(a.Pos, prey.Pos.X, prey.Pos.Y)
		if a.DistanceTo(prey) < p.ConversionRadius {
			s.conversions = append(s.conversions, Conversion{
				Pursuer: i,
				Prey:    target,
				From:    prey.Tribe.Kind,
				To:      kind,
			})
			prey.Tribe.Kind = kind
		}

	default:
		wx := s.rng.Uniform(0, p.Width)
		wy := s.rng.Uniform(0, p.Height)
		s.mover.MoveTowards(a.Pos, wx, wy)
	}
}

// nearestOfKind returns the index of the agent of kind k closest to
// agents[i], or -1 when none exists. Ties go to the lowest index.
func nearestOfKind(agents []Agent, i int, k components.Kind) int {
	best := -1
	bestDist := 0.0
	origin := *agents[i].Pos
	for j, b := range agents {
		if j == i || b.Tribe.Kind != k {
			continue
		}
		d := Distance(origin, *b.Pos)
		if best < 0 || d < bestDist {
			best = j
			bestDist = d
		}
	}
	return best
}

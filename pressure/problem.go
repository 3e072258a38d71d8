package pressure

import (
	"fmt"

	"github.com/katalvlaran/volcanium/distance"
	"github.com/katalvlaran/volcanium/valve"
)

// problem is the read-only search instance shared by every worker.
//
// Positive-flow valves are renumbered into slots 0..k-1 so the closed set fits
// a uint64. The start valve gets the extra node index k; travel tables are
// indexed [from*stride+to] with from ∈ 0..k and to ∈ 0..k-1.
type problem struct {
	budget int
	home   int    // node index of the start valve (== k)
	all    uint64 // mask with every slot closed
	flow   []int  // slot → flow rate
	cost   []int  // [from*stride+to] → minutes to walk there and open it
	stride int    // k+1
}

// prepare applies opts over DefaultOptions(defaultBudget), validates everything
// eagerly and compiles the search instance.
//
// Validation order: nil inputs → matrix/graph mismatch → budget → workers →
// strategy → start valve → target count.
func prepare(g *valve.Graph, dist *distance.Matrix, defaultBudget int, opts []Option) (Options, *problem, error) {
	cfg := DefaultOptions(defaultBudget)
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil || dist == nil {
		return cfg, nil, ErrNilInput
	}
	if err := sameValves(g, dist); err != nil {
		return cfg, nil, err
	}
	if cfg.Budget <= 0 {
		return cfg, nil, fmt.Errorf("%w: got %d", ErrInvalidBudget, cfg.Budget)
	}
	if cfg.Workers < 1 {
		return cfg, nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, cfg.Workers)
	}
	if !cfg.Strategy.valid() {
		return cfg, nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(cfg.Strategy))
	}
	start, ok := g.Index(cfg.Start)
	if !ok {
		return cfg, nil, fmt.Errorf("%w: %q", ErrUnknownStart, cfg.Start)
	}
	targets := g.PositiveFlow()
	if len(targets) > maxTargets {
		return cfg, nil, fmt.Errorf("%w: %d > %d", ErrTooManyValves, len(targets), maxTargets)
	}

	return cfg, compile(g, dist, start, targets, cfg.Budget), nil
}

// sameValves checks that dist was built for a graph with g's valves in g's order.
func sameValves(g *valve.Graph, dist *distance.Matrix) error {
	if g.Len() != dist.Len() {
		return fmt.Errorf("%w: graph has %d valves, matrix %d", ErrDimensionMismatch, g.Len(), dist.Len())
	}
	for i, id := range dist.IDs() {
		if g.ID(i) != id {
			return fmt.Errorf("%w: index %d is %s in graph, %s in matrix", ErrDimensionMismatch, i, g.ID(i), id)
		}
	}

	return nil
}

// compile builds the slot tables. Complexity: O(k²).
func compile(g *valve.Graph, dist *distance.Matrix, start int, targets []int, budget int) *problem {
	k := len(targets)
	p := &problem{
		budget: budget,
		home:   k,
		all:    uint64(1)<<k - 1, // k == 64 wraps to all ones
		flow:   make([]int, k),
		cost:   make([]int, (k+1)*(k+1)),
		stride: k + 1,
	}

	// node → graph index; the start valve sits at node k.
	nodes := make([]int, k+1)
	copy(nodes, targets)
	nodes[k] = start

	for s, v := range targets {
		p.flow[s] = g.Flow(v)
	}
	var from, to int
	for from = 0; from <= k; from++ {
		for to = 0; to < k; to++ {
			p.cost[from*p.stride+to] = dist.At(nodes[from], nodes[to]) + 1
		}
	}

	return p
}

// open evaluates walking from node at (clock at elapsed) to slot s and opening it.
// ok is false when the opening would leave no flowing minute.
func (p *problem) open(at, elapsed, s int) (gain, spent int, ok bool) {
	spent = p.cost[at*p.stride+s]
	left := p.budget - elapsed - spent
	if left < 1 {
		return 0, 0, false
	}

	return left * p.flow[s], spent, true
}

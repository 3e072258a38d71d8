package valve

import (
	"fmt"
	"sort"
)

// NewGraph validates records and builds an immutable Graph.
//
// Stages:
//  1. Catalog IDs and flow rates, rejecting empty/duplicate IDs and negative flow.
//  2. Resolve neighbour IDs to indices, rejecting unknown references.
//  3. Verify every tunnel is listed from both ends.
//
// Returns ErrMalformedGraph (wrapped with context) on any violation.
// Complexity: O(V + E log E) time for the sorted adjacency rows, O(V + E) memory.
func NewGraph(records []Record) (*Graph, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no valves", ErrMalformedGraph)
	}

	n := len(records)
	g := &Graph{
		ids:   make([]string, n),
		index: make(map[string]int, n),
		flow:  make([]int, n),
		adj:   make([][]int, n),
	}

	// 1) Catalog valves.
	var (
		i int
		r Record
	)
	for i, r = range records {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: record %d has an empty ID", ErrMalformedGraph, i)
		}
		if _, dup := g.index[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate valve %s", ErrMalformedGraph, r.ID)
		}
		if r.FlowRate < 0 {
			return nil, fmt.Errorf("%w: valve %s has negative flow rate %d", ErrMalformedGraph, r.ID, r.FlowRate)
		}
		g.ids[i] = r.ID
		g.index[r.ID] = i
		g.flow[i] = r.FlowRate
	}

	// 2) Resolve neighbours; sets drop duplicate entries and self references.
	sets := make([]map[int]struct{}, n)
	for i, r = range records {
		sets[i] = make(map[int]struct{}, len(r.Neighbours))
		for _, nb := range r.Neighbours {
			j, ok := g.index[nb]
			if !ok {
				return nil, fmt.Errorf("%w: valve %s lists unknown neighbour %q", ErrMalformedGraph, r.ID, nb)
			}
			if j == i {
				continue
			}
			sets[i][j] = struct{}{}
		}
	}

	// 3) Symmetry: every tunnel must be declared from both ends.
	for i = range sets {
		row := make([]int, 0, len(sets[i]))
		for j := range sets[i] {
			if _, back := sets[j][i]; !back {
				return nil, fmt.Errorf("%w: tunnel %s→%s has no reverse %s→%s",
					ErrMalformedGraph, g.ids[i], g.ids[j], g.ids[j], g.ids[i])
			}
			row = append(row, j)
		}
		sort.Ints(row)
		g.adj[i] = row
	}

	return g, nil
}

// Len returns the number of valves.
func (g *Graph) Len() int { return len(g.ids) }

// Index returns the dense index of id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]

	return i, ok
}

// ID returns the ID of the valve at index i. Panics if i is out of range.
func (g *Graph) ID(i int) string { return g.ids[i] }

// Flow returns the flow rate of the valve at index i. Panics if i is out of range.
func (g *Graph) Flow(i int) int { return g.flow[i] }

// Adjacent returns a copy of the neighbour indices of valve i, ascending.
func (g *Graph) Adjacent(i int) []int {
	out := make([]int, len(g.adj[i]))
	copy(out, g.adj[i])

	return out
}

// IDs returns all valve IDs in input order.
func (g *Graph) IDs() []string {
	out := make([]string, len(g.ids))
	copy(out, g.ids)

	return out
}

// FlowRate returns the flow rate of the valve named id.
func (g *Graph) FlowRate(id string) (int, error) {
	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrValveNotFound, id)
	}

	return g.flow[i], nil
}

// Neighbours returns the IDs of the valves one tunnel away from id,
// ordered by input position.
func (g *Graph) Neighbours(id string) ([]string, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrValveNotFound, id)
	}
	out := make([]string, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.ids[j]
	}

	return out, nil
}

// PositiveFlow returns the indices of valves with a flow rate above zero, ascending.
// Only these are worth opening; the rest are waypoints.
func (g *Graph) PositiveFlow() []int {
	out := make([]int, 0, len(g.flow))
	for i, f := range g.flow {
		if f > 0 {
			out = append(out, i)
		}
	}

	return out
}

// TotalFlow returns the sum of all flow rates.
func (g *Graph) TotalFlow() int {
	var sum int
	for _, f := range g.flow {
		sum += f
	}

	return sum
}

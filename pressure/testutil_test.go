package pressure_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/volcanium/distance"
	"github.com/katalvlaran/volcanium/valve"
)

// network bundles a graph with its distance matrix.
type network struct {
	g *valve.Graph
	d *distance.Matrix
}

func mustNetwork(t testing.TB, g *valve.Graph) network {
	t.Helper()

	d, err := distance.Build(g)
	require.NoError(t, err)

	return network{g: g, d: d}
}

// exampleNetwork is the ten-valve reference network (AA … JJ).
func exampleNetwork(t testing.TB) network {
	t.Helper()

	f, err := os.Open("../testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()

	g, err := valve.ParseGraph(f)
	require.NoError(t, err)

	return mustNetwork(t, g)
}

// randomNetwork builds a connected network of n valves named V00.., with start
// valve "AA" at index 0 and about `positive` valves with non-zero flow.
func randomNetwork(t testing.TB, rng *rand.Rand, n, positive int) network {
	t.Helper()

	ids := make([]string, n)
	ids[0] = "AA"
	for i := 1; i < n; i++ {
		ids[i] = string([]byte{'V', byte('0' + i/10), byte('0' + i%10)})
	}
	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = map[int]bool{}
	}
	link := func(a, b int) {
		if a != b {
			adj[a][b], adj[b][a] = true, true
		}
	}
	for i := 1; i < n; i++ {
		link(i, rng.Intn(i))
	}
	for e := 0; e < n/2; e++ {
		link(rng.Intn(n), rng.Intn(n))
	}

	records := make([]valve.Record, n)
	for i := range records {
		records[i].ID = ids[i]
		for j := range adj[i] {
			records[i].Neighbours = append(records[i].Neighbours, ids[j])
		}
	}
	for _, i := range rng.Perm(n - 1)[:positive] {
		records[i+1].FlowRate = 1 + rng.Intn(25)
	}

	g, err := valve.NewGraph(records)
	require.NoError(t, err)

	return mustNetwork(t, g)
}

// bruteSolo is an exhaustive depth-first reference for the single-agent optimum.
func bruteSolo(nw network, start string, budget int) int {
	from, _ := nw.g.Index(start)
	targets := nw.g.PositiveFlow()
	open := make([]bool, len(targets))

	var walk func(at, elapsed int) int
	walk = func(at, elapsed int) int {
		best := 0
		for s, v := range targets {
			if open[s] {
				continue
			}
			t := elapsed + nw.d.At(at, v) + 1
			if t >= budget {
				continue
			}
			open[s] = true
			if r := (budget-t)*nw.g.Flow(v) + walk(v, t); r > best {
				best = r
			}
			open[s] = false
		}
		return best
	}

	return walk(from, 0)
}

// bruteDuo is an exhaustive reference for the two-agent optimum: at every step
// either agent may open any closed valve it can still reach in time.
func bruteDuo(nw network, start string, budget int) int {
	from, _ := nw.g.Index(start)
	targets := nw.g.PositiveFlow()
	open := make([]bool, len(targets))

	var walk func(at, elapsed [2]int) int
	walk = func(at, elapsed [2]int) int {
		best := 0
		for agent := 0; agent < 2; agent++ {
			for s, v := range targets {
				if open[s] {
					continue
				}
				t := elapsed[agent] + nw.d.At(at[agent], v) + 1
				if t >= budget {
					continue
				}
				nextAt, nextElapsed := at, elapsed
				nextAt[agent], nextElapsed[agent] = v, t
				open[s] = true
				if r := (budget-t)*nw.g.Flow(v) + walk(nextAt, nextElapsed); r > best {
					best = r
				}
				open[s] = false
			}
		}
		return best
	}

	return walk([2]int{from, from}, [2]int{})
}

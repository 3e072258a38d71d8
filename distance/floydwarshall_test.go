package distance_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/volcanium/distance"
	"github.com/katalvlaran/volcanium/valve"
)

func loadExample(t testing.TB) *valve.Graph {
	t.Helper()

	f, err := os.Open("../testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()

	g, err := valve.ParseGraph(f)
	require.NoError(t, err)

	return g
}

// randomConnected builds a connected network: a random spanning tree plus extra tunnels.
func randomConnected(t testing.TB, rng *rand.Rand, n, extra int) *valve.Graph {
	t.Helper()

	ids := make([]string, n)
	for i := range ids {
		ids[i] = string(rune('A'+i/26)) + string(rune('A'+i%26))
	}
	adj := make([]map[int]bool, n)
	for i := range adj {
		adj[i] = map[int]bool{}
	}
	link := func(a, b int) {
		if a == b {
			return
		}
		adj[a][b] = true
		adj[b][a] = true
	}
	for i := 1; i < n; i++ {
		link(i, rng.Intn(i))
	}
	for e := 0; e < extra; e++ {
		link(rng.Intn(n), rng.Intn(n))
	}

	records := make([]valve.Record, n)
	for i := range records {
		records[i] = valve.Record{ID: ids[i], FlowRate: rng.Intn(5)}
		for j := range adj[i] {
			records[i].Neighbours = append(records[i].Neighbours, ids[j])
		}
	}
	g, err := valve.NewGraph(records)
	require.NoError(t, err)

	return g
}

func TestBuild_Example(t *testing.T) {
	m, err := distance.Build(loadExample(t))
	require.NoError(t, err)
	require.Equal(t, 10, m.Len())

	cases := []struct {
		a, b string
		want int
	}{
		{"AA", "AA", 0},
		{"AA", "DD", 1},
		{"AA", "JJ", 2},
		{"AA", "HH", 5},
		{"JJ", "HH", 7},
		{"BB", "EE", 3},
		{"CC", "GG", 4},
	}
	for _, tc := range cases {
		got, err := m.Between(tc.a, tc.b)
		require.NoError(t, err)
		require.Equalf(t, tc.want, got, "d(%s,%s)", tc.a, tc.b)
	}

	_, err = m.Between("AA", "ZZ")
	require.ErrorIs(t, err, distance.ErrUnknownValve)
}

func TestBuild_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(16))
	graphs := []*valve.Graph{loadExample(t)}
	for i := 0; i < 10; i++ {
		graphs = append(graphs, randomConnected(t, rng, 5+rng.Intn(30), rng.Intn(40)))
	}

	for _, g := range graphs {
		m, err := distance.Build(g)
		require.NoError(t, err)

		n := m.Len()
		for a := 0; a < n; a++ {
			require.Zero(t, m.At(a, a))
			for b := 0; b < n; b++ {
				require.Equal(t, m.At(a, b), m.At(b, a), "symmetry")
				require.GreaterOrEqual(t, m.At(a, b), 0)
				for c := 0; c < n; c++ {
					require.LessOrEqual(t, m.At(a, c), m.At(a, b)+m.At(b, c), "triangle")
				}
			}
		}
	}
}

// TestBuild_MatchesGonum cross-checks the closure against gonum's Floyd–Warshall.
func TestBuild_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 5; round++ {
		g := randomConnected(t, rng, 8+rng.Intn(25), rng.Intn(30))

		m, err := distance.Build(g)
		require.NoError(t, err)

		ug := simple.NewUndirectedGraph()
		for i := 0; i < g.Len(); i++ {
			ug.AddNode(simple.Node(i))
		}
		for i := 0; i < g.Len(); i++ {
			for _, j := range g.Adjacent(i) {
				if i < j {
					ug.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
				}
			}
		}
		oracle, ok := path.FloydWarshall(ug)
		require.True(t, ok)

		for i := 0; i < g.Len(); i++ {
			for j := 0; j < g.Len(); j++ {
				require.Equal(t, int(oracle.Weight(int64(i), int64(j))), m.At(i, j))
			}
		}
	}
}

func TestBuild_SingleValve(t *testing.T) {
	g, err := valve.NewGraph([]valve.Record{{ID: "AA", FlowRate: 3}})
	require.NoError(t, err)

	m, err := distance.Build(g)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())
	require.Zero(t, m.At(0, 0))
	require.Equal(t, []int{0}, m.Row(0))
}

func TestBuild_Disconnected(t *testing.T) {
	g, err := valve.NewGraph([]valve.Record{
		{ID: "AA", Neighbours: []string{"BB"}},
		{ID: "BB", Neighbours: []string{"AA"}},
		{ID: "CC"},
	})
	require.NoError(t, err)

	_, err = distance.Build(g)
	require.ErrorIs(t, err, distance.ErrUnreachablePair)
	require.Contains(t, err.Error(), "CC")
}

func TestBuild_NilGraph(t *testing.T) {
	_, err := distance.Build(nil)
	require.ErrorIs(t, err, distance.ErrNilGraph)
}

package valve

import "errors"

// Sentinel errors for valve graph construction and lookups.
var (
	// ErrMalformedGraph indicates the records do not form a valid undirected graph
	// (unknown neighbour, asymmetric tunnel, empty or duplicate ID, negative flow).
	ErrMalformedGraph = errors.New("valve: malformed graph")

	// ErrValveNotFound indicates a lookup referenced an ID that is not in the graph.
	ErrValveNotFound = errors.New("valve: valve not found")

	// ErrSyntax indicates an input line does not follow the valve line format.
	ErrSyntax = errors.New("valve: syntax error")
)

// Record describes one valve as produced by a parser.
type Record struct {
	// ID uniquely names the valve, e.g. "AA".
	ID string

	// FlowRate is the per-minute yield once the valve is open. Must be >= 0.
	FlowRate int

	// Neighbours lists the IDs reachable through a single tunnel.
	Neighbours []string
}

// Graph is an immutable valve network.
//
// Valves are addressed by dense indices 0..Len()-1 in input order; all search code
// works on indices and only translates to IDs at the edges of the API.
type Graph struct {
	ids   []string       // index → ID
	index map[string]int // ID → index
	flow  []int          // index → flow rate
	adj   [][]int        // index → neighbour indices, ascending
}

package valve_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/volcanium/valve"
)

// ExampleParseGraph reads three valves in a line and inspects the middle one.
func ExampleParseGraph() {
	in := `Valve AA has flow rate=0; tunnel leads to valve BB
Valve BB has flow rate=13; tunnels lead to valves AA, CC
Valve CC has flow rate=2; tunnel leads to valve BB`

	g, err := valve.ParseGraph(strings.NewReader(in))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	flow, _ := g.FlowRate("BB")
	nb, _ := g.Neighbours("BB")
	fmt.Println(g.Len(), flow, nb)
	// Output: 3 13 [AA CC]
}

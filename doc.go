// Package volcanium plans valve openings in a tunnel network to release as much
// pressure as possible before time runs out.
//
// The work is split across three library packages, each usable on its own:
//
//	valve/    - valve records, the tunnel graph and the line-format parser
//	distance/ - all-pairs travel times (Floyd–Warshall) over a valve graph
//	pressure/ - best-first optimizers for one agent (Solo) or two (Duo)
//
// A typical pipeline:
//
//	g, _ := valve.ParseGraph(r)
//	dist, _ := distance.Build(g)
//	res, _ := pressure.Duo(g, dist, pressure.WithStrategy(pressure.SubsetDP))
//
// The volcanium command in cmd/volcanium wires the same pipeline behind a YAML
// configuration, zerolog logging and a Prometheus textfile export.
package volcanium

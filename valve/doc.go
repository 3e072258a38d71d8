// Package valve models a network of valves joined by unit-cost tunnels.
//
// What:
//
//   - Record is the parsed description of one valve: ID, flow rate and the IDs
//     of the valves reachable through one tunnel.
//   - Graph is the immutable, index-addressed view built from a set of records.
//     Valves keep their input order, so index i always names the same valve.
//   - Parse reads the line format
//     "Valve AA has flow rate=0; tunnels lead to valves DD, II, BB".
//
// Validation (NewGraph):
//
//   - every neighbour must name a known valve;
//   - adjacency must be symmetric (A lists B  ⇔  B lists A);
//   - IDs are non-empty and unique, flow rates are non-negative.
//
// Any violation aborts construction with ErrMalformedGraph, wrapped with the
// offending IDs. Duplicate neighbour entries collapse to one tunnel and a valve
// listing itself is ignored.
//
// Complexity:
//
//   - NewGraph: O(V + E) time and memory.
//   - Lookups by index: O(1); lookups by ID: O(1) average (map).
//
// Errors:
//
//   - ErrMalformedGraph: the records do not describe a valid undirected graph.
//   - ErrValveNotFound:  a lookup referenced an unknown ID.
//   - ErrSyntax:         Parse met a line it could not read.
package valve

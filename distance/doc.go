// SPDX-License-Identifier: MIT

// Package distance computes all-pairs travel times over a valve network.
//
// What:
//
//   - Matrix is a dense, row-major n×n table of minimal tunnel counts between
//     every pair of valves, indexed by the valve package's dense indices.
//   - Build runs Floyd–Warshall specialised for unit-cost tunnels: seed
//     d(v,v)=0 and d(v,n)=1, then relax every unordered pair through every
//     intermediate valve, mirroring each improvement.
//
// Invariants of a built Matrix:
//
//   - At(a,a) == 0;
//   - At(a,b) == At(b,a);
//   - At(a,c) <= At(a,b) + At(b,c);
//   - every entry is finite: disconnected networks are rejected with
//     ErrUnreachablePair instead of producing a partial table.
//
// Complexity: Time O(V³), Space O(V²). V is expected to be tens of valves.
package distance

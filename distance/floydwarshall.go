// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"

	"github.com/katalvlaran/volcanium/valve"
)

// Build computes the all-pairs travel-time matrix of g.
//
// Stages:
//  1. Seed: diagonal 0, direct tunnels 1, everything else unset.
//  2. Closure: Floyd–Warshall over unordered pairs (see closeUnitPairs).
//  3. Verify: any pair still unset means g is disconnected → ErrUnreachablePair.
//
// Complexity: Time O(V³), Space O(V²).
func Build(g *valve.Graph) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	m := newMatrix(g.IDs())

	// 1) Seed. Tunnels first, the diagonal last so it always wins.
	var i, j int
	for i = 0; i < m.n; i++ {
		for _, j = range g.Adjacent(i) {
			m.set(i, j, 1)
		}
	}
	for i = 0; i < m.n; i++ {
		m.data[i*m.n+i] = 0
	}

	// 2) Closure.
	closeUnitPairs(m)

	// 3) Verify completeness.
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] == unset {
				return nil, fmt.Errorf("%w: %s and %s", ErrUnreachablePair, m.ids[i], m.ids[j])
			}
		}
	}

	return m, nil
}

// closeUnitPairs runs Floyd–Warshall in place over unordered pairs i<j.
//
// Loop order is fixed (k → i → j). Unset entries act as +Inf and are skipped.
// A strict improvement on (i,j) is mirrored to (j,i), so the upper and lower
// triangles stay identical throughout and each pair is relaxed once per k.
// Time: O(n³/2); no allocations.
func closeUnitPairs(m *Matrix) {
	n := m.n
	data := m.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, ij   int
		cand         int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == unset {
				continue // nothing routes through k from i
			}
			baseI = i * n
			for j = i + 1; j < n; j++ {
				kj = data[baseK+j]
				if kj == unset {
					continue
				}
				cand = ik + kj
				ij = data[baseI+j]
				if ij == unset || cand < ij {
					data[baseI+j] = cand
					data[j*n+i] = cand
				}
			}
		}
	}
}

// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"strings"
)

// Matrix is a square row-major table of travel times between valves.
// n is the order, data holds n*n entries, ids maps indices back to valve IDs.
type Matrix struct {
	n     int
	data  []int
	ids   []string
	index map[string]int
}

// newMatrix allocates an n×n matrix with every entry unset.
// Complexity: O(n²).
func newMatrix(ids []string) *Matrix {
	n := len(ids)
	m := &Matrix{
		n:     n,
		data:  make([]int, n*n),
		ids:   ids,
		index: make(map[string]int, n),
	}
	for i := range m.data {
		m.data[i] = unset
	}
	for i, id := range ids {
		m.index[id] = i
	}

	return m
}

// Len returns the matrix order (number of valves).
func (m *Matrix) Len() int { return m.n }

// At returns the travel time from valve i to valve j.
// It is the hot-path accessor used by the optimizers; indices are not checked
// beyond the slice bounds check.
func (m *Matrix) At(i, j int) int { return m.data[i*m.n+j] }

// set writes v at (i,j) and (j,i).
func (m *Matrix) set(i, j, v int) {
	m.data[i*m.n+j] = v
	m.data[j*m.n+i] = v
}

// Between returns the travel time between two valves named by ID.
func (m *Matrix) Between(a, b string) (int, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, a)
	}
	j, ok := m.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownValve, b)
	}

	return m.At(i, j), nil
}

// IDs returns the valve IDs in index order.
func (m *Matrix) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)

	return out
}

// Row returns a copy of row i (travel times from valve i to every valve).
func (m *Matrix) Row(i int) []int {
	out := make([]int, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}

// String renders the matrix one row per line for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteString(m.ids[i])
		sb.WriteString(" [")
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

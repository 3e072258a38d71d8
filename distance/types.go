// SPDX-License-Identifier: MIT

package distance

import "errors"

// Sentinel errors for matrix construction and lookups.
var (
	// ErrNilGraph indicates Build was called with a nil graph.
	ErrNilGraph = errors.New("distance: graph is nil")

	// ErrUnreachablePair indicates the network is disconnected, so some pair
	// of valves has no finite travel time.
	ErrUnreachablePair = errors.New("distance: unreachable valve pair")

	// ErrUnknownValve indicates a lookup referenced an ID outside the matrix.
	ErrUnknownValve = errors.New("distance: unknown valve")
)

// unset marks a pair not yet connected during closure. It never survives Build.
const unset = -1

package pressure

import "maps"

// dedup decides which dual-agent branches enter a frontier. An instance belongs
// to a single search loop; workers receive clones.
type dedup interface {
	// admit records next and reports whether it should be enqueued.
	admit(next duoState) bool
	// stale reports whether a dequeued state was superseded after it was queued.
	stale(s duoState) bool
	// tracksPaths reports whether states must carry their opening orders.
	tracksPaths() bool
	// clone returns an independent copy.
	clone() dedup
}

// newDedup returns the policy for strategy s, seeded with the root state.
func newDedup(s Strategy, root duoState) dedup {
	if s == StateDedup {
		return stateTable{canonical(root): root.released}
	}

	return pathSet{{}: {}}
}

// pathKey is the pair of opening orders (agent 0, agent 1).
type pathKey struct {
	first, second string
}

// pathSet holds every (path1, path2) pair enqueued so far. The agents are
// interchangeable, so a pair and its swap name the same state.
type pathSet map[pathKey]struct{}

func (ps pathSet) admit(next duoState) bool {
	key := pathKey{first: next.path[0], second: next.path[1]}
	if _, ok := ps[key]; ok {
		return false
	}
	if _, ok := ps[pathKey{first: key.second, second: key.first}]; ok {
		return false
	}
	ps[key] = struct{}{}

	return true
}

func (pathSet) stale(duoState) bool { return false }

func (pathSet) tracksPaths() bool { return true }

func (ps pathSet) clone() dedup { return maps.Clone(ps) }

// stateKey identifies everything that determines a state's future: the closed
// set and both (position, clock) pairs, with the agents in canonical order.
type stateKey struct {
	closed  uint64
	at      [2]int
	elapsed [2]int
}

// canonical orders the agents by (position, clock) so swapped states share a key.
func canonical(s duoState) stateKey {
	k := stateKey{closed: s.closed, at: s.at, elapsed: s.elapsed}
	if k.at[0] > k.at[1] || (k.at[0] == k.at[1] && k.elapsed[0] > k.elapsed[1]) {
		k.at[0], k.at[1] = k.at[1], k.at[0]
		k.elapsed[0], k.elapsed[1] = k.elapsed[1], k.elapsed[0]
	}

	return k
}

// stateTable keeps the best release seen per canonical key. Two states with the
// same key have identical futures, so the one with less released is dominated.
type stateTable map[stateKey]int

func (st stateTable) admit(next duoState) bool {
	key := canonical(next)
	if best, ok := st[key]; ok && best >= next.released {
		return false
	}
	st[key] = next.released

	return true
}

func (st stateTable) stale(s duoState) bool {
	best, ok := st[canonical(s)]

	return ok && s.released < best
}

func (stateTable) tracksPaths() bool { return false }

func (st stateTable) clone() dedup { return maps.Clone(st) }

// Package pressure finds the largest pressure release achievable by opening
// valves within a time budget, for one agent (Solo) or two agents sharing the
// valve set (Duo).
//
// Model:
//
//   - An agent starts at the Start valve at minute 0 with a budget of T minutes.
//   - Moving to valve v and opening it costs d(cur,v)+1 minutes, where d comes
//     from a distance.Matrix. Opening v at elapsed time e releases
//     (T − e − cost) × flow(v) in total.
//   - Only valves with positive flow are targets; the rest are waypoints.
//   - An opening that would leave no flowing minute (e + cost >= T) is pruned:
//     it can never add pressure.
//
// Search (best-first):
//
//	The frontier is a max-heap keyed by cumulative release, so promising states
//	surface first. The whole space is still explored; ordering only affects how
//	early good incumbents appear. A state that pushes no branch is terminal and
//	its release is a candidate for the answer.
//
// Dual-agent strategies (Options.Strategy):
//
//   - PathDedup: states carry both agents' opening orders; a branch is skipped
//     when its (path1, path2) pair or the swapped pair was already enqueued.
//     This is the default.
//   - StateDedup: canonical key (closed set, both positions, both clocks; the
//     two agents sorted), keeping only branches that improve the best release
//     recorded for their key.
//   - SubsetDP: enumerate every feasible single-agent route once, keep the best
//     release per opened set, then combine two disjoint sets.
//
// All strategies return the same optimum; they differ in time and memory.
//
// Parallelism:
//
//	WithWorkers(n>1) splits the root's branches across n independent searches
//	(golang.org/x/sync/errgroup). Each worker owns its frontier and dedup state;
//	results merge by maximum. SubsetDP always runs single-threaded.
//
// Complexity:
//
//	Exponential in the number of positive-flow valves k in the worst case,
//	bounded in practice by T limiting route length. The closed set is a uint64
//	mask, so k ≤ 64.
//
// Errors (all returned before any search starts):
//
//	ErrNilInput, ErrDimensionMismatch, ErrUnknownStart, ErrInvalidBudget,
//	ErrInvalidWorkers, ErrUnknownStrategy, ErrTooManyValves.
package pressure

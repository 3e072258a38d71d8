package pressure

import (
	"math/bits"
	"sort"
)

// subsetTable maps each opened-slot mask to the best release of a single route
// that opens exactly those valves. Mask 0 (stay put) is always present.
//
// Like a Held–Karp table it is keyed by visited set, but without the end node:
// the two-agent optimum is the best pair of disjoint masks.
type subsetTable struct {
	best  map[uint64]int
	stats Stats
}

// subsetWalker enumerates every feasible single-agent route once.
type subsetWalker struct {
	p     *problem
	table map[uint64]int
	stats Stats
}

// subsets builds the table by depth-first enumeration from the start valve.
// Time: O(number of feasible routes · k); memory: O(number of distinct masks).
func (p *problem) subsets() subsetTable {
	w := subsetWalker{p: p, table: map[uint64]int{0: 0}}
	w.walk(p.home, 0, 0, 0)
	w.stats.Terminal = len(w.table)

	return subsetTable{best: w.table, stats: w.stats}
}

func (w *subsetWalker) walk(at, elapsed, released int, opened uint64) {
	w.stats.Expanded++
	if cur, ok := w.table[opened]; !ok || released > cur {
		w.table[opened] = released
	}

	var (
		slot        int
		gain, spent int
		ok          bool
	)
	for rest := w.p.all &^ opened; rest != 0; rest &= rest - 1 {
		slot = bits.TrailingZeros64(rest)
		if gain, spent, ok = w.p.open(at, elapsed, slot); !ok {
			continue
		}
		w.stats.Enqueued++
		w.walk(slot, elapsed+spent, released+gain, opened|1<<slot)
	}
}

// bestSingle returns the best release of any one route.
func (t subsetTable) bestSingle() int {
	var best int
	for _, r := range t.best {
		if r > best {
			best = r
		}
	}

	return best
}

// subsetEntry is one row of the table, used for the sorted pair scan.
type subsetEntry struct {
	mask     uint64
	released int
}

// bestPair returns the best release of two routes over disjoint masks.
//
// Entries are scanned in descending release order, so for a fixed first entry
// the first disjoint partner is its best one, and the scan stops as soon as no
// remaining pair can beat the incumbent.
func (t subsetTable) bestPair() int {
	entries := make([]subsetEntry, 0, len(t.best))
	for m, r := range t.best {
		entries = append(entries, subsetEntry{mask: m, released: r})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].released != entries[j].released {
			return entries[i].released > entries[j].released
		}
		return entries[i].mask < entries[j].mask
	})

	var best int
	var i, j int
	for i = range entries {
		a := entries[i]
		if 2*a.released <= best {
			break
		}
		for j = i + 1; j < len(entries); j++ {
			b := entries[j]
			if a.released+b.released <= best {
				break
			}
			if a.mask&b.mask == 0 {
				best = a.released + b.released
				break
			}
		}
	}

	return best
}

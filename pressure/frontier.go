package pressure

import "container/heap"

// ranked is a search state that knows its cumulative release.
type ranked interface {
	yield() int
}

// frontier is a max-heap of states ordered by cumulative release, highest first.
// It is owned by exactly one search loop.
type frontier[S ranked] []S

// Len returns the number of queued states.
func (f frontier[S]) Len() int { return len(f) }

// Less puts the larger release on top.
func (f frontier[S]) Less(i, j int) bool { return f[i].yield() > f[j].yield() }

// Swap swaps two states in the heap.
func (f frontier[S]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push only.
func (f *frontier[S]) Push(x any) { *f = append(*f, x.(S)) }

// Pop removes the last element; called by heap.Pop only.
func (f *frontier[S]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	var zero S
	old[n-1] = zero // release path strings for GC
	*f = old[:n-1]

	return item
}

// push enqueues s.
func (f *frontier[S]) push(s S) { heap.Push(f, s) }

// pop dequeues the state with the highest release.
func (f *frontier[S]) pop() S { return heap.Pop(f).(S) }

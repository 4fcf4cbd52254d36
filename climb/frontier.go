package climb

import "math"

// unreached is the tentative cost of a cell no route has touched yet.
const unreached = math.MaxInt

// nodeState is the per-cell lifecycle: unvisited → open → closed.
type nodeState uint8

const (
	unvisited nodeState = iota
	open
	closed
)

// searchNode is the per-run bookkeeping for one grid cell.
type searchNode struct {
	cost      int       // tentative moves from the source
	parent    int       // row-major index of the predecessor, -1 for none
	state     nodeState // lifecycle
	heapIndex int       // position in the frontier while open
}

// frontier is an indexed min-heap of open cell indices, ordered by cost and
// then by row-major index. Each cell appears at most once; an improved cost
// is applied in place with heap.Fix.
type frontier struct {
	items []int
	nodes []searchNode
}

// Len returns the number of open cells.
func (f frontier) Len() int { return len(f.items) }

// Less orders by cost, ties broken by row-major index.
func (f frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if ca, cb := f.nodes[a].cost, f.nodes[b].cost; ca != cb {
		return ca < cb
	}
	return a < b
}

// Swap swaps two entries and keeps heapIndex in sync.
func (f frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.nodes[f.items[i]].heapIndex = i
	f.nodes[f.items[j]].heapIndex = j
}

// Push adds a cell index; called by heap.Push.
func (f *frontier) Push(x any) {
	idx := x.(int)
	f.nodes[idx].heapIndex = len(f.items)
	f.items = append(f.items, idx)
}

// Pop removes the last entry; called by heap.Pop.
func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	idx := old[n-1]
	f.items = old[:n-1]
	f.nodes[idx].heapIndex = -1
	return idx
}

package astar

// openQueue is a min-heap of node handles ordered by (f, handle).
// The handle is the insertion sequence, so among equal f the earliest
// inserted node wins. Superseded entries stay in the heap and are skipped
// when popped (lazy decrease-key).
type openQueue struct {
	items []handle
	nodes *arena
}

// Len returns the number of items in the heap.
func (q *openQueue) Len() int { return len(q.items) }

// Less orders by f, then by insertion order.
func (q *openQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	fa, fb := q.nodes.at(a).f, q.nodes.at(b).f
	if fa != fb {
		return fa < fb
	}
	return a < b
}

// Swap swaps two elements in the heap.
func (q *openQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

// Push adds x, which must be a handle. Called by heap.Push.
func (q *openQueue) Push(x any) { q.items = append(q.items, x.(handle)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (q *openQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]

	return item
}

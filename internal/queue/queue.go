package queue

import "container/heap"

// Compile time check to ensure PriorityQueue satisfies the heap interface.
var _ heap.Interface = (*PriorityQueue)(nil)

// PriorityQueueItem represents a neighbor candidate in the priority queue.
type PriorityQueueItem struct {
	Index    int     // Index is the position of the candidate row in the training data.
	Distance float64 // Distance is the priority of the item in the queue.
}

// Before reports whether a orders before b in ascending (Distance, Index)
// order. Equal distances are resolved by the smaller row index.
func (a PriorityQueueItem) Before(b PriorityQueueItem) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}
	return a.Index < b.Index
}

// PriorityQueue implements heap.Interface and holds PriorityQueueItems.
// It is a max-heap under (Distance, Index) order: the worst candidate sits
// at the top, so bounded k-smallest selection can compare incoming items
// against Top and evict.
type PriorityQueue struct {
	items []PriorityQueueItem // Value-based storage (no pointer indirection)
}

// NewMax initializes a new priority queue with maximum priority.
func NewMax(capacity int) *PriorityQueue {
	return &PriorityQueue{
		items: make([]PriorityQueueItem, 0, capacity),
	}
}

// Len returns the number of elements in the priority queue.
func (pq *PriorityQueue) Len() int { return len(pq.items) }

// Less reports whether the element with index i should sort before the element with index j.
func (pq *PriorityQueue) Less(i, j int) bool {
	return pq.items[j].Before(pq.items[i])
}

// Swap swaps the elements with indexes i and j.
func (pq *PriorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// Push adds x to the priority queue.
func (pq *PriorityQueue) Push(x any) {
	item := x.(PriorityQueueItem)
	pq.items = append(pq.items, item)
}

// Pop removes and returns the top element from the priority queue.
func (pq *PriorityQueue) Pop() any {
	n := len(pq.items)
	if n == 0 {
		return PriorityQueueItem{} // Return zero value
	}

	item := pq.items[n-1]
	pq.items[n-1] = PriorityQueueItem{} // Zero out for GC
	pq.items = pq.items[:n-1]

	return item
}

// Top returns the top element of the priority queue without removing it.
// The boolean is false when the queue is empty.
func (pq *PriorityQueue) Top() (PriorityQueueItem, bool) {
	if len(pq.items) == 0 {
		return PriorityQueueItem{}, false
	}
	return pq.items[0], true
}

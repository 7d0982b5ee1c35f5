package queue

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedSelection(t *testing.T) {
	// Keep the 3 smallest of a stream of candidates.
	pq := NewMax(3)
	heap.Init(pq)

	candidates := []PriorityQueueItem{
		{Index: 0, Distance: 5.0},
		{Index: 1, Distance: 1.0},
		{Index: 2, Distance: 4.0},
		{Index: 3, Distance: 2.0},
		{Index: 4, Distance: 3.0},
	}

	for _, c := range candidates {
		if pq.Len() < 3 {
			heap.Push(pq, c)
			continue
		}
		largest, ok := pq.Top()
		require.True(t, ok)
		if c.Before(largest) {
			heap.Pop(pq)
			heap.Push(pq, c)
		}
	}

	got := make([]PriorityQueueItem, pq.Len())
	for i := pq.Len() - 1; i >= 0; i-- {
		got[i] = heap.Pop(pq).(PriorityQueueItem)
	}

	assert.Equal(t, []PriorityQueueItem{
		{Index: 1, Distance: 1.0},
		{Index: 3, Distance: 2.0},
		{Index: 4, Distance: 3.0},
	}, got)
}

func TestEqualDistanceKeepsSmallestIndexes(t *testing.T) {
	// With all distances equal, bounded selection must retain the rows
	// with the smallest indexes no matter the stream order.
	pq := NewMax(2)
	heap.Init(pq)

	for _, c := range []PriorityQueueItem{
		{Index: 2, Distance: 1.0},
		{Index: 1, Distance: 1.0},
		{Index: 0, Distance: 1.0},
		{Index: 3, Distance: 1.0},
	} {
		if pq.Len() < 2 {
			heap.Push(pq, c)
			continue
		}
		largest, _ := pq.Top()
		if c.Before(largest) {
			heap.Pop(pq)
			heap.Push(pq, c)
		}
	}

	got := make([]PriorityQueueItem, pq.Len())
	for i := pq.Len() - 1; i >= 0; i-- {
		got[i] = heap.Pop(pq).(PriorityQueueItem)
	}

	assert.Equal(t, []PriorityQueueItem{
		{Index: 0, Distance: 1.0},
		{Index: 1, Distance: 1.0},
	}, got)
}

func TestTopOnEmpty(t *testing.T) {
	pq := NewMax(4)

	_, ok := pq.Top()
	assert.False(t, ok)
}

func TestBefore(t *testing.T) {
	tests := []struct {
		name string
		a    PriorityQueueItem
		b    PriorityQueueItem
		want bool
	}{
		{
			name: "smaller distance wins",
			a:    PriorityQueueItem{Index: 9, Distance: 1.0},
			b:    PriorityQueueItem{Index: 0, Distance: 2.0},
			want: true,
		},
		{
			name: "larger distance loses",
			a:    PriorityQueueItem{Index: 0, Distance: 2.0},
			b:    PriorityQueueItem{Index: 9, Distance: 1.0},
			want: false,
		},
		{
			name: "equal distance smaller index wins",
			a:    PriorityQueueItem{Index: 1, Distance: 1.0},
			b:    PriorityQueueItem{Index: 2, Distance: 1.0},
			want: true,
		},
		{
			name: "identical items do not order before",
			a:    PriorityQueueItem{Index: 1, Distance: 1.0},
			b:    PriorityQueueItem{Index: 1, Distance: 1.0},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Before(tt.b))
		})
	}
}

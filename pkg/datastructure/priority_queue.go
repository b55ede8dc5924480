package datastructure

import (
	"errors"
)

var (
	ErrDuplicateItem = errors.New("item already in the heap")
	ErrEmptyHeap     = errors.New("heap is empty")
	ErrItemNotFound  = errors.New("item not found in the heap")
)

type PriorityQueueNode[T comparable] struct {
	Rank float64
	Item T
}

// MinHeap binary heap priorityqueue. pos maps every item in heap to its index in heap, so
// Contains & DecreaseKey don't need a linear scan.
type MinHeap[T comparable] struct {
	heap []PriorityQueueNode[T]
	pos  map[T]int
}

func NewMinHeap[T comparable]() *MinHeap[T] {
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
		pos:  make(map[T]int),
	}
}

// parent get index dari parent
func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

// leftChild get index dari left child
func (h *MinHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

// rightChild get index dari right child
func (h *MinHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

// swap tukar 2 entry di heap. pos of both items is updated here and only here.
func (h *MinHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.pos[h.heap[i].Item] = i
	h.pos[h.heap[j].Item] = j
}

// heapifyUp (swim) mempertahankan heap property. selama parent dari index lebih besar, swap dengan parent. O(logN) tree height.
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].Rank < h.heap[h.parent(index)].Rank {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown (sink) mempertahankan heap property. swap dengan children yang paling kecil selama children itu lebih kecil. O(logN) tree height.
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.heap[left].Rank < h.heap[smallest].Rank {
			smallest = left
		}
		if right < len(h.heap) && h.heap[right].Rank < h.heap[smallest].Rank {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

// isEmpty check apakah heap kosong
func (h *MinHeap[T]) isEmpty() bool {
	return len(h.heap) == 0
}

// Size ukuran heap
func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

// Contains O(1) membership check.
func (h *MinHeap[T]) Contains(item T) bool {
	_, ok := h.pos[item]
	return ok
}

// GetMin mendapatkan nilai minimum dari min-heap (index 0)
func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, ErrEmptyHeap
	}
	return h.heap[0], nil
}

// Insert item baru. Returns ErrDuplicateItem if the item is already queued.
func (h *MinHeap[T]) Insert(key PriorityQueueNode[T]) error {
	if h.Contains(key.Item) {
		return ErrDuplicateItem
	}
	h.heap = append(h.heap, key)
	index := h.Size() - 1
	h.pos[key.Item] = index
	h.heapifyUp(index)
	return nil
}

// ExtractMin ambil nilai minimum dari min-heap (index 0) & pop dari heap. O(logN), heapifyDown(0) O(logN)
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], error) {
	if h.isEmpty() {
		return PriorityQueueNode[T]{}, ErrEmptyHeap
	}
	root := h.heap[0]
	last := h.Size() - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	delete(h.pos, root.Item)
	h.heapifyDown(0)
	return root, nil
}

// DecreaseKey update Rank dari item min-heap. despite the name the new rank may also be larger,
// the entry then sinks instead of swims. O(logN) heapify.
func (h *MinHeap[T]) DecreaseKey(item PriorityQueueNode[T]) error {
	index, ok := h.pos[item.Item]
	if !ok {
		return ErrItemNotFound
	}
	h.heap[index].Rank = item.Rank
	if index != 0 && item.Rank < h.heap[h.parent(index)].Rank {
		h.heapifyUp(index)
	} else {
		h.heapifyDown(index)
	}
	return nil
}

func (h *MinHeap[T]) GetItem(item T) (PriorityQueueNode[T], error) {
	index, ok := h.pos[item]
	if !ok {
		return PriorityQueueNode[T]{}, ErrItemNotFound
	}
	return h.heap[index], nil
}

// Items returns queued items in heap-array order.
func (h *MinHeap[T]) Items() []T {
	items := make([]T, 0, len(h.heap))
	for _, n := range h.heap {
		items = append(items, n.Item)
	}
	return items
}

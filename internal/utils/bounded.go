package utils

import "slices"

// BoundedLog is a newest-first list holding at most Cap items.
// Pushing onto a full log drops the oldest entry.
//
// BoundedLog is not safe for concurrent use; callers serialize access.
type BoundedLog[T any] struct {
	items    []T
	capacity int
}

// NewBoundedLog returns an empty log with the given capacity.
// Capacity below 1 is treated as 1.
func NewBoundedLog[T any](capacity int) *BoundedLog[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &BoundedLog[T]{items: make([]T, 0, capacity), capacity: capacity}
}

// NewBoundedLogFrom builds a log from items already ordered newest first,
// keeping only the first capacity items.
func NewBoundedLogFrom[T any](capacity int, items []T) *BoundedLog[T] {
	l := NewBoundedLog[T](capacity)
	n := min(len(items), l.capacity)
	l.items = append(l.items, items[:n]...)
	return l
}

// Push inserts v at the front and trims the tail back to capacity.
func (l *BoundedLog[T]) Push(v T) {
	l.items = slices.Insert(l.items, 0, v)
	if len(l.items) > l.capacity {
		clear(l.items[l.capacity:])
		l.items = l.items[:l.capacity]
	}
}

// Items returns a copy of the entries, newest first. Never nil.
func (l *BoundedLog[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Reset removes every entry.
func (l *BoundedLog[T]) Reset() {
	clear(l.items)
	l.items = l.items[:0]
}

func (l *BoundedLog[T]) Len() int { return len(l.items) }

func (l *BoundedLog[T]) Cap() int { return l.capacity }

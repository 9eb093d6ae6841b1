// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package sortedlist

// Iterator is a read-only forward cursor over a List. Iterators are compared
// by position only. An iterator is invalidated by any Insert, Remove, Clear or
// Assign on its list; using it afterwards yields ErrStaleIterator.
type Iterator[T any] struct {
	list  *List[T]
	node  *node[T]
	index int
	gen   uint64
}

// Value returns the element at the iterator's position.
func (it Iterator[T]) Value() (T, error) {
	var zero T
	if it.node == nil {
		return zero, ErrOutOfRange
	}
	if it.stale() {
		return zero, ErrStaleIterator
	}
	return it.node.value, nil
}

// Next advances the iterator by one position.
func (it *Iterator[T]) Next() error {
	if it.node == nil {
		return ErrOutOfRange
	}
	if it.stale() {
		return ErrStaleIterator
	}
	it.node = it.node.next
	it.index++
	return nil
}

// PostNext advances the iterator and returns a copy of it taken before the
// move.
func (it *Iterator[T]) PostNext() (Iterator[T], error) {
	prev := *it
	if err := it.Next(); err != nil {
		return prev, err
	}
	return prev, nil
}

// Equal reports whether both iterators denote the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.index == other.index
}

// Index returns the position of the iterator, or -1 for an empty list.
func (it Iterator[T]) Index() int { return it.index }

// AtEnd reports whether the iterator is past the last element.
func (it Iterator[T]) AtEnd() bool { return it.node == nil }

// Valid reports whether Value would succeed.
func (it Iterator[T]) Valid() bool { return it.node != nil && !it.stale() }

func (it Iterator[T]) stale() bool {
	return it.list == nil || it.list.gen != it.gen
}

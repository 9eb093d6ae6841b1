// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package sortedlist

import (
	"cmp"
	"fmt"
	"iter"
)

// emptyIndex is the position carried by both Begin and End of an empty list.
const emptyIndex = -1

// Lesser is implemented by element types that define their own strict
// ordering.
type Lesser[T any] interface {
	Less(other T) bool
}

// List is an ordered singly-linked list. The zero value is not usable; create
// lists with New, NewFunc, NewOf or From.
type List[T any] struct {
	head *node[T]
	size int
	less func(a, b T) bool
	// gen is bumped on every structural change and stamped into iterators.
	gen uint64
}

// New returns an empty list ordered by the natural order of T.
func New[T cmp.Ordered]() *List[T] {
	return NewFunc(cmp.Less[T])
}

// NewFunc returns an empty list ordered by less, which must be a strict weak
// ordering over T.
func NewFunc[T any](less func(a, b T) bool) *List[T] {
	if less == nil {
		panic("sortedlist: nil less function")
	}
	return &List[T]{less: less}
}

// NewOf returns an empty list ordered by the elements' own Less method.
func NewOf[T Lesser[T]]() *List[T] {
	return NewFunc(func(a, b T) bool { return a.Less(b) })
}

// From returns a naturally ordered list holding vals.
func From[T cmp.Ordered](vals ...T) *List[T] {
	l := New[T]()
	for _, v := range vals {
		l.Insert(v)
	}
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// Less returns the ordering relation of the list.
func (l *List[T]) Less() func(a, b T) bool { return l.less }

// Insert places v in front of the first element that is strictly greater than
// it. Elements equal to v that are already present stay ahead of it.
func (l *List[T]) Insert(v T) {
	n := newNode(v)
	link := &l.head
	for *link != nil && !l.less(v, (*link).value) {
		link = &(*link).next
	}
	n.next = *link
	*link = n
	l.size++
	l.gen++
}

// Remove unlinks the element denoted by it. Removing from an empty list is a
// no-op. An iterator at the end position yields ErrOutOfRange.
func (l *List[T]) Remove(it Iterator[T]) error {
	if l.head == nil {
		return nil
	}
	if it.node == nil {
		return ErrOutOfRange
	}
	if it.list != l {
		return ErrForeignIterator
	}
	if it.gen != l.gen {
		return ErrStaleIterator
	}

	link := &l.head
	for *link != nil && *link != it.node {
		link = &(*link).next
	}
	if *link == nil {
		return ErrStaleIterator
	}
	*link = it.node.next
	it.node.next = nil
	l.size--
	l.gen++
	return nil
}

// Filter returns a new list with every element for which pred holds.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	out := NewFunc(l.less)
	for v := range l.All() {
		if pred(v) {
			out.Insert(v)
		}
	}
	return out
}

// Apply returns a new list holding fn applied to every element. The result is
// ordered by the transformed values.
func (l *List[T]) Apply(fn func(T) T) *List[T] {
	out := NewFunc(l.less)
	for v := range l.All() {
		out.Insert(fn(v))
	}
	return out
}

// Find returns an iterator at the first element satisfying pred, or End.
func (l *List[T]) Find(pred func(T) bool) Iterator[T] {
	it := l.Begin()
	for ; it.node != nil; it.index++ {
		if pred(it.node.value) {
			return it
		}
		it.node = it.node.next
	}
	return l.End()
}

// Begin returns an iterator at the first element.
func (l *List[T]) Begin() Iterator[T] {
	if l.head == nil {
		return Iterator[T]{list: l, index: emptyIndex, gen: l.gen}
	}
	return Iterator[T]{list: l, node: l.head, gen: l.gen}
}

// End returns an iterator one past the last element.
func (l *List[T]) End() Iterator[T] {
	if l.head == nil {
		return Iterator[T]{list: l, index: emptyIndex, gen: l.gen}
	}
	return Iterator[T]{list: l, index: l.size, gen: l.gen}
}

// Clone returns a deep copy of the list sharing no nodes with l.
func (l *List[T]) Clone() *List[T] {
	out := NewFunc(l.less)
	for v := range l.All() {
		out.Insert(v)
	}
	return out
}

// Assign replaces the content of l with a deep copy of src, adopting its
// ordering.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	l.Clear()
	l.less = src.less
	for v := range src.All() {
		l.Insert(v)
	}
}

// Clear releases every element.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.head = nil
	l.size = 0
	l.gen++
}

// All returns an iterator over the elements in order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements in order as a slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.Values())
}

// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package sortedlist

// node is a single storage cell. The list owns the head and every node owns
// the one after it.
type node[T any] struct {
	value T
	next  *node[T]
}

func newNode[T any](v T) *node[T] {
	return &node[T]{value: v}
}

// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package sortedlist provides a generic, singly-linked list that keeps its
// elements in non-descending order.
//
// Elements are placed by Insert according to the list's ordering relation and
// are removed through an Iterator obtained from Begin/End. Filter and Apply
// derive new lists without touching the source.
//
//	l := sortedlist.From(5, 1, 3)
//	for it := l.Begin(); !it.Equal(l.End()); _ = it.Next() {
//		v, _ := it.Value()
//		fmt.Println(v) // 1, 3, 5
//	}
//
// A List is not safe for concurrent use.
package sortedlist

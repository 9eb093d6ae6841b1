// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package sortedlist

import "errors"

// ErrOutOfRange is returned when an iterator at the end position is
// dereferenced, advanced or used for removal.
var ErrOutOfRange = errors.New("out of range")

// ErrStaleIterator is returned when an iterator is used after the list it was
// drawn from has been structurally modified.
var ErrStaleIterator = errors.New("stale iterator")

// ErrForeignIterator is returned by Remove when the iterator belongs to a
// different list.
var ErrForeignIterator = errors.New("iterator belongs to another list")

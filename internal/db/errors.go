// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicate is returned when an exam with the same course and slot
	// already exists.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNotFound is returned when a row addressed by id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUnsupported is returned for unknown database types.
	ErrUnsupported = errors.New("unsupported database type")
)

// MapDBError inspects low-level driver errors and maps constraint violations
// to ErrDuplicate. The mapping is string-based so the package does not depend
// on driver error types.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}

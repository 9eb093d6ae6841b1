// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"path/filepath"
	"testing"
)

func TestDBPoolDefaultsSQLite(t *testing.T) {
	t.Setenv("EXAMLIST_DB_MAX_OPEN_CONNS", "")
	t.Setenv("EXAMLIST_DB_MAX_IDLE_CONNS", "")

	s, err := Open("sqlite", filepath.Join(t.TempDir(), "pool.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer func() { _ = s.Close() }()

	if got := s.bun.DB.Stats().MaxOpenConnections; got != defaultMaxOpenConns {
		t.Fatalf("MaxOpenConnections = %d; want %d", got, defaultMaxOpenConns)
	}
}

func TestDBPoolEnvOverride(t *testing.T) {
	t.Setenv("EXAMLIST_DB_MAX_OPEN_CONNS", "3")

	s, err := Open("sqlite", filepath.Join(t.TempDir(), "pool.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer func() { _ = s.Close() }()

	if got := s.bun.DB.Stats().MaxOpenConnections; got != 3 {
		t.Fatalf("MaxOpenConnections = %d; want 3", got)
	}
}

func TestDBPoolMemoryPinned(t *testing.T) {
	t.Setenv("EXAMLIST_DB_MAX_OPEN_CONNS", "8")

	s, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer func() { _ = s.Close() }()

	if got := s.bun.DB.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("MaxOpenConnections = %d; want 1", got)
	}
}

// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db persists exam records through Bun. SQLite, PostgreSQL and MySQL
// are supported; the schema is created by embedded migrations when a Store is
// opened.
//
// The store keeps rows, not lists. LoadSchedule rebuilds a fresh ordered list
// from the rows on every call.
//
// Testing notes
//   - Use db.Open("sqlite", ":memory:") for tests that need real DB semantics;
//     the pool is pinned to a single connection for that DSN.
package db

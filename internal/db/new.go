// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

// New opens a Store for the given dbType and dsn. It is kept as the short
// entry point used by the CLI.
func New(dbType, dsn string) (*Store, error) {
	return Open(dbType, dsn)
}

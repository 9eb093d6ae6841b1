package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func TestCreateBunDB_VariousDialects(t *testing.T) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite in-memory: %v", err)
	}
	defer func() { _ = sqlDB.Close() }()

	for _, c := range []string{"sqlite", "postgres", "mysql", "unknown"} {
		b := createBunDB(sqlDB, c)
		if b == nil {
			t.Fatalf("createBunDB returned nil for dialect %s", c)
		}
	}
}

func TestDriverName(t *testing.T) {
	cases := map[string]string{"sqlite": "sqlite", "postgres": "pgx", "mysql": "mysql"}
	for in, want := range cases {
		got, err := driverName(in)
		if err != nil || got != want {
			t.Fatalf("driverName(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := driverName("mssql"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

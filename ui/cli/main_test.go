// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/examlist/internal/i18n"
	"github.com/toeirei/examlist/internal/logging"
)

// setupTestEnv isolates a test from any user configuration and returns a DSN
// for a fresh SQLite file.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	i18n.Init("en")
	t.Cleanup(closeStore)
	return filepath.Join(dir, "exams.db")
}

// executeCommand runs the root command with args and returns what it printed.
func executeCommand(t *testing.T, dsn string, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	logging.SetOutput(&logs)
	defer logging.SetOutput(os.Stderr)
	// PostRun is skipped when a command fails.
	defer closeStore()

	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	if dsn != "" {
		args = append(args, "--database.type", "sqlite", "--database.dsn", dsn)
	}
	root.SetArgs(args)
	err := root.Execute()
	return out.String() + logs.String(), err
}

func mustExecute(t *testing.T, dsn string, args ...string) string {
	t.Helper()
	out, err := executeCommand(t, dsn, args...)
	if err != nil {
		t.Fatalf("%v: unexpected error: %v\n%s", args, err, out)
	}
	return out
}

func addExam(t *testing.T, dsn, course, month, day, hour string) {
	t.Helper()
	mustExecute(t, dsn, "add", "--course", course, "--month", month, "--day", day, "--hour", hour, "--duration", "3")
}

func TestList_Empty(t *testing.T) {
	dsn := setupTestEnv(t)
	out := mustExecute(t, dsn, "list")
	if !strings.Contains(out, "No exams scheduled.") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestAddAndList_Ordered(t *testing.T) {
	dsn := setupTestEnv(t)
	addExam(t, dsn, "104031", "7", "28", "9")
	addExam(t, dsn, "234124", "7", "2", "13")
	addExam(t, dsn, "236363", "3", "15", "9.5")

	out := mustExecute(t, dsn, "list")
	if !strings.Contains(out, "3 exam(s)") {
		t.Fatalf("missing header: %q", out)
	}
	first := strings.Index(out, "236363")
	second := strings.Index(out, "234124")
	third := strings.Index(out, "104031")
	if first < 0 || second < 0 || third < 0 || !(first < second && second < third) {
		t.Fatalf("exams not in calendar order:\n%s", out)
	}
	if !strings.Contains(out, "9:30") {
		t.Fatalf("expected half-hour start time:\n%s", out)
	}
}

func TestAdd_InvalidDate(t *testing.T) {
	dsn := setupTestEnv(t)
	if _, err := executeCommand(t, dsn, "add", "--course", "1", "--month", "13", "--day", "1", "--hour", "9"); err == nil {
		t.Fatalf("expected an error for month 13")
	}
	out := mustExecute(t, dsn, "list")
	if !strings.Contains(out, "No exams scheduled.") {
		t.Fatalf("invalid exam was stored: %q", out)
	}
}

func TestAdd_Duplicate(t *testing.T) {
	dsn := setupTestEnv(t)
	addExam(t, dsn, "1", "2", "3", "10")
	if _, err := executeCommand(t, dsn, "add", "--course", "1", "--month", "2", "--day", "3", "--hour", "10"); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestList_Course(t *testing.T) {
	dsn := setupTestEnv(t)
	addExam(t, dsn, "1", "1", "10", "9")
	addExam(t, dsn, "2", "1", "11", "9")
	addExam(t, dsn, "1", "2", "1", "9")

	out := mustExecute(t, dsn, "list", "--course", "1")
	if !strings.Contains(out, "2 exam(s)") {
		t.Fatalf("expected two exams of course 1: %q", out)
	}
	if strings.Contains(out, "Course Number: 2\n") {
		t.Fatalf("course 2 should be filtered out:\n%s", out)
	}
}

func TestUpcoming(t *testing.T) {
	dsn := setupTestEnv(t)
	addExam(t, dsn, "1", "1", "10", "9")
	addExam(t, dsn, "2", "5", "11", "9")

	out := mustExecute(t, dsn, "upcoming", "--month", "3", "--day", "1")
	if !strings.Contains(out, "1 exam(s)") {
		t.Fatalf("expected one upcoming exam: %q", out)
	}

	out = mustExecute(t, dsn, "upcoming", "--month", "12", "--day", "30")
	if !strings.Contains(out, "No exams on or after 30.12.") {
		t.Fatalf("unexpected output: %q", out)
	}

	if _, err := executeCommand(t, dsn, "upcoming", "--month", "0"); err == nil {
		t.Fatalf("expected an error for month 0")
	}
}

func TestRemove(t *testing.T) {
	dsn := setupTestEnv(t)
	addExam(t, dsn, "1", "1", "10", "9")
	addExam(t, dsn, "2", "1", "11", "9")
	addExam(t, dsn, "1", "2", "1", "9")

	out := mustExecute(t, dsn, "remove", "--course", "1")
	if !strings.Contains(out, "Removed 2 exam(s) of course 1.") {
		t.Fatalf("unexpected output: %q", out)
	}
	out = mustExecute(t, dsn, "list")
	if !strings.Contains(out, "1 exam(s)") {
		t.Fatalf("expected one exam left: %q", out)
	}

	out = mustExecute(t, dsn, "remove", "--course", "42")
	if !strings.Contains(out, "No exam found for course 42.") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestShift(t *testing.T) {
	dsn := setupTestEnv(t)
	addExam(t, dsn, "1", "1", "29", "9")

	out := mustExecute(t, dsn, "shift", "--days", "2")
	if !strings.Contains(out, "Shifted 1 exam(s) by 2 day(s).") {
		t.Fatalf("unexpected output: %q", out)
	}
	out = mustExecute(t, dsn, "list")
	if !strings.Contains(out, "Time: 1.2 at") {
		t.Fatalf("exam not moved to 1.2:\n%s", out)
	}

	if _, err := executeCommand(t, dsn, "shift", "--days", "-100"); err == nil {
		t.Fatalf("expected an error when leaving the year")
	}
	out = mustExecute(t, dsn, "list")
	if !strings.Contains(out, "Time: 1.2 at") {
		t.Fatalf("failed shift must not change the schedule:\n%s", out)
	}
}

func TestLink(t *testing.T) {
	dsn := setupTestEnv(t)
	addExam(t, dsn, "1", "1", "10", "9")

	out := mustExecute(t, dsn, "link", "--course", "1", "--url", "https://example.com/room")
	if !strings.Contains(out, "Updated the link of 1 exam(s) of course 1.") {
		t.Fatalf("unexpected output: %q", out)
	}
	out = mustExecute(t, dsn, "list")
	if !strings.Contains(out, "https://example.com/room") {
		t.Fatalf("link not stored:\n%s", out)
	}
}

func TestExportImport(t *testing.T) {
	dsn := setupTestEnv(t)
	addExam(t, dsn, "1", "1", "10", "9")
	addExam(t, dsn, "2", "3", "11", "14")

	for _, name := range []string{"exams.yaml", "exams.yaml.zst"} {
		t.Run(name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), name)
			out := mustExecute(t, dsn, "export", file)
			if !strings.Contains(out, "Exported 2 exam(s)") {
				t.Fatalf("unexpected export output: %q", out)
			}

			other := filepath.Join(t.TempDir(), "other.db")
			out = mustExecute(t, other, "import", file)
			if !strings.Contains(out, "Imported 2 exam(s)") {
				t.Fatalf("unexpected import output: %q", out)
			}
			// A second plain import skips the duplicates.
			out = mustExecute(t, other, "import", file)
			if !strings.Contains(out, "Imported 0 exam(s)") {
				t.Fatalf("duplicates should be skipped: %q", out)
			}
			out = mustExecute(t, other, "import", "--replace", file)
			if !strings.Contains(out, "Imported 2 exam(s)") {
				t.Fatalf("unexpected replace output: %q", out)
			}
			out = mustExecute(t, other, "list")
			if !strings.Contains(out, "2 exam(s)") {
				t.Fatalf("expected two exams after replace: %q", out)
			}
		})
	}
}

func TestExport_NoFile(t *testing.T) {
	dsn := setupTestEnv(t)
	if _, err := executeCommand(t, dsn, "export"); err == nil {
		t.Fatalf("expected an error without a file or schedule.file")
	}
}

func TestMatam(t *testing.T) {
	dsn := setupTestEnv(t)
	out := mustExecute(t, dsn, "matam")
	if !strings.Contains(out, "Course Number: 234124") {
		t.Fatalf("unexpected output: %q", out)
	}
	mustExecute(t, dsn, "matam", "--add")
	out = mustExecute(t, dsn, "list")
	if !strings.Contains(out, "1 exam(s)") {
		t.Fatalf("matam exam not stored: %q", out)
	}
}

func TestLanguage_German(t *testing.T) {
	dsn := setupTestEnv(t)
	t.Cleanup(func() { i18n.Init("en") })
	out := mustExecute(t, dsn, "list", "--language", "de")
	if !strings.Contains(out, "Keine Prüfungen geplant.") {
		t.Fatalf("expected German output: %q", out)
	}
}

func TestVersion(t *testing.T) {
	setupTestEnv(t)
	out := mustExecute(t, "", "version")
	if !strings.HasPrefix(out, "examlist ") {
		t.Fatalf("unexpected output: %q", out)
	}
}

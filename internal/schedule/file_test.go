// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package schedule

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/examlist/internal/exam"
)

const sampleYAML = `exams:
  - course: 3
    month: 9
    day: 10
    hour: 9
    duration: 3
  - course: 234124
    month: 7
    day: 28
    hour: 13
    duration: 3
    link: https://tinyurl.com/59hzps6m
`

func TestReadYAML(t *testing.T) {
	s, err := ReadYAML(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	if got := courses(s.Exams()); !equalInts(got, []int{234124, 3}) {
		t.Fatalf("order = %v", got)
	}
	first, _ := s.Next()
	if first != exam.Matam() {
		t.Fatalf("first exam = %v, want Matam", first)
	}
}

func TestReadYAML_Empty(t *testing.T) {
	s, err := ReadYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadYAML(empty): %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d", s.Len())
	}
}

func TestReadYAML_InvalidEntry(t *testing.T) {
	bad := "exams:\n  - course: 1\n    month: 13\n    day: 1\n    hour: 9\n    duration: 1\n"
	if _, err := ReadYAML(strings.NewReader(bad)); !errors.Is(err, exam.ErrInvalidDate) {
		t.Fatalf("ReadYAML(bad) = %v, want ErrInvalidDate", err)
	}
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	s, err := ReadYAML(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	var buf bytes.Buffer
	if err := s.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := ReadYAML(&buf)
	if err != nil {
		t.Fatalf("ReadYAML(round trip): %v", err)
	}
	a, b := s.Exams(), back.Exams()
	if len(a) != len(b) {
		t.Fatalf("len %d != %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSaveLoad_Compressed(t *testing.T) {
	s, err := ReadYAML(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	dir := t.TempDir()
	for _, name := range []string{"plain.yaml", "packed.yaml" + CompressedSuffix} {
		path := filepath.Join(dir, name)
		if err := s.Save(path); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		back, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		if !equalInts(courses(back.Exams()), courses(s.Exams())) {
			t.Fatalf("%s: round trip = %v", name, courses(back.Exams()))
		}
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

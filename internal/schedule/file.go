// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package schedule

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/zstd"

	"github.com/toeirei/examlist/internal/exam"
	"github.com/toeirei/examlist/util/slicest"
)

// CompressedSuffix marks schedule files stored zstd-compressed.
const CompressedSuffix = ".zst"

type fileExam struct {
	Course   int     `yaml:"course"`
	Month    int     `yaml:"month"`
	Day      int     `yaml:"day"`
	Hour     float64 `yaml:"hour"`
	Duration int     `yaml:"duration"`
	Link     string  `yaml:"link,omitempty"`
}

type document struct {
	Exams []fileExam `yaml:"exams"`
}

// ReadYAML parses a schedule document. Every entry is validated; the first
// invalid one aborts the read.
func ReadYAML(r io.Reader) (*Schedule, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	exams, err := slicest.MapXI(doc.Exams, func(i int, fe fileExam) (exam.Exam, error) {
		e, err := exam.New(fe.Course, fe.Month, fe.Day, fe.Hour, fe.Duration, fe.Link)
		if err != nil {
			return exam.Exam{}, fmt.Errorf("entry %d: %w", i+1, err)
		}
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	s := New()
	for _, e := range exams {
		s.exams.Insert(e)
	}
	return s, nil
}

// WriteYAML encodes the schedule in order.
func (s *Schedule) WriteYAML(w io.Writer) error {
	doc := document{Exams: slicest.Map(s.Exams(), func(e exam.Exam) fileExam {
		return fileExam{
			Course:   e.CourseID(),
			Month:    e.Month(),
			Day:      e.Day(),
			Hour:     e.Hour(),
			Duration: e.Duration(),
			Link:     e.Link(),
		}
	})}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ReadCompressed parses a zstd-compressed schedule document.
func ReadCompressed(r io.Reader) (*Schedule, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create zstd reader: %w", err)
	}
	defer zr.Close()
	return ReadYAML(zr)
}

// WriteCompressed writes the schedule as zstd-compressed YAML.
func (s *Schedule) WriteCompressed(w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create zstd writer: %w", err)
	}
	if err := s.WriteYAML(zw); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// Load reads a schedule file, decompressing it when the name ends in .zst.
func Load(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if strings.HasSuffix(path, CompressedSuffix) {
		return ReadCompressed(f)
	}
	return ReadYAML(f)
}

// Save writes the schedule to path, compressing it when the name ends in .zst.
func (s *Schedule) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if strings.HasSuffix(path, CompressedSuffix) {
		err = s.WriteCompressed(f)
	} else {
		err = s.WriteYAML(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package schedule keeps an ordered list of exams and the queries the CLI runs
// against it. A Schedule is safe for concurrent use; the lists it hands out
// are copies owned by the caller.
package schedule

import (
	"sync"

	"github.com/toeirei/examlist/internal/exam"
	"github.com/toeirei/examlist/util/sortedlist"
)

// Schedule is a concurrency-safe wrapper around an ordered exam list.
type Schedule struct {
	mu    sync.RWMutex
	exams *sortedlist.List[exam.Exam]
}

// New returns an empty schedule.
func New() *Schedule {
	return &Schedule{exams: sortedlist.NewOf[exam.Exam]()}
}

// FromList returns a schedule holding a deep copy of l.
func FromList(l *sortedlist.List[exam.Exam]) *Schedule {
	s := New()
	s.exams.Assign(l)
	return s
}

// Add inserts e into the schedule.
func (s *Schedule) Add(e exam.Exam) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exams.Insert(e)
}

// Len returns the number of scheduled exams.
func (s *Schedule) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exams.Len()
}

// List returns a copy of the underlying ordered list.
func (s *Schedule) List() *sortedlist.List[exam.Exam] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exams.Clone()
}

// Exams returns the scheduled exams in order.
func (s *Schedule) Exams() []exam.Exam {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exams.Values()
}

// Next returns the earliest exam.
func (s *Schedule) Next() (exam.Exam, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, err := s.exams.Begin().Value()
	if err != nil {
		return exam.Exam{}, false
	}
	return e, true
}

// Upcoming returns the exams taking place on or after day.month.
func (s *Schedule) Upcoming(month, day int) *sortedlist.List[exam.Exam] {
	from := (month-1)*exam.DaysInMonth + day - 1
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exams.Filter(func(e exam.Exam) bool {
		return e.DayOfYear() >= from
	})
}

// ForCourse returns the exams of courseID.
func (s *Schedule) ForCourse(courseID int) *sortedlist.List[exam.Exam] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exams.Filter(func(e exam.Exam) bool {
		return e.CourseID() == courseID
	})
}

// Shift moves every exam by days. Nothing changes if any exam would leave
// the year.
func (s *Schedule) Shift(days int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for e := range s.exams.All() {
		if _, err := e.AddDays(days); err != nil {
			return err
		}
	}
	shifted := s.exams.Apply(func(e exam.Exam) exam.Exam {
		moved, _ := e.AddDays(days)
		return moved
	})
	s.exams.Assign(shifted)
	return nil
}

// SetLink replaces the meeting link of every exam of courseID and returns the
// number of exams touched.
func (s *Schedule) SetLink(courseID int, link string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	updated := s.exams.Apply(func(e exam.Exam) exam.Exam {
		if e.CourseID() == courseID {
			e.SetLink(link)
			n++
		}
		return e
	})
	s.exams.Assign(updated)
	return n
}

// RemoveCourse removes every exam of courseID and returns how many went.
func (s *Schedule) RemoveCourse(courseID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for {
		it := s.exams.Find(func(e exam.Exam) bool { return e.CourseID() == courseID })
		if it.AtEnd() {
			return removed, nil
		}
		if err := s.exams.Remove(it); err != nil {
			return removed, err
		}
		removed++
	}
}

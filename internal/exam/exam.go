// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package exam defines the exam record stored in a schedule. An Exam is a
// validated value type: it can only be built through New, orders itself by
// date and start time, and prints as a four-line summary block.
package exam

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	// DaysInMonth is the simplified month length used for date arithmetic.
	DaysInMonth = 30
	// MaxMonth is the last valid month.
	MaxMonth = 12
	// LastStart is the latest valid start hour.
	LastStart = 23.5

	epsilon = 0.000001
)

// Errors returned by New when an argument is rejected.
var (
	ErrInvalidDate = errors.New("invalid exam date")
	ErrInvalidTime = errors.New("invalid exam time")
	ErrInvalidArgs = errors.New("invalid exam arguments")
)

// Exam describes a single scheduled exam.
type Exam struct {
	courseID int
	month    int
	day      int
	hour     float64
	duration int
	link     string
}

// New validates its arguments and returns an Exam. Hours must be whole or
// half hours between 0 and 23.5.
func New(courseID, month, day int, hour float64, duration int, link string) (Exam, error) {
	if !validDate(month, day) {
		return Exam{}, fmt.Errorf("%w: %d.%d", ErrInvalidDate, day, month)
	}
	if !validHour(hour) {
		return Exam{}, fmt.Errorf("%w: %v", ErrInvalidTime, hour)
	}
	if duration < 0 {
		return Exam{}, fmt.Errorf("%w: negative duration %d", ErrInvalidArgs, duration)
	}
	return Exam{
		courseID: courseID,
		month:    month,
		day:      day,
		hour:     hour,
		duration: duration,
		link:     link,
	}, nil
}

// Matam returns the canonical exam of course 234124.
func Matam() Exam {
	e, _ := New(234124, 7, 28, 13, 3, "https://tinyurl.com/59hzps6m")
	return e
}

func validDate(month, day int) bool {
	return month >= 1 && month <= MaxMonth && day >= 1 && day <= DaysInMonth
}

func validHour(hour float64) bool {
	if hour < -epsilon || hour-LastStart > epsilon {
		return false
	}
	whole := float64(roundHour(hour))
	return math.Abs(hour-whole-0.5) <= epsilon || math.Abs(hour-whole) <= epsilon
}

// roundHour truncates hour, rounding up only when it sits within epsilon of
// the next integer.
func roundHour(hour float64) int {
	whole, frac := math.Modf(hour)
	if frac > 1-epsilon {
		return int(whole) + 1
	}
	return int(whole)
}

func (e Exam) CourseID() int     { return e.courseID }
func (e Exam) Month() int        { return e.month }
func (e Exam) Day() int          { return e.day }
func (e Exam) Hour() float64     { return e.hour }
func (e Exam) Duration() int     { return e.duration }
func (e Exam) Link() string      { return e.link }
func (e *Exam) SetLink(l string) { e.link = l }

// Sub returns the number of days from other to e.
func (e Exam) Sub(other Exam) int {
	return (e.month-other.month)*DaysInMonth + e.day - other.day
}

// Less orders exams by day and then by start hour.
func (e Exam) Less(other Exam) bool {
	if d := e.Sub(other); d != 0 {
		return d < 0
	}
	return other.hour-e.hour >= epsilon
}

// DayOfYear returns the zero-based day index of the exam.
func (e Exam) DayOfYear() int {
	return (e.month-1)*DaysInMonth + e.day - 1
}

// AddDays returns a copy of e moved by days. The result must stay within the
// year.
func (e Exam) AddDays(days int) (Exam, error) {
	idx := e.DayOfYear() + days
	if idx < 0 || idx >= MaxMonth*DaysInMonth {
		return Exam{}, fmt.Errorf("%w: shifting %d.%d by %d days", ErrInvalidDate, e.day, e.month, days)
	}
	e.month = idx/DaysInMonth + 1
	e.day = idx%DaysInMonth + 1
	return e, nil
}

// StartTime formats the start hour as H:MM.
func (e Exam) StartTime() string {
	minutes := ":00"
	_, frac := math.Modf(e.hour)
	if math.Abs(frac-0.5) < epsilon {
		minutes = ":30"
	}
	return fmt.Sprintf("%d%s", roundHour(e.hour), minutes)
}

func (e Exam) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Course Number: %d\n", e.courseID)
	fmt.Fprintf(&b, "Time: %d.%d at %s\n", e.day, e.month, e.StartTime())
	fmt.Fprintf(&b, "Duration: %d:00\n", e.duration)
	fmt.Fprintf(&b, "Zoom Link: %s\n", e.link)
	return b.String()
}

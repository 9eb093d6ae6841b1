// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"fmt"

	"github.com/toeirei/examlist/internal/exam"
	"github.com/toeirei/examlist/util/slicest"
	"github.com/toeirei/examlist/util/sortedlist"
	"github.com/uptrace/bun"
)

// ExamModel maps the `exams` table for Bun queries.
type ExamModel struct {
	bun.BaseModel `bun:"table:exams"`
	ID            int64   `bun:"id,pk,autoincrement"`
	CourseID      int     `bun:"course_id"`
	Month         int     `bun:"exam_month"`
	Day           int     `bun:"exam_day"`
	Hour          float64 `bun:"start_hour"`
	Duration      int     `bun:"duration"`
	Link          string  `bun:"link"`
}

// Record is a stored exam together with its row id.
type Record struct {
	ID   int64
	Exam exam.Exam
}

func examToModel(e exam.Exam) ExamModel {
	return ExamModel{
		CourseID: e.CourseID(),
		Month:    e.Month(),
		Day:      e.Day(),
		Hour:     e.Hour(),
		Duration: e.Duration(),
		Link:     e.Link(),
	}
}

func examModelToExam(m ExamModel) (exam.Exam, error) {
	e, err := exam.New(m.CourseID, m.Month, m.Day, m.Hour, m.Duration, m.Link)
	if err != nil {
		return exam.Exam{}, fmt.Errorf("row %d: %w", m.ID, err)
	}
	return e, nil
}

// Store is the Bun-backed exam store.
type Store struct {
	bun    *bun.DB
	dbType string
}

// Type returns the configured database type.
func (s *Store) Type() string { return s.dbType }

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.bun.Close()
}

// AddExam inserts e and returns its row id. A second exam of the same course
// in the same slot yields ErrDuplicate.
func (s *Store) AddExam(ctx context.Context, e exam.Exam) (int64, error) {
	m := examToModel(e)
	if _, err := s.bun.NewInsert().Model(&m).Exec(ctx); err != nil {
		return 0, MapDBError(err)
	}
	dbLogf("db: added exam %d for course %d", m.ID, m.CourseID)
	return m.ID, nil
}

// DeleteExam removes the row with the given id.
func (s *Store) DeleteExam(ctx context.Context, id int64) error {
	res, err := s.bun.NewDelete().Model((*ExamModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: exam %d", ErrNotFound, id)
	}
	return nil
}

// DeleteCourse removes every exam of courseID and reports how many rows went.
func (s *Store) DeleteCourse(ctx context.Context, courseID int) (int, error) {
	res, err := s.bun.NewDelete().Model((*ExamModel)(nil)).Where("course_id = ?", courseID).Exec(ctx)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// UpdateLink sets the meeting link of every exam of courseID.
func (s *Store) UpdateLink(ctx context.Context, courseID int, link string) (int, error) {
	res, err := s.bun.NewUpdate().Model((*ExamModel)(nil)).
		Set("link = ?", link).
		Where("course_id = ?", courseID).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// ListExams returns all stored exams in calendar order.
func (s *Store) ListExams(ctx context.Context) ([]Record, error) {
	var rows []ExamModel
	err := s.bun.NewSelect().Model(&rows).
		Order("exam_month ASC", "exam_day ASC", "start_hour ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return slicest.MapX(rows, func(r ExamModel) (Record, error) {
		e, err := examModelToExam(r)
		if err != nil {
			return Record{}, err
		}
		return Record{ID: r.ID, Exam: e}, nil
	})
}

// LoadSchedule reads every stored exam into a new ordered list.
func (s *Store) LoadSchedule(ctx context.Context) (*sortedlist.List[exam.Exam], error) {
	recs, err := s.ListExams(ctx)
	if err != nil {
		return nil, err
	}
	l := sortedlist.NewOf[exam.Exam]()
	for _, r := range recs {
		l.Insert(r.Exam)
	}
	return l, nil
}

// ReplaceAll swaps the stored exams for the content of l in one transaction.
func (s *Store) ReplaceAll(ctx context.Context, l *sortedlist.List[exam.Exam]) error {
	return WithTx(ctx, s.bun, func(ctx context.Context, tx bun.Tx) error {
		// Bun refuses a DELETE without WHERE, so clear the table raw.
		if _, err := ExecRaw(ctx, tx, "DELETE FROM exams"); err != nil {
			return fmt.Errorf("failed to clear exams: %w", err)
		}
		for e := range l.All() {
			m := examToModel(e)
			if _, err := tx.NewInsert().Model(&m).Exec(ctx); err != nil {
				return MapDBError(err)
			}
		}
		return nil
	})
}

// Count returns the number of stored exams.
func (s *Store) Count(ctx context.Context) (int, error) {
	return s.bun.NewSelect().Model((*ExamModel)(nil)).Count(ctx)
}

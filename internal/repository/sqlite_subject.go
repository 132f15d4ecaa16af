package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

type SQLiteSubjectRepo struct {
	db db.DBTX
}

func NewSQLiteSubjectRepo(conn db.DBTX) *SQLiteSubjectRepo {
	return &SQLiteSubjectRepo{db: conn}
}

// Add appends s after the learner's existing subjects.
func (r *SQLiteSubjectRepo) Add(ctx context.Context, learnerID string, s domain.Subject) error {
	var next int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) + 1 FROM subjects WHERE learner_id = ?`, learnerID).Scan(&next); err != nil {
		return fmt.Errorf("reading subject position: %w", err)
	}
	return r.insert(ctx, learnerID, s, next)
}

func (r *SQLiteSubjectRepo) insert(ctx context.Context, learnerID string, s domain.Subject, position int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subjects (learner_id, name, difficulty, exam_date, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		learnerID,
		s.Name,
		string(s.Difficulty),
		nullableTimeToString(s.ExamDate, dateLayout),
		position,
		formatTime(time.Now()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.InvalidInputf("subject %q already exists", s.Name)
		}
		return fmt.Errorf("inserting subject: %w", err)
	}
	return nil
}

func (r *SQLiteSubjectRepo) List(ctx context.Context, learnerID string) ([]domain.Subject, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, difficulty, exam_date FROM subjects WHERE learner_id = ? ORDER BY position, name`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []domain.Subject
	for rows.Next() {
		var s domain.Subject
		var difficulty string
		var examDate sql.NullString
		if err := rows.Scan(&s.Name, &difficulty, &examDate); err != nil {
			return nil, fmt.Errorf("scanning subject: %w", err)
		}
		s.Difficulty = domain.Difficulty(difficulty)
		s.ExamDate = parseNullableTime(examDate, dateLayout)
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func (r *SQLiteSubjectRepo) Delete(ctx context.Context, learnerID, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE learner_id = ? AND name = ?`, learnerID, name)
	if err != nil {
		return fmt.Errorf("deleting subject: %w", err)
	}
	return affectedOne(res, fmt.Sprintf("subject %q", name))
}

// ReplaceAll swaps the learner's subjects for the given list, keeping its order.
func (r *SQLiteSubjectRepo) ReplaceAll(ctx context.Context, learnerID string, subjects []domain.Subject) error {
	if err := r.DeleteAll(ctx, learnerID); err != nil {
		return err
	}
	for i, s := range subjects {
		if err := r.insert(ctx, learnerID, s, i+1); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteSubjectRepo) DeleteAll(ctx context.Context, learnerID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subjects WHERE learner_id = ?`, learnerID); err != nil {
		return fmt.Errorf("deleting subjects: %w", err)
	}
	return nil
}

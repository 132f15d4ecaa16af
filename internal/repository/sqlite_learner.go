package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

type SQLiteLearnerRepo struct {
	db db.DBTX
}

func NewSQLiteLearnerRepo(conn db.DBTX) *SQLiteLearnerRepo {
	return &SQLiteLearnerRepo{db: conn}
}

const learnerColumns = `id, name, goal_hours_per_day, created_at, updated_at`

// Create inserts the learner together with its zeroed streak row.
func (r *SQLiteLearnerRepo) Create(ctx context.Context, l *domain.Learner) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO learners (`+learnerColumns+`) VALUES (?, ?, ?, ?, ?)`,
		l.ID,
		l.Name,
		l.GoalHoursPerDay,
		formatTime(l.CreatedAt),
		formatTime(l.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.InvalidInputf("learner %q already exists", l.Name)
		}
		return fmt.Errorf("inserting learner: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO streaks (learner_id, current, best) VALUES (?, 0, 0)`, l.ID); err != nil {
		return fmt.Errorf("inserting learner streak: %w", err)
	}
	return nil
}

func (r *SQLiteLearnerRepo) GetByID(ctx context.Context, id string) (*domain.Learner, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+learnerColumns+` FROM learners WHERE id = ?`, id)
	return scanLearner(row)
}

func (r *SQLiteLearnerRepo) GetByName(ctx context.Context, name string) (*domain.Learner, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+learnerColumns+` FROM learners WHERE name = ?`, name)
	return scanLearner(row)
}

func (r *SQLiteLearnerRepo) List(ctx context.Context) ([]*domain.Learner, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+learnerColumns+` FROM learners ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("listing learners: %w", err)
	}
	defer rows.Close()

	var learners []*domain.Learner
	for rows.Next() {
		l, err := scanLearner(rows)
		if err != nil {
			return nil, err
		}
		learners = append(learners, l)
	}
	return learners, rows.Err()
}

func (r *SQLiteLearnerRepo) Update(ctx context.Context, l *domain.Learner) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE learners SET name = ?, goal_hours_per_day = ?, updated_at = ? WHERE id = ?`,
		l.Name, l.GoalHoursPerDay, formatTime(l.UpdatedAt), l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.InvalidInputf("learner %q already exists", l.Name)
		}
		return fmt.Errorf("updating learner: %w", err)
	}
	if err := affectedOne(res, "learner "+l.ID); err != nil {
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLearner(row rowScanner) (*domain.Learner, error) {
	var l domain.Learner
	var createdAt, updatedAt string
	if err := row.Scan(&l.ID, &l.Name, &l.GoalHoursPerDay, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("learner: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning learner: %w", err)
	}
	var err error
	if l.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing learner created_at: %w", err)
	}
	if l.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing learner updated_at: %w", err)
	}
	return &l, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

type SQLiteStreakRepo struct {
	db db.DBTX
}

func NewSQLiteStreakRepo(conn db.DBTX) *SQLiteStreakRepo {
	return &SQLiteStreakRepo{db: conn}
}

func (r *SQLiteStreakRepo) Get(ctx context.Context, learnerID string) (domain.Streak, error) {
	var s domain.Streak
	err := r.db.QueryRowContext(ctx,
		`SELECT current, best FROM streaks WHERE learner_id = ?`, learnerID).Scan(&s.Current, &s.Best)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Streak{}, fmt.Errorf("streak: %w", ErrNotFound)
		}
		return domain.Streak{}, fmt.Errorf("scanning streak: %w", err)
	}
	return s, nil
}

func (r *SQLiteStreakRepo) Upsert(ctx context.Context, learnerID string, s domain.Streak) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO streaks (learner_id, current, best) VALUES (?, ?, ?)
		ON CONFLICT(learner_id) DO UPDATE SET current = excluded.current, best = excluded.best`,
		learnerID, s.Current, s.Best)
	if err != nil {
		return fmt.Errorf("upserting streak: %w", err)
	}
	return nil
}

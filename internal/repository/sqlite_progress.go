package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

type SQLiteProgressRepo struct {
	db db.DBTX
}

func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

// List returns the ledger entries in ledger order. A learner without a plan
// has no entries.
func (r *SQLiteProgressRepo) List(ctx context.Context, learnerID string) ([]domain.ProgressEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT position, day, completed, completed_at FROM progress_entries
		WHERE learner_id = ? ORDER BY position`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("listing progress entries: %w", err)
	}
	var entries []domain.ProgressEntry
	index := map[int]int{}
	for rows.Next() {
		var pos, completed int
		var completedAt sql.NullString
		var e domain.ProgressEntry
		if err := rows.Scan(&pos, &e.Day, &completed, &completedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning progress entry: %w", err)
		}
		e.Completed = completed != 0
		e.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
		index[pos] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	tasks, err := loadTasks(ctx, r.db,
		`SELECT entry_position, subject, hours, note FROM progress_tasks
		WHERE learner_id = ? ORDER BY entry_position, position`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("listing progress tasks: %w", err)
	}
	for pos, list := range tasks {
		i, ok := index[pos]
		if !ok {
			return nil, fmt.Errorf("progress task references missing entry %d", pos)
		}
		entries[i].Tasks = list
	}
	return entries, nil
}

// Replace rewrites the learner's ledger. Positions are renumbered from zero
// so skips that removed or inserted entries are stored densely.
func (r *SQLiteProgressRepo) Replace(ctx context.Context, learnerID string, entries []domain.ProgressEntry) error {
	if err := r.DeleteAll(ctx, learnerID); err != nil {
		return err
	}
	for i, e := range entries {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO progress_entries (learner_id, position, day, completed, completed_at) VALUES (?, ?, ?, ?, ?)`,
			learnerID, i, e.Day, boolToInt(e.Completed), nullableTimeToString(e.CompletedAt, time.RFC3339),
		); err != nil {
			return fmt.Errorf("inserting progress entry %q: %w", e.Day, err)
		}
		if err := insertTasks(ctx, r.db,
			`INSERT INTO progress_tasks (learner_id, entry_position, position, subject, hours, note) VALUES (?, ?, ?, ?, ?, ?)`,
			learnerID, i, e.Tasks); err != nil {
			return fmt.Errorf("inserting tasks for %q: %w", e.Day, err)
		}
	}
	return nil
}

func (r *SQLiteProgressRepo) DeleteAll(ctx context.Context, learnerID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress_entries WHERE learner_id = ?`, learnerID); err != nil {
		return fmt.Errorf("deleting progress entries: %w", err)
	}
	return nil
}

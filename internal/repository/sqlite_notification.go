package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

type SQLiteNotificationRepo struct {
	db db.DBTX
}

func NewSQLiteNotificationRepo(conn db.DBTX) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: conn}
}

func (r *SQLiteNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notifications (id, learner_id, message, created_at) VALUES (?, ?, ?, ?)`,
		n.ID, n.LearnerID, n.Message, formatTime(n.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

// Rows created within the same second are ordered by insertion (rowid).
func (r *SQLiteNotificationRepo) ListRecent(ctx context.Context, learnerID string, limit int) ([]*domain.Notification, error) {
	return r.query(ctx,
		`SELECT id, learner_id, message, created_at FROM notifications
		WHERE learner_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`, learnerID, limit)
}

func (r *SQLiteNotificationRepo) List(ctx context.Context, learnerID string) ([]*domain.Notification, error) {
	return r.query(ctx,
		`SELECT id, learner_id, message, created_at FROM notifications
		WHERE learner_id = ? ORDER BY created_at, rowid`, learnerID)
}

func (r *SQLiteNotificationRepo) DeleteAll(ctx context.Context, learnerID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE learner_id = ?`, learnerID); err != nil {
		return fmt.Errorf("deleting notifications: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) query(ctx context.Context, query string, args ...any) ([]*domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var out []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		var createdAt string
		if err := rows.Scan(&n.ID, &n.LearnerID, &n.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("parsing notification created_at: %w", err)
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

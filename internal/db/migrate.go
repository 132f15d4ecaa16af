package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillSubjectPositions(db); err != nil {
		return fmt.Errorf("backfilling subject positions: %w", err)
	}
	if err := migrateBackfillStreaks(db); err != nil {
		return fmt.Errorf("backfilling streak rows: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS learners (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL UNIQUE,
		goal_hours_per_day REAL NOT NULL DEFAULT 3.0 CHECK(goal_hours_per_day > 0),
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	// Seed the learner used when none is named.
	`INSERT OR IGNORE INTO learners (id, name, created_at, updated_at)
		VALUES ('default', 'default', strftime('%Y-%m-%dT%H:%M:%SZ', 'now'), strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))`,

	`CREATE TABLE IF NOT EXISTS subjects (
		learner_id TEXT NOT NULL REFERENCES learners(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		difficulty TEXT NOT NULL DEFAULT 'medium'
		           CHECK(difficulty IN ('easy','medium','hard')),
		created_at TEXT NOT NULL,
		PRIMARY KEY (learner_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		learner_id    TEXT PRIMARY KEY REFERENCES learners(id) ON DELETE CASCADE,
		hours_per_day REAL NOT NULL CHECK(hours_per_day > 0),
		days          INTEGER NOT NULL CHECK(days > 0),
		exam_date     TEXT,
		generated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plan_focus (
		learner_id TEXT NOT NULL REFERENCES plans(learner_id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		subject    TEXT NOT NULL,
		PRIMARY KEY (learner_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_days (
		learner_id TEXT NOT NULL REFERENCES plans(learner_id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		label      TEXT NOT NULL,
		PRIMARY KEY (learner_id, position),
		UNIQUE (learner_id, label)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_tasks (
		learner_id   TEXT NOT NULL,
		day_position INTEGER NOT NULL,
		position     INTEGER NOT NULL,
		subject      TEXT NOT NULL,
		hours        REAL NOT NULL CHECK(hours > 0),
		note         TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (learner_id, day_position, position),
		FOREIGN KEY (learner_id, day_position) REFERENCES plan_days(learner_id, position) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS progress_entries (
		learner_id   TEXT NOT NULL REFERENCES learners(id) ON DELETE CASCADE,
		position     INTEGER NOT NULL,
		day          TEXT NOT NULL,
		completed    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT,
		PRIMARY KEY (learner_id, position),
		UNIQUE (learner_id, day)
	)`,

	`CREATE TABLE IF NOT EXISTS progress_tasks (
		learner_id     TEXT NOT NULL,
		entry_position INTEGER NOT NULL,
		position       INTEGER NOT NULL,
		subject        TEXT NOT NULL,
		hours          REAL NOT NULL CHECK(hours > 0),
		note           TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (learner_id, entry_position, position),
		FOREIGN KEY (learner_id, entry_position) REFERENCES progress_entries(learner_id, position) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS streaks (
		learner_id TEXT PRIMARY KEY REFERENCES learners(id) ON DELETE CASCADE,
		current    INTEGER NOT NULL DEFAULT 0 CHECK(current >= 0),
		best       INTEGER NOT NULL DEFAULT 0 CHECK(best >= current)
	)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		learner_id TEXT NOT NULL REFERENCES learners(id) ON DELETE CASCADE,
		message    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notifications_learner ON notifications(learner_id, created_at)`,

	// Per-subject exam dates and explicit ordering were added after the first release.
	`ALTER TABLE subjects ADD COLUMN exam_date TEXT`,
	`ALTER TABLE subjects ADD COLUMN position INTEGER NOT NULL DEFAULT 0`,
	`CREATE INDEX IF NOT EXISTS idx_subjects_position ON subjects(learner_id, position)`,
}

// migrateBackfillSubjectPositions numbers subjects that predate the position
// column in their original insertion order (rowid). Idempotent: only rows
// with position = 0 are touched.
func migrateBackfillSubjectPositions(db *sql.DB) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subjects WHERE position = 0`).Scan(&count); err != nil {
		return fmt.Errorf("checking subject positions: %w", err)
	}
	if count == 0 {
		return nil
	}

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT learner_id FROM subjects WHERE position = 0 ORDER BY learner_id`)
	if err != nil {
		return fmt.Errorf("listing learners for position backfill: %w", err)
	}
	var learnerIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scanning learner id: %w", err)
		}
		learnerIDs = append(learnerIDs, id)
	}
	rows.Close()

	for _, id := range learnerIDs {
		if err := backfillLearnerSubjects(ctx, db, id); err != nil {
			return fmt.Errorf("backfilling subjects for learner %s: %w", id, err)
		}
	}
	return nil
}

func backfillLearnerSubjects(ctx context.Context, db *sql.DB, learnerID string) error {
	var next int
	if err := db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), 0) + 1 FROM subjects WHERE learner_id = ?`, learnerID).Scan(&next); err != nil {
		return fmt.Errorf("reading max position: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT name FROM subjects WHERE learner_id = ? AND position = 0 ORDER BY rowid`, learnerID)
	if err != nil {
		return fmt.Errorf("listing subjects: %w", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		names = append(names, name)
	}
	rows.Close()

	for _, name := range names {
		if _, err := db.ExecContext(ctx,
			`UPDATE subjects SET position = ? WHERE learner_id = ? AND name = ? AND position = 0`,
			next, learnerID, name); err != nil {
			return fmt.Errorf("updating subject position: %w", err)
		}
		next++
	}
	return nil
}

// migrateBackfillStreaks gives every learner a zeroed streak row so reads
// never have to special-case a missing row.
func migrateBackfillStreaks(db *sql.DB) error {
	query := `INSERT INTO streaks (learner_id, current, best)
		SELECT l.id, 0, 0 FROM learners l
		WHERE NOT EXISTS (SELECT 1 FROM streaks s WHERE s.learner_id = l.id)`
	if _, err := db.ExecContext(context.Background(), query); err != nil {
		return fmt.Errorf("inserting missing streak rows: %w", err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/studyplan/internal/db"
	"github.com/alexanderramin/studyplan/internal/domain"
)

type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Get(ctx context.Context, learnerID string) (*domain.Plan, error) {
	var p domain.Plan
	var examDate sql.NullString
	var generatedAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT hours_per_day, days, exam_date, generated_at FROM plans WHERE learner_id = ?`, learnerID).
		Scan(&p.Settings.HoursPerDay, &p.Settings.Days, &examDate, &generatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plan: %w", err)
	}
	p.Settings.ExamDate = parseNullableTime(examDate, dateLayout)
	if p.Settings.GeneratedAt, err = parseTime(generatedAt); err != nil {
		return nil, fmt.Errorf("parsing plan generated_at: %w", err)
	}

	if p.Settings.Focus, err = r.loadFocus(ctx, learnerID); err != nil {
		return nil, err
	}
	if p.Days, err = r.loadDays(ctx, learnerID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLitePlanRepo) loadFocus(ctx context.Context, learnerID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT subject FROM plan_focus WHERE learner_id = ? ORDER BY position`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("listing plan focus: %w", err)
	}
	defer rows.Close()

	var focus []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scanning plan focus: %w", err)
		}
		focus = append(focus, s)
	}
	return focus, rows.Err()
}

func (r *SQLitePlanRepo) loadDays(ctx context.Context, learnerID string) (domain.DayPlans, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT position, label FROM plan_days WHERE learner_id = ? ORDER BY position`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("listing plan days: %w", err)
	}
	var days domain.DayPlans
	index := map[int]int{}
	for rows.Next() {
		var pos int
		var d domain.DayPlan
		if err := rows.Scan(&pos, &d.Label); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning plan day: %w", err)
		}
		index[pos] = len(days)
		days = append(days, d)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	tasks, err := loadTasks(ctx, r.db,
		`SELECT day_position, subject, hours, note FROM plan_tasks
		WHERE learner_id = ? ORDER BY day_position, position`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("listing plan tasks: %w", err)
	}
	for pos, list := range tasks {
		i, ok := index[pos]
		if !ok {
			return nil, fmt.Errorf("plan task references missing day %d", pos)
		}
		days[i].Tasks = list
	}
	return days, nil
}

// Save replaces the learner's plan, its focus list, days and tasks.
func (r *SQLitePlanRepo) Save(ctx context.Context, learnerID string, p *domain.Plan) error {
	if err := r.Delete(ctx, learnerID); err != nil {
		return err
	}
	s := p.Settings
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO plans (learner_id, hours_per_day, days, exam_date, generated_at) VALUES (?, ?, ?, ?, ?)`,
		learnerID, s.HoursPerDay, len(p.Days), nullableTimeToString(s.ExamDate, dateLayout), formatTime(s.GeneratedAt),
	); err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	for i, name := range s.Focus {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_focus (learner_id, position, subject) VALUES (?, ?, ?)`, learnerID, i, name); err != nil {
			return fmt.Errorf("inserting plan focus: %w", err)
		}
	}
	for i, d := range p.Days {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO plan_days (learner_id, position, label) VALUES (?, ?, ?)`, learnerID, i, d.Label); err != nil {
			return fmt.Errorf("inserting plan day %q: %w", d.Label, err)
		}
		if err := insertTasks(ctx, r.db,
			`INSERT INTO plan_tasks (learner_id, day_position, position, subject, hours, note) VALUES (?, ?, ?, ?, ?, ?)`,
			learnerID, i, d.Tasks); err != nil {
			return fmt.Errorf("inserting tasks for %q: %w", d.Label, err)
		}
	}
	return nil
}

// Delete removes the learner's plan. Days and tasks cascade. Deleting a
// missing plan is not an error.
func (r *SQLitePlanRepo) Delete(ctx context.Context, learnerID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE learner_id = ?`, learnerID); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	return nil
}

// loadTasks runs query (learner id as its only argument) and groups the
// returned tasks by their leading position column.
func loadTasks(ctx context.Context, conn db.DBTX, query, learnerID string) (map[int][]domain.Task, error) {
	rows, err := conn.QueryContext(ctx, query, learnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int][]domain.Task{}
	for rows.Next() {
		var pos int
		var t domain.Task
		if err := rows.Scan(&pos, &t.Subject, &t.Hours, &t.Note); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		out[pos] = append(out[pos], t)
	}
	return out, rows.Err()
}

func insertTasks(ctx context.Context, conn db.DBTX, query, learnerID string, parent int, tasks []domain.Task) error {
	for j, t := range tasks {
		if _, err := conn.ExecContext(ctx, query, learnerID, parent, j, t.Subject, t.Hours, t.Note); err != nil {
			return err
		}
	}
	return nil
}

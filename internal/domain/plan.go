package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"time"
)

const (
	// ReviewSubject labels the closing task that absorbs a day's unused budget.
	ReviewSubject = "Review & Breaks"
	ReviewNote    = "Light review / short breaks"

	// HoursEpsilon is the tolerance for rounding hours to two decimals.
	HoursEpsilon = 0.01
)

type Task struct {
	Subject string  `json:"subject"`
	Hours   float64 `json:"hours"`
	Note    string  `json:"note"`
}

type DayPlan struct {
	Label string
	Tasks []Task
}

// TotalHours sums the hours of every task in the day.
func (d DayPlan) TotalHours() float64 {
	return sumHours(d.Tasks)
}

// DayPlans is an ordered list of day plans. It encodes as a JSON object keyed
// by day label and keeps key order in both directions.
type DayPlans []DayPlan

func (d DayPlans) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(day.Label)
		if err != nil {
			return nil, err
		}
		tasks := day.Tasks
		if tasks == nil {
			tasks = []Task{}
		}
		val, err := json.Marshal(tasks)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", day.Label, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *DayPlans) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("day plans: expected object, got %v", tok)
	}

	var out DayPlans
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("day plans: expected day label, got %v", tok)
		}
		var tasks []Task
		if err := dec.Decode(&tasks); err != nil {
			return fmt.Errorf("decoding %s: %w", label, err)
		}
		out = append(out, DayPlan{Label: label, Tasks: tasks})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*d = out
	return nil
}

// PlanSettings records the inputs a plan was generated from.
type PlanSettings struct {
	HoursPerDay float64    `json:"hours_per_day"`
	Days        int        `json:"days"`
	ExamDate    *time.Time `json:"exam_date"`
	Focus       []string   `json:"focus"`
	GeneratedAt time.Time  `json:"generated_at"`
}

type Plan struct {
	Settings PlanSettings `json:"settings"`
	Days     DayPlans     `json:"days"`
}

// DayLabel returns the canonical label of the n-th plan day ("Day n").
func DayLabel(n int) string {
	return fmt.Sprintf("Day %d", n)
}

// Labels returns the day labels in plan order.
func (p *Plan) Labels() []string {
	labels := make([]string, len(p.Days))
	for i, d := range p.Days {
		labels[i] = d.Label
	}
	return labels
}

// Day looks up a day plan by label.
func (p *Plan) Day(label string) (DayPlan, bool) {
	for _, d := range p.Days {
		if d.Label == label {
			return d, true
		}
	}
	return DayPlan{}, false
}

func (p *Plan) TotalHours() float64 {
	var total float64
	for _, d := range p.Days {
		total += d.TotalHours()
	}
	return total
}

// Validate checks the structural invariants of a stored plan: labels run
// Day 1..Day N without gaps, every task has positive hours, and no day
// exceeds the daily budget.
func (p *Plan) Validate() error {
	if len(p.Days) == 0 {
		return InvalidInputf("plan has no days")
	}
	if p.Settings.Days != 0 && p.Settings.Days != len(p.Days) {
		return InvalidInputf("plan settings list %d days but plan has %d", p.Settings.Days, len(p.Days))
	}
	for i, d := range p.Days {
		if want := DayLabel(i + 1); d.Label != want {
			return InvalidInputf("plan day %d is labeled %q, want %q", i+1, d.Label, want)
		}
		if err := validateTasks(d.Label, d.Tasks); err != nil {
			return err
		}
		if p.Settings.HoursPerDay > 0 && d.TotalHours() > p.Settings.HoursPerDay+HoursEpsilon {
			return InvalidInputf("%s plans %.2f hours, over the %.2f daily budget", d.Label, d.TotalHours(), p.Settings.HoursPerDay)
		}
	}
	return nil
}

func validateTasks(label string, tasks []Task) error {
	for _, t := range tasks {
		if t.Subject == "" {
			return InvalidInputf("%s has a task without a subject", label)
		}
		if !(t.Hours > 0) || math.IsInf(t.Hours, 0) {
			return InvalidInputf("%s task %q has non-positive hours %.2f", label, t.Subject, t.Hours)
		}
	}
	return nil
}

func sumHours(tasks []Task) float64 {
	var total float64
	for _, t := range tasks {
		total += t.Hours
	}
	return total
}

// FillSettings completes settings missing from plans that were stored
// without them: day count from the plan length, daily budget from the
// busiest day, generation time from at.
func (p *Plan) FillSettings(at time.Time) {
	if p.Settings.Days == 0 {
		p.Settings.Days = len(p.Days)
	}
	if p.Settings.HoursPerDay <= 0 {
		for _, d := range p.Days {
			p.Settings.HoursPerDay = math.Max(p.Settings.HoursPerDay, d.TotalHours())
		}
	}
	if p.Settings.GeneratedAt.IsZero() {
		p.Settings.GeneratedAt = at
	}
}

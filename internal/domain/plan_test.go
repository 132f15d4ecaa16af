package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePlanTime = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func samplePlan() *Plan {
	return &Plan{
		Settings: PlanSettings{HoursPerDay: 3, Days: 3},
		Days: DayPlans{
			{Label: "Day 1", Tasks: []Task{{Subject: "Math", Hours: 2, Note: "a"}, {Subject: ReviewSubject, Hours: 1, Note: ReviewNote}}},
			{Label: "Day 2", Tasks: []Task{{Subject: "Math", Hours: 3, Note: "a"}}},
			{Label: "Day 3", Tasks: []Task{{Subject: "History", Hours: 1.5, Note: "b"}}},
		},
	}
}

func TestDayPlans_JSONKeepsLabelOrder(t *testing.T) {
	days := DayPlans{}
	for i := 12; i >= 1; i-- {
		days = append(days, DayPlan{Label: DayLabel(i), Tasks: []Task{{Subject: "S", Hours: 1}}})
	}

	data, err := json.Marshal(days)
	require.NoError(t, err)

	var decoded DayPlans
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, 12)
	assert.Equal(t, "Day 12", decoded[0].Label, "first key should survive decode")
	assert.Equal(t, "Day 1", decoded[11].Label)
}

func TestDayPlans_EncodesAsObjectOfTaskLists(t *testing.T) {
	data, err := json.Marshal(DayPlans{{Label: "Day 1"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"Day 1": []}`, string(data))
}

func TestDayPlans_RejectsArray(t *testing.T) {
	var decoded DayPlans
	err := json.Unmarshal([]byte(`[1,2]`), &decoded)
	require.Error(t, err)
}

func TestPlan_JSONRoundTrip(t *testing.T) {
	p := samplePlan()
	data, err := json.MarshalIndent(p, "", "  ")
	require.NoError(t, err)

	var decoded Plan
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p.Labels(), decoded.Labels())
	assert.Equal(t, p.Days[0].Tasks, decoded.Days[0].Tasks)
	assert.InDelta(t, 3.0, decoded.Settings.HoursPerDay, 1e-9)
}

func TestPlan_DayLookup(t *testing.T) {
	p := samplePlan()
	d, ok := p.Day("Day 2")
	require.True(t, ok)
	assert.InDelta(t, 3.0, d.TotalHours(), 1e-9)

	_, ok = p.Day("Day 9")
	assert.False(t, ok)
	assert.InDelta(t, 7.5, p.TotalHours(), 1e-9)
}

func TestPlan_ValidateAcceptsWellFormedPlan(t *testing.T) {
	assert.NoError(t, samplePlan().Validate())
}

func TestPlan_ValidateRejectsLabelGap(t *testing.T) {
	p := samplePlan()
	p.Days[2].Label = "Day 4"
	err := p.Validate()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "Day 3")
}

func TestPlan_ValidateRejectsZeroHourTask(t *testing.T) {
	p := samplePlan()
	p.Days[1].Tasks[0].Hours = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidInput)
}

func TestPlan_ValidateRejectsOverBudgetDay(t *testing.T) {
	p := samplePlan()
	p.Days[1].Tasks[0].Hours = 3.5
	err := p.Validate()
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "budget")
}

func TestPlan_ValidateRejectsEmptyPlan(t *testing.T) {
	assert.ErrorIs(t, (&Plan{}).Validate(), ErrInvalidInput)
}

func TestPlan_FillSettings(t *testing.T) {
	p := samplePlan()
	p.Settings = PlanSettings{}
	p.Days[1].Tasks = append(p.Days[1].Tasks, Task{Subject: "Math", Hours: 4})

	p.FillSettings(samplePlanTime)
	assert.Equal(t, 3, p.Settings.Days)
	assert.InDelta(t, p.Days[1].TotalHours(), p.Settings.HoursPerDay, 1e-9)
	assert.Equal(t, samplePlanTime, p.Settings.GeneratedAt)
	require.NoError(t, p.Validate())

	kept := samplePlan()
	kept.FillSettings(samplePlanTime)
	assert.Equal(t, 3.0, kept.Settings.HoursPerDay)
}

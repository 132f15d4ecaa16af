package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/alexanderramin/studyplan/internal/service"
	"github.com/alexanderramin/studyplan/internal/testutil"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	locks := service.NewLearnerLocks()

	return &App{
		Learners:  service.NewLearnerService(uow),
		Subjects:  service.NewSubjectService(uow, locks),
		Study:     service.NewStudyService(uow, locks),
		Reports:   service.NewReportService(uow),
		Snapshots: service.NewSnapshotService(uow, locks),
		Now:       func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr without styling.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return ansi.ReplaceAllString(buf.String(), ""), err
}

func mustExec(t *testing.T, a *App, args ...string) string {
	t.Helper()
	out, err := executeCmd(t, a, args...)
	require.NoError(t, err, out)
	return out
}

func seedSubjects(t *testing.T, a *App) {
	t.Helper()
	mustExec(t, a, "subject", "add", "Math", "--difficulty", "hard")
	mustExec(t, a, "subject", "add", "History", "--difficulty", "easy", "--exam-date", "2025-03-14")
}

func TestSubjectCommands(t *testing.T) {
	a := testApp(t)
	seedSubjects(t, a)

	out := mustExec(t, a, "subject", "list")
	assert.Contains(t, out, "Math")
	assert.Contains(t, out, "hard")
	assert.Contains(t, out, "2025-03-14 (in 4d)")

	mustExec(t, a, "subject", "remove", "Math")
	out = mustExec(t, a, "subject", "list")
	assert.NotContains(t, out, "Math")

	out = mustExec(t, a, "subject", "examples")
	assert.Contains(t, out, "Loaded 5 example subjects")
	assert.Contains(t, out, "English Literature")
}

func TestSubjectAdd_Errors(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "subject", "add")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCmd(t, a, "subject", "add", "Math", "--difficulty", "brutal")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCmd(t, a, "subject", "add", "Math", "--exam-date", "next week")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, FormatError(err), "invalid input:")

	mustExec(t, a, "subject", "add", "Math")
	_, err = executeCmd(t, a, "subject", "add", "Math")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubjectAdd_InteractiveOpensForm(t *testing.T) {
	a := testApp(t)
	a.IsInteractive = func() bool { return true }

	called := false
	orig := runForm
	runForm = func(*huh.Form) error {
		called = true
		return huh.ErrUserAborted
	}
	t.Cleanup(func() { runForm = orig })

	_, err := executeCmd(t, a, "subject", "add")
	assert.True(t, called)
	assert.ErrorIs(t, err, huh.ErrUserAborted)
}

func TestPlanLifecycle(t *testing.T) {
	a := testApp(t)
	seedSubjects(t, a)

	out := mustExec(t, a, "plan", "generate", "--hours", "4", "--days", "3", "--focus", "History")
	assert.Contains(t, out, "STUDY PLAN")
	assert.Contains(t, out, "Day 3")
	assert.Contains(t, out, "New 3-day plan generated")

	out = mustExec(t, a, "plan", "show")
	assert.Contains(t, out, "4h/day")
	assert.Contains(t, out, "focus  History")

	out = mustExec(t, a, "day", "complete", "Day", "1")
	assert.Contains(t, out, "Day 1 completed")
	assert.Contains(t, out, "Streak: 1")

	out = mustExec(t, a, "day", "skip", "Day 2")
	assert.Contains(t, out, "from Day 2 merged into Day 3")

	out = mustExec(t, a, "day", "list")
	assert.Contains(t, out, "Done")
	assert.NotContains(t, out, "Day 2")

	out = mustExec(t, a, "report")
	assert.Contains(t, out, "completed 1/2")
	assert.Contains(t, out, "HOURS BY SUBJECT")

	out = mustExec(t, a, "plan", "regenerate")
	assert.Contains(t, out, "Plan regenerated from current subjects")

	mustExec(t, a, "plan", "clear", "--yes")
	_, err := executeCmd(t, a, "plan", "show")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlanGenerate_Errors(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "plan", "generate")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "no subjects")

	seedSubjects(t, a)
	_, err = executeCmd(t, a, "plan", "generate", "--hours", "lots")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = executeCmd(t, a, "plan", "generate", "--hours", "-2")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = executeCmd(t, a, "plan", "generate", "--exam-date", "2025-13-40")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = executeCmd(t, a, "plan", "generate", "--focus", "Chemistry")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = executeCmd(t, a, "plan", "generate", "--hours", "2", "--days", "0")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "zero days is not the default horizon")
	_, err = executeCmd(t, a, "plan", "generate", "--hours", "2", "--days", "100000000")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCmd(t, a, "plan", "show")
	assert.ErrorIs(t, err, domain.ErrNotFound, "rejected generates leave no plan")
}

func TestDayComplete_Errors(t *testing.T) {
	a := testApp(t)

	_, err := executeCmd(t, a, "day", "complete", "Day 1")
	assert.ErrorIs(t, err, domain.ErrNotFound, "no plan yet")

	seedSubjects(t, a)
	mustExec(t, a, "plan", "generate", "--hours", "2", "--days", "2")
	mustExec(t, a, "day", "complete", "Day 1")

	_, err = executeCmd(t, a, "day", "complete", "Day 1")
	require.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Contains(t, FormatError(err), "not allowed:")
}

func TestLearnerCommands(t *testing.T) {
	a := testApp(t)

	out := mustExec(t, a, "learner", "add", "ana", "--goal", "2.5")
	assert.Contains(t, out, "Created learner ana (goal 2.5h/day)")

	out = mustExec(t, a, "--learner", "ana", "learner", "goal", "4")
	assert.Contains(t, out, "ana now aims for 4h/day")

	out = mustExec(t, a, "--learner", "ana", "learner", "list")
	assert.Contains(t, out, "default")
	assert.Regexp(t, `●\s+ana`, out)

	_, err := executeCmd(t, a, "learner", "goal", "zero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCmd(t, a, "--learner", "ghost", "subject", "list")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLearnersAreIsolated(t *testing.T) {
	a := testApp(t)
	mustExec(t, a, "learner", "add", "ana")
	seedSubjects(t, a)

	out := mustExec(t, a, "--learner", "ana", "subject", "list")
	assert.Contains(t, out, "No subjects yet")

	_, err := executeCmd(t, a, "--learner", "ana", "plan", "generate")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportImport(t *testing.T) {
	a := testApp(t)
	seedSubjects(t, a)
	mustExec(t, a, "plan", "generate", "--hours", "3", "--days", "2")
	mustExec(t, a, "day", "complete", "Day 1")

	out := mustExec(t, a, "export")
	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "subjects")
	assert.Contains(t, doc, "plan")
	assert.Contains(t, doc, "streak")

	path := filepath.Join(t.TempDir(), "snapshot.json")
	out = mustExec(t, a, "export", "--out", path)
	assert.Contains(t, out, "Exported 2 subject(s), 2 plan day(s), 2 ledger entries")

	mustExec(t, a, "learner", "add", "copy")
	out = mustExec(t, a, "--learner", "copy", "import", path)
	assert.Contains(t, out, "Imported 2 subject(s), 2 plan day(s), 2 ledger entries")

	out = mustExec(t, a, "--learner", "copy", "day", "list")
	assert.Contains(t, out, "Streak: 1")

	_, err := executeCmd(t, a, "import", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTrack_RequiresTerminal(t *testing.T) {
	a := testApp(t)
	_, err := executeCmd(t, a, "track")
	assert.True(t, errors.Is(err, domain.ErrInvalidState))
}

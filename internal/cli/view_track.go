package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/studyplan/internal/app"
	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type trackKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Skip     key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

func newTrackKeyMap() trackKeyMap {
	return trackKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Complete: key.NewBinding(key.WithKeys("c", "enter"), key.WithHelp("c", "complete")),
		Skip:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k trackKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Skip, k.Refresh, k.Quit}
}

func (k trackKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, k.ShortHelp()}
}

// trackLoadedMsg carries a refreshed ledger and the outcome of the action
// that triggered the reload.
type trackLoadedMsg struct {
	view   *app.LedgerView
	status string
	err    error
}

// trackModel is the interactive ledger: move between days, complete or
// skip the selected one. Service calls run under ctx so cancelling the
// command stops them.
type trackModel struct {
	ctx     context.Context
	study   app.StudyPlanUseCase
	learner string
	keys    trackKeyMap
	help    help.Model

	entries []domain.ProgressEntry
	streak  domain.Streak
	cursor  int
	loading bool
	status  string
	err     error
}

func newTrackModel(ctx context.Context, study app.StudyPlanUseCase, learner string) *trackModel {
	return &trackModel{
		ctx:     ctx,
		study:   study,
		learner: learner,
		keys:    newTrackKeyMap(),
		help:    help.New(),
		loading: true,
	}
}

func (m *trackModel) Init() tea.Cmd {
	return m.reload("")
}

func (m *trackModel) reload(status string) tea.Cmd {
	ctx, study, learner := m.ctx, m.study, m.learner
	return func() tea.Msg {
		view, err := study.ListDays(ctx, learner)
		return trackLoadedMsg{view: view, status: status, err: err}
	}
}

// act runs fn against the selected day and reloads the ledger afterwards.
// A failed action keeps the current rows and reports the error.
func (m *trackModel) act(fn func(ctx context.Context, day string) (string, error)) tea.Cmd {
	if m.cursor >= len(m.entries) {
		return nil
	}
	day := m.entries[m.cursor].Day
	ctx, study, learner := m.ctx, m.study, m.learner
	return func() tea.Msg {
		status, actErr := fn(ctx, day)
		view, err := study.ListDays(ctx, learner)
		if actErr != nil {
			return trackLoadedMsg{view: view, err: actErr}
		}
		return trackLoadedMsg{view: view, status: status, err: err}
	}
}

func (m *trackModel) complete(ctx context.Context, day string) (string, error) {
	resp, err := m.study.CompleteDay(ctx, m.learner, day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s completed. Streak %d (best %d)", resp.Day, resp.Streak.Current, resp.Streak.Best), nil
}

func (m *trackModel) skip(ctx context.Context, day string) (string, error) {
	resp, err := m.study.SkipDay(ctx, m.learner, day)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Moved %d task(s) from %s to %s", resp.Moved, resp.From, resp.To), nil
}

func (m *trackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case trackLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.status = msg.status
		if msg.view != nil {
			m.entries = msg.view.Entries
			m.streak = msg.view.Streak
		}
		if m.cursor >= len(m.entries) {
			m.cursor = max(len(m.entries)-1, 0)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Complete):
			return m, m.act(m.complete)
		case key.Matches(msg, m.keys.Skip):
			return m, m.act(m.skip)
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.reload("")
		}
	}
	return m, nil
}

var (
	trackCursorStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	trackTitleStyle  = lipgloss.NewStyle().Foreground(formatter.ColorPurple).Bold(true)
)

func (m *trackModel) View() string {
	var b strings.Builder
	b.WriteString(trackTitleStyle.Render("studyplan · "+m.learner) + "\n\n")

	switch {
	case m.loading:
		b.WriteString(formatter.Dim("Loading…") + "\n")
	case len(m.entries) == 0 && m.err == nil:
		b.WriteString(formatter.Dim("No days to track. Run 'studyplan plan generate' first.") + "\n")
	default:
		for i, e := range m.entries {
			prefix, label := "  ", formatter.StyleFg.Render(fmt.Sprintf("%-8s", e.Day))
			if i == m.cursor {
				prefix = trackCursorStyle.Render("> ")
				label = trackCursorStyle.Render(fmt.Sprintf("%-8s", e.Day))
			}
			b.WriteString(fmt.Sprintf("%s%s  %s  %s\n", prefix, label,
				formatter.StatusPill(e.Status()), formatter.Dim(formatter.FormatHours(e.TotalHours()))))
		}
	}

	b.WriteString("\n" + formatter.FormatStreak(m.streak) + "\n")
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(FormatError(m.err)) + "\n")
	} else if m.status != "" {
		b.WriteString(formatter.StyleGreen.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

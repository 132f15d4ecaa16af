package cli

import (
	"github.com/alexanderramin/studyplan/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTrackCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Interactively complete and skip plan days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.interactive() {
				return domain.InvalidStatef("track needs an interactive terminal; use 'day list', 'day complete' or 'day skip'")
			}
			ctx := commandContext(cmd)
			p := tea.NewProgram(newTrackModel(ctx, a.Study, learnerFlag(cmd)), tea.WithContext(ctx))
			_, err := p.Run()
			return err
		},
	}
}

package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDocketCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "docket",
		Short: "Browse the docket interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return fmt.Errorf("docket browser requires a terminal; use 'courtsched case list'")
			}
			p := tea.NewProgram(newDocketModel(app))
			_, err := p.Run()
			return err
		},
	}
}

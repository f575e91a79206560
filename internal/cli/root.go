package cli

import (
	"github.com/rsanghvi/courtsched/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Cases      service.CaseService
	Judges     service.JudgeService
	Scheduling service.SchedulingService
	Import     service.ImportService

	// IsInteractive reports whether stdin is a terminal; interactive
	// wizards and the docket browser require it.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "courtsched" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "courtsched",
		Short: "Court case scheduling engine",
	}

	root.AddCommand(
		newCaseCmd(app),
		newJudgeCmd(app),
		newDocketCmd(app),
		newImportCmd(app),
	)

	return root
}

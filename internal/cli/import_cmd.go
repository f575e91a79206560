package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk-import judges and cases from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportDocket(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d judges, filed %d cases (%d scheduled)\n",
				result.JudgesAdded, result.CasesFiled, result.CasesScheduled)
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rsanghvi/courtsched/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newJudgeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "judge",
		Short: "Manage judges",
	}

	cmd.AddCommand(
		newJudgeAddCmd(app),
		newJudgeListCmd(app),
		newJudgeCalendarCmd(app),
	)

	return cmd
}

func newJudgeAddCmd(app *App) *cobra.Command {
	var name, room string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a judge",
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := app.Judges.Register(context.Background(), name, room)
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s in %s\n", j.Name, j.CourtRoom)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Judge name")
	cmd.Flags().StringVar(&room, "room", "", "Courtroom")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newJudgeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered judges",
		RunE: func(cmd *cobra.Command, args []string) error {
			judges, err := app.Judges.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderJudgeTable(judges))
			return nil
		},
	}
}

func newJudgeCalendarCmd(app *App) *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "calendar <judge>",
		Short: "Show a judge's calendar for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			judgeID, err := resolveJudgeID(ctx, app, args[0])
			if err != nil {
				return err
			}

			date := time.Now().UTC()
			if dateStr != "" {
				date, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", dateStr, err)
				}
			}

			judge, err := app.Judges.GetByID(ctx, judgeID)
			if err != nil {
				return err
			}
			day, err := app.Judges.Calendar(ctx, judgeID, date)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderCalendarDay(judge, date.Format("2006-01-02"), day.Bookings, day.Free))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rsanghvi/courtsched/internal/cli/formatter"
	"github.com/rsanghvi/courtsched/internal/domain"
	"github.com/rsanghvi/courtsched/internal/scheduler"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// complexityValue is a pflag.Value that rejects unknown complexities at
// parse time instead of at filing time.
type complexityValue string

var _ pflag.Value = (*complexityValue)(nil)

func (v *complexityValue) String() string { return string(*v) }

func (v *complexityValue) Set(s string) error {
	s = strings.ToLower(s)
	if !domain.ValidComplexities[s] {
		return fmt.Errorf("must be one of: %s", complexityChoices())
	}
	*v = complexityValue(s)
	return nil
}

func (v *complexityValue) Type() string { return "complexity" }

func complexityChoices() string {
	choices := make([]string, 0, len(domain.AllComplexities))
	for _, c := range domain.AllComplexities {
		choices = append(choices, string(c))
	}
	return strings.Join(choices, "|")
}

func newCaseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "File and manage cases",
	}

	cmd.AddCommand(
		newCaseFileCmd(app),
		newCaseListCmd(app),
		newCaseShowCmd(app),
		newCaseScheduleCmd(app),
		newCaseHearingCmd(app),
		newCaseStartCmd(app),
		newCaseCompleteCmd(app),
		newCaseAdjournCmd(app),
	)

	return cmd
}

func newCaseFileCmd(app *App) *cobra.Command {
	var title string
	complexity := complexityValue(domain.ComplexitySimple)

	cmd := &cobra.Command{
		Use:   "file",
		Short: "File a new case",
		Long:  "File a new case and schedule it. With no flags on a terminal, runs an interactive form.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				wizTitle, wizComplexity, err := runFileWizard()
				if err != nil {
					return err
				}
				title = wizTitle
				complexity = complexityValue(wizComplexity)
			}

			c, err := app.Cases.File(ctx, title, domain.CaseComplexity(complexity))
			if err != nil {
				return err
			}

			fmt.Printf("Filed %s\n", c.CaseNumber)
			if c.Status == domain.CaseScheduled {
				fmt.Printf("Scheduled %s at %s\n",
					c.ScheduledDate.Format("2006-01-02"), c.ScheduledTime.String())
			} else {
				fmt.Println(formatter.Dim("Not yet scheduled; the case remains pending."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Case title")
	cmd.Flags().Var(&complexity, "complexity", "Case complexity ("+complexityChoices()+")")

	return cmd
}

func newCaseListCmd(app *App) *cobra.Command {
	var status, judge string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var cases []*domain.Case
			var err error
			switch {
			case status != "":
				cases, err = app.Cases.ListByStatus(ctx, domain.CaseStatus(status))
			case judge != "":
				var judgeID string
				judgeID, err = resolveJudgeID(ctx, app, judge)
				if err != nil {
					return err
				}
				cases, err = app.Cases.ListByJudge(ctx, judgeID)
			default:
				cases, err = app.Cases.List(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderCaseTable(cases))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&judge, "judge", "", "Filter by judge")

	return cmd
}

func newCaseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <case>",
		Short: "Show a case with its hearings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			c, err := app.Cases.GetByID(ctx, id)
			if err != nil {
				return err
			}

			var judge *domain.Judge
			if c.JudgeID != nil {
				judge, err = app.Judges.GetByID(ctx, *c.JudgeID)
				if err != nil {
					return err
				}
			}

			fmt.Print(formatter.RenderCaseDetail(c, judge))

			hearings, err := app.Cases.ListHearings(ctx, id)
			if err != nil {
				return err
			}
			if len(hearings) > 0 {
				fmt.Println()
				fmt.Print(formatter.RenderHearingTable(hearings))
			}
			return nil
		},
	}
}

func newCaseScheduleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <case>",
		Short: "Schedule a pending case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}

			c, err := app.Scheduling.ScheduleCase(ctx, id)
			if err != nil {
				if errors.Is(err, scheduler.ErrNoJudgeAvailable) {
					return fmt.Errorf("no judges registered; add one with 'courtsched judge add'")
				}
				return err
			}

			fmt.Printf("Scheduled %s: %s at %s\n", c.CaseNumber,
				c.ScheduledDate.Format("2006-01-02"), c.ScheduledTime.String())
			return nil
		},
	}
}

func newCaseHearingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "hearing <case>",
		Short: "Schedule the next hearing for a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}

			h, err := app.Scheduling.ScheduleNextHearing(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("Hearing #%d scheduled: %s at %s (%d min)\n",
				h.HearingNumber, h.ScheduledDate.Format("2006-01-02"),
				h.ScheduledTime.String(), h.DurationMin)
			return nil
		},
	}
}

func newCaseStartCmd(app *App) *cobra.Command {
	return newTransitionCmd(app, "start", "Mark a case as in progress",
		func(ctx context.Context, id string) error { return app.Cases.Start(ctx, id) })
}

func newCaseCompleteCmd(app *App) *cobra.Command {
	return newTransitionCmd(app, "complete", "Mark a case as completed",
		func(ctx context.Context, id string) error { return app.Cases.Complete(ctx, id) })
}

func newCaseAdjournCmd(app *App) *cobra.Command {
	return newTransitionCmd(app, "adjourn", "Adjourn a case",
		func(ctx context.Context, id string) error { return app.Cases.Adjourn(ctx, id) })
}

func newTransitionCmd(app *App, verb, short string, fn func(context.Context, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <case>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			id, err := resolveCaseID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := fn(ctx, id); err != nil {
				return err
			}

			c, err := app.Cases.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", c.CaseNumber, c.Status)
			return nil
		},
	}
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/rsanghvi/courtsched/internal/domain"
)

const dateLayout = "2006-01-02"

// RenderCaseTable renders the docket listing.
func RenderCaseTable(cases []*domain.Case) string {
	if len(cases) == 0 {
		return Dim("No cases on the docket.") + "\n"
	}

	headers := []string{"CASE", "TITLE", "COMPLEXITY", "STATUS", "SCHEDULED"}
	rows := make([][]string, 0, len(cases))
	for _, c := range cases {
		rows = append(rows, []string{
			c.CaseNumber,
			truncate(c.Title, 40),
			Complexity(c.Complexity),
			Status(c.Status),
			renderSlot(c),
		})
	}
	return RenderTable(headers, rows)
}

// RenderCaseDetail renders one case in full.
func RenderCaseDetail(c *domain.Case, judge *domain.Judge) string {
	var b strings.Builder
	b.WriteString(Header(c.CaseNumber) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Title:"), c.Title))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Complexity:"), Complexity(c.Complexity)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Status:"), Status(c.Status)))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Priority:"), c.PriorityScore))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Filed:"), c.FiledAt.Format("2006-01-02 15:04")))

	if judge != nil {
		b.WriteString(fmt.Sprintf("%s %s (%s)\n", Dim("Judge:"), judge.Name, judge.CourtRoom))
	} else {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Judge:"), Dim("unassigned")))
	}

	if c.ScheduledDate != nil && c.ScheduledTime != nil {
		b.WriteString(fmt.Sprintf("%s %s at %s", Dim("Hearing:"),
			c.ScheduledDate.Format(dateLayout), c.ScheduledTime.String()))
		if c.EstimatedDuration != nil {
			b.WriteString(fmt.Sprintf(" (%d min)", *c.EstimatedDuration))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderHearingTable renders a case's hearing history.
func RenderHearingTable(hearings []*domain.Hearing) string {
	if len(hearings) == 0 {
		return Dim("No hearings scheduled.") + "\n"
	}

	headers := []string{"#", "DATE", "TIME", "DURATION", "STATUS"}
	rows := make([][]string, 0, len(hearings))
	for _, h := range hearings {
		rows = append(rows, []string{
			fmt.Sprintf("%d", h.HearingNumber),
			h.ScheduledDate.Format(dateLayout),
			h.ScheduledTime.String(),
			fmt.Sprintf("%d min", h.DurationMin),
			string(h.Status),
		})
	}
	return RenderTable(headers, rows)
}

func renderSlot(c *domain.Case) string {
	if c.ScheduledDate == nil || c.ScheduledTime == nil {
		return Dim("-")
	}
	return fmt.Sprintf("%s %s", c.ScheduledDate.Format(dateLayout), c.ScheduledTime.String())
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

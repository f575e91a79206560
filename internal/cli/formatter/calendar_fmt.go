package formatter

import (
	"fmt"
	"strings"

	"github.com/rsanghvi/courtsched/internal/domain"
	"github.com/rsanghvi/courtsched/internal/scheduler"
)

// RenderJudgeTable renders the judges listing.
func RenderJudgeTable(judges []domain.Judge) string {
	if len(judges) == 0 {
		return Dim("No judges registered.") + "\n"
	}

	headers := []string{"ID", "NAME", "COURTROOM"}
	rows := make([][]string, 0, len(judges))
	for _, j := range judges {
		rows = append(rows, []string{shortID(j.ID), j.Name, j.CourtRoom})
	}
	return RenderTable(headers, rows)
}

// RenderCalendarDay renders one day of a judge's calendar: the committed
// bookings followed by the open intervals still available for scheduling.
func RenderCalendarDay(judge *domain.Judge, date string, bookings []domain.Booking, free []scheduler.Interval) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s  %s", judge.Name, date)) + "\n")

	if len(bookings) == 0 {
		b.WriteString(Dim("No bookings.") + "\n")
	} else {
		for _, bk := range bookings {
			label := bk.Notes
			if label == "" {
				label = Dim("(reserved)")
			}
			b.WriteString(fmt.Sprintf("  %s %s-%s  %s\n",
				StyleRed.Render("■"), bk.Start, bk.End, label))
		}
	}

	if len(free) > 0 {
		b.WriteString("\n")
		for _, iv := range free {
			b.WriteString(fmt.Sprintf("  %s %s-%s  %s\n",
				StyleGreen.Render("□"), iv.Start, iv.End, Dim("open")))
		}
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

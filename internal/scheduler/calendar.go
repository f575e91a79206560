package scheduler

import (
	"github.com/rsanghvi/courtsched/internal/domain"
)

// Interval is a half-open [Start, End) range within a single work day.
type Interval struct {
	Start domain.MinuteOfDay
	End   domain.MinuteOfDay
}

// Contiguous reports whether next begins exactly where i ends.
func (i Interval) Contiguous(next Interval) bool {
	return i.End == next.Start
}

// OpenIntervals tiles the work day into quantum-sized candidate intervals
// and returns, in ascending start order, those that are free: outside every
// break window, not overlapping any unavailable booking, and (for queue
// level 1) fully inside a preferred time block. Tiling resumes at the end
// of a break rather than staying aligned to the work-day start, so the
// quantum after an 11:00-11:15 break begins at 11:15.
//
// Pure function of its inputs; the booking slice is the committed set for
// one judge and one date.
func OpenIntervals(p *Policy, level domain.QueueLevel, booked []domain.Booking) []Interval {
	var open []Interval
	quantum := domain.MinuteOfDay(p.QuantumMin)

	start := p.workStart
	for start+quantum <= p.workEnd {
		q := Interval{Start: start, End: start + quantum}

		if resume, ok := breakEnd(q, p.breaks); ok {
			start = resume
			continue
		}

		if (level != domain.Queue1 || insideAny(q, p.blocks)) && !bookedOverlap(q, booked) {
			open = append(open, q)
		}
		start += quantum
	}
	return open
}

// breakEnd returns the latest end among break windows overlapping q, if any.
func breakEnd(q Interval, breaks []Interval) (domain.MinuteOfDay, bool) {
	var end domain.MinuteOfDay
	found := false
	for _, w := range breaks {
		if domain.Overlaps(q.Start, q.End, w.Start, w.End) && w.End > end {
			end = w.End
			found = true
		}
	}
	return end, found
}

func insideAny(q Interval, windows []Interval) bool {
	for _, w := range windows {
		if q.Start >= w.Start && q.End <= w.End {
			return true
		}
	}
	return false
}

func bookedOverlap(q Interval, booked []domain.Booking) bool {
	for _, b := range booked {
		if b.IsAvailable {
			continue
		}
		if domain.Overlaps(q.Start, q.End, b.Start, b.End) {
			return true
		}
	}
	return false
}

package scheduler

import (
	"context"
	"time"

	"github.com/rsanghvi/courtsched/internal/domain"
)

// BookingSource supplies the committed booking set for one judge and date.
// The slot search only ever reads; it never moves or deletes a booking.
type BookingSource interface {
	ListForJudgeDate(ctx context.Context, judgeID string, date time.Time) ([]domain.Booking, error)
}

// Slot is a feasible start found by the search.
type Slot struct {
	Date  time.Time
	Start domain.MinuteOfDay
}

// FindSlot scans forward from the offset date for the earliest run of
// contiguous open quanta long enough to hold durationMin, honoring the
// queue level's placement rules. Weekends are skipped; the scan gives up
// after the policy horizon and returns ErrNoSlotFound.
//
// offsetDays is counted in business days from `from` (normally today).
// The search is strictly greedy per judge: earliest date, then earliest
// start time within that date.
func FindSlot(ctx context.Context, src BookingSource, p *Policy, judgeID string, level domain.QueueLevel, durationMin int, from time.Time, offsetDays int) (Slot, error) {
	requiredQuanta := (durationMin + p.QuantumMin - 1) / p.QuantumMin

	day := domain.NextBusinessDay(from, offsetDays)
	for i := 0; i < p.HorizonDays; i++ {
		date := day.AddDate(0, 0, i)
		if domain.IsWeekend(date) {
			continue
		}

		booked, err := src.ListForJudgeDate(ctx, judgeID, date)
		if err != nil {
			return Slot{}, err
		}

		open := OpenIntervals(p, level, booked)
		if start, ok := firstRun(open, requiredQuanta); ok {
			return Slot{Date: date, Start: start}, nil
		}
	}
	return Slot{}, ErrNoSlotFound
}

// firstRun finds the earliest start of n contiguous intervals. A break or a
// booking fragments the open list into non-contiguous stretches, so the
// end-to-start equality check guarantees an unbroken span.
func firstRun(open []Interval, n int) (domain.MinuteOfDay, bool) {
	if n <= 0 {
		n = 1
	}
	for i := 0; i+n <= len(open); i++ {
		ok := true
		for j := 0; j < n-1; j++ {
			if !open[i+j].Contiguous(open[i+j+1]) {
				ok = false
				break
			}
		}
		if ok {
			return open[i].Start, true
		}
	}
	return 0, false
}

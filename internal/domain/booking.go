package domain

import "time"

// Booking is a committed reservation of judge time. Bookings with
// IsAvailable == false block the [Start, End) interval for that judge and
// date. Once committed a booking is never moved or deleted by the scheduler.
type Booking struct {
	ID          string
	JudgeID     string
	Date        time.Time
	Start       MinuteOfDay
	End         MinuteOfDay
	IsAvailable bool
	CaseID      *string
	Notes       string
}

// Overlaps reports whether two half-open minute intervals intersect.
func Overlaps(aStart, aEnd, bStart, bEnd MinuteOfDay) bool {
	return aStart < bEnd && bStart < aEnd
}

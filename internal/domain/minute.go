package domain

import (
	"fmt"
	"time"
)

// MinuteOfDay is a wall-clock time expressed as minutes after midnight.
// Bookings and scheduled cases store times in this form so interval
// arithmetic stays integer-only.
type MinuteOfDay int

// String formats the minute as HH:MM.
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// ParseMinuteOfDay parses an HH:MM string into a MinuteOfDay.
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parsing time of day %q: %w", s, err)
	}
	return MinuteOfDay(t.Hour()*60 + t.Minute()), nil
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextBusinessDay returns the first non-weekend day at least n days after
// from, stepping over weekends while counting.
func NextBusinessDay(from time.Time, n int) time.Time {
	d := from
	for i := 0; i < n; i++ {
		d = d.AddDate(0, 0, 1)
		for IsWeekend(d) {
			d = d.AddDate(0, 0, 1)
		}
	}
	// A zero offset may still land on a weekend.
	for IsWeekend(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

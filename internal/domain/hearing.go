package domain

import "time"

// Hearing is a follow-up session for an already-assigned case. Hearing
// numbers are 1-based and strictly sequential per case.
type Hearing struct {
	ID            string
	CaseID        string
	HearingNumber int
	ScheduledDate time.Time
	ScheduledTime MinuteOfDay
	DurationMin   int
	Status        HearingStatus
	Notes         string
	CreatedAt     time.Time
}

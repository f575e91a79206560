package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rsanghvi/courtsched/internal/domain"
)

var testCaseCounter atomic.Int64

// Judge options
type JudgeOption func(*domain.Judge)

func WithCourtRoom(room string) JudgeOption {
	return func(j *domain.Judge) {
		j.CourtRoom = room
	}
}

func NewTestJudge(name string, opts ...JudgeOption) *domain.Judge {
	j := &domain.Judge{
		ID:        uuid.New().String(),
		Name:      name,
		CourtRoom: "Room 1",
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Case options
type CaseOption func(*domain.Case)

func WithStatus(s domain.CaseStatus) CaseOption {
	return func(c *domain.Case) {
		c.Status = s
	}
}

func WithJudge(judgeID string) CaseOption {
	return func(c *domain.Case) {
		c.JudgeID = &judgeID
	}
}

func WithScheduledSlot(date time.Time, start domain.MinuteOfDay, durationMin int) CaseOption {
	return func(c *domain.Case) {
		c.ScheduledDate = &date
		c.ScheduledTime = &start
		c.EstimatedDuration = &durationMin
		c.Status = domain.CaseScheduled
	}
}

func NewTestCase(complexity domain.CaseComplexity, opts ...CaseOption) *domain.Case {
	n := testCaseCounter.Add(1)
	c := &domain.Case{
		ID:         uuid.New().String(),
		CaseNumber: fmt.Sprintf("CASE-TEST%04d", n),
		Title:      fmt.Sprintf("Test case %d", n),
		Complexity: complexity,
		Status:     domain.CasePending,
		FiledAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Booking options
type BookingOption func(*domain.Booking)

func WithCase(caseID string) BookingOption {
	return func(b *domain.Booking) {
		b.CaseID = &caseID
	}
}

func WithAvailability(available bool) BookingOption {
	return func(b *domain.Booking) {
		b.IsAvailable = available
	}
}

// NewTestBooking creates a committed (unavailable) booking by default.
func NewTestBooking(judgeID string, date time.Time, start, end domain.MinuteOfDay, opts ...BookingOption) *domain.Booking {
	b := &domain.Booking{
		ID:          uuid.New().String(),
		JudgeID:     judgeID,
		Date:        date,
		Start:       start,
		End:         end,
		IsAvailable: false,
		Notes:       "test booking",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

package domain

import (
	"fmt"
	"time"
)

type Case struct {
	ID         string
	CaseNumber string
	Title      string
	Complexity CaseComplexity
	Status     CaseStatus

	// Assigned by the scheduler.
	PriorityScore int
	JudgeID       *string

	FiledAt           time.Time
	ScheduledDate     *time.Time
	ScheduledTime     *MinuteOfDay
	EstimatedDuration *int
}

// GenerateCaseNumber produces a filing-time case number in the form
// CASE-YYYYMMDDHHMMSS.
func GenerateCaseNumber(now time.Time) string {
	return "CASE-" + now.Format("20060102150405")
}

// MarkScheduled records a committed slot on the case. It is the only
// transition out of pending.
func (c *Case) MarkScheduled(judgeID string, date time.Time, start MinuteOfDay, durationMin int) {
	c.JudgeID = &judgeID
	c.ScheduledDate = &date
	c.ScheduledTime = &start
	c.EstimatedDuration = &durationMin
	c.Status = CaseScheduled
}

// ValidateTransition checks that a manual status change is allowed.
// pending→scheduled is excluded here: it only happens through MarkScheduled.
func (c *Case) ValidateTransition(to CaseStatus) error {
	allowed := map[CaseStatus][]CaseStatus{
		CaseScheduled:  {CaseInProgress, CaseAdjourned, CaseCompleted},
		CaseInProgress: {CaseCompleted, CaseAdjourned},
		CaseAdjourned:  {CaseScheduled, CaseInProgress, CaseCompleted},
	}
	for _, s := range allowed[c.Status] {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("case %s: cannot transition from %s to %s", c.CaseNumber, c.Status, to)
}

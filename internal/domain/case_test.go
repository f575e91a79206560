package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCaseNumber(t *testing.T) {
	now := time.Date(2026, 3, 9, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, "CASE-20260309143005", GenerateCaseNumber(now))
}

func TestMarkScheduled(t *testing.T) {
	c := &Case{CaseNumber: "CASE-1", Status: CasePending, Complexity: ComplexityModerate}
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	c.MarkScheduled("judge-1", date, 9*60, 60)

	assert.Equal(t, CaseScheduled, c.Status)
	require.NotNil(t, c.JudgeID)
	assert.Equal(t, "judge-1", *c.JudgeID)
	require.NotNil(t, c.ScheduledDate)
	assert.True(t, c.ScheduledDate.Equal(date))
	require.NotNil(t, c.ScheduledTime)
	assert.Equal(t, MinuteOfDay(540), *c.ScheduledTime)
	require.NotNil(t, c.EstimatedDuration)
	assert.Equal(t, 60, *c.EstimatedDuration)
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    CaseStatus
		to      CaseStatus
		wantErr bool
	}{
		{"scheduled to in_progress", CaseScheduled, CaseInProgress, false},
		{"scheduled to adjourned", CaseScheduled, CaseAdjourned, false},
		{"in_progress to completed", CaseInProgress, CaseCompleted, false},
		{"adjourned to scheduled", CaseAdjourned, CaseScheduled, false},
		{"pending to completed", CasePending, CaseCompleted, true},
		{"pending to scheduled is scheduler-only", CasePending, CaseScheduled, true},
		{"completed is terminal", CaseCompleted, CaseInProgress, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Case{CaseNumber: "CASE-X", Status: tt.from}
			err := c.ValidateTransition(tt.to)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMinuteOfDay(t *testing.T) {
	m, err := ParseMinuteOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, MinuteOfDay(570), m)
	assert.Equal(t, "09:30", m.String())

	_, err = ParseMinuteOfDay("9am")
	assert.Error(t, err)
}

func TestNextBusinessDay(t *testing.T) {
	fri := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC) // Friday

	// One business day after Friday is Monday.
	mon := NextBusinessDay(fri, 1)
	assert.Equal(t, time.Monday, mon.Weekday())
	assert.Equal(t, 9, mon.Day())

	// Zero offset from a Saturday still lands on Monday.
	sat := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Monday, NextBusinessDay(sat, 0).Weekday())

	// Seven business days from Friday: Mon..Fri + Mon + Tue.
	d := NextBusinessDay(fri, 7)
	assert.Equal(t, time.Tuesday, d.Weekday())
	assert.Equal(t, 17, d.Day())
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(540, 600, 570, 630))
	assert.True(t, Overlaps(540, 600, 540, 600))
	assert.False(t, Overlaps(540, 600, 600, 660), "touching intervals do not overlap")
	assert.False(t, Overlaps(600, 660, 540, 600))
}

package scheduler

import (
	"errors"
	"fmt"

	"github.com/rsanghvi/courtsched/internal/domain"
)

// Errors returned by the scheduling engine. Both are expected outcomes the
// caller is meant to handle, not faults.
var (
	ErrNoSlotFound      = errors.New("no slot available within the search horizon")
	ErrNoJudgeAvailable = errors.New("no judges available")
)

// Window is a configurable time-of-day range in HH:MM form.
type Window struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// QueueClass is the scheduling policy attached to one case complexity:
// which priority queue it lands in, how long its hearing is expected to
// take, its numeric priority score, and the earliest business-day offset
// at which the slot search may begin.
type QueueClass struct {
	Level         domain.QueueLevel `json:"level"`
	DurationMin   int               `json:"duration_min"`
	PriorityScore int               `json:"priority_score"`
	MinOffsetDays int               `json:"min_offset_days"`
}

// Policy is the full scheduling policy: work-day geometry, break windows,
// queue-1 preferred blocks, the complexity-to-queue table, and search bounds.
// It is loaded from configuration; the search algorithm never hardcodes any
// of these values.
type Policy struct {
	WorkStart       string                               `json:"work_start"`
	WorkEnd         string                               `json:"work_end"`
	QuantumMin      int                                  `json:"quantum_min"`
	Breaks          []Window                             `json:"breaks"`
	PreferredBlocks []Window                             `json:"preferred_blocks"`
	Queues          map[domain.CaseComplexity]QueueClass `json:"queues"`

	HorizonDays       int `json:"horizon_days"`
	HearingOffsetDays int `json:"hearing_offset_days"`

	// Parsed by Validate.
	workStart domain.MinuteOfDay
	workEnd   domain.MinuteOfDay
	breaks    []Interval
	blocks    []Interval
}

// SetDefaults fills in the reference policy for any zero-valued field.
func (p *Policy) SetDefaults() {
	if p.WorkStart == "" {
		p.WorkStart = "09:00"
	}
	if p.WorkEnd == "" {
		p.WorkEnd = "17:00"
	}
	if p.QuantumMin == 0 {
		p.QuantumMin = 30
	}
	if p.Breaks == nil {
		p.Breaks = []Window{
			{Start: "13:00", End: "14:00"},
			{Start: "11:00", End: "11:15"},
			{Start: "15:00", End: "15:15"},
		}
	}
	if p.PreferredBlocks == nil {
		p.PreferredBlocks = []Window{
			{Start: "09:00", End: "11:00"},
			{Start: "11:15", End: "13:00"},
		}
	}
	if p.Queues == nil {
		p.Queues = map[domain.CaseComplexity]QueueClass{
			domain.ComplexitySimple:        {Level: domain.Queue1, DurationMin: 30, PriorityScore: 25, MinOffsetDays: 3},
			domain.ComplexityModerate:      {Level: domain.Queue2, DurationMin: 60, PriorityScore: 50, MinOffsetDays: 1},
			domain.ComplexityComplex:       {Level: domain.Queue3, DurationMin: 120, PriorityScore: 75, MinOffsetDays: 1},
			domain.ComplexityHighlyComplex: {Level: domain.Queue3, DurationMin: 180, PriorityScore: 100, MinOffsetDays: 1},
		}
	}
	if p.HorizonDays == 0 {
		p.HorizonDays = 90
	}
	if p.HearingOffsetDays == 0 {
		p.HearingOffsetDays = 7
	}
}

// Validate checks the policy for consistency and parses the clock-time
// strings into minute form. It must be called before the policy is used.
func (p *Policy) Validate() error {
	var err error
	p.workStart, err = domain.ParseMinuteOfDay(p.WorkStart)
	if err != nil {
		return fmt.Errorf("work_start: %w", err)
	}
	p.workEnd, err = domain.ParseMinuteOfDay(p.WorkEnd)
	if err != nil {
		return fmt.Errorf("work_end: %w", err)
	}
	if p.workEnd <= p.workStart {
		return fmt.Errorf("work day must end after it starts (%s-%s)", p.WorkStart, p.WorkEnd)
	}
	if p.QuantumMin <= 0 {
		return fmt.Errorf("quantum_min must be positive, got %d", p.QuantumMin)
	}
	if p.HorizonDays <= 0 {
		return fmt.Errorf("horizon_days must be positive, got %d", p.HorizonDays)
	}
	if p.HearingOffsetDays < 0 {
		return fmt.Errorf("hearing_offset_days must not be negative, got %d", p.HearingOffsetDays)
	}

	p.breaks, err = parseWindows(p.Breaks)
	if err != nil {
		return fmt.Errorf("breaks: %w", err)
	}
	p.blocks, err = parseWindows(p.PreferredBlocks)
	if err != nil {
		return fmt.Errorf("preferred_blocks: %w", err)
	}

	// The queue table must cover every complexity exactly.
	for _, c := range domain.AllComplexities {
		q, ok := p.Queues[c]
		if !ok {
			return fmt.Errorf("queue table missing complexity %q", c)
		}
		if q.Level < domain.Queue1 || q.Level > domain.Queue3 {
			return fmt.Errorf("complexity %q: queue level must be 1-3, got %d", c, q.Level)
		}
		if q.DurationMin <= 0 {
			return fmt.Errorf("complexity %q: duration_min must be positive", c)
		}
		if q.MinOffsetDays < 0 {
			return fmt.Errorf("complexity %q: min_offset_days must not be negative", c)
		}
	}
	for c := range p.Queues {
		if !domain.ValidComplexities[string(c)] {
			return fmt.Errorf("queue table has unknown complexity %q", c)
		}
	}
	return nil
}

func parseWindows(ws []Window) ([]Interval, error) {
	out := make([]Interval, 0, len(ws))
	for _, w := range ws {
		start, err := domain.ParseMinuteOfDay(w.Start)
		if err != nil {
			return nil, err
		}
		end, err := domain.ParseMinuteOfDay(w.End)
		if err != nil {
			return nil, err
		}
		if end <= start {
			return nil, fmt.Errorf("window %s-%s must end after it starts", w.Start, w.End)
		}
		out = append(out, Interval{Start: start, End: end})
	}
	return out, nil
}

// Classify maps a case complexity to its queue class. The policy table is
// exhaustive after Validate, so a miss means the complexity itself is bad.
func (p *Policy) Classify(c domain.CaseComplexity) (QueueClass, error) {
	q, ok := p.Queues[c]
	if !ok {
		return QueueClass{}, fmt.Errorf("unknown case complexity %q", c)
	}
	return q, nil
}

// DefaultPolicy returns the reference policy, validated.
func DefaultPolicy() *Policy {
	p := &Policy{}
	p.SetDefaults()
	if err := p.Validate(); err != nil {
		// The reference policy is a compile-time constant in all but form.
		panic(fmt.Sprintf("default policy invalid: %v", err))
	}
	return p
}

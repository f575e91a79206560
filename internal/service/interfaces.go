package service

import (
	"context"
	"errors"
	"time"

	"github.com/rsanghvi/courtsched/internal/domain"
	"github.com/rsanghvi/courtsched/internal/scheduler"
)

// ErrInvalidState marks an operation attempted on a case whose status or
// assignment does not allow it, e.g. scheduling a hearing for a case with
// no judge.
var ErrInvalidState = errors.New("invalid case state")

// SchedulingService is the orchestrator over the scheduling engine. Both
// operations are synchronous and leave no partial state behind on failure.
type SchedulingService interface {
	// ScheduleCase classifies a pending case, assigns a judge if none is
	// set, finds a slot, and commits the booking together with the case
	// update. Returns scheduler.ErrNoJudgeAvailable or
	// scheduler.ErrNoSlotFound when the case must stay pending.
	ScheduleCase(ctx context.Context, caseID string) (*domain.Case, error)

	// ScheduleNextHearing books the next sequential hearing for an
	// assigned case, at least the policy's hearing offset out. The hearing
	// record and its booking are created together or not at all.
	ScheduleNextHearing(ctx context.Context, caseID string) (*domain.Hearing, error)
}

type CaseService interface {
	// File creates a pending case and immediately attempts to schedule it.
	// A case that cannot be scheduled yet is still filed; inspect the
	// returned status.
	File(ctx context.Context, title string, complexity domain.CaseComplexity) (*domain.Case, error)
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	GetByNumber(ctx context.Context, caseNumber string) (*domain.Case, error)
	List(ctx context.Context) ([]*domain.Case, error)
	ListByStatus(ctx context.Context, status domain.CaseStatus) ([]*domain.Case, error)
	ListByJudge(ctx context.Context, judgeID string) ([]*domain.Case, error)
	ListHearings(ctx context.Context, caseID string) ([]*domain.Hearing, error)
	Start(ctx context.Context, id string) error
	Complete(ctx context.Context, id string) error
	Adjourn(ctx context.Context, id string) error
}

// CalendarDay is a judge's committed bookings and remaining open intervals
// for one date.
type CalendarDay struct {
	Date     time.Time
	Bookings []domain.Booking
	Free     []scheduler.Interval
}

type JudgeService interface {
	Register(ctx context.Context, name, courtRoom string) (*domain.Judge, error)
	GetByID(ctx context.Context, id string) (*domain.Judge, error)
	List(ctx context.Context) ([]domain.Judge, error)
	Calendar(ctx context.Context, judgeID string, date time.Time) (*CalendarDay, error)
}

// ImportResult summarizes a bulk docket import.
type ImportResult struct {
	JudgesAdded    int
	CasesFiled     int
	CasesScheduled int
}

type ImportService interface {
	// ImportDocket loads, validates, and executes a docket import file.
	// Nothing is written when validation fails.
	ImportDocket(ctx context.Context, path string) (*ImportResult, error)
}

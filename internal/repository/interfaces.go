package repository

import (
	"context"
	"time"

	"github.com/rsanghvi/courtsched/internal/domain"
)

type JudgeRepo interface {
	Create(ctx context.Context, j *domain.Judge) error
	GetByID(ctx context.Context, id string) (*domain.Judge, error)
	List(ctx context.Context) ([]domain.Judge, error)
}

type CaseRepo interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	GetByNumber(ctx context.Context, caseNumber string) (*domain.Case, error)
	List(ctx context.Context) ([]*domain.Case, error)
	ListByStatus(ctx context.Context, status domain.CaseStatus) ([]*domain.Case, error)
	ListByJudge(ctx context.Context, judgeID string) ([]*domain.Case, error)
	Update(ctx context.Context, c *domain.Case) error
	// CountActiveByJudge counts cases in {scheduled, in_progress}; it is the
	// workload measure used by judge assignment.
	CountActiveByJudge(ctx context.Context, judgeID string) (int, error)
}

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	// ListForJudgeDate returns the judge's bookings for one date ordered by
	// start time.
	ListForJudgeDate(ctx context.Context, judgeID string, date time.Time) ([]domain.Booking, error)
	ListForJudgeRange(ctx context.Context, judgeID string, from, to time.Time) ([]domain.Booking, error)
}

type HearingRepo interface {
	Create(ctx context.Context, h *domain.Hearing) error
	ListByCase(ctx context.Context, caseID string) ([]*domain.Hearing, error)
	// MaxHearingNumber returns 0 when the case has no hearings yet.
	MaxHearingNumber(ctx context.Context, caseID string) (int, error)
}

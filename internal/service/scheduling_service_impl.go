package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rsanghvi/courtsched/internal/db"
	"github.com/rsanghvi/courtsched/internal/domain"
	"github.com/rsanghvi/courtsched/internal/logger"
	"github.com/rsanghvi/courtsched/internal/repository"
	"github.com/rsanghvi/courtsched/internal/scheduler"
)

// errSlotConflict signals that the slot found by the search was taken by a
// competing writer before the transaction could commit. The scheduling call
// re-runs the search; committed bookings are never disturbed.
var errSlotConflict = errors.New("slot taken before commit")

// maxCommitAttempts bounds the search-revalidate-commit loop. Each retry
// re-reads the booking set, so a conflict simply pushes the search past the
// newly committed interval.
const maxCommitAttempts = 3

type schedulingService struct {
	cases    repository.CaseRepo
	judges   repository.JudgeRepo
	bookings repository.BookingRepo
	hearings repository.HearingRepo
	uow      db.UnitOfWork
	policy   *scheduler.Policy
	log      logger.Logger

	now func() time.Time

	// Per-judge exclusion for the duration of one scheduling call.
	mu         sync.Mutex
	judgeLocks map[string]*sync.Mutex
}

// SchedulingOption customizes a SchedulingService.
type SchedulingOption func(*schedulingService)

// WithClock overrides the time source; tests use it for deterministic dates.
func WithClock(now func() time.Time) SchedulingOption {
	return func(s *schedulingService) {
		s.now = now
	}
}

func NewSchedulingService(
	cases repository.CaseRepo,
	judges repository.JudgeRepo,
	bookings repository.BookingRepo,
	hearings repository.HearingRepo,
	uow db.UnitOfWork,
	policy *scheduler.Policy,
	log logger.Logger,
	opts ...SchedulingOption,
) SchedulingService {
	s := &schedulingService{
		cases:      cases,
		judges:     judges,
		bookings:   bookings,
		hearings:   hearings,
		uow:        uow,
		policy:     policy,
		log:        log,
		now:        time.Now,
		judgeLocks: make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// judgeLock returns the mutex guarding scheduling calls for one judge.
func (s *schedulingService) judgeLock(judgeID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.judgeLocks[judgeID]
	if !ok {
		l = &sync.Mutex{}
		s.judgeLocks[judgeID] = l
	}
	return l
}

func (s *schedulingService) ScheduleCase(ctx context.Context, caseID string) (*domain.Case, error) {
	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.CasePending {
		return nil, fmt.Errorf("case %s has status %s: %w", c.CaseNumber, c.Status, ErrInvalidState)
	}

	queue, err := s.policy.Classify(c.Complexity)
	if err != nil {
		return nil, err
	}
	c.PriorityScore = queue.PriorityScore

	if c.JudgeID == nil {
		pool, err := s.judges.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing judges: %w", err)
		}
		judge, err := scheduler.AssignJudge(ctx, pool, s.cases)
		if err != nil {
			s.log.Warnf("case %s: no judge available", c.CaseNumber)
			return nil, err
		}
		c.JudgeID = &judge.ID
	}
	judgeID := *c.JudgeID

	lock := s.judgeLock(judgeID)
	lock.Lock()
	defer lock.Unlock()

	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		slot, err := scheduler.FindSlot(ctx, s.bookings, s.policy, judgeID,
			queue.Level, queue.DurationMin, s.now(), queue.MinOffsetDays)
		if err != nil {
			if errors.Is(err, scheduler.ErrNoSlotFound) {
				s.log.Warnf("case %s: no slot within %d days for judge %s",
					c.CaseNumber, s.policy.HorizonDays, judgeID)
			}
			return nil, err
		}

		c.MarkScheduled(judgeID, slot.Date, slot.Start, queue.DurationMin)
		booking := &domain.Booking{
			ID:      uuid.New().String(),
			JudgeID: judgeID,
			Date:    slot.Date,
			Start:   slot.Start,
			End:     slot.Start + domain.MinuteOfDay(queue.DurationMin),
			CaseID:  &c.ID,
			Notes:   fmt.Sprintf("Queue %d - %s", queue.Level, c.CaseNumber),
		}

		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txBookings := repository.NewSQLiteBookingRepo(tx)
			txCases := repository.NewSQLiteCaseRepo(tx)

			if err := assertFree(ctx, txBookings, booking); err != nil {
				return err
			}
			if err := txBookings.Create(ctx, booking); err != nil {
				return err
			}
			return txCases.Update(ctx, c)
		})
		if errors.Is(err, errSlotConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("committing schedule for case %s: %w", c.CaseNumber, err)
		}

		s.log.Infof("case %s scheduled: judge=%s date=%s time=%s queue=%d",
			c.CaseNumber, judgeID, slot.Date.Format("2006-01-02"), slot.Start, queue.Level)
		return c, nil
	}
	return nil, scheduler.ErrNoSlotFound
}

func (s *schedulingService) ScheduleNextHearing(ctx context.Context, caseID string) (*domain.Hearing, error) {
	c, err := s.cases.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c.JudgeID == nil {
		return nil, fmt.Errorf("case %s has no assigned judge: %w", c.CaseNumber, ErrInvalidState)
	}
	judgeID := *c.JudgeID

	queue, err := s.policy.Classify(c.Complexity)
	if err != nil {
		return nil, err
	}

	lock := s.judgeLock(judgeID)
	lock.Lock()
	defer lock.Unlock()

	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		slot, err := scheduler.FindSlot(ctx, s.bookings, s.policy, judgeID,
			queue.Level, queue.DurationMin, s.now(), s.policy.HearingOffsetDays)
		if err != nil {
			return nil, err
		}

		var hearing *domain.Hearing
		err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			txBookings := repository.NewSQLiteBookingRepo(tx)
			txHearings := repository.NewSQLiteHearingRepo(tx)

			// Number assignment happens inside the transaction so two
			// concurrent calls cannot mint the same hearing number.
			last, err := txHearings.MaxHearingNumber(ctx, c.ID)
			if err != nil {
				return err
			}

			hearing = &domain.Hearing{
				ID:            uuid.New().String(),
				CaseID:        c.ID,
				HearingNumber: last + 1,
				ScheduledDate: slot.Date,
				ScheduledTime: slot.Start,
				DurationMin:   queue.DurationMin,
				Status:        domain.HearingScheduled,
				Notes:         fmt.Sprintf("Hearing #%d - %s", last+1, c.CaseNumber),
				CreatedAt:     s.now().UTC(),
			}
			booking := &domain.Booking{
				ID:      uuid.New().String(),
				JudgeID: judgeID,
				Date:    slot.Date,
				Start:   slot.Start,
				End:     slot.Start + domain.MinuteOfDay(queue.DurationMin),
				CaseID:  &c.ID,
				Notes:   hearing.Notes,
			}

			if err := assertFree(ctx, txBookings, booking); err != nil {
				return err
			}
			if err := txHearings.Create(ctx, hearing); err != nil {
				return err
			}
			return txBookings.Create(ctx, booking)
		})
		if errors.Is(err, errSlotConflict) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("committing hearing for case %s: %w", c.CaseNumber, err)
		}

		s.log.Infof("case %s hearing #%d scheduled: judge=%s date=%s time=%s",
			c.CaseNumber, hearing.HearingNumber, judgeID,
			slot.Date.Format("2006-01-02"), slot.Start)
		return hearing, nil
	}
	return nil, scheduler.ErrNoSlotFound
}

// assertFree re-reads the judge's committed bookings inside the transaction
// and confirms the candidate interval is still open. This is the second half
// of the no-double-booking guarantee; the per-judge lock is the first.
func assertFree(ctx context.Context, bookings repository.BookingRepo, candidate *domain.Booking) error {
	existing, err := bookings.ListForJudgeDate(ctx, candidate.JudgeID, candidate.Date)
	if err != nil {
		return err
	}
	for _, b := range existing {
		if b.IsAvailable {
			continue
		}
		if domain.Overlaps(candidate.Start, candidate.End, b.Start, b.End) {
			return fmt.Errorf("%s %s-%s: %w",
				candidate.Date.Format("2006-01-02"), candidate.Start, candidate.End, errSlotConflict)
		}
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rsanghvi/courtsched/internal/domain"
	"github.com/rsanghvi/courtsched/internal/logger"
	"github.com/rsanghvi/courtsched/internal/repository"
	"github.com/rsanghvi/courtsched/internal/scheduler"
)

// caseNumberAttempts bounds the retry on a filing-timestamp collision. Two
// filings inside the same second produce the same CASE- number; the second
// one retries with the next second's timestamp.
const caseNumberAttempts = 3

type caseService struct {
	cases      repository.CaseRepo
	hearings   repository.HearingRepo
	scheduling SchedulingService
	log        logger.Logger

	now func() time.Time
}

// CaseOption customizes a CaseService.
type CaseOption func(*caseService)

// WithCaseClock overrides the filing-time source.
func WithCaseClock(now func() time.Time) CaseOption {
	return func(s *caseService) {
		s.now = now
	}
}

func NewCaseService(
	cases repository.CaseRepo,
	hearings repository.HearingRepo,
	scheduling SchedulingService,
	log logger.Logger,
	opts ...CaseOption,
) CaseService {
	s := &caseService{
		cases:      cases,
		hearings:   hearings,
		scheduling: scheduling,
		log:        log,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *caseService) File(ctx context.Context, title string, complexity domain.CaseComplexity) (*domain.Case, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("case title is required")
	}
	if !domain.ValidComplexities[string(complexity)] {
		return nil, fmt.Errorf("unknown complexity %q", complexity)
	}

	var c *domain.Case
	for attempt := 0; ; attempt++ {
		// A collision means another case was filed inside the same second;
		// claim the next second's number instead of waiting it out.
		filedAt := s.now().UTC().Add(time.Duration(attempt) * time.Second)
		c = &domain.Case{
			ID:         uuid.New().String(),
			CaseNumber: domain.GenerateCaseNumber(filedAt),
			Title:      title,
			Complexity: complexity,
			Status:     domain.CasePending,
			FiledAt:    filedAt,
		}
		err := s.cases.Create(ctx, c)
		if err == nil {
			break
		}
		if attempt+1 < caseNumberAttempts && isUniqueViolation(err) {
			continue
		}
		return nil, fmt.Errorf("filing case: %w", err)
	}

	// Filing succeeds even when no slot or judge is available yet; the case
	// stays pending and can be scheduled later.
	scheduled, err := s.scheduling.ScheduleCase(ctx, c.ID)
	if err != nil {
		if errors.Is(err, scheduler.ErrNoJudgeAvailable) || errors.Is(err, scheduler.ErrNoSlotFound) {
			s.log.Warnf("case %s filed but not scheduled: %v", c.CaseNumber, err)
			return c, nil
		}
		return nil, fmt.Errorf("scheduling filed case %s: %w", c.CaseNumber, err)
	}
	return scheduled, nil
}

// isUniqueViolation matches the sqlite unique-constraint error text. The
// driver does not export a typed error for it.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *caseService) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	return s.cases.GetByID(ctx, id)
}

func (s *caseService) GetByNumber(ctx context.Context, caseNumber string) (*domain.Case, error) {
	return s.cases.GetByNumber(ctx, caseNumber)
}

func (s *caseService) List(ctx context.Context) ([]*domain.Case, error) {
	return s.cases.List(ctx)
}

func (s *caseService) ListByStatus(ctx context.Context, status domain.CaseStatus) ([]*domain.Case, error) {
	return s.cases.ListByStatus(ctx, status)
}

func (s *caseService) ListByJudge(ctx context.Context, judgeID string) ([]*domain.Case, error) {
	return s.cases.ListByJudge(ctx, judgeID)
}

func (s *caseService) ListHearings(ctx context.Context, caseID string) ([]*domain.Hearing, error) {
	if _, err := s.cases.GetByID(ctx, caseID); err != nil {
		return nil, err
	}
	return s.hearings.ListByCase(ctx, caseID)
}

func (s *caseService) Start(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.CaseInProgress)
}

func (s *caseService) Complete(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.CaseCompleted)
}

func (s *caseService) Adjourn(ctx context.Context, id string) error {
	return s.transition(ctx, id, domain.CaseAdjourned)
}

func (s *caseService) transition(ctx context.Context, id string, to domain.CaseStatus) error {
	c, err := s.cases.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := c.ValidateTransition(to); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	c.Status = to
	if err := s.cases.Update(ctx, c); err != nil {
		return err
	}
	s.log.Infof("case %s: status %s", c.CaseNumber, to)
	return nil
}

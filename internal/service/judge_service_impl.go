package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rsanghvi/courtsched/internal/domain"
	"github.com/rsanghvi/courtsched/internal/logger"
	"github.com/rsanghvi/courtsched/internal/repository"
	"github.com/rsanghvi/courtsched/internal/scheduler"
)

type judgeService struct {
	judges   repository.JudgeRepo
	bookings repository.BookingRepo
	policy   *scheduler.Policy
	log      logger.Logger
}

func NewJudgeService(
	judges repository.JudgeRepo,
	bookings repository.BookingRepo,
	policy *scheduler.Policy,
	log logger.Logger,
) JudgeService {
	return &judgeService{
		judges:   judges,
		bookings: bookings,
		policy:   policy,
		log:      log,
	}
}

func (s *judgeService) Register(ctx context.Context, name, courtRoom string) (*domain.Judge, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("judge name is required")
	}
	j := &domain.Judge{
		ID:        uuid.New().String(),
		Name:      name,
		CourtRoom: strings.TrimSpace(courtRoom),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.judges.Create(ctx, j); err != nil {
		return nil, err
	}
	s.log.Infof("judge registered: %s (%s)", j.Name, j.CourtRoom)
	return j, nil
}

func (s *judgeService) GetByID(ctx context.Context, id string) (*domain.Judge, error) {
	return s.judges.GetByID(ctx, id)
}

func (s *judgeService) List(ctx context.Context) ([]domain.Judge, error) {
	return s.judges.List(ctx)
}

// Calendar reports a judge's day: committed bookings plus the quantum
// intervals still open under the default (unrestricted) queue geometry.
func (s *judgeService) Calendar(ctx context.Context, judgeID string, date time.Time) (*CalendarDay, error) {
	if _, err := s.judges.GetByID(ctx, judgeID); err != nil {
		return nil, err
	}
	booked, err := s.bookings.ListForJudgeDate(ctx, judgeID, date)
	if err != nil {
		return nil, err
	}
	day := &CalendarDay{
		Date:     date,
		Bookings: booked,
	}
	if !domain.IsWeekend(date) {
		day.Free = scheduler.OpenIntervals(s.policy, domain.Queue3, booked)
	}
	return day, nil
}

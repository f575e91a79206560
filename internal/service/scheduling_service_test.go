package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/rsanghvi/courtsched/internal/db"
	"github.com/rsanghvi/courtsched/internal/domain"
	"github.com/rsanghvi/courtsched/internal/logger"
	"github.com/rsanghvi/courtsched/internal/repository"
	"github.com/rsanghvi/courtsched/internal/scheduler"
	"github.com/rsanghvi/courtsched/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Filing reference: Friday 2026-03-06 at 10:00 UTC. The next business day is
// Monday 2026-03-09.
var (
	filingFriday = time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	fixedClock   = func() time.Time { return filingFriday }
)

func setupRepos(t *testing.T) (
	repository.JudgeRepo,
	repository.CaseRepo,
	repository.BookingRepo,
	repository.HearingRepo,
	db.UnitOfWork,
	*sql.DB,
) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteJudgeRepo(database),
		repository.NewSQLiteCaseRepo(database),
		repository.NewSQLiteBookingRepo(database),
		repository.NewSQLiteHearingRepo(database),
		testutil.NewTestUoW(database),
		database
}

func newSchedulingForTest(
	judges repository.JudgeRepo,
	cases repository.CaseRepo,
	bookings repository.BookingRepo,
	hearings repository.HearingRepo,
	uow db.UnitOfWork,
) SchedulingService {
	return NewSchedulingService(cases, judges, bookings, hearings, uow,
		scheduler.DefaultPolicy(), logger.NopLogger{}, WithClock(fixedClock))
}

func TestScheduleCase_ModerateGetsNextBusinessDayMorning(t *testing.T) {
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)
	ctx := context.Background()

	judge := testutil.NewTestJudge("Judge Moreau")
	require.NoError(t, judges.Create(ctx, judge))
	c := testutil.NewTestCase(domain.ComplexityModerate)
	require.NoError(t, cases.Create(ctx, c))

	svc := newSchedulingForTest(judges, cases, bookings, hearings, uow)
	scheduled, err := svc.ScheduleCase(ctx, c.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.CaseScheduled, scheduled.Status)
	require.NotNil(t, scheduled.JudgeID)
	assert.Equal(t, judge.ID, *scheduled.JudgeID)
	assert.Equal(t, "2026-03-09", scheduled.ScheduledDate.Format("2006-01-02"))
	assert.Equal(t, "09:00", scheduled.ScheduledTime.String())
	assert.Equal(t, 60, *scheduled.EstimatedDuration)
	assert.Equal(t, 50, scheduled.PriorityScore)

	// The committed booking blocks [09:00, 10:00) for the judge.
	day, err := bookings.ListForJudgeDate(ctx, judge.ID, scheduled.ScheduledDate.UTC())
	require.NoError(t, err)
	require.Len(t, day, 1)
	assert.Equal(t, domain.MinuteOfDay(9*60), day[0].Start)
	assert.Equal(t, domain.MinuteOfDay(10*60), day[0].End)
	assert.False(t, day[0].IsAvailable)
	require.NotNil(t, day[0].CaseID)
	assert.Equal(t, c.ID, *day[0].CaseID)
	assert.Equal(t, "Queue 2 - "+c.CaseNumber, day[0].Notes)

	// The persisted case matches the returned one.
	fetched, err := cases.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CaseScheduled, fetched.Status)
	assert.Equal(t, "2026-03-09", fetched.ScheduledDate.Format("2006-01-02"))
}

func TestScheduleCase_SimpleWaitsThreeBusinessDays(t *testing.T) {
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)
	ctx := context.Background()

	judge := testutil.NewTestJudge("Judge Abiodun")
	require.NoError(t, judges.Create(ctx, judge))
	c := testutil.NewTestCase(domain.ComplexitySimple)
	require.NoError(t, cases.Create(ctx, c))

	svc := newSchedulingForTest(judges, cases, bookings, hearings, uow)
	scheduled, err := svc.ScheduleCase(ctx, c.ID)
	require.NoError(t, err)

	// Friday + 3 business days = Wednesday 2026-03-11, inside the first
	// preferred morning block.
	assert.Equal(t, "2026-03-11", scheduled.ScheduledDate.Format("2006-01-02"))
	assert.Equal(t, "09:00", scheduled.ScheduledTime.String())
	assert.Equal(t, 30, *scheduled.EstimatedDuration)
	assert.Equal(t, 25, scheduled.PriorityScore)
}

func TestScheduleCase_PicksLeastLoadedJudge(t *testing.T) {
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)
	ctx := context.Background()

	busy := testutil.NewTestJudge("Judge Busy")
	idle := testutil.NewTestJudge("Judge Idle")
	require.NoError(t, judges.Create(ctx, busy))
	require.NoError(t, judges.Create(ctx, idle))

	for i := 0; i < 2; i++ {
		active := testutil.NewTestCase(domain.ComplexitySimple,
			testutil.WithJudge(busy.ID),
			testutil.WithStatus(domain.CaseInProgress))
		require.NoError(t, cases.Create(ctx, active))
	}

	c := testutil.NewTestCase(domain.ComplexityModerate)
	require.NoError(t, cases.Create(ctx, c))

	svc := newSchedulingForTest(judges, cases, bookings, hearings, uow)
	scheduled, err := svc.ScheduleCase(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, scheduled.JudgeID)
	assert.Equal(t, idle.ID, *scheduled.JudgeID)
}

func TestScheduleCase_NoJudgesLeavesCasePending(t *testing.T) {
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)
	ctx := context.Background()

	c := testutil.NewTestCase(domain.ComplexityModerate)
	require.NoError(t, cases.Create(ctx, c))

	svc := newSchedulingForTest(judges, cases, bookings, hearings, uow)
	_, err := svc.ScheduleCase(ctx, c.ID)
	require.ErrorIs(t, err, scheduler.ErrNoJudgeAvailable)

	fetched, err := cases.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CasePending, fetched.Status)
	assert.Nil(t, fetched.JudgeID)
}

func TestScheduleCase_HighlyComplexExhaustsHorizon(t *testing.T) {
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)
	ctx := context.Background()

	judge := testutil.NewTestJudge("Judge Long")
	require.NoError(t, judges.Create(ctx, judge))
	c := testutil.NewTestCase(domain.ComplexityHighlyComplex)
	require.NoError(t, cases.Create(ctx, c))

	// A 180-minute block needs six contiguous quanta; the default break
	// layout caps runs at four, so the search runs out of horizon.
	svc := newSchedulingForTest(judges, cases, bookings, hearings, uow)
	_, err := svc.ScheduleCase(ctx, c.ID)
	require.ErrorIs(t, err, scheduler.ErrNoSlotFound)

	fetched, err := cases.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CasePending, fetched.Status)
}

func TestScheduleCase_SkipsAlreadyBookedSlots(t *testing.T) {
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)
	ctx := context.Background()

	judge := testutil.NewTestJudge("Judge Okafor")
	require.NoError(t, judges.Create(ctx, judge))

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	taken := testutil.NewTestBooking(judge.ID, monday,
		domain.MinuteOfDay(9*60), domain.MinuteOfDay(10*60))
	require.NoError(t, bookings.Create(ctx, taken))

	c := testutil.NewTestCase(domain.ComplexityModerate, testutil.WithJudge(judge.ID))
	require.NoError(t, cases.Create(ctx, c))

	svc := newSchedulingForTest(judges, cases, bookings, hearings, uow)
	scheduled, err := svc.ScheduleCase(ctx, c.ID)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-09", scheduled.ScheduledDate.Format("2006-01-02"))
	assert.Equal(t, "10:00", scheduled.ScheduledTime.String())
}

func TestScheduleCase_NonPendingRejected(t *testing.T) {
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)
	ctx := context.Background()

	judge := testutil.NewTestJudge("Judge Reyes")
	require.NoError(t, judges.Create(ctx, judge))
	c := testutil.NewTestCase(domain.ComplexitySimple,
		testutil.WithJudge(judge.ID),
		testutil.WithStatus(domain.CaseInProgress))
	require.NoError(t, cases.Create(ctx, c))

	svc := newSchedulingForTest(judges, cases, bookings, hearings, uow)
	_, err := svc.ScheduleCase(ctx, c.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestScheduleCase_FailedCommitLeavesNoPartialState(t *testing.T) {
	judges, cases, bookings, hearings, _, database := setupRepos(t)
	ctx := context.Background()

	judge := testutil.NewTestJudge("Judge Faulty")
	require.NoError(t, judges.Create(ctx, judge))
	c := testutil.NewTestCase(domain.ComplexityModerate, testutil.WithJudge(judge.ID))
	require.NoError(t, cases.Create(ctx, c))

	// The commit writes the booking first, the case second. Failing the
	// second write must roll back the first.
	injected := errors.New("disk full")
	failingUoW := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}

	svc := NewSchedulingService(cases, judges, bookings, hearings, failingUoW,
		scheduler.DefaultPolicy(), logger.NopLogger{}, WithClock(fixedClock))
	_, err := svc.ScheduleCase(ctx, c.ID)
	require.ErrorIs(t, err, injected)

	fetched, err := cases.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CasePending, fetched.Status)

	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	day, err := bookings.ListForJudgeDate(ctx, judge.ID, monday)
	require.NoError(t, err)
	assert.Empty(t, day, "booking insert should be rolled back")
}

func TestScheduleNextHearing_SequentialNumbers(t *testing.T) {
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)
	ctx := context.Background()

	judge := testutil.NewTestJudge("Judge Ito")
	require.NoError(t, judges.Create(ctx, judge))
	c := testutil.NewTestCase(domain.ComplexityModerate)
	require.NoError(t, cases.Create(ctx, c))

	svc := newSchedulingForTest(judges, cases, bookings, hearings, uow)
	_, err := svc.ScheduleCase(ctx, c.ID)
	require.NoError(t, err)

	first, err := svc.ScheduleNextHearing(ctx, c.ID)
	require.NoError(t, err)
	second, err := svc.ScheduleNextHearing(ctx, c.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, first.HearingNumber)
	assert.Equal(t, 2, second.HearingNumber)
	assert.Equal(t, domain.HearingScheduled, first.Status)

	// Seven business days out from Friday 2026-03-06 is Tuesday 2026-03-17.
	assert.Equal(t, "2026-03-17", first.ScheduledDate.Format("2006-01-02"))
	assert.Equal(t, "09:00", first.ScheduledTime.String())
	assert.Equal(t, "2026-03-17", second.ScheduledDate.Format("2006-01-02"))
	assert.Equal(t, "10:00", second.ScheduledTime.String(),
		"second hearing must not reuse the first hearing's slot")

	all, err := hearings.ListByCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestScheduleNextHearing_UnassignedCaseRejected(t *testing.T) {
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)
	ctx := context.Background()

	c := testutil.NewTestCase(domain.ComplexitySimple)
	require.NoError(t, cases.Create(ctx, c))

	svc := newSchedulingForTest(judges, cases, bookings, hearings, uow)
	_, err := svc.ScheduleNextHearing(ctx, c.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestScheduleCase_UnknownCase(t *testing.T) {
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)

	svc := newSchedulingForTest(judges, cases, bookings, hearings, uow)
	_, err := svc.ScheduleCase(context.Background(), "no-such-case")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

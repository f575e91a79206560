package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rsanghvi/courtsched/internal/domain"
	"github.com/rsanghvi/courtsched/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCaseRepo(database)
	ctx := context.Background()

	c := testutil.NewTestCase(domain.ComplexityModerate)
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.CaseNumber, got.CaseNumber)
	assert.Equal(t, domain.ComplexityModerate, got.Complexity)
	assert.Equal(t, domain.CasePending, got.Status)
	assert.Nil(t, got.JudgeID)
	assert.Nil(t, got.ScheduledDate)
	assert.Nil(t, got.ScheduledTime)
	assert.Nil(t, got.EstimatedDuration)

	byNumber, err := repo.GetByNumber(ctx, c.CaseNumber)
	require.NoError(t, err)
	assert.Equal(t, c.ID, byNumber.ID)
}

func TestCaseRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCaseRepo(database)

	_, err := repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByNumber(context.Background(), "CASE-NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCaseRepo_UpdateScheduledFields(t *testing.T) {
	database := testutil.NewTestDB(t)
	judges := NewSQLiteJudgeRepo(database)
	repo := NewSQLiteCaseRepo(database)
	ctx := context.Background()

	j := testutil.NewTestJudge("Hale")
	require.NoError(t, judges.Create(ctx, j))

	c := testutil.NewTestCase(domain.ComplexityComplex)
	require.NoError(t, repo.Create(ctx, c))

	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	c.PriorityScore = 75
	c.MarkScheduled(j.ID, date, 540, 120)
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CaseScheduled, got.Status)
	assert.Equal(t, 75, got.PriorityScore)
	require.NotNil(t, got.JudgeID)
	assert.Equal(t, j.ID, *got.JudgeID)
	require.NotNil(t, got.ScheduledDate)
	assert.True(t, got.ScheduledDate.Equal(date))
	require.NotNil(t, got.ScheduledTime)
	assert.Equal(t, "09:00", got.ScheduledTime.String())
	require.NotNil(t, got.EstimatedDuration)
	assert.Equal(t, 120, *got.EstimatedDuration)
}

func TestCaseRepo_ListByStatusOrdersByPriority(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteCaseRepo(database)
	ctx := context.Background()

	low := testutil.NewTestCase(domain.ComplexitySimple)
	low.PriorityScore = 25
	high := testutil.NewTestCase(domain.ComplexityHighlyComplex)
	high.PriorityScore = 100
	mid := testutil.NewTestCase(domain.ComplexityModerate)
	mid.PriorityScore = 50

	for _, c := range []*domain.Case{low, high, mid} {
		require.NoError(t, repo.Create(ctx, c))
	}

	pending, err := repo.ListByStatus(ctx, domain.CasePending)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, high.ID, pending[0].ID)
	assert.Equal(t, mid.ID, pending[1].ID)
	assert.Equal(t, low.ID, pending[2].ID)
}

func TestCaseRepo_CountActiveByJudge(t *testing.T) {
	database := testutil.NewTestDB(t)
	judges := NewSQLiteJudgeRepo(database)
	repo := NewSQLiteCaseRepo(database)
	ctx := context.Background()

	j := testutil.NewTestJudge("Osei")
	require.NoError(t, judges.Create(ctx, j))

	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	scheduled := testutil.NewTestCase(domain.ComplexitySimple,
		testutil.WithJudge(j.ID), testutil.WithScheduledSlot(date, 540, 30))
	inProgress := testutil.NewTestCase(domain.ComplexityModerate,
		testutil.WithJudge(j.ID), testutil.WithStatus(domain.CaseInProgress))
	completed := testutil.NewTestCase(domain.ComplexityComplex,
		testutil.WithJudge(j.ID), testutil.WithStatus(domain.CaseCompleted))
	unassigned := testutil.NewTestCase(domain.ComplexitySimple)

	for _, c := range []*domain.Case{scheduled, inProgress, completed, unassigned} {
		require.NoError(t, repo.Create(ctx, c))
	}

	count, err := repo.CountActiveByJudge(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "only scheduled and in_progress cases count toward workload")
}

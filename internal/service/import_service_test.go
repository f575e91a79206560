package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rsanghvi/courtsched/internal/domain"
	"github.com/rsanghvi/courtsched/internal/logger"
	"github.com/rsanghvi/courtsched/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImportFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docket.json")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func newImportServiceForTest(t *testing.T) (ImportService, CaseService) {
	t.Helper()
	judges, cases, bookings, hearings, uow, _ := setupRepos(t)
	scheduling := NewSchedulingService(cases, judges, bookings, hearings, uow,
		scheduler.DefaultPolicy(), logger.NopLogger{}, WithClock(fixedClock))
	caseSvc := NewCaseService(cases, hearings, scheduling, logger.NopLogger{},
		WithCaseClock(fixedClock))
	judgeSvc := NewJudgeService(judges, bookings, scheduler.DefaultPolicy(), logger.NopLogger{})
	return NewImportService(judgeSvc, caseSvc, logger.NopLogger{}), caseSvc
}

func TestImportDocket_RegistersAndFiles(t *testing.T) {
	svc, caseSvc := newImportServiceForTest(t)
	ctx := context.Background()

	path := writeImportFile(t, `{
		"judges": [{"name": "Judge Bell", "court_room": "Courtroom 7"}],
		"cases": [
			{"title": "Imported A", "complexity": "moderate"},
			{"title": "Imported B", "complexity": "simple"}
		]
	}`)

	result, err := svc.ImportDocket(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.JudgesAdded)
	assert.Equal(t, 2, result.CasesFiled)
	assert.Equal(t, 2, result.CasesScheduled)

	all, err := caseSvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportDocket_NoJudgesLeavesCasesPending(t *testing.T) {
	svc, caseSvc := newImportServiceForTest(t)
	ctx := context.Background()

	path := writeImportFile(t, `{
		"cases": [{"title": "Unscheduled import", "complexity": "complex"}]
	}`)

	result, err := svc.ImportDocket(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.CasesFiled)
	assert.Equal(t, 0, result.CasesScheduled)

	pending, err := caseSvc.ListByStatus(ctx, domain.CasePending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestImportDocket_InvalidFileWritesNothing(t *testing.T) {
	svc, caseSvc := newImportServiceForTest(t)
	ctx := context.Background()

	path := writeImportFile(t, `{
		"judges": [{"name": "Judge Valid"}],
		"cases": [{"title": "", "complexity": "simple"}]
	}`)

	_, err := svc.ImportDocket(ctx, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid import file")

	all, err := caseSvc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "validation failure must not create cases")
}

func TestImportDocket_MissingFile(t *testing.T) {
	svc, _ := newImportServiceForTest(t)

	_, err := svc.ImportDocket(context.Background(), "/nonexistent/docket.json")
	require.Error(t, err)
}

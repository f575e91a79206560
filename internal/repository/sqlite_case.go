package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rsanghvi/courtsched/internal/db"
	"github.com/rsanghvi/courtsched/internal/domain"
)

// caseColumns is the canonical SELECT column list for cases.
const caseColumns = `id, case_number, title, complexity, status, priority_score,
		judge_id, filed_at, scheduled_date, scheduled_time, estimated_duration`

// SQLiteCaseRepo implements CaseRepo using a SQLite database.
type SQLiteCaseRepo struct {
	db db.DBTX
}

// NewSQLiteCaseRepo creates a new SQLiteCaseRepo.
func NewSQLiteCaseRepo(conn db.DBTX) *SQLiteCaseRepo {
	return &SQLiteCaseRepo{db: conn}
}

func (r *SQLiteCaseRepo) Create(ctx context.Context, c *domain.Case) error {
	query := `INSERT INTO cases (id, case_number, title, complexity, status, priority_score,
		judge_id, filed_at, scheduled_date, scheduled_time, estimated_duration)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.CaseNumber,
		c.Title,
		string(c.Complexity),
		string(c.Status),
		c.PriorityScore,
		nullableStrToValue(c.JudgeID),
		c.FiledAt.Format(time.RFC3339),
		nullableTimeToString(c.ScheduledDate, dateLayout),
		nullableMinuteToString(c.ScheduledTime),
		nullableIntToValue(c.EstimatedDuration),
	)
	if err != nil {
		return fmt.Errorf("inserting case: %w", err)
	}
	return nil
}

func (r *SQLiteCaseRepo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE id = ?`
	return r.scanCase(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCaseRepo) GetByNumber(ctx context.Context, caseNumber string) (*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE case_number = ?`
	return r.scanCase(r.db.QueryRowContext(ctx, query, caseNumber))
}

func (r *SQLiteCaseRepo) List(ctx context.Context) ([]*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases ORDER BY filed_at DESC`
	return r.queryCases(ctx, query)
}

func (r *SQLiteCaseRepo) ListByStatus(ctx context.Context, status domain.CaseStatus) ([]*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE status = ? ORDER BY priority_score DESC, filed_at`
	return r.queryCases(ctx, query, string(status))
}

func (r *SQLiteCaseRepo) ListByJudge(ctx context.Context, judgeID string) ([]*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE judge_id = ?
		ORDER BY scheduled_date, scheduled_time`
	return r.queryCases(ctx, query, judgeID)
}

func (r *SQLiteCaseRepo) Update(ctx context.Context, c *domain.Case) error {
	query := `UPDATE cases SET case_number = ?, title = ?, complexity = ?, status = ?,
		priority_score = ?, judge_id = ?, scheduled_date = ?, scheduled_time = ?,
		estimated_duration = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.CaseNumber,
		c.Title,
		string(c.Complexity),
		string(c.Status),
		c.PriorityScore,
		nullableStrToValue(c.JudgeID),
		nullableTimeToString(c.ScheduledDate, dateLayout),
		nullableMinuteToString(c.ScheduledTime),
		nullableIntToValue(c.EstimatedDuration),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating case: %w", err)
	}
	return nil
}

func (r *SQLiteCaseRepo) CountActiveByJudge(ctx context.Context, judgeID string) (int, error) {
	query := `SELECT COUNT(*) FROM cases WHERE judge_id = ? AND status IN ('scheduled', 'in_progress')`
	var count int
	if err := r.db.QueryRowContext(ctx, query, judgeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active cases: %w", err)
	}
	return count, nil
}

func (r *SQLiteCaseRepo) queryCases(ctx context.Context, query string, args ...any) ([]*domain.Case, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cases: %w", err)
	}
	defer rows.Close()

	var cases []*domain.Case
	for rows.Next() {
		c, err := scanCaseFields(rows.Scan)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cases: %w", err)
	}
	return cases, nil
}

func (r *SQLiteCaseRepo) scanCase(row *sql.Row) (*domain.Case, error) {
	c, err := scanCaseFields(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("case: %w", ErrNotFound)
	}
	return c, err
}

// scanCaseFields scans one case from either a *sql.Row or *sql.Rows scan func.
func scanCaseFields(scan func(dest ...any) error) (*domain.Case, error) {
	var c domain.Case
	var complexityStr, statusStr, filedAtStr string
	var judgeIDStr, scheduledDateStr, scheduledTimeStr sql.NullString
	var estimatedDuration sql.NullInt64

	err := scan(
		&c.ID, &c.CaseNumber, &c.Title, &complexityStr, &statusStr, &c.PriorityScore,
		&judgeIDStr, &filedAtStr, &scheduledDateStr, &scheduledTimeStr, &estimatedDuration,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning case: %w", err)
	}

	c.Complexity = domain.CaseComplexity(complexityStr)
	c.Status = domain.CaseStatus(statusStr)
	if judgeIDStr.Valid {
		c.JudgeID = &judgeIDStr.String
	}
	c.ScheduledDate = parseNullableTime(scheduledDateStr, dateLayout)
	c.ScheduledTime = parseNullableMinute(scheduledTimeStr)
	if estimatedDuration.Valid {
		d := int(estimatedDuration.Int64)
		c.EstimatedDuration = &d
	}

	var parseErr error
	c.FiledAt, parseErr = time.Parse(time.RFC3339, filedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing filed_at: %w", parseErr)
	}
	return &c, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rsanghvi/courtsched/internal/db"
	"github.com/rsanghvi/courtsched/internal/domain"
)

// SQLiteHearingRepo implements HearingRepo using a SQLite database.
type SQLiteHearingRepo struct {
	db db.DBTX
}

// NewSQLiteHearingRepo creates a new SQLiteHearingRepo.
func NewSQLiteHearingRepo(conn db.DBTX) *SQLiteHearingRepo {
	return &SQLiteHearingRepo{db: conn}
}

func (r *SQLiteHearingRepo) Create(ctx context.Context, h *domain.Hearing) error {
	query := `INSERT INTO hearings (id, case_id, hearing_number, scheduled_date, scheduled_time,
		duration_min, status, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.ID,
		h.CaseID,
		h.HearingNumber,
		h.ScheduledDate.Format(dateLayout),
		h.ScheduledTime.String(),
		h.DurationMin,
		string(h.Status),
		h.Notes,
		h.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting hearing: %w", err)
	}
	return nil
}

func (r *SQLiteHearingRepo) ListByCase(ctx context.Context, caseID string) ([]*domain.Hearing, error) {
	query := `SELECT id, case_id, hearing_number, scheduled_date, scheduled_time,
		duration_min, status, notes, created_at
		FROM hearings WHERE case_id = ? ORDER BY hearing_number`
	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("listing hearings: %w", err)
	}
	defer rows.Close()

	var hearings []*domain.Hearing
	for rows.Next() {
		var h domain.Hearing
		var dateStr, timeStr, statusStr, createdAtStr string

		err := rows.Scan(&h.ID, &h.CaseID, &h.HearingNumber, &dateStr, &timeStr,
			&h.DurationMin, &statusStr, &h.Notes, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("scanning hearing row: %w", err)
		}

		h.ScheduledDate, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing hearing date: %w", err)
		}
		h.ScheduledTime, err = domain.ParseMinuteOfDay(timeStr)
		if err != nil {
			return nil, fmt.Errorf("parsing hearing time: %w", err)
		}
		h.Status = domain.HearingStatus(statusStr)
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}

		hearings = append(hearings, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating hearings: %w", err)
	}
	return hearings, nil
}

func (r *SQLiteHearingRepo) MaxHearingNumber(ctx context.Context, caseID string) (int, error) {
	query := `SELECT COALESCE(MAX(hearing_number), 0) FROM hearings WHERE case_id = ?`
	var max int
	if err := r.db.QueryRowContext(ctx, query, caseID).Scan(&max); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("reading max hearing number: %w", err)
	}
	return max, nil
}

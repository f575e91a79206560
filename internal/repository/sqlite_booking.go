package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rsanghvi/courtsched/internal/db"
	"github.com/rsanghvi/courtsched/internal/domain"
)

const bookingColumns = `id, judge_id, date, start_time, end_time, is_available, case_id, notes`

// SQLiteBookingRepo implements BookingRepo using a SQLite database.
// Bookings are append-only from the scheduler's point of view: there is no
// update or delete method on purpose.
type SQLiteBookingRepo struct {
	db db.DBTX
}

// NewSQLiteBookingRepo creates a new SQLiteBookingRepo.
func NewSQLiteBookingRepo(conn db.DBTX) *SQLiteBookingRepo {
	return &SQLiteBookingRepo{db: conn}
}

func (r *SQLiteBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, judge_id, date, start_time, end_time, is_available, case_id, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.JudgeID,
		b.Date.Format(dateLayout),
		b.Start.String(),
		b.End.String(),
		boolToInt(b.IsAvailable),
		nullableStrToValue(b.CaseID),
		b.Notes,
	)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}
	return nil
}

func (r *SQLiteBookingRepo) ListForJudgeDate(ctx context.Context, judgeID string, date time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE judge_id = ? AND date = ?
		ORDER BY start_time`
	return r.queryBookings(ctx, query, judgeID, date.Format(dateLayout))
}

func (r *SQLiteBookingRepo) ListForJudgeRange(ctx context.Context, judgeID string, from, to time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE judge_id = ? AND date >= ? AND date <= ?
		ORDER BY date, start_time`
	return r.queryBookings(ctx, query, judgeID, from.Format(dateLayout), to.Format(dateLayout))
}

func (r *SQLiteBookingRepo) queryBookings(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		var dateStr, startStr, endStr string
		var availableInt int
		var caseIDStr sql.NullString

		err := rows.Scan(&b.ID, &b.JudgeID, &dateStr, &startStr, &endStr, &availableInt, &caseIDStr, &b.Notes)
		if err != nil {
			return nil, fmt.Errorf("scanning booking row: %w", err)
		}

		b.Date, err = time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing booking date: %w", err)
		}
		b.Start, err = domain.ParseMinuteOfDay(startStr)
		if err != nil {
			return nil, fmt.Errorf("parsing booking start: %w", err)
		}
		b.End, err = domain.ParseMinuteOfDay(endStr)
		if err != nil {
			return nil, fmt.Errorf("parsing booking end: %w", err)
		}
		b.IsAvailable = intToBool(availableInt)
		if caseIDStr.Valid {
			id := caseIDStr.String
			b.CaseID = &id
		}

		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}
	return bookings, nil
}

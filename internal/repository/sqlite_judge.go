package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rsanghvi/courtsched/internal/db"
	"github.com/rsanghvi/courtsched/internal/domain"
)

// SQLiteJudgeRepo implements JudgeRepo using a SQLite database.
type SQLiteJudgeRepo struct {
	db db.DBTX
}

// NewSQLiteJudgeRepo creates a new SQLiteJudgeRepo.
func NewSQLiteJudgeRepo(conn db.DBTX) *SQLiteJudgeRepo {
	return &SQLiteJudgeRepo{db: conn}
}

func (r *SQLiteJudgeRepo) Create(ctx context.Context, j *domain.Judge) error {
	query := `INSERT INTO judges (id, name, court_room, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		j.ID,
		j.Name,
		j.CourtRoom,
		j.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting judge: %w", err)
	}
	return nil
}

func (r *SQLiteJudgeRepo) GetByID(ctx context.Context, id string) (*domain.Judge, error) {
	query := `SELECT id, name, court_room, created_at FROM judges WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var j domain.Judge
	var createdAtStr string
	if err := row.Scan(&j.ID, &j.Name, &j.CourtRoom, &createdAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("judge: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning judge: %w", err)
	}

	var err error
	j.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &j, nil
}

// List returns judges in creation order. Assignment tie-breaks depend on a
// stable enumeration order, so the ORDER BY matters.
func (r *SQLiteJudgeRepo) List(ctx context.Context) ([]domain.Judge, error) {
	query := `SELECT id, name, court_room, created_at FROM judges ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing judges: %w", err)
	}
	defer rows.Close()

	var judges []domain.Judge
	for rows.Next() {
		var j domain.Judge
		var createdAtStr string
		if err := rows.Scan(&j.ID, &j.Name, &j.CourtRoom, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning judge row: %w", err)
		}
		j.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		judges = append(judges, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating judges: %w", err)
	}
	return judges, nil
}

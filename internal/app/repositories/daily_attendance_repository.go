package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/pkg/apperrors"
)

// DailyAttendanceRepository handles database operations for the daily
// attendance ledger. The (student_id, date) pair is unique; writes go
// through an upsert so resubmission overwrites instead of duplicating.
type DailyAttendanceRepository struct {
	db *pgxpool.Pool
}

// NewDailyAttendanceRepository creates a new daily attendance repository
func NewDailyAttendanceRepository(db *pgxpool.Pool) *DailyAttendanceRepository {
	return &DailyAttendanceRepository{
		db: db,
	}
}

// Upsert inserts or overwrites the presence value for (studentId, date)
func (r *DailyAttendanceRepository) Upsert(ctx context.Context, record models.DailyAttendance) error {
	query := `
		INSERT INTO daily_attendance (student_id, date, present)
		VALUES ($1, $2, $3)
		ON CONFLICT (student_id, date)
		DO UPDATE SET present = EXCLUDED.present
	`

	_, err := r.db.Exec(ctx, query, record.StudentID, record.Date, record.Present)
	if err != nil {
		return fmt.Errorf("error upserting attendance: %w", err)
	}

	return nil
}

// Delete removes exactly one ledger row by its composite key. Returns
// ErrAttendanceNotFound when no row matches, so callers can distinguish
// a no-op from a removal.
func (r *DailyAttendanceRepository) Delete(ctx context.Context, studentID string, date time.Time) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM daily_attendance WHERE student_id = $1 AND date = $2`,
		studentID, date)
	if err != nil {
		return fmt.Errorf("error deleting attendance: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

// GetRange retrieves ledger rows whose date falls within [from, to]
// inclusive, optionally filtered to one student. An empty studentID
// means all students.
func (r *DailyAttendanceRepository) GetRange(ctx context.Context, studentID string, from, to time.Time) ([]models.DailyAttendance, error) {
	query := `
		SELECT id, student_id, date, present
		FROM daily_attendance
		WHERE date >= $1 AND date <= $2
	`
	args := []interface{}{from, to}

	if studentID != "" {
		query += ` AND student_id = $3`
		args = append(args, studentID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.DailyAttendance
	for rows.Next() {
		var record models.DailyAttendance
		if err := rows.Scan(&record.ID, &record.StudentID, &record.Date, &record.Present); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

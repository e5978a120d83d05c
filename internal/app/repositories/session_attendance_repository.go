package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yosefd/rollbook/internal/app/models"
)

// SessionAttendanceRepository handles database operations for per-slot
// session attendance documents. One document per (student_id, date),
// enforced by a unique compound index; Replace overwrites the whole
// entry list, last writer wins.
type SessionAttendanceRepository struct {
	db *pgxpool.Pool
}

// NewSessionAttendanceRepository creates a new session attendance repository
func NewSessionAttendanceRepository(db *pgxpool.Pool) *SessionAttendanceRepository {
	return &SessionAttendanceRepository{
		db: db,
	}
}

// Replace upserts the full session document for (studentId, date)
func (r *SessionAttendanceRepository) Replace(ctx context.Context, doc models.SessionAttendance) error {
	entries, err := json.Marshal(doc.Entries)
	if err != nil {
		return fmt.Errorf("error encoding session entries: %w", err)
	}

	query := `
		INSERT INTO session_attendance (student_id, date, entries)
		VALUES ($1, $2, $3)
		ON CONFLICT (student_id, date)
		DO UPDATE SET entries = EXCLUDED.entries, updated_at = now()
	`

	_, err = r.db.Exec(ctx, query, doc.StudentID, doc.Date, entries)
	if err != nil {
		return fmt.Errorf("error upserting session attendance: %w", err)
	}

	return nil
}

// GetByDate retrieves all session documents for one date
func (r *SessionAttendanceRepository) GetByDate(ctx context.Context, date time.Time) ([]models.SessionAttendance, error) {
	query := `
		SELECT id, student_id, date, entries, created_at, updated_at
		FROM session_attendance
		WHERE date = $1
		ORDER BY student_id
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []models.SessionAttendance
	for rows.Next() {
		var doc models.SessionAttendance
		var entries []byte
		if err := rows.Scan(&doc.ID, &doc.StudentID, &doc.Date, &entries, &doc.CreatedAt, &doc.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(entries, &doc.Entries); err != nil {
			return nil, fmt.Errorf("error decoding session entries: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return docs, nil
}

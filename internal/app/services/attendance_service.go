package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/app/models/dto"
	"github.com/yosefd/rollbook/internal/pkg/apperrors"
)

// DailyAttendanceStore is the persistence contract for the daily ledger.
type DailyAttendanceStore interface {
	Upsert(ctx context.Context, record models.DailyAttendance) error
	Delete(ctx context.Context, studentID string, date time.Time) error
	GetRange(ctx context.Context, studentID string, from, to time.Time) ([]models.DailyAttendance, error)
}

// SessionAttendanceStore is the persistence contract for per-slot documents.
type SessionAttendanceStore interface {
	Replace(ctx context.Context, doc models.SessionAttendance) error
	GetByDate(ctx context.Context, date time.Time) ([]models.SessionAttendance, error)
}

// AttendanceService reconciles desired presence state against the ledger.
// Presence is the only persisted fact: a desired "present" becomes an
// upsert, a desired "absent" becomes a deletion of the same composite key.
type AttendanceService struct {
	daily    DailyAttendanceStore
	sessions SessionAttendanceStore
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(daily DailyAttendanceStore, sessions SessionAttendanceStore) *AttendanceService {
	return &AttendanceService{
		daily:    daily,
		sessions: sessions,
	}
}

// dateLayouts are the accepted encodings for attendance dates.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseAttendanceDate parses a date string and truncates it to the day.
func ParseAttendanceDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", value)
}

// dailyWrite is one validated write of a daily batch
type dailyWrite struct {
	studentID string
	date      time.Time
	present   bool
}

// SaveDailyBatch validates the whole batch first and only then issues
// writes, so a malformed batch is rejected atomically with nothing
// persisted. Records marked present are upserted; records marked absent
// delete the key, since absence is represented by row absence. Writes
// are sequential and independent per key; a storage failure mid-batch
// leaves earlier writes applied.
func (s *AttendanceService) SaveDailyBatch(ctx context.Context, records []dto.DailyRecordRequest) (int, error) {
	writes := make([]dailyWrite, 0, len(records))

	for i, record := range records {
		if record.StudentID == "" {
			return 0, apperrors.NewValidationError(fmt.Sprintf("record at index %d is missing studentId", i))
		}
		if record.Date == "" {
			return 0, apperrors.NewValidationError(fmt.Sprintf("record at index %d is missing date", i))
		}
		// A nil Present means the field was omitted. Coercing it to
		// false would delete an existing row, so it rejects the batch.
		if record.Present == nil {
			return 0, apperrors.NewValidationError(fmt.Sprintf("record at index %d is missing present", i))
		}

		date, err := ParseAttendanceDate(record.Date)
		if err != nil {
			return 0, apperrors.NewValidationError(fmt.Sprintf("invalid date format at index %d: %s", i, record.Date))
		}

		writes = append(writes, dailyWrite{
			studentID: record.StudentID,
			date:      date,
			present:   bool(*record.Present),
		})
	}

	for _, write := range writes {
		if write.present {
			err := s.daily.Upsert(ctx, models.DailyAttendance{
				StudentID: write.studentID,
				Date:      write.date,
				Present:   true,
			})
			if err != nil {
				return 0, fmt.Errorf("error saving attendance for %s: %w", write.studentID, err)
			}
			continue
		}

		// Absent: remove the row if present. A missing row already
		// encodes absence, so not-found is not an error here.
		err := s.daily.Delete(ctx, write.studentID, write.date)
		if err != nil && !errors.Is(err, apperrors.ErrAttendanceNotFound) {
			return 0, fmt.Errorf("error clearing attendance for %s: %w", write.studentID, err)
		}
	}

	return len(writes), nil
}

// MonthRange returns the inclusive first-to-last-day range of a month.
func MonthRange(month, year int) (from, to time.Time, err error) {
	if month < 1 || month > 12 {
		return from, to, apperrors.NewValidationError(fmt.Sprintf("invalid month: %d", month))
	}
	if year < 1970 || year > 9999 {
		return from, to, apperrors.NewValidationError(fmt.Sprintf("invalid year: %d", year))
	}

	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, -1)
	return from, to, nil
}

// GetMonth returns all ledger rows for the given month and year,
// optionally filtered to one student. "all" or empty means every student.
// Ordering is unspecified; callers re-key by (studentId, date).
func (s *AttendanceService) GetMonth(ctx context.Context, studentID string, month, year int) ([]models.DailyAttendance, error) {
	from, to, err := MonthRange(month, year)
	if err != nil {
		return nil, err
	}

	if studentID == "all" {
		studentID = ""
	}

	records, err := s.daily.GetRange(ctx, studentID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error fetching attendance: %w", err)
	}

	return records, nil
}

// DeleteDaily removes one ledger row by its composite key. It returns
// ErrAttendanceNotFound when the key is absent so the caller can
// distinguish a no-op from a removal.
func (s *AttendanceService) DeleteDaily(ctx context.Context, studentID, dateStr string) error {
	if studentID == "" {
		return apperrors.NewValidationError("studentId is required")
	}
	if dateStr == "" {
		return apperrors.NewValidationError("date is required")
	}

	date, err := ParseAttendanceDate(dateStr)
	if err != nil {
		return apperrors.NewValidationError("invalid date format")
	}

	return s.daily.Delete(ctx, studentID, date)
}

// SaveSessionBatch upserts one session document per student for the given
// date. Entries are validated against the fixed weekday/slot/status sets
// before any write; a malformed entry rejects the whole batch. Records
// without a studentId or with no entries are skipped. Resubmitting the
// same (studentId, date) replaces the prior document wholesale.
func (s *AttendanceService) SaveSessionBatch(ctx context.Context, req dto.SaveSessionRequest) (int, error) {
	if req.Date == "" {
		return 0, apperrors.NewValidationError("date is required")
	}
	if len(req.Attendance) == 0 {
		return 0, apperrors.NewValidationError("attendance records are required")
	}

	date, err := ParseAttendanceDate(req.Date)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid date format")
	}

	docs := make([]models.SessionAttendance, 0, len(req.Attendance))
	for _, record := range req.Attendance {
		if record.StudentID == "" || len(record.Entries) == 0 {
			continue
		}

		for _, entry := range record.Entries {
			if err := entry.Validate(); err != nil {
				return 0, apperrors.NewValidationError(
					fmt.Sprintf("invalid session entry for student %s: %v", record.StudentID, err))
			}
		}

		docs = append(docs, models.SessionAttendance{
			StudentID: record.StudentID,
			Date:      date,
			Entries:   record.Entries,
		})
	}

	for _, doc := range docs {
		if err := s.sessions.Replace(ctx, doc); err != nil {
			return 0, fmt.Errorf("error saving session attendance for %s: %w", doc.StudentID, err)
		}
	}

	return len(docs), nil
}

// GetSessionsByDate returns all session documents recorded for one date.
func (s *AttendanceService) GetSessionsByDate(ctx context.Context, dateStr string) ([]models.SessionAttendance, error) {
	if dateStr == "" {
		return nil, apperrors.NewValidationError("date is required")
	}

	date, err := ParseAttendanceDate(dateStr)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date format")
	}

	docs, err := s.sessions.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("error fetching session attendance: %w", err)
	}

	return docs, nil
}

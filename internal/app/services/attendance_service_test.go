package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/app/models/dto"
	"github.com/yosefd/rollbook/internal/pkg/apperrors"
)

// fakeDailyStore keeps the daily ledger in a map keyed by (studentID, date).
type fakeDailyStore struct {
	rows   map[string]models.DailyAttendance
	writes int
}

func newFakeDailyStore() *fakeDailyStore {
	return &fakeDailyStore{rows: make(map[string]models.DailyAttendance)}
}

func dailyKey(studentID string, date time.Time) string {
	return fmt.Sprintf("%s|%s", studentID, date.Format("2006-01-02"))
}

func (f *fakeDailyStore) Upsert(_ context.Context, record models.DailyAttendance) error {
	f.writes++
	f.rows[dailyKey(record.StudentID, record.Date)] = record
	return nil
}

func (f *fakeDailyStore) Delete(_ context.Context, studentID string, date time.Time) error {
	f.writes++
	key := dailyKey(studentID, date)
	if _, ok := f.rows[key]; !ok {
		return apperrors.ErrAttendanceNotFound
	}
	delete(f.rows, key)
	return nil
}

func (f *fakeDailyStore) GetRange(_ context.Context, studentID string, from, to time.Time) ([]models.DailyAttendance, error) {
	var out []models.DailyAttendance
	for _, row := range f.rows {
		if studentID != "" && row.StudentID != studentID {
			continue
		}
		if row.Date.Before(from) || row.Date.After(to) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

// fakeSessionStore keeps session documents keyed by (studentID, date).
type fakeSessionStore struct {
	docs map[string]models.SessionAttendance
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{docs: make(map[string]models.SessionAttendance)}
}

func (f *fakeSessionStore) Replace(_ context.Context, doc models.SessionAttendance) error {
	f.docs[dailyKey(doc.StudentID, doc.Date)] = doc
	return nil
}

func (f *fakeSessionStore) GetByDate(_ context.Context, date time.Time) ([]models.SessionAttendance, error) {
	var out []models.SessionAttendance
	for _, doc := range f.docs {
		if doc.Date.Equal(date) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func newTestService() (*AttendanceService, *fakeDailyStore, *fakeSessionStore) {
	daily := newFakeDailyStore()
	sessions := newFakeSessionStore()
	return NewAttendanceService(daily, sessions), daily, sessions
}

func mark(present bool) *dto.FlexBool {
	b := dto.FlexBool(present)
	return &b
}

func TestSaveDailyBatchUpsertsPresent(t *testing.T) {
	svc, daily, _ := newTestService()

	count, err := svc.SaveDailyBatch(context.Background(), []dto.DailyRecordRequest{
		{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
		{StudentID: "S002", Date: "2024-05-01", Present: mark(true)},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, daily.rows, 2)
}

func TestSaveDailyBatchAbsentDeletesRow(t *testing.T) {
	svc, daily, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SaveDailyBatch(ctx, []dto.DailyRecordRequest{
		{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
	})
	require.NoError(t, err)
	require.Len(t, daily.rows, 1)

	count, err := svc.SaveDailyBatch(ctx, []dto.DailyRecordRequest{
		{StudentID: "S001", Date: "2024-05-01", Present: mark(false)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Empty(t, daily.rows, "absent record should remove the ledger row")
}

func TestSaveDailyBatchAbsentMissingRowIsNoop(t *testing.T) {
	svc, daily, _ := newTestService()

	// Deleting a key that was never written must not surface an error.
	count, err := svc.SaveDailyBatch(context.Background(), []dto.DailyRecordRequest{
		{StudentID: "S001", Date: "2024-05-01", Present: mark(false)},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Empty(t, daily.rows)
}

func TestSaveDailyBatchIsIdempotent(t *testing.T) {
	svc, daily, _ := newTestService()
	ctx := context.Background()

	batch := []dto.DailyRecordRequest{
		{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
	}

	_, err := svc.SaveDailyBatch(ctx, batch)
	require.NoError(t, err)
	_, err = svc.SaveDailyBatch(ctx, batch)
	require.NoError(t, err)

	assert.Len(t, daily.rows, 1, "resubmitting the same batch should not duplicate rows")
}

func TestSaveDailyBatchFailFast(t *testing.T) {
	tests := []struct {
		name  string
		batch []dto.DailyRecordRequest
	}{
		{
			name: "missing studentId",
			batch: []dto.DailyRecordRequest{
				{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
				{StudentID: "", Date: "2024-05-01", Present: mark(true)},
			},
		},
		{
			name: "missing date",
			batch: []dto.DailyRecordRequest{
				{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
				{StudentID: "S002", Date: "", Present: mark(true)},
			},
		},
		{
			name: "malformed date",
			batch: []dto.DailyRecordRequest{
				{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
				{StudentID: "S002", Date: "05/01/2024", Present: mark(true)},
			},
		},
		{
			name: "missing present",
			batch: []dto.DailyRecordRequest{
				{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
				{StudentID: "S002", Date: "2024-05-01"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, daily, _ := newTestService()

			count, err := svc.SaveDailyBatch(context.Background(), tt.batch)

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Zero(t, count)
			assert.Zero(t, daily.writes, "no write should happen when any record is invalid")
		})
	}
}

func TestSaveDailyBatchOmittedPresentKeepsExistingRow(t *testing.T) {
	svc, daily, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SaveDailyBatch(ctx, []dto.DailyRecordRequest{
		{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
	})
	require.NoError(t, err)
	require.Len(t, daily.rows, 1)
	writesBefore := daily.writes

	// A record that omits present entirely decodes with a nil pointer.
	// It must reject the batch, not coerce to false and delete the row.
	var records []dto.DailyRecordRequest
	payload := `[{"studentId": "S001", "date": "2024-05-01"}]`
	require.NoError(t, json.Unmarshal([]byte(payload), &records))
	require.Nil(t, records[0].Present)

	count, err := svc.SaveDailyBatch(ctx, records)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Zero(t, count)
	assert.Len(t, daily.rows, 1, "the persisted row must survive the rejected batch")
	assert.Equal(t, writesBefore, daily.writes)
}

func TestParseAttendanceDateFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "plain date", input: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339 truncated to day", input: "2024-05-01T15:04:05Z", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "slash format rejected", input: "05/01/2024", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAttendanceDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestMonthRangeBoundaries(t *testing.T) {
	from, to, err := MonthRange(5, 2024)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC), to)

	// February of a leap year
	from, to, err = MonthRange(2, 2024)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), to)
}

func TestMonthRangeRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
	}{
		{name: "month zero", month: 0, year: 2024},
		{name: "month thirteen", month: 13, year: 2024},
		{name: "year too small", month: 5, year: 1800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := MonthRange(tt.month, tt.year)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestGetMonthRangeIsInclusive(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SaveDailyBatch(ctx, []dto.DailyRecordRequest{
		{StudentID: "S001", Date: "2024-04-30", Present: mark(true)},
		{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
		{StudentID: "S001", Date: "2024-05-31", Present: mark(true)},
		{StudentID: "S001", Date: "2024-06-01", Present: mark(true)},
	})
	require.NoError(t, err)

	records, err := svc.GetMonth(ctx, "S001", 5, 2024)
	require.NoError(t, err)

	dates := make(map[string]bool, len(records))
	for _, r := range records {
		dates[r.Date.Format("2006-01-02")] = true
	}

	assert.Len(t, records, 2)
	assert.True(t, dates["2024-05-01"], "first day of month must be included")
	assert.True(t, dates["2024-05-31"], "last day of month must be included")
	assert.False(t, dates["2024-04-30"], "previous month must be excluded")
	assert.False(t, dates["2024-06-01"], "next month must be excluded")
}

func TestGetMonthAllStudents(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SaveDailyBatch(ctx, []dto.DailyRecordRequest{
		{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
		{StudentID: "S002", Date: "2024-05-02", Present: mark(true)},
	})
	require.NoError(t, err)

	for _, filter := range []string{"all", ""} {
		records, err := svc.GetMonth(ctx, filter, 5, 2024)
		require.NoError(t, err)
		assert.Len(t, records, 2, "filter %q should return every student", filter)
	}

	records, err := svc.GetMonth(ctx, "S002", 5, 2024)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "S002", records[0].StudentID)
}

func TestDeleteDaily(t *testing.T) {
	svc, daily, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SaveDailyBatch(ctx, []dto.DailyRecordRequest{
		{StudentID: "S001", Date: "2024-05-01", Present: mark(true)},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDaily(ctx, "S001", "2024-05-01"))
	assert.Empty(t, daily.rows)

	// Second delete hits a missing key and must report not-found.
	err = svc.DeleteDaily(ctx, "S001", "2024-05-01")
	assert.ErrorIs(t, err, apperrors.ErrAttendanceNotFound)
}

func TestDeleteDailyValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteDaily(ctx, "", "2024-05-01"), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.DeleteDaily(ctx, "S001", ""), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.DeleteDaily(ctx, "S001", "not-a-date"), apperrors.ErrValidationFailed)
}

func TestSaveSessionBatchReplacesDocument(t *testing.T) {
	svc, _, sessions := newTestService()
	ctx := context.Background()

	first := dto.SaveSessionRequest{
		Date: "2024-05-06",
		Attendance: []dto.StudentSessionRequest{
			{StudentID: "S001", Entries: []models.SessionEntry{
				{Weekday: models.Monday, Slot: models.SlotMorningFirst, Status: models.StatusPresent},
				{Weekday: models.Monday, Slot: models.SlotMorningSecond, Status: models.StatusPresent},
			}},
		},
	}
	count, err := svc.SaveSessionBatch(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	second := dto.SaveSessionRequest{
		Date: "2024-05-06",
		Attendance: []dto.StudentSessionRequest{
			{StudentID: "S001", Entries: []models.SessionEntry{
				{Weekday: models.Monday, Slot: models.SlotAfternoonFirst, Status: models.StatusPresent},
			}},
		},
	}
	_, err = svc.SaveSessionBatch(ctx, second)
	require.NoError(t, err)

	docs, err := svc.GetSessionsByDate(ctx, "2024-05-06")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Len(t, docs[0].Entries, 1, "resubmission must replace the document, not merge")
	assert.Equal(t, models.SlotAfternoonFirst, docs[0].Entries[0].Slot)
	assert.Len(t, sessions.docs, 1, "the same key must hold a single document")
}

func TestSaveSessionBatchSkipsEmptyRecords(t *testing.T) {
	svc, _, sessions := newTestService()

	count, err := svc.SaveSessionBatch(context.Background(), dto.SaveSessionRequest{
		Date: "2024-05-06",
		Attendance: []dto.StudentSessionRequest{
			{StudentID: "", Entries: []models.SessionEntry{
				{Weekday: models.Monday, Slot: models.SlotMorningFirst, Status: models.StatusPresent},
			}},
			{StudentID: "S002", Entries: nil},
			{StudentID: "S003", Entries: []models.SessionEntry{
				{Weekday: models.Tuesday, Slot: models.SlotMorningFirst, Status: models.StatusPresent},
			}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, sessions.docs, 1)
}

func TestSaveSessionBatchRejectsInvalidEntry(t *testing.T) {
	svc, _, sessions := newTestService()

	_, err := svc.SaveSessionBatch(context.Background(), dto.SaveSessionRequest{
		Date: "2024-05-06",
		Attendance: []dto.StudentSessionRequest{
			{StudentID: "S001", Entries: []models.SessionEntry{
				{Weekday: "Saturday", Slot: models.SlotMorningFirst, Status: models.StatusPresent},
			}},
		},
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, sessions.docs)
}

func TestSaveSessionBatchValidation(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SaveSessionBatch(ctx, dto.SaveSessionRequest{Date: "", Attendance: []dto.StudentSessionRequest{{StudentID: "S001"}}})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.SaveSessionBatch(ctx, dto.SaveSessionRequest{Date: "2024-05-06"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

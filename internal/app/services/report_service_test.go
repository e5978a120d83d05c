package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/app/models/dto"
)

func TestPresentCounts(t *testing.T) {
	svc := NewReportService()

	schedule := []dto.SessionScheduleSlot{
		{Weekday: models.Monday, Slot: models.SlotMorningFirst, Course: "Math"},
		{Weekday: models.Monday, Slot: models.SlotMorningSecond, Course: "Physics"},
		{Weekday: models.Tuesday, Slot: models.SlotMorningFirst, Course: "Math"},
	}

	batch := []dto.StudentSessionRequest{
		{StudentID: "S001", Entries: []models.SessionEntry{
			{Weekday: models.Monday, Slot: models.SlotMorningFirst, Status: models.StatusPresent},
			{Weekday: models.Monday, Slot: models.SlotMorningSecond, Status: models.StatusPresent},
		}},
		{StudentID: "S002", Entries: []models.SessionEntry{
			{Weekday: models.Monday, Slot: models.SlotMorningFirst, Status: models.StatusPresent},
		}},
		{StudentID: "S003", Entries: []models.SessionEntry{
			{Weekday: models.Wednesday, Slot: models.SlotAfternoonFirst, Status: models.StatusPresent},
		}},
	}

	counts := svc.PresentCounts(schedule, batch)

	assert.Equal(t, map[string]int{
		"Monday-8:00-10:00-Math":     2,
		"Monday-10:00-12:00-Physics": 1,
		"Tuesday-8:00-10:00-Math":    0,
	}, counts)
}

func TestPresentCountsStudentCountedOncePerSlot(t *testing.T) {
	svc := NewReportService()

	schedule := []dto.SessionScheduleSlot{
		{Weekday: models.Monday, Slot: models.SlotMorningFirst, Course: "Math"},
	}

	// Duplicate entries for the same slot must not inflate the count.
	batch := []dto.StudentSessionRequest{
		{StudentID: "S001", Entries: []models.SessionEntry{
			{Weekday: models.Monday, Slot: models.SlotMorningFirst, Status: models.StatusPresent},
			{Weekday: models.Monday, Slot: models.SlotMorningFirst, Status: models.StatusPresent},
		}},
	}

	counts := svc.PresentCounts(schedule, batch)
	assert.Equal(t, 1, counts["Monday-8:00-10:00-Math"])
}

func TestPresentCountsEmptyInputs(t *testing.T) {
	svc := NewReportService()

	assert.Empty(t, svc.PresentCounts(nil, nil))
	assert.Empty(t, svc.PresentCounts(nil, []dto.StudentSessionRequest{{StudentID: "S001"}}))

	// A schedule with no batch to count against yields no keys at all.
	assert.Empty(t, svc.PresentCounts([]dto.SessionScheduleSlot{
		{Weekday: models.Friday, Slot: models.SlotAfternoonSecond, Course: "History"},
	}, nil))
}

func TestPresentCountsUnattendedSlotIsZero(t *testing.T) {
	svc := NewReportService()

	schedule := []dto.SessionScheduleSlot{
		{Weekday: models.Friday, Slot: models.SlotAfternoonSecond, Course: "History"},
	}
	batch := []dto.StudentSessionRequest{
		{StudentID: "S001", Entries: []models.SessionEntry{
			{Weekday: models.Monday, Slot: models.SlotMorningFirst, Status: models.StatusPresent},
		}},
	}

	counts := svc.PresentCounts(schedule, batch)
	assert.Equal(t, map[string]int{"Friday-15:00-17:30-History": 0}, counts)
}

func TestMonthlySummary(t *testing.T) {
	svc := NewReportService()

	day := func(d int) time.Time { return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC) }

	records := []models.DailyAttendance{
		{StudentID: "S002", Date: day(1), Present: true},
		{StudentID: "S001", Date: day(1), Present: true},
		{StudentID: "S001", Date: day(2), Present: true},
		{StudentID: "S001", Date: day(3), Present: false},
	}

	summaries := svc.MonthlySummary(records)

	assert.Equal(t, []StudentMonthSummary{
		{StudentID: "S001", PresentDays: 2},
		{StudentID: "S002", PresentDays: 1},
	}, summaries)
}

func TestMonthlySummaryEmpty(t *testing.T) {
	svc := NewReportService()
	assert.Empty(t, svc.MonthlySummary(nil))
}

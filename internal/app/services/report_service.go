package services

import (
	"fmt"
	"sort"

	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/app/models/dto"
)

// ReportService derives display counts from reconciled attendance. It is
// a pure fold over its inputs and persists nothing.
type ReportService struct{}

// NewReportService creates a new report service instance
func NewReportService() *ReportService {
	return &ReportService{}
}

// PresentCounts folds a session batch into present-counts per scheduled
// slot. The key is "weekday-slot-course"; the value is the number of
// students whose entries mark that (weekday, slot) Present. An empty
// schedule or an empty batch yields an empty map; slots nobody attended
// only appear, as zeroes, when there is a batch to count against.
func (s *ReportService) PresentCounts(schedule []dto.SessionScheduleSlot, batch []dto.StudentSessionRequest) map[string]int {
	counts := make(map[string]int, len(schedule))
	if len(batch) == 0 {
		return counts
	}

	for _, slot := range schedule {
		key := fmt.Sprintf("%s-%s-%s", slot.Weekday, slot.Slot, slot.Course)
		counts[key] = 0

		for _, record := range batch {
			for _, entry := range record.Entries {
				if entry.Weekday == slot.Weekday && entry.Slot == slot.Slot && entry.Status == models.StatusPresent {
					counts[key]++
					break
				}
			}
		}
	}

	return counts
}

// StudentMonthSummary is one student's present-day count for a month
type StudentMonthSummary struct {
	StudentID   string `json:"studentId"`
	PresentDays int    `json:"presentDays"`
}

// MonthlySummary folds a month of ledger rows into per-student
// present-day counts, sorted by student ID.
func (s *ReportService) MonthlySummary(records []models.DailyAttendance) []StudentMonthSummary {
	byStudent := make(map[string]int)
	for _, record := range records {
		if record.Present {
			byStudent[record.StudentID]++
		}
	}

	summaries := make([]StudentMonthSummary, 0, len(byStudent))
	for studentID, days := range byStudent {
		summaries = append(summaries, StudentMonthSummary{
			StudentID:   studentID,
			PresentDays: days,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].StudentID < summaries[j].StudentID
	})

	return summaries
}

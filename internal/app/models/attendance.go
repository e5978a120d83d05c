package models

import (
	"fmt"
	"time"
)

// The daily ledger stores presence only: a row means the student was
// present on that date, absence is the default state represented by the
// absence of a row. (student_id, date) is unique at the storage layer.

// DailyAttendance is one presence fact in the daily ledger
type DailyAttendance struct {
	ID        int64     `json:"-" db:"id"`
	StudentID string    `json:"studentId" db:"student_id"`
	Date      time.Time `json:"date" db:"date"`
	Present   bool      `json:"present" db:"present"`
}

// Weekday names a school day. Sessions run Monday through Friday.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
)

// IsValid reports whether the weekday is a school day.
func (w Weekday) IsValid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}
	return false
}

// TimeSlot labels one class session time range
type TimeSlot string

const (
	SlotMorningFirst    TimeSlot = "8:00-10:00"
	SlotMorningSecond   TimeSlot = "10:00-12:00"
	SlotAfternoonFirst  TimeSlot = "13:30-15:00"
	SlotAfternoonSecond TimeSlot = "15:00-17:30"
)

// IsValid reports whether the slot is one of the fixed session ranges.
func (s TimeSlot) IsValid() bool {
	switch s {
	case SlotMorningFirst, SlotMorningSecond, SlotAfternoonFirst, SlotAfternoonSecond:
		return true
	}
	return false
}

// SessionStatus is the recorded state for one (weekday, slot) session
type SessionStatus string

const (
	StatusPresent SessionStatus = "Present"
)

// IsValid reports whether the status is a known session state.
func (s SessionStatus) IsValid() bool {
	return s == StatusPresent
}

// SessionEntry is one (weekday, slot) presence mark inside a session
// attendance document. Kept as a typed triple rather than an open
// map-of-maps so malformed keys are rejected at the boundary.
type SessionEntry struct {
	Weekday Weekday       `json:"weekday"`
	Slot    TimeSlot      `json:"slot"`
	Status  SessionStatus `json:"status"`
}

// Validate checks all three coordinates against their fixed sets.
func (e SessionEntry) Validate() error {
	if !e.Weekday.IsValid() {
		return fmt.Errorf("invalid weekday %q", e.Weekday)
	}
	if !e.Slot.IsValid() {
		return fmt.Errorf("invalid time slot %q", e.Slot)
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("invalid status %q", e.Status)
	}
	return nil
}

// SessionAttendance is the per-schedule-slot attendance document for one
// student on one date. Resubmission replaces the whole entry list, the
// store never merges slot entries across submissions.
type SessionAttendance struct {
	ID        int64          `json:"-" db:"id"`
	StudentID string         `json:"studentId" db:"student_id"`
	Date      time.Time      `json:"date" db:"date"`
	Entries   []SessionEntry `json:"entries" db:"entries"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time      `json:"updatedAt" db:"updated_at"`
}

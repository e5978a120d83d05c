package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayIsValid(t *testing.T) {
	for _, w := range []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday} {
		assert.True(t, w.IsValid(), "weekday %q", w)
	}
	for _, w := range []Weekday{"Saturday", "Sunday", "monday", ""} {
		assert.False(t, w.IsValid(), "weekday %q", w)
	}
}

func TestTimeSlotIsValid(t *testing.T) {
	for _, s := range []TimeSlot{SlotMorningFirst, SlotMorningSecond, SlotAfternoonFirst, SlotAfternoonSecond} {
		assert.True(t, s.IsValid(), "slot %q", s)
	}
	for _, s := range []TimeSlot{"9:00-11:00", "8:00 - 10:00", ""} {
		assert.False(t, s.IsValid(), "slot %q", s)
	}
}

func TestSessionEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   SessionEntry
		wantErr bool
	}{
		{
			name:  "valid entry",
			entry: SessionEntry{Weekday: Monday, Slot: SlotMorningFirst, Status: StatusPresent},
		},
		{
			name:    "bad weekday",
			entry:   SessionEntry{Weekday: "Someday", Slot: SlotMorningFirst, Status: StatusPresent},
			wantErr: true,
		},
		{
			name:    "bad slot",
			entry:   SessionEntry{Weekday: Monday, Slot: "12:00-14:00", Status: StatusPresent},
			wantErr: true,
		},
		{
			name:    "bad status",
			entry:   SessionEntry{Weekday: Monday, Slot: SlotMorningFirst, Status: "Absent"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleDepHead, RoleTeacher, RoleProctor} {
		assert.True(t, r.IsValid(), "role %q", r)
	}
	// The bootstrap admin is never storable.
	assert.False(t, RoleAdmin.IsValid())
	assert.False(t, Role("student").IsValid())
}

func TestEnrollmentYearIsValid(t *testing.T) {
	for _, y := range []EnrollmentYear{Year1, Year2, Year3, Year4, Year5, Year6} {
		assert.True(t, y.IsValid(), "year %q", y)
	}
	for _, y := range []EnrollmentYear{"7th", "first", ""} {
		assert.False(t, y.IsValid(), "year %q", y)
	}
}

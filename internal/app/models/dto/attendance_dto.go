package dto

import (
	"encoding/json"
	"fmt"

	"github.com/yosefd/rollbook/internal/app/models"
)

// FlexBool accepts a JSON boolean or the strings "true"/"false". The
// attendance clients historically sent both encodings.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch val := v.(type) {
	case bool:
		*b = FlexBool(val)
	case string:
		switch val {
		case "true":
			*b = true
		case "false":
			*b = false
		default:
			return fmt.Errorf("invalid boolean string %q", val)
		}
	default:
		return fmt.Errorf("invalid boolean value %v", v)
	}
	return nil
}

// DailyRecordRequest is one desired daily presence state. Present is a
// pointer so an omitted field is distinguishable from an explicit false;
// a nil Present fails batch validation rather than deleting the row.
type DailyRecordRequest struct {
	StudentID string    `json:"studentId"`
	Date      string    `json:"date"`
	Present   *FlexBool `json:"present"`
}

// DailyRecordResponse is one daily ledger row as returned by the range query
type DailyRecordResponse struct {
	StudentID string `json:"studentId"`
	Present   bool   `json:"present"`
	Date      string `json:"date" example:"2024-05-01"`
}

// SaveDailyResponse reports how many records a daily batch applied
type SaveDailyResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// StudentSessionRequest is one student's slot marks within a session batch
type StudentSessionRequest struct {
	StudentID string                `json:"studentId"`
	Entries   []models.SessionEntry `json:"entries"`
}

// SessionScheduleSlot names one scheduled session of the submitted day
type SessionScheduleSlot struct {
	Weekday models.Weekday  `json:"weekday" binding:"required,schoolday"`
	Slot    models.TimeSlot `json:"slot" binding:"required,timeslot"`
	Course  string          `json:"course"`
}

// SaveSessionRequest is the session (slot) attendance batch
type SaveSessionRequest struct {
	Date       string                  `json:"date" binding:"required"`
	Attendance []StudentSessionRequest `json:"attendance" binding:"required"`
	Schedule   []SessionScheduleSlot   `json:"schedule"`
}

// SaveSessionResponse reports the applied count plus per-slot present counts
type SaveSessionResponse struct {
	Message string         `json:"message"`
	Count   int            `json:"count"`
	Counts  map[string]int `json:"counts,omitempty"`
}

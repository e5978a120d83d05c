package models

import "time"

// School is the root of the org hierarchy
type School struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"school" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

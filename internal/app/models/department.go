package models

import "time"

// Department belongs to exactly one school
type Department struct {
	ID        int64     `json:"id" db:"id"`
	SchoolID  int64     `json:"schoolId" db:"school_id"`
	Name      string    `json:"department" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	School *School `json:"school,omitempty"`
}

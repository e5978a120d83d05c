package models

import "time"

// Course belongs to exactly one department
type Course struct {
	ID           int64     `json:"id" db:"id"`
	DepartmentID int64     `json:"departmentId" db:"department_id"`
	Name         string    `json:"course" db:"name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	Department *Department `json:"department,omitempty"`
}

package models

import "time"

// User defines a staff account based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id"`
	FullName     string    `json:"fullName" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role         Role      `json:"role" db:"role"`
	SchoolID     *int64    `json:"schoolId,omitempty" db:"school_id"`
	DepartmentID *int64    `json:"departmentId,omitempty" db:"department_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	School     *School     `json:"school,omitempty"`
	Department *Department `json:"department,omitempty"`
}

package models

// Student is a roster entry. StudentID is the business identifier used as
// the attendance key; it is distinct from the storage ID. Department and
// school are optional, a student may be unaffiliated.
type Student struct {
	ID           int64          `json:"id" db:"id"`
	StudentID    string         `json:"studentId" db:"student_id"`
	FullName     string         `json:"fullName" db:"full_name"`
	Email        string         `json:"email" db:"email"`
	Phone        string         `json:"phone" db:"phone"`
	Year         EnrollmentYear `json:"year" db:"year"`
	Block        string         `json:"block" db:"block"`
	Dorm         string         `json:"dorm" db:"dorm"`
	DepartmentID *int64         `json:"departmentId,omitempty" db:"department_id"`
	SchoolID     *int64         `json:"schoolId,omitempty" db:"school_id"`

	Department *Department `json:"department,omitempty"`
	School     *School     `json:"school,omitempty"`
}

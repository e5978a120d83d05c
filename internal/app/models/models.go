package models

// Role defines a staff account role
type Role string

const (
	RoleDepHead Role = "dep-head"
	RoleTeacher Role = "teacher"
	RoleProctor Role = "procter"

	// RoleAdmin is the bootstrap system administrator. It is never stored
	// in the users table; it only appears in token claims.
	RoleAdmin Role = "system admin"
)

// IsValid reports whether the role is one of the storable staff roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleDepHead, RoleTeacher, RoleProctor:
		return true
	}
	return false
}

// EnrollmentYear is a student's year of study
type EnrollmentYear string

const (
	Year1 EnrollmentYear = "1st"
	Year2 EnrollmentYear = "2nd"
	Year3 EnrollmentYear = "3rd"
	Year4 EnrollmentYear = "4th"
	Year5 EnrollmentYear = "5th"
	Year6 EnrollmentYear = "6th"
)

// IsValid reports whether the enrollment year is one of the fixed set.
func (y EnrollmentYear) IsValid() bool {
	switch y {
	case Year1, Year2, Year3, Year4, Year5, Year6:
		return true
	}
	return false
}

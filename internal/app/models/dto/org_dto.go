package dto

// CreateSchoolRequest creates a school
type CreateSchoolRequest struct {
	School string `json:"school" binding:"required"`
}

// CreateDepartmentRequest creates a department under a school
type CreateDepartmentRequest struct {
	Department string `json:"department" binding:"required"`
	SchoolID   int64  `json:"schoolId" binding:"required"`
}

// CreateCourseRequest creates a course under a department
type CreateCourseRequest struct {
	Course       string `json:"course" binding:"required"`
	DepartmentID int64  `json:"departmentId" binding:"required"`
}

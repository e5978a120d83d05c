package dto

import "github.com/yosefd/rollbook/internal/app/models"

// StudentRequest carries student fields for create and update
type StudentRequest struct {
	StudentID    string                `json:"studentId" binding:"required"`
	FullName     string                `json:"fullName" binding:"required"`
	Email        string                `json:"email" binding:"required,email"`
	Phone        string                `json:"phone" binding:"required"`
	Year         models.EnrollmentYear `json:"year" binding:"required,enrollmentyear"`
	Block        string                `json:"block" binding:"required"`
	Dorm         string                `json:"dorm" binding:"required"`
	DepartmentID *int64                `json:"departmentId"`
	SchoolID     *int64                `json:"schoolId"`
}

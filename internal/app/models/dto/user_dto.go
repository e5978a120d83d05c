package dto

import "github.com/yosefd/rollbook/internal/app/models"

// CreateUserRequest registers a staff account
type CreateUserRequest struct {
	FullName     string      `json:"fullName" binding:"required"`
	Email        string      `json:"email" binding:"required,email"`
	Password     string      `json:"password" binding:"required,min=8"`
	Role         models.Role `json:"role" binding:"required,staffrole"`
	SchoolID     *int64      `json:"schoolId"`
	DepartmentID *int64      `json:"departmentId"`
}

// UpdateUserRequest updates a staff account's profile fields
type UpdateUserRequest struct {
	FullName     string      `json:"fullName"`
	Email        string      `json:"email" binding:"omitempty,email"`
	Role         models.Role `json:"role"`
	SchoolID     *int64      `json:"schoolId"`
	DepartmentID *int64      `json:"departmentId"`
}

// UpdatePasswordRequest replaces a staff account's password
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest authenticates a staff account or the bootstrap admin
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the issued token plus the authenticated identity
type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresIn int       `json:"expiresIn"`
	User      LoginUser `json:"user"`
}

// LoginUser is the identity block of a login response
type LoginUser struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	FullName string      `json:"name"`
	Role     models.Role `json:"role"`
}

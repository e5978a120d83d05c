package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/app/models/dto"
	"github.com/yosefd/rollbook/internal/app/repositories"
	"github.com/yosefd/rollbook/internal/pkg/apperrors"
	"github.com/yosefd/rollbook/internal/pkg/dberrors"
)

// StudentService handles roster operations
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
	}
}

// validateStudent checks the fixed-set and required fields. A student's
// department is deliberately not checked against their school; cross-school
// affiliation is allowed.
func validateStudent(req *dto.StudentRequest) error {
	if strings.TrimSpace(req.StudentID) == "" {
		return apperrors.NewValidationError("studentId cannot be empty")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return apperrors.NewValidationError("fullName cannot be empty")
	}
	if !req.Year.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid year %q", req.Year))
	}
	return nil
}

func studentFromRequest(req *dto.StudentRequest) *models.Student {
	return &models.Student{
		StudentID:    strings.TrimSpace(req.StudentID),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		Year:         req.Year,
		Block:        req.Block,
		Dorm:         req.Dorm,
		DepartmentID: req.DepartmentID,
		SchoolID:     req.SchoolID,
	}
}

// CreateStudent adds a student to the roster
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.StudentRequest) (*models.Student, error) {
	if err := validateStudent(req); err != nil {
		return nil, err
	}

	student := studentFromRequest(req)

	exists, err := s.studentRepo.EmailExists(ctx, student.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking student email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrStudentEmailExists
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_id_key") {
			return nil, apperrors.ErrStudentIDAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrStudentEmailExists
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// GetAllStudents retrieves the full roster with affiliations populated
func (s *StudentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// UpdateStudent updates a roster entry by storage ID
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.StudentRequest) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("invalid student ID")
	}
	if err := validateStudent(req); err != nil {
		return nil, err
	}

	student := studentFromRequest(req)
	student.ID = id

	exists, err := s.studentRepo.EmailExists(ctx, student.Email, id)
	if err != nil {
		return nil, fmt.Errorf("error checking student email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrStudentEmailExists
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a roster entry by storage ID
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError("invalid student ID")
	}
	return s.studentRepo.Delete(ctx, id)
}

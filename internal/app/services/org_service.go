package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/pkg/apperrors"
)

// SchoolStore is the persistence contract for schools.
type SchoolStore interface {
	Create(ctx context.Context, school *models.School) error
	GetByID(ctx context.Context, id int64) (*models.School, error)
	GetAll(ctx context.Context) ([]*models.School, error)
}

// DepartmentStore is the persistence contract for departments.
type DepartmentStore interface {
	Create(ctx context.Context, department *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
}

// CourseStore is the persistence contract for courses.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetAll(ctx context.Context) ([]*models.Course, error)
}

// OrgService handles the school / department / course hierarchy. These
// entities are created by explicit admin action and listed; there are no
// update or delete operations for them.
type OrgService struct {
	schools     SchoolStore
	departments DepartmentStore
	courses     CourseStore
}

// NewOrgService creates a new org service instance
func NewOrgService(schools SchoolStore, departments DepartmentStore, courses CourseStore) *OrgService {
	return &OrgService{
		schools:     schools,
		departments: departments,
		courses:     courses,
	}
}

// CreateSchool creates a new school
func (s *OrgService) CreateSchool(ctx context.Context, name string) (*models.School, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("school name cannot be empty")
	}

	school := &models.School{Name: strings.TrimSpace(name)}
	if err := s.schools.Create(ctx, school); err != nil {
		return nil, fmt.Errorf("error creating school: %w", err)
	}

	return school, nil
}

// GetAllSchools retrieves all schools
func (s *OrgService) GetAllSchools(ctx context.Context) ([]*models.School, error) {
	schools, err := s.schools.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving schools: %w", err)
	}
	return schools, nil
}

// CreateDepartment creates a department after checking its school exists.
// The referential check runs synchronously before the insert.
func (s *OrgService) CreateDepartment(ctx context.Context, name string, schoolID int64) (*models.Department, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("department name cannot be empty")
	}
	if schoolID <= 0 {
		return nil, apperrors.NewValidationError("schoolId must be positive")
	}

	school, err := s.schools.GetByID(ctx, schoolID)
	if err != nil {
		return nil, err
	}

	department := &models.Department{
		SchoolID: schoolID,
		Name:     strings.TrimSpace(name),
	}
	if err := s.departments.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	department.School = school
	return department, nil
}

// GetAllDepartments retrieves all departments with schools populated
func (s *OrgService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// CreateCourse creates a course after checking its department exists.
func (s *OrgService) CreateCourse(ctx context.Context, name string, departmentID int64) (*models.Course, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("course name cannot be empty")
	}
	if departmentID <= 0 {
		return nil, apperrors.NewValidationError("departmentId must be positive")
	}

	department, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		DepartmentID: departmentID,
		Name:         strings.TrimSpace(name),
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	course.Department = department
	return course, nil
}

// GetAllCourses retrieves all courses with departments populated
func (s *OrgService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

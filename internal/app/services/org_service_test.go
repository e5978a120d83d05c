package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/pkg/apperrors"
)

// fakeSchoolStore keeps schools in a map keyed by ID.
type fakeSchoolStore struct {
	schools map[int64]*models.School
	nextID  int64
}

func newFakeSchoolStore() *fakeSchoolStore {
	return &fakeSchoolStore{schools: make(map[int64]*models.School), nextID: 1}
}

func (f *fakeSchoolStore) Create(_ context.Context, school *models.School) error {
	school.ID = f.nextID
	f.nextID++
	f.schools[school.ID] = school
	return nil
}

func (f *fakeSchoolStore) GetByID(_ context.Context, id int64) (*models.School, error) {
	school, ok := f.schools[id]
	if !ok {
		return nil, apperrors.ErrSchoolNotFound
	}
	return school, nil
}

func (f *fakeSchoolStore) GetAll(_ context.Context) ([]*models.School, error) {
	out := make([]*models.School, 0, len(f.schools))
	for _, school := range f.schools {
		out = append(out, school)
	}
	return out, nil
}

type fakeDepartmentStore struct {
	departments map[int64]*models.Department
	nextID      int64
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{departments: make(map[int64]*models.Department), nextID: 1}
}

func (f *fakeDepartmentStore) Create(_ context.Context, department *models.Department) error {
	department.ID = f.nextID
	f.nextID++
	f.departments[department.ID] = department
	return nil
}

func (f *fakeDepartmentStore) GetByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := f.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return department, nil
}

func (f *fakeDepartmentStore) GetAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(f.departments))
	for _, department := range f.departments {
		out = append(out, department)
	}
	return out, nil
}

type fakeCourseStore struct {
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course), nextID: 1}
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	course.ID = f.nextID
	f.nextID++
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(f.courses))
	for _, course := range f.courses {
		out = append(out, course)
	}
	return out, nil
}

func newTestOrgService() (*OrgService, *fakeSchoolStore, *fakeDepartmentStore, *fakeCourseStore) {
	schools := newFakeSchoolStore()
	departments := newFakeDepartmentStore()
	courses := newFakeCourseStore()
	return NewOrgService(schools, departments, courses), schools, departments, courses
}

func TestCreateDepartmentMissingSchool(t *testing.T) {
	svc, _, departments, _ := newTestOrgService()

	department, err := svc.CreateDepartment(context.Background(), "Computer Science", 42)

	assert.ErrorIs(t, err, apperrors.ErrSchoolNotFound)
	assert.Nil(t, department)
	assert.Empty(t, departments.departments, "no department row may exist after a failed referential check")
}

func TestCreateCourseMissingDepartment(t *testing.T) {
	svc, _, _, courses := newTestOrgService()

	course, err := svc.CreateCourse(context.Background(), "Algorithms", 42)

	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	assert.Nil(t, course)
	assert.Empty(t, courses.courses, "no course row may exist after a failed referential check")
}

func TestCreateDepartmentPopulatesSchool(t *testing.T) {
	svc, _, _, _ := newTestOrgService()
	ctx := context.Background()

	school, err := svc.CreateSchool(ctx, "Main Campus")
	require.NoError(t, err)

	department, err := svc.CreateDepartment(ctx, "  Computer Science  ", school.ID)
	require.NoError(t, err)

	assert.Equal(t, "Computer Science", department.Name)
	assert.Equal(t, school.ID, department.SchoolID)
	require.NotNil(t, department.School)
	assert.Equal(t, school.Name, department.School.Name)
}

func TestCreateCoursePopulatesDepartment(t *testing.T) {
	svc, _, _, _ := newTestOrgService()
	ctx := context.Background()

	school, err := svc.CreateSchool(ctx, "Main Campus")
	require.NoError(t, err)
	department, err := svc.CreateDepartment(ctx, "Computer Science", school.ID)
	require.NoError(t, err)

	course, err := svc.CreateCourse(ctx, "Algorithms", department.ID)
	require.NoError(t, err)

	assert.Equal(t, department.ID, course.DepartmentID)
	require.NotNil(t, course.Department)
	assert.Equal(t, department.Name, course.Department.Name)
}

func TestOrgServiceValidation(t *testing.T) {
	svc, _, _, _ := newTestOrgService()
	ctx := context.Background()

	_, err := svc.CreateSchool(ctx, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateDepartment(ctx, "", 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateDepartment(ctx, "Computer Science", 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateCourse(ctx, "", 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateCourse(ctx, "Algorithms", -1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

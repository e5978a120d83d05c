package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	SchoolRepository            *SchoolRepository
	DepartmentRepository        *DepartmentRepository
	CourseRepository            *CourseRepository
	StudentRepository           *StudentRepository
	UserRepository              *UserRepository
	DailyAttendanceRepository   *DailyAttendanceRepository
	SessionAttendanceRepository *SessionAttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		SchoolRepository:            NewSchoolRepository(db),
		DepartmentRepository:        NewDepartmentRepository(db),
		CourseRepository:            NewCourseRepository(db),
		StudentRepository:           NewStudentRepository(db),
		UserRepository:              NewUserRepository(db),
		DailyAttendanceRepository:   NewDailyAttendanceRepository(db),
		SessionAttendanceRepository: NewSessionAttendanceRepository(db),
	}
}

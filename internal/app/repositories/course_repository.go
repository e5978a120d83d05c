package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yosefd/rollbook/internal/app/models"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (department_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, course.DepartmentID, course.Name).
		Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetAll retrieves all courses with their department populated
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.department_id, c.name, c.created_at,
		       d.id, d.school_id, d.name, d.created_at
		FROM courses c
		JOIN departments d ON d.id = c.department_id
		ORDER BY c.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		var department models.Department
		if err := rows.Scan(
			&course.ID,
			&course.DepartmentID,
			&course.Name,
			&course.CreatedAt,
			&department.ID,
			&department.SchoolID,
			&department.Name,
			&department.CreatedAt,
		); err != nil {
			return nil, err
		}
		course.Department = &department
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

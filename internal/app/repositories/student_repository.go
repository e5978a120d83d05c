package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `
	st.id, st.student_id, st.full_name, st.email, st.phone, st.year,
	st.block, st.dorm, st.department_id, st.school_id`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.StudentID,
		&student.FullName,
		&student.Email,
		&student.Phone,
		&student.Year,
		&student.Block,
		&student.Dorm,
		&student.DepartmentID,
		&student.SchoolID,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, full_name, email, phone, year, block, dorm, department_id, school_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentID,
		student.FullName,
		student.Email,
		student.Phone,
		student.Year,
		student.Block,
		student.Dorm,
		student.DepartmentID,
		student.SchoolID,
	).Scan(&student.ID)
	if err != nil {
		return err
	}

	return nil
}

// GetByID retrieves a student by storage ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT` + studentColumns + `
		FROM students st
		WHERE st.id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves all students with school and department populated
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT st.id, st.student_id, st.full_name, st.email, st.phone, st.year,
		       st.block, st.dorm, st.department_id, st.school_id,
		       d.id, d.school_id, d.name, d.created_at,
		       s.id, s.name, s.created_at
		FROM students st
		LEFT JOIN departments d ON d.id = st.department_id
		LEFT JOIN schools s ON s.id = st.school_id
		ORDER BY st.id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var deptID, deptSchoolID, schoolID *int64
		var deptName, schoolName *string
		var deptCreatedAt, schoolCreatedAt *time.Time
		if err := rows.Scan(
			&student.ID,
			&student.StudentID,
			&student.FullName,
			&student.Email,
			&student.Phone,
			&student.Year,
			&student.Block,
			&student.Dorm,
			&student.DepartmentID,
			&student.SchoolID,
			&deptID,
			&deptSchoolID,
			&deptName,
			&deptCreatedAt,
			&schoolID,
			&schoolName,
			&schoolCreatedAt,
		); err != nil {
			return nil, err
		}

		if deptID != nil {
			student.Department = &models.Department{
				ID:       *deptID,
				SchoolID: *deptSchoolID,
				Name:     *deptName,
			}
			if deptCreatedAt != nil {
				student.Department.CreatedAt = *deptCreatedAt
			}
		}
		if schoolID != nil {
			student.School = &models.School{
				ID:   *schoolID,
				Name: *schoolName,
			}
			if schoolCreatedAt != nil {
				student.School.CreatedAt = *schoolCreatedAt
			}
		}

		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// EmailExists checks whether a student email is taken, optionally excluding one row
func (r *StudentRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}

	return exists, nil
}

// Update updates an existing student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET student_id = $1, full_name = $2, email = $3, phone = $4, year = $5,
		    block = $6, dorm = $7, department_id = $8, school_id = $9
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.StudentID,
		student.FullName,
		student.Email,
		student.Phone,
		student.Year,
		student.Block,
		student.Dorm,
		student.DepartmentID,
		student.SchoolID,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by storage ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

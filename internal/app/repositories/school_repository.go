package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yosefd/rollbook/internal/app/models"
	"github.com/yosefd/rollbook/internal/pkg/apperrors"
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
	}
}

// Create inserts a new school
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	query := `
		INSERT INTO schools (name)
		VALUES ($1)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, school.Name).Scan(&school.ID, &school.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating school: %w", err)
	}

	return nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	query := `
		SELECT id, name, created_at
		FROM schools
		WHERE id = $1
	`

	var school models.School
	err := r.db.QueryRow(ctx, query, id).Scan(&school.ID, &school.Name, &school.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}

	return &school, nil
}

// GetAll retrieves all schools
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	query := `
		SELECT id, name, created_at
		FROM schools
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		var school models.School
		if err := rows.Scan(&school.ID, &school.Name, &school.CreatedAt); err != nil {
			return nil, err
		}
		schools = append(schools, &school)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schools, nil
}

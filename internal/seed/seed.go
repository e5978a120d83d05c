package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/yosefd/rollbook/internal/app/models"
	appRepos "github.com/yosefd/rollbook/internal/app/repositories"
)

// CreateDefaultData creates the default school and department if they
// don't exist. Errors are collected and logged but never abort startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	schoolRepo := appRepos.NewSchoolRepository(dbPool)
	departmentRepo := appRepos.NewDepartmentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (School/Department)...")
	var finalErr error

	const defaultSchool = "Main Campus"
	const defaultDepartment = "General Studies"

	var schoolID int64
	schools, err := schoolRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing schools for default data")
		return err
	}
	for _, school := range schools {
		if school.Name == defaultSchool {
			schoolID = school.ID
			break
		}
	}

	if schoolID == 0 {
		school := &appModels.School{Name: defaultSchool}
		if err := schoolRepo.Create(ctx, school); err != nil {
			lgr.Error().Err(err).Msg("Error creating default school")
			finalErr = errors.Join(finalErr, err)
		} else {
			schoolID = school.ID
			lgr.Info().Int64("schoolID", schoolID).Msg("Default school created")
		}
	}

	if schoolID > 0 {
		departments, err := departmentRepo.GetAll(ctx)
		if err != nil {
			lgr.Error().Err(err).Msg("Error listing departments for default data")
			return errors.Join(finalErr, err)
		}

		exists := false
		for _, department := range departments {
			if department.SchoolID == schoolID && department.Name == defaultDepartment {
				exists = true
				break
			}
		}

		if !exists {
			department := &appModels.Department{SchoolID: schoolID, Name: defaultDepartment}
			if err := departmentRepo.Create(ctx, department); err != nil {
				lgr.Error().Err(err).Msg("Error creating default department")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Int64("departmentID", department.ID).Msg("Default department created")
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

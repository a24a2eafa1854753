package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/prs/studentmanagement/internal/app/models"
	appRepos "github.com/prs/studentmanagement/internal/app/repositories"
)

// CreateDefaultData creates a demo student and a small course catalog if they
// don't exist. Meant for first startup against an empty database.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(dbPool)
	courseRepo := appRepos.NewCourseRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (demo student/courses)...")
	var finalErr error

	// --- Demo Student --- //
	existing, err := studentRepo.FindByID(ctx, "S1001")
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for demo student")
		finalErr = errors.Join(finalErr, err)
	} else if existing == nil {
		lgr.Info().Msg("Creating demo student...")

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("Student123!"), bcrypt.DefaultCost)
		if err != nil {
			lgr.Error().Err(err).Msg("Error hashing demo student password")
			finalErr = errors.Join(finalErr, err)
		} else {
			demo := &appModels.Student{
				ID:          "S1001",
				FirstName:   "Ada",
				LastName:    "Lovelace",
				Email:       "ada.lovelace@example.edu",
				Password:    string(hashedPassword),
				DateOfBirth: "1999-12-10",
				Year:        1,
			}

			if err := studentRepo.Save(ctx, demo); err != nil {
				lgr.Error().Err(err).Msg("Error creating demo student")
				finalErr = errors.Join(finalErr, err)
			} else {
				lgr.Info().Str("studentID", demo.ID).Msg("Demo student created successfully")
			}
		}
	} else {
		lgr.Info().Msg("Demo student already exists, skipping creation")
	}

	// --- Course Catalog --- //
	instructor := "Dr. Grace Hopper"
	defaultCourses := []*appModels.Course{
		{CourseCode: "CS101", CourseName: "Introduction to Programming", Instructor: &instructor, Credits: 4},
		{CourseCode: "MATH201", CourseName: "Linear Algebra", Credits: 3},
	}

	for _, course := range defaultCourses {
		found, err := courseRepo.FindByCourseCode(ctx, course.CourseCode)
		if err != nil {
			lgr.Error().Err(err).Str("courseCode", course.CourseCode).Msg("Error checking for default course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if found != nil {
			continue
		}

		if err := courseRepo.Save(ctx, course); err != nil {
			lgr.Error().Err(err).Str("courseCode", course.CourseCode).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}

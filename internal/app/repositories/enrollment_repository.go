package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindByStudentIDAndCourseCode retrieves the enrollment for a (student, course)
// pair. Returns (nil, nil) when no row exists.
func (r *EnrollmentRepository) FindByStudentIDAndCourseCode(ctx context.Context, studentID, courseCode string) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_code", "grade", "enrollment_date").
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID, "course_code": courseCode}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get enrollment SQL")
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	enrollment := &models.Enrollment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&enrollment.ID,
		&enrollment.StudentID,
		&enrollment.CourseCode,
		&enrollment.Grade,
		&enrollment.EnrollmentDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Str("studentID", studentID).Str("courseCode", courseCode).Msg("Error scanning enrollment row")
		return nil, fmt.Errorf("error getting enrollment: %w", err)
	}

	return enrollment, nil
}

// FindByStudentID retrieves all enrollments of a student
func (r *EnrollmentRepository) FindByStudentID(ctx context.Context, studentID string) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "course_code", "grade", "enrollment_date").
		From("enrollments").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get enrollments by student SQL")
		return nil, fmt.Errorf("failed to build get enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		enrollment := &models.Enrollment{}
		if err := rows.Scan(
			&enrollment.ID,
			&enrollment.StudentID,
			&enrollment.CourseCode,
			&enrollment.Grade,
			&enrollment.EnrollmentDate,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, enrollment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Save persists an enrollment. New enrollments insert with a conditional update
// on the (student_id, course_code) key, so two concurrent creators for the same
// pair collapse into a single row; existing enrollments update the grade only,
// leaving the enrollment date untouched.
func (r *EnrollmentRepository) Save(ctx context.Context, enrollment *models.Enrollment) error {
	if enrollment.ID != 0 {
		sql, args, err := r.sb.Update("enrollments").
			Set("grade", enrollment.Grade).
			Where(squirrel.Eq{"id": enrollment.ID}).
			ToSql()

		if err != nil {
			logger.Error().Err(err).Msg("Error building update enrollment SQL")
			return fmt.Errorf("failed to build update enrollment query: %w", err)
		}

		if _, err := r.db.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error updating enrollment: %w", err)
		}

		return nil
	}

	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "course_code", "grade", "enrollment_date").
		Values(enrollment.StudentID, enrollment.CourseCode, enrollment.Grade, enrollment.EnrollmentDate).
		Suffix(`ON CONFLICT ON CONSTRAINT enrollments_student_course_key
			DO UPDATE SET grade = EXCLUDED.grade
			RETURNING id, enrollment_date`).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building insert enrollment SQL")
		return fmt.Errorf("failed to build insert enrollment query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&enrollment.ID, &enrollment.EnrollmentDate)
	if err != nil {
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

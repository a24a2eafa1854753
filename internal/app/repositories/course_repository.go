package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
	"github.com/prs/studentmanagement/internal/pkg/dberrors"
	"github.com/prs/studentmanagement/internal/pkg/helpers"
	"github.com/prs/studentmanagement/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Save persists a new course. The course code is caller-supplied and unique.
func (r *CourseRepository) Save(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_code", "course_name", "instructor", "credits").
		Values(course.CourseCode, course.CourseName, helpers.GetNullString(course.Instructor), course.Credits).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building insert course SQL")
		return fmt.Errorf("failed to build insert course query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_pkey") {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// FindByCourseCode retrieves a course by its code. Returns (nil, nil) when no row exists.
func (r *CourseRepository) FindByCourseCode(ctx context.Context, courseCode string) (*models.Course, error) {
	sql, args, err := r.sb.Select("course_code", "course_name", "instructor", "credits").
		From("courses").
		Where(squirrel.Eq{"course_code": courseCode}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get course by code SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.CourseCode, &course.CourseName, &course.Instructor, &course.Credits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Str("courseCode", courseCode).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by code: %w", err)
	}

	return course, nil
}

// FindAll retrieves all courses
func (r *CourseRepository) FindAll(ctx context.Context) ([]*models.Course, error) {
	sql, args, err := r.sb.Select("course_code", "course_name", "instructor", "credits").
		From("courses").
		OrderBy("course_code ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all courses SQL")
		return nil, fmt.Errorf("failed to build get all courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		if err := rows.Scan(&course.CourseCode, &course.CourseName, &course.Instructor, &course.Credits); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Delete removes a course by code
func (r *CourseRepository) Delete(ctx context.Context, courseCode string) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"course_code": courseCode}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
)

// CourseService handles course catalog operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	DeleteCourse(ctx context.Context, courseCode string) error
}

type courseService struct {
	courseStore CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore CourseStore) CourseService {
	return &courseService{
		courseStore: courseStore,
	}
}

// CreateCourse persists a course as given. The course code must be supplied by
// the caller; uniqueness is enforced at the store.
func (s *courseService) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if course == nil || strings.TrimSpace(course.CourseCode) == "" {
		return nil, fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.courseStore.Save(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// GetAllCourses retrieves all courses
func (s *courseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, nil
}

// DeleteCourse removes a course by code. Unlike student deletion this is not
// idempotent: deleting an absent course fails with not found.
func (s *courseService) DeleteCourse(ctx context.Context, courseCode string) error {
	course, err := s.courseStore.FindByCourseCode(ctx, courseCode)
	if err != nil {
		return fmt.Errorf("error retrieving course: %w", err)
	}

	if course == nil {
		return apperrors.NewCustomError(apperrors.ErrCourseNotFound, "Course not found: "+courseCode)
	}

	if err := s.courseStore.Delete(ctx, courseCode); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}

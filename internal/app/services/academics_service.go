package services

import (
	"context"
	"fmt"
	"time"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
)

// AcademicsService records grades, cross-referencing students and courses
type AcademicsService interface {
	UpdateGrade(ctx context.Context, studentID, courseCode, newGrade string) (*models.Enrollment, error)
}

type academicsService struct {
	enrollmentStore EnrollmentStore
	studentStore    StudentStore
	courseStore     CourseStore
}

// NewAcademicsService creates a new academics service instance
func NewAcademicsService(enrollmentStore EnrollmentStore, studentStore StudentStore, courseStore CourseStore) AcademicsService {
	return &academicsService{
		enrollmentStore: enrollmentStore,
		studentStore:    studentStore,
		courseStore:     courseStore,
	}
}

// UpdateGrade finds the enrollment for a (student, course) pair and updates its
// grade. When no enrollment exists yet the grade recording doubles as an
// enrollment: the pair is resolved against the student and course stores and a
// new enrollment is created dated now. Callers never need to pre-check
// enrollment existence.
func (s *academicsService) UpdateGrade(ctx context.Context, studentID, courseCode, newGrade string) (*models.Enrollment, error) {
	enrollment, err := s.enrollmentStore.FindByStudentIDAndCourseCode(ctx, studentID, courseCode)
	if err != nil {
		return nil, fmt.Errorf("error looking up enrollment: %w", err)
	}

	if enrollment != nil {
		enrollment.Grade = newGrade
		if err := s.enrollmentStore.Save(ctx, enrollment); err != nil {
			return nil, fmt.Errorf("error updating grade: %w", err)
		}
		return enrollment, nil
	}

	return s.createNewEnrollment(ctx, studentID, courseCode, newGrade)
}

// createNewEnrollment handles the implicit enrollment path. Both referenced
// entities must exist before anything is written, so a missing student or
// course leaves no partial state behind.
func (s *academicsService) createNewEnrollment(ctx context.Context, studentID, courseCode, grade string) (*models.Enrollment, error) {
	student, err := s.studentStore.FindByID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found for ID: "+studentID)
	}

	course, err := s.courseStore.FindByCourseCode(ctx, courseCode)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrCourseNotFound, "Course not found for code: "+courseCode)
	}

	enrollment := &models.Enrollment{
		StudentID:      student.ID,
		CourseCode:     course.CourseCode,
		Grade:          grade,
		EnrollmentDate: time.Now(),
	}

	if err := s.enrollmentStore.Save(ctx, enrollment); err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}

	return enrollment, nil
}

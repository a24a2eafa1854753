package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
)

func TestUpdateGrade(t *testing.T) {
	ctx := context.Background()

	t.Run("updates existing enrollment", func(t *testing.T) {
		enrolled := &models.Enrollment{
			StudentID:      "S1001",
			CourseCode:     "CS101",
			Grade:          "C",
			EnrollmentDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		}
		enrollments := newFakeEnrollmentStore(enrolled)
		svc := NewAcademicsService(enrollments, newFakeStudentStore(), newFakeCourseStore())

		result, err := svc.UpdateGrade(ctx, "S1001", "CS101", "A")
		require.NoError(t, err)
		assert.Equal(t, "A", result.Grade)
		// The original enrollment date survives a grade change
		assert.Equal(t, enrolled.EnrollmentDate, result.EnrollmentDate)
		assert.Len(t, enrollments.enrollments, 1)
	})

	t.Run("enrolls the student when no enrollment exists", func(t *testing.T) {
		enrollments := newFakeEnrollmentStore()
		students := newFakeStudentStore(&models.Student{ID: "S1001", Email: "ada@school.edu"})
		courses := newFakeCourseStore(&models.Course{CourseCode: "CS101", CourseName: "Intro"})
		svc := NewAcademicsService(enrollments, students, courses)

		before := time.Now()
		result, err := svc.UpdateGrade(ctx, "S1001", "CS101", "B+")
		require.NoError(t, err)

		assert.Equal(t, "S1001", result.StudentID)
		assert.Equal(t, "CS101", result.CourseCode)
		assert.Equal(t, "B+", result.Grade)
		assert.False(t, result.EnrollmentDate.Before(before))
		assert.Len(t, enrollments.enrollments, 1)
	})

	t.Run("unknown student leaves no enrollment behind", func(t *testing.T) {
		enrollments := newFakeEnrollmentStore()
		courses := newFakeCourseStore(&models.Course{CourseCode: "CS101"})
		svc := NewAcademicsService(enrollments, newFakeStudentStore(), courses)

		_, err := svc.UpdateGrade(ctx, "S9999", "CS101", "A")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		assert.Equal(t, "Student not found for ID: S9999", err.Error())
		assert.Empty(t, enrollments.enrollments)
	})

	t.Run("unknown course leaves no enrollment behind", func(t *testing.T) {
		enrollments := newFakeEnrollmentStore()
		students := newFakeStudentStore(&models.Student{ID: "S1001", Email: "ada@school.edu"})
		svc := NewAcademicsService(enrollments, students, newFakeCourseStore())

		_, err := svc.UpdateGrade(ctx, "S1001", "XX999", "A")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
		assert.Equal(t, "Course not found for code: XX999", err.Error())
		assert.Empty(t, enrollments.enrollments)
	})

	t.Run("repeated upsert keeps one enrollment per pair", func(t *testing.T) {
		enrollments := newFakeEnrollmentStore()
		students := newFakeStudentStore(&models.Student{ID: "S1001", Email: "ada@school.edu"})
		courses := newFakeCourseStore(&models.Course{CourseCode: "CS101"})
		svc := NewAcademicsService(enrollments, students, courses)

		_, err := svc.UpdateGrade(ctx, "S1001", "CS101", "C")
		require.NoError(t, err)
		result, err := svc.UpdateGrade(ctx, "S1001", "CS101", "A")
		require.NoError(t, err)

		assert.Equal(t, "A", result.Grade)
		assert.Len(t, enrollments.enrollments, 1)
	})
}

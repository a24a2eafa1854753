package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
)

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the course", func(t *testing.T) {
		store := newFakeCourseStore()
		svc := NewCourseService(store)

		course, err := svc.CreateCourse(ctx, &models.Course{CourseCode: "CS101", CourseName: "Intro", Credits: 4})
		require.NoError(t, err)
		assert.Equal(t, "CS101", course.CourseCode)
		assert.Contains(t, store.courses, "CS101")
	})

	t.Run("rejects a blank course code", func(t *testing.T) {
		svc := NewCourseService(newFakeCourseStore())

		_, err := svc.CreateCourse(ctx, &models.Course{CourseCode: "  ", CourseName: "Intro"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestDeleteCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("removes existing course", func(t *testing.T) {
		store := newFakeCourseStore(&models.Course{CourseCode: "CS101"})
		svc := NewCourseService(store)

		require.NoError(t, svc.DeleteCourse(ctx, "CS101"))
		assert.NotContains(t, store.courses, "CS101")
	})

	t.Run("deleting an unknown course fails", func(t *testing.T) {
		svc := NewCourseService(newFakeCourseStore())

		err := svc.DeleteCourse(ctx, "XX999")
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
		assert.Equal(t, "Course not found: XX999", err.Error())
	})
}

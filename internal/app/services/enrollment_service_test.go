package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prs/studentmanagement/internal/app/models"
)

func TestGetEnrollmentsByStudentID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the student's enrollments", func(t *testing.T) {
		store := newFakeEnrollmentStore(
			&models.Enrollment{StudentID: "S1001", CourseCode: "CS101", Grade: "A"},
			&models.Enrollment{StudentID: "S1001", CourseCode: "MATH201", Grade: "B"},
			&models.Enrollment{StudentID: "S2001", CourseCode: "CS101", Grade: "C"},
		)
		svc := NewEnrollmentService(store)

		enrollments, err := svc.GetEnrollmentsByStudentID(ctx, "S1001")
		require.NoError(t, err)
		assert.Len(t, enrollments, 2)
	})

	t.Run("student without enrollments yields an empty list", func(t *testing.T) {
		svc := NewEnrollmentService(newFakeEnrollmentStore())

		enrollments, err := svc.GetEnrollmentsByStudentID(ctx, "S9999")
		require.NoError(t, err)
		assert.NotNil(t, enrollments)
		assert.Empty(t, enrollments)
	})
}

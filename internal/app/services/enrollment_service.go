package services

import (
	"context"
	"fmt"

	"github.com/prs/studentmanagement/internal/app/models"
)

// EnrollmentService handles enrollment queries
type EnrollmentService interface {
	GetEnrollmentsByStudentID(ctx context.Context, studentID string) ([]*models.Enrollment, error)
}

type enrollmentService struct {
	enrollmentStore EnrollmentStore
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentStore EnrollmentStore) EnrollmentService {
	return &enrollmentService{
		enrollmentStore: enrollmentStore,
	}
}

// GetEnrollmentsByStudentID retrieves all enrollments of a student. Pure read;
// a student without enrollments yields an empty list.
func (s *enrollmentService) GetEnrollmentsByStudentID(ctx context.Context, studentID string) ([]*models.Enrollment, error) {
	enrollments, err := s.enrollmentStore.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrollments: %w", err)
	}

	if enrollments == nil {
		enrollments = []*models.Enrollment{}
	}

	return enrollments, nil
}

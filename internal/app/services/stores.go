package services

import (
	"context"

	"github.com/prs/studentmanagement/internal/app/models"
)

// Store contracts consumed by the services. Implemented by the pgx
// repositories; tests substitute in-memory fakes. Finder methods return
// (nil, nil) when no row exists so that absence stays distinguishable from
// store failures.

// StudentStore provides access to persisted students
type StudentStore interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
	FindByEmail(ctx context.Context, email string) (*models.Student, error)
	FindAll(ctx context.Context) ([]*models.Student, error)
	Save(ctx context.Context, student *models.Student) error
	DeleteByID(ctx context.Context, id string) error
}

// CourseStore provides access to persisted courses
type CourseStore interface {
	FindByCourseCode(ctx context.Context, courseCode string) (*models.Course, error)
	FindAll(ctx context.Context) ([]*models.Course, error)
	Save(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, courseCode string) error
}

// EnrollmentStore provides access to persisted enrollments
type EnrollmentStore interface {
	FindByStudentIDAndCourseCode(ctx context.Context, studentID, courseCode string) (*models.Enrollment, error)
	FindByStudentID(ctx context.Context, studentID string) ([]*models.Enrollment, error)
	Save(ctx context.Context, enrollment *models.Enrollment) error
}

// FeeStore provides access to persisted fee records
type FeeStore interface {
	FindByID(ctx context.Context, feeID int64) (*models.Fee, error)
	FindByStudentID(ctx context.Context, studentID string) ([]*models.Fee, error)
	Save(ctx context.Context, fee *models.Fee) error
}

// ParentChildrenStore provides read access to parent-child links
type ParentChildrenStore interface {
	FindByParentID(ctx context.Context, parentID string) ([]*models.ParentChildren, error)
}

// PasswordHasher is the one-way password hashing collaborator
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hashedPassword string) bool
}

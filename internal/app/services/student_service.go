package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
	"github.com/prs/studentmanagement/internal/pkg/validation"
)

// StudentService handles student CRUD and credential authentication
type StudentService interface {
	Authenticate(ctx context.Context, email, password string) (*models.Student, bool, error)
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, updated *models.Student) (*models.Student, error)
	DeleteStudent(ctx context.Context, id string) error
}

type studentService struct {
	studentStore StudentStore
	hasher       PasswordHasher
}

// NewStudentService creates a new student service instance
func NewStudentService(studentStore StudentStore, hasher PasswordHasher) StudentService {
	return &studentService{
		studentStore: studentStore,
		hasher:       hasher,
	}
}

// Authenticate looks up a student by login email and verifies the password
// against the stored hash. Failed authentication is absence, not an error:
// unknown email, empty stored hash and password mismatch all return the same
// (nil, false) so the caller cannot tell which case occurred.
func (s *studentService) Authenticate(ctx context.Context, email, password string) (*models.Student, bool, error) {
	student, err := s.studentStore.FindByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("error looking up student by email: %w", err)
	}

	if student == nil || student.Password == "" {
		return nil, false, nil
	}

	if !s.hasher.Verify(password, student.Password) {
		return nil, false, nil
	}

	return student, true, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentService) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentStore.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if student == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found with ID: "+id)
	}

	return student, nil
}

// GetAllStudents retrieves all students
func (s *studentService) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.studentStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}

	return students, nil
}

// validateStudent validates identifying fields before persisting
func (s *studentService) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidStudentID(student.ID) {
		return fmt.Errorf("%w: invalid student ID format", apperrors.ErrValidationFailed)
	}

	if !validation.IsValidEmail(student.Email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateStudent persists a new student. A non-empty password is replaced with
// its one-way hash before the record is stored.
func (s *studentService) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := s.validateStudent(student); err != nil {
		return nil, err
	}

	if strings.TrimSpace(student.Password) != "" {
		hashed, err := s.hasher.Hash(student.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		student.Password = hashed
	}

	if err := s.studentStore.Save(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// UpdateStudent overwrites every field of an existing student with the supplied
// values. The password is the one exception: it is re-hashed and replaced only
// when a non-empty value is supplied, otherwise the stored hash is preserved.
func (s *studentService) UpdateStudent(ctx context.Context, id string, updated *models.Student) (*models.Student, error) {
	existing, err := s.studentStore.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	if existing == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound, "Student not found with ID: "+id)
	}

	existing.FirstName = updated.FirstName
	existing.LastName = updated.LastName
	existing.Major = updated.Major
	existing.Grade = updated.Grade
	existing.Email = updated.Email

	if strings.TrimSpace(updated.Password) != "" {
		hashed, err := s.hasher.Hash(updated.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
		existing.Password = hashed
	}

	existing.PhoneNumber = updated.PhoneNumber
	existing.DateOfBirth = updated.DateOfBirth
	existing.Address = updated.Address
	existing.Program = updated.Program
	existing.Year = updated.Year
	existing.Advisor = updated.Advisor

	if err := s.studentStore.Save(ctx, existing); err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return existing, nil
}

// DeleteStudent removes a student by ID. Deleting an absent student is not an
// error, so the operation is idempotent.
func (s *studentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentStore.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}

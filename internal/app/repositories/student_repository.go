package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
	"github.com/prs/studentmanagement/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

const studentColumns = `id, first_name, last_name, email, password, major, grade,
		phone_number, date_of_birth, address, program, year, advisor`

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.Password,
		&student.Major,
		&student.Grade,
		&student.PhoneNumber,
		&student.DateOfBirth,
		&student.Address,
		&student.Program,
		&student.Year,
		&student.Advisor,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// FindByID retrieves a student by ID. Returns (nil, nil) when no row exists.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE id = $1`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// FindByEmail retrieves a student by login email. Returns (nil, nil) when no row exists.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students WHERE email = $1`, studentColumns)

	student, err := scanStudent(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student by email: %w", err)
	}

	return student, nil
}

// FindAll retrieves all students
func (r *StudentRepository) FindAll(ctx context.Context) ([]*models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM students ORDER BY id`, studentColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Save persists a student, inserting or fully replacing the row with the same ID.
func (r *StudentRepository) Save(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (id, first_name, last_name, email, password, major, grade,
			phone_number, date_of_birth, address, program, year, advisor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			email = EXCLUDED.email,
			password = EXCLUDED.password,
			major = EXCLUDED.major,
			grade = EXCLUDED.grade,
			phone_number = EXCLUDED.phone_number,
			date_of_birth = EXCLUDED.date_of_birth,
			address = EXCLUDED.address,
			program = EXCLUDED.program,
			year = EXCLUDED.year,
			advisor = EXCLUDED.advisor
	`

	_, err := r.db.Exec(ctx, query,
		student.ID,
		student.FirstName,
		student.LastName,
		student.Email,
		student.Password,
		student.Major,
		student.Grade,
		student.PhoneNumber,
		student.DateOfBirth,
		student.Address,
		student.Program,
		student.Year,
		student.Advisor,
	)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error saving student: %w", err)
	}

	return nil
}

// DeleteByID removes a student by ID. Deleting an absent student is not an error.
func (r *StudentRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	return nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prs/studentmanagement/internal/app/models"
)

// FeeRepository handles fee database operations
type FeeRepository struct {
	db *pgxpool.Pool
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
	}
}

// FindByID retrieves a fee record by ID. Returns (nil, nil) when no row exists.
func (r *FeeRepository) FindByID(ctx context.Context, feeID int64) (*models.Fee, error) {
	query := `
		SELECT fee_id, student_id, amount, description, status, due_date
		FROM fees
		WHERE fee_id = $1
	`

	var fee models.Fee
	err := r.db.QueryRow(ctx, query, feeID).Scan(
		&fee.FeeID,
		&fee.StudentID,
		&fee.Amount,
		&fee.Description,
		&fee.Status,
		&fee.DueDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	return &fee, nil
}

// FindByStudentID retrieves all fee records of a student
func (r *FeeRepository) FindByStudentID(ctx context.Context, studentID string) ([]*models.Fee, error) {
	query := `
		SELECT fee_id, student_id, amount, description, status, due_date
		FROM fees
		WHERE student_id = $1
		ORDER BY fee_id
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fees []*models.Fee
	for rows.Next() {
		var fee models.Fee
		if err := rows.Scan(
			&fee.FeeID,
			&fee.StudentID,
			&fee.Amount,
			&fee.Description,
			&fee.Status,
			&fee.DueDate,
		); err != nil {
			return nil, err
		}
		fees = append(fees, &fee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}

// Save persists a fee record. A zero FeeID inserts a new row and fills in the
// store-assigned ID; otherwise the existing row is updated.
func (r *FeeRepository) Save(ctx context.Context, fee *models.Fee) error {
	if fee.FeeID == 0 {
		if fee.Status == "" {
			fee.Status = models.FeeStatusPending
		}

		query := `
			INSERT INTO fees (student_id, amount, description, status, due_date)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING fee_id
		`

		err := r.db.QueryRow(ctx, query,
			fee.StudentID, fee.Amount, fee.Description, fee.Status, fee.DueDate,
		).Scan(&fee.FeeID)
		if err != nil {
			return fmt.Errorf("error creating fee: %w", err)
		}

		return nil
	}

	query := `
		UPDATE fees
		SET student_id = $1, amount = $2, description = $3, status = $4, due_date = $5
		WHERE fee_id = $6
	`

	_, err := r.db.Exec(ctx, query,
		fee.StudentID, fee.Amount, fee.Description, fee.Status, fee.DueDate, fee.FeeID,
	)
	if err != nil {
		return fmt.Errorf("error updating fee: %w", err)
	}

	return nil
}

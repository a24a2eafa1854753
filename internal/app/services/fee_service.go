package services

import (
	"context"
	"fmt"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
)

// FeeService handles fee tracking and payment recording
type FeeService interface {
	CreateFee(ctx context.Context, fee *models.Fee) (*models.Fee, error)
	GetFeesByStudentID(ctx context.Context, studentID string) ([]*models.Fee, error)
	RecordPayment(ctx context.Context, feeID int64) (*models.Fee, error)
}

type feeService struct {
	feeStore FeeStore
}

// NewFeeService creates a new fee service instance
func NewFeeService(feeStore FeeStore) FeeService {
	return &feeService{
		feeStore: feeStore,
	}
}

// CreateFee persists a new fee record (invoice) as given
func (s *feeService) CreateFee(ctx context.Context, fee *models.Fee) (*models.Fee, error) {
	if fee == nil || fee.StudentID == "" {
		return nil, fmt.Errorf("%w: student ID cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.feeStore.Save(ctx, fee); err != nil {
		return nil, fmt.Errorf("error creating fee: %w", err)
	}

	return fee, nil
}

// GetFeesByStudentID retrieves all fee records of a student
func (s *feeService) GetFeesByStudentID(ctx context.Context, studentID string) ([]*models.Fee, error) {
	fees, err := s.feeStore.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving fees: %w", err)
	}

	if fees == nil {
		fees = []*models.Fee{}
	}

	return fees, nil
}

// RecordPayment marks a fee record as paid. The transition is one-directional:
// there is no operation back to unpaid, and re-recording a payment leaves the
// record paid.
func (s *feeService) RecordPayment(ctx context.Context, feeID int64) (*models.Fee, error) {
	fee, err := s.feeStore.FindByID(ctx, feeID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving fee: %w", err)
	}

	if fee == nil {
		return nil, apperrors.NewCustomError(apperrors.ErrFeeNotFound, fmt.Sprintf("Fee record not found with ID: %d", feeID))
	}

	fee.Status = models.FeeStatusPaid
	if err := s.feeStore.Save(ctx, fee); err != nil {
		return nil, fmt.Errorf("error recording payment: %w", err)
	}

	return fee, nil
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prs/studentmanagement/internal/app/models"
	"github.com/prs/studentmanagement/internal/pkg/apperrors"
)

func TestCreateFee(t *testing.T) {
	ctx := context.Background()

	t.Run("persists with pending default", func(t *testing.T) {
		store := newFakeFeeStore()
		svc := NewFeeService(store)

		fee, err := svc.CreateFee(ctx, &models.Fee{StudentID: "S1001", Amount: 1250.50, Description: "Spring tuition"})
		require.NoError(t, err)
		assert.NotZero(t, fee.FeeID)
		assert.Equal(t, models.FeeStatusPending, fee.Status)
	})

	t.Run("rejects a missing student ID", func(t *testing.T) {
		svc := NewFeeService(newFakeFeeStore())

		_, err := svc.CreateFee(ctx, &models.Fee{Amount: 100})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	})
}

func TestGetFeesByStudentID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the student's fees", func(t *testing.T) {
		store := newFakeFeeStore(
			&models.Fee{StudentID: "S1001", Amount: 100, Status: models.FeeStatusPending},
			&models.Fee{StudentID: "S2001", Amount: 200, Status: models.FeeStatusPending},
		)
		svc := NewFeeService(store)

		fees, err := svc.GetFeesByStudentID(ctx, "S1001")
		require.NoError(t, err)
		require.Len(t, fees, 1)
		assert.Equal(t, 100.0, fees[0].Amount)
	})

	t.Run("student without fees yields an empty list", func(t *testing.T) {
		svc := NewFeeService(newFakeFeeStore())

		fees, err := svc.GetFeesByStudentID(ctx, "S1001")
		require.NoError(t, err)
		assert.NotNil(t, fees)
		assert.Empty(t, fees)
	})
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("marks a pending fee as paid", func(t *testing.T) {
		store := newFakeFeeStore(&models.Fee{StudentID: "S1001", Amount: 100, Status: models.FeeStatusPending})
		svc := NewFeeService(store)

		fee, err := svc.RecordPayment(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.FeeStatusPaid, fee.Status)
	})

	t.Run("recording a payment twice leaves the fee paid", func(t *testing.T) {
		store := newFakeFeeStore(&models.Fee{StudentID: "S1001", Amount: 100, Status: models.FeeStatusPending})
		svc := NewFeeService(store)

		_, err := svc.RecordPayment(ctx, 1)
		require.NoError(t, err)
		fee, err := svc.RecordPayment(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, models.FeeStatusPaid, fee.Status)
	})

	t.Run("unknown fee", func(t *testing.T) {
		svc := NewFeeService(newFakeFeeStore())

		_, err := svc.RecordPayment(ctx, 42)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrFeeNotFound)
		assert.Equal(t, "Fee record not found with ID: 42", err.Error())
	})
}

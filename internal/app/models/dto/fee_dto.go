package dto

import "time"

// CreateFeeRequest represents the payload for creating a fee record.
// Status is caller-supplied; the store defaults it to Pending when omitted.
type CreateFeeRequest struct {
	StudentID   string     `json:"studentId" binding:"required"`
	Amount      float64    `json:"amount" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate"`
}

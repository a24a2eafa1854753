package models

import "time"

// Fee status values. Payment recording is one-directional: once a fee is
// marked paid there is no transition back.
const (
	FeeStatusPending = "Pending"
	FeeStatusPaid    = "Paid"
)

// Fee represents a fee record (invoice) belonging to one student.
type Fee struct {
	FeeID       int64      `json:"feeId" db:"fee_id"`
	StudentID   string     `json:"studentId" db:"student_id" example:"S1001"`
	Amount      float64    `json:"amount" db:"amount" example:"1250.50"`
	Description string     `json:"description" db:"description" example:"Spring tuition"`
	Status      string     `json:"status" db:"status" example:"Pending"`
	DueDate     *time.Time `json:"dueDate,omitempty" db:"due_date"` // Nullable
}

package dto

import "github.com/prs/studentmanagement/internal/app/models"

// StudentSummary is the minimal student projection returned for family views.
// Built on demand, never persisted.
type StudentSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// NewStudentSummary builds a summary for a linked child. The ID comes from the
// link row rather than the student record, matching what the family view shows.
func NewStudentSummary(childID string, student *models.Student) StudentSummary {
	return StudentSummary{
		ID:        childID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
	}
}

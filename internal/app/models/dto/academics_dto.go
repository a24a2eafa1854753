package dto

// UpdateGradeRequest represents the payload of the grade upsert. When no
// enrollment exists for the pair yet, recording a grade enrolls the student.
type UpdateGradeRequest struct {
	StudentID  string `json:"studentId" binding:"required"`
	CourseCode string `json:"courseCode" binding:"required"`
	Grade      string `json:"grade" binding:"required"`
}

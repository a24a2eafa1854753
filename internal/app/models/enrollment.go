package models

import "time"

// Enrollment links a student to a course and owns the grade for that pair.
// Logical identity is (StudentID, CourseCode); ID is store-assigned. The store
// enforces at most one row per pair.
type Enrollment struct {
	ID             int64     `json:"id" db:"id"`
	StudentID      string    `json:"studentId" db:"student_id" example:"S1001"`
	CourseCode     string    `json:"courseCode" db:"course_code" example:"CS101"`
	Grade          string    `json:"grade" db:"grade" example:"A"`
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`
}

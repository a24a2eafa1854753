package models

// Course represents a course offered by the school.
// CourseCode is the unique, caller-supplied identifier.
type Course struct {
	CourseCode string  `json:"courseCode" db:"course_code" example:"CS101"`
	CourseName string  `json:"courseName" db:"course_name" example:"Introduction to Programming"`
	Instructor *string `json:"instructor,omitempty" db:"instructor"` // Nullable
	Credits    int     `json:"credits" db:"credits" example:"4"`
}

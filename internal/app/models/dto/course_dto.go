package dto

import "github.com/prs/studentmanagement/internal/app/models"

// CreateCourseRequest represents the payload for creating a course
type CreateCourseRequest struct {
	CourseCode string  `json:"courseCode" binding:"required" example:"CS101"`
	CourseName string  `json:"courseName" binding:"required" example:"Introduction to Programming"`
	Instructor *string `json:"instructor"`
	Credits    int     `json:"credits"`
}

// ToModel converts the request to a course model
func (r *CreateCourseRequest) ToModel() *models.Course {
	return &models.Course{
		CourseCode: r.CourseCode,
		CourseName: r.CourseName,
		Instructor: r.Instructor,
		Credits:    r.Credits,
	}
}

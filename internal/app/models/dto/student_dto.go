package dto

import "github.com/prs/studentmanagement/internal/app/models"

// CreateStudentRequest represents the payload for creating a student.
// The ID is externally assigned; the password is optional and stored hashed.
type CreateStudentRequest struct {
	ID          string `json:"id" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password"`
	Major       string `json:"major"`
	Grade       string `json:"grade"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	Program     string `json:"program"`
	Year        int    `json:"year"`
	Advisor     string `json:"advisor"`
}

// UpdateStudentRequest represents the payload for a full-field student update.
// Every field overwrites the stored value; an empty password keeps the
// existing hash.
type UpdateStudentRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password"`
	Major       string `json:"major"`
	Grade       string `json:"grade"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	Program     string `json:"program"`
	Year        int    `json:"year"`
	Advisor     string `json:"advisor"`
}

// StudentResponse represents student information returned by the API.
// The password hash is never exposed.
type StudentResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Major       string `json:"major"`
	Grade       string `json:"grade"`
	PhoneNumber string `json:"phoneNumber"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	Program     string `json:"program"`
	Year        int    `json:"year"`
	Advisor     string `json:"advisor"`
}

// ToModel converts the create request into a student model
func (r *CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		ID:          r.ID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		Major:       r.Major,
		Grade:       r.Grade,
		PhoneNumber: r.PhoneNumber,
		DateOfBirth: r.DateOfBirth,
		Address:     r.Address,
		Program:     r.Program,
		Year:        r.Year,
		Advisor:     r.Advisor,
	}
}

// ToModel converts the update request into a student model. The ID comes from
// the URL, not the payload.
func (r *UpdateStudentRequest) ToModel(id string) *models.Student {
	return &models.Student{
		ID:          id,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		Password:    r.Password,
		Major:       r.Major,
		Grade:       r.Grade,
		PhoneNumber: r.PhoneNumber,
		DateOfBirth: r.DateOfBirth,
		Address:     r.Address,
		Program:     r.Program,
		Year:        r.Year,
		Advisor:     r.Advisor,
	}
}

// NewStudentResponse maps a student model into its API representation
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		ID:          student.ID,
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		Email:       student.Email,
		Major:       student.Major,
		Grade:       student.Grade,
		PhoneNumber: student.PhoneNumber,
		DateOfBirth: student.DateOfBirth,
		Address:     student.Address,
		Program:     student.Program,
		Year:        student.Year,
		Advisor:     student.Advisor,
	}
}

// NewStudentResponseList maps a slice of student models
func NewStudentResponseList(students []*models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}
	return responses
}

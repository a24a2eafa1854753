package models

// Student defines the student model based on the 'students' table.
// The ID is externally assigned (student number), not generated by the store.
type Student struct {
	ID          string `json:"id" db:"id" example:"S1001"`
	FirstName   string `json:"firstName" db:"first_name" example:"John"`
	LastName    string `json:"lastName" db:"last_name" example:"Doe"`
	Email       string `json:"email" db:"email" example:"john.doe@school.edu"` // Used as the login username
	Password    string `json:"-" db:"password"`                               // Bcrypt hash, never the plaintext
	Major       string `json:"major" db:"major" example:"Computer Science"`
	Grade       string `json:"grade" db:"grade" example:"A"`
	PhoneNumber string `json:"phoneNumber" db:"phone_number" example:"+15550100"`
	DateOfBirth string `json:"dateOfBirth" db:"date_of_birth" example:"2004-09-14"`
	Address     string `json:"address" db:"address"`
	Program     string `json:"program" db:"program" example:"BSc"`
	Year        int    `json:"year" db:"year" example:"2"`
	Advisor     string `json:"advisor" db:"advisor"`
}

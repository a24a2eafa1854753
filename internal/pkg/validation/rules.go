package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// EmailPattern matches the login email format
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// StudentIDPattern matches externally assigned student identifiers,
	// e.g. "S1001" or a plain numeric student number
	StudentIDPattern = `^[A-Za-z0-9\-]{1,32}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email     *regexp.Regexp
	StudentID *regexp.Regexp
}{
	Email:     regexp.MustCompile(EmailPattern),
	StudentID: regexp.MustCompile(StudentIDPattern),
}

// IsValidEmail reports whether the value looks like a valid email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(strings.TrimSpace(email))
}

// IsValidStudentID reports whether the value is an acceptable student identifier.
func IsValidStudentID(id string) bool {
	return CompiledPatterns.StudentID.MatchString(strings.TrimSpace(id))
}

package models

import "time"

// InstructorData is the snapshot captured when an instructor passes verification.
// Courses and classes embed a copy of it.
type InstructorData struct {
	UserID           string    `json:"userId,omitempty"`
	EducationLevel   string    `json:"educationLevel"`
	Institution      string    `json:"institution"`
	Field            string    `json:"field"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	VerificationDate time.Time `json:"verificationDate"`
}

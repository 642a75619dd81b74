package models

import "time"

const ClassTypeSingle = "single_class"

// Class is a standalone lesson published outside of a course.
type Class struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Level       string         `json:"level"`
	Duration    int            `json:"duration"`
	Description string         `json:"description"`
	Video       string         `json:"video"`
	Image       string         `json:"image"`
	Files       []string       `json:"files"`
	IsDraft     bool           `json:"isDraft"`
	Type        string         `json:"type"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
	Instructor  InstructorData `json:"instructor"`
}

func (c *Class) AssignID(next func() string) {
	if c.ID == "" {
		c.ID = next()
	}
}

func (c Class) OwnedBy(userID string) bool {
	return userID != "" && c.Instructor.UserID == userID
}

package models

import "time"

type Course struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Level       string         `json:"level"`
	Duration    int            `json:"duration"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Classes     []CourseClass  `json:"classes"`
	IsDraft     bool           `json:"isDraft"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   *time.Time     `json:"updatedAt,omitempty"`
	Instructor  InstructorData `json:"instructor"`
}

// CourseClass is a lesson embedded in a course, distinct from a standalone Class.
type CourseClass struct {
	Title       string   `json:"title"`
	Duration    int      `json:"duration"`
	Video       string   `json:"video"`
	Description string   `json:"description"`
	Files       []string `json:"files"`
}

func (c *Course) AssignID(next func() string) {
	if c.ID == "" {
		c.ID = next()
	}
}

func (c Course) OwnedBy(userID string) bool {
	return userID != "" && c.Instructor.UserID == userID
}

// TotalClassMinutes sums the durations of the embedded classes.
func (c Course) TotalClassMinutes() int {
	total := 0
	for _, cl := range c.Classes {
		total += cl.Duration
	}
	return total
}

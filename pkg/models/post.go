package models

import "time"

type PostAuthor struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Career string `json:"career,omitempty"`
	Photo  string `json:"photo,omitempty"`
}

type Comment struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Post struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	Images    []string   `json:"images"`
	Author    PostAuthor `json:"author"`
	Timestamp time.Time  `json:"timestamp"`
	Likes     int        `json:"likes"`
	LikedBy   []string   `json:"likedBy"`
	Comments  []Comment  `json:"comments"`
}

func (p *Post) AssignID(next func() string) {
	if p.ID == "" {
		p.ID = next()
	}
}

// ToggleLike adds or removes the user's like and reports the new state.
func (p *Post) ToggleLike(userID string) bool {
	for i, id := range p.LikedBy {
		if id == userID {
			p.LikedBy = append(p.LikedBy[:i], p.LikedBy[i+1:]...)
			p.Likes = len(p.LikedBy)
			return false
		}
	}
	p.LikedBy = append(p.LikedBy, userID)
	p.Likes = len(p.LikedBy)
	return true
}

func (p Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

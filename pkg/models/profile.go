package models

import (
	"strings"
	"time"
)

type EducationLevel string

const (
	EducationHighSchool EducationLevel = "high_school"
	EducationTechnical  EducationLevel = "technical"
	EducationUniversity EducationLevel = "university"
	EducationGraduate   EducationLevel = "graduate"
)

var educationLevelLabels = map[EducationLevel]string{
	EducationHighSchool: "Bachillerato",
	EducationTechnical:  "Técnico",
	EducationUniversity: "Universidad",
	EducationGraduate:   "Posgrado",
}

func (l EducationLevel) Valid() bool {
	_, ok := educationLevelLabels[l]
	return ok
}

// Label is the Spanish display text of the level.
func (l EducationLevel) Label() string {
	if label, ok := educationLevelLabels[l]; ok {
		return label
	}
	return string(l)
}

func DefaultInterests() []string {
	return []string{"Física", "Química", "Matemáticas", "Ciencias Ambientales", "Tecnología"}
}

type Profile struct {
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Career         string         `json:"career"`
	EducationLevel EducationLevel `json:"educationLevel"`
	Bio            string         `json:"bio"`
	Interests      []string       `json:"interests"`
	Photo          string         `json:"photo"`
	CoverPhoto     string         `json:"coverPhoto"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// UniqueInterests trims tags and keeps the first occurrence of each text.
func UniqueInterests(interests []string) []string {
	seen := make(map[string]struct{}, len(interests))
	out := make([]string, 0, len(interests))
	for _, interest := range interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}
		if _, ok := seen[interest]; ok {
			continue
		}
		seen[interest] = struct{}{}
		out = append(out, interest)
	}
	return out
}

package entity

// Recipient is a user who can receive donated memberships.
type Recipient struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

func FeaturedUsers() []Recipient {
	return []Recipient{
		{ID: "1", Name: "María González", Email: "maria@atlas.com", Avatar: "M"},
		{ID: "2", Name: "Carlos Mendoza", Email: "carlos@atlas.com", Avatar: "C"},
		{ID: "3", Name: "Ana García", Email: "ana@atlas.com", Avatar: "A"},
		{ID: "4", Name: "Luis Rodríguez", Email: "luis@atlas.com", Avatar: "L"},
		{ID: "5", Name: "Sofia Martín", Email: "sofia@atlas.com", Avatar: "S"},
	}
}

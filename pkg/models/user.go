package models

import (
	"bytes"
	"encoding/json"
	"time"
)

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
)

// User is a registered account as kept in the users slot.
// Password holds a bcrypt hash and never leaves the service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Username     string    `json:"username"`
	Birthdate    string    `json:"birthdate"`
	Email        string    `json:"email"`
	Password     string    `json:"password,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// UnmarshalJSON also accepts the numeric ids of accounts created before
// ids became strings.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	aux := struct {
		ID json.RawMessage `json:"id"`
		*plain
	}{plain: (*plain)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := bytes.TrimSpace(aux.ID)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		u.ID = ""
	case raw[0] == '"':
		return json.Unmarshal(raw, &u.ID)
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		u.ID = n.String()
	}
	return nil
}

// AssignID sets the identifier if it is still empty.
func (u *User) AssignID(next func() string) {
	if u.ID == "" {
		u.ID = next()
	}
}

// Public returns a copy without the password hash.
func (u User) Public() *User {
	u.Password = ""
	return &u
}

func (u User) FullName() string {
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}

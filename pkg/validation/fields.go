package validation

import (
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"atlas/pkg/models"
)

const (
	MsgUsernameTooLong  = "El nombre de usuario no puede tener más de 20 caracteres"
	MsgUsernameChars    = "Solo se permiten letras, números y guiones bajos"
	MsgUsernameTaken    = "Este nombre de usuario ya está en uso"
	MsgEmailInvalid     = "Ingresa un correo electrónico válido"
	MsgEmailTaken       = "Este correo electrónico ya está registrado"
	MsgBirthdateFormat  = "Formato de fecha inválido (DD/MM/AAAA)"
	MsgBirthdateInvalid = "Fecha inválida"
	MsgTooYoung         = "Debes tener al menos 12 años para registrarte"
	MsgCheckBirthdate   = "Por favor, verifica la fecha de nacimiento"
	MsgPasswordShort    = "La contraseña debe tener al menos 6 caracteres"
	MsgNameShort        = "Debe tener al menos 2 caracteres"
	MsgNameChars        = "Solo se permiten letras y espacios"
)

const (
	maxUsernameLength = 20
	minPasswordLength = 6
	minNameLength     = 2
	minAge            = 12
	maxAge            = 100
)

var (
	usernamePattern  = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	birthdatePattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	namePattern      = regexp.MustCompile(`^[a-zA-ZáéíóúüñÁÉÍÓÚÜÑ\s]+$`)
)

func Username(value string, ctx Context, users []models.User) Result {
	if value == "" {
		return Fail("")
	}
	if utf8.RuneCountInString(value) > maxUsernameLength {
		return Fail(MsgUsernameTooLong)
	}
	if !usernamePattern.MatchString(value) {
		return Fail(MsgUsernameChars)
	}
	if ctx == Registration {
		for _, u := range users {
			if u.Username == value {
				return Fail(MsgUsernameTaken)
			}
		}
	}
	return OK()
}

func Email(value string, ctx Context, users []models.User) Result {
	if value == "" {
		return Fail("")
	}
	if !IsEmail(value) {
		return Fail(MsgEmailInvalid)
	}
	if ctx == Registration {
		for _, u := range users {
			if u.Email == value {
				return Fail(MsgEmailTaken)
			}
		}
	}
	return OK()
}

func IsEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// Birthdate checks a DD/MM/YYYY date. Age is the difference in calendar years only.
func Birthdate(value string, now time.Time) Result {
	if value == "" {
		return Fail("")
	}
	m := birthdatePattern.FindStringSubmatch(value)
	if m == nil {
		return Fail(MsgBirthdateFormat)
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return Fail(MsgBirthdateInvalid)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return Fail(MsgBirthdateInvalid)
	}

	age := now.Year() - year
	if age < minAge {
		return Fail(MsgTooYoung)
	}
	if age > maxAge {
		return Fail(MsgCheckBirthdate)
	}
	return OK()
}

func Password(value string) Result {
	if value == "" {
		return Fail("")
	}
	if utf8.RuneCountInString(value) < minPasswordLength {
		return Fail(MsgPasswordShort)
	}
	return OK()
}

// Name validates first and last names.
func Name(value string) Result {
	if value == "" {
		return Fail("")
	}
	if utf8.RuneCountInString(value) < minNameLength {
		return Fail(MsgNameShort)
	}
	if !namePattern.MatchString(value) {
		return Fail(MsgNameChars)
	}
	return OK()
}

type RegistrationInput struct {
	Name      string `json:"name"`
	Lastname  string `json:"lastname"`
	Username  string `json:"username"`
	Birthdate string `json:"birthdate"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// RegistrationReport validates the whole registration form against the current users.
func RegistrationReport(in RegistrationInput, users []models.User, now time.Time) *Report {
	return NewReport().
		Add("name", Name(in.Name)).
		Add("lastname", Name(in.Lastname)).
		Add("username", Username(in.Username, Registration, users)).
		Add("birthdate", Birthdate(in.Birthdate, now)).
		Add("email", Email(in.Email, Registration, users)).
		Add("password", Password(in.Password))
}

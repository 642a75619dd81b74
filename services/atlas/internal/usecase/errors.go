package usecase

import (
	"errors"
	"fmt"

	"atlas/services/atlas/internal/repo/persistent"
)

var (
	ErrNotFound           = persistent.ErrNotFound
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSubmitInFlight     = errors.New("save already in progress")

	ErrNotInstructor = fmt.Errorf("%w: instructor verification required", ErrForbidden)
	ErrNotOwner      = fmt.Errorf("%w: not the owner", ErrForbidden)
	ErrTrialUsed     = fmt.Errorf("%w: the free trial was already used", ErrConflict)
	ErrPlanActive    = fmt.Errorf("%w: a paid plan is already active", ErrConflict)
)

// Messages shown to users for failures that are not field validation.
const (
	MsgInvalidCredentials = "Usuario o contraseña incorrectos"
	MsgMissingIdentifier  = "Ingresa tu nombre de usuario o correo"
	MsgMissingPassword    = "Ingresa tu contraseña"
)

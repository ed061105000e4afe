package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound     = errors.New("resource niet gevonden")
	ErrUserNotFound = errors.New("gebruiker niet gevonden")
	ErrInvalidInput = errors.New("ongeldige invoer")
	ErrDuplicate    = errors.New("resource bestaat al")
	ErrUnauthorized = errors.New("niet geautoriseerd")
	ErrForbidden    = errors.New("toegang geweigerd")
	ErrNoCustomer   = errors.New("geen klant gekoppeld aan de factuur")
	ErrNoEmail      = errors.New("klant heeft geen e-mailadres")
)

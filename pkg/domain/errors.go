package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyText           = errors.New("el texto no puede estar vacío")
	ErrTextTooLong         = errors.New("el texto es demasiado largo")
	ErrForbiddenCharacters = errors.New("el texto contiene caracteres no permitidos")
)

// ValidationError accumulates every constraint the input text violated.
// Callers usually surface only the first message.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// First returns the leading violation message.
func (e *ValidationError) First() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}

func NewValidationError(messages []string) error {
	return &ValidationError{Messages: messages}
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

type unknownMethodError struct {
	Method    string
	Available []string
}

func (e *unknownMethodError) Error() string {
	return fmt.Sprintf("método '%s' no válido. Métodos disponibles: %s", e.Method, strings.Join(e.Available, ", "))
}

func NewUnknownMethodError(method string, available []string) error {
	return &unknownMethodError{Method: method, Available: available}
}

func IsUnknownMethodError(err error) bool {
	if err == nil {
		return false
	}
	var unknownMethodError *unknownMethodError
	return errors.As(err, &unknownMethodError)
}

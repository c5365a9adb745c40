package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Cada variable es una
// categoría estable que la capa HTTP traduce a un status code.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrBadRequest   = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
)

// Error envuelve una categoría con un mensaje legible para el cliente.
// errors.Is(err, domain.ErrX) sigue funcionando vía Unwrap.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap expone la categoría para errors.Is.
func (e *Error) Unwrap() error { return e.Kind }

// NotFound crea un error de categoría ErrNotFound con mensaje formateado.
func NotFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict crea un error de categoría ErrConflict con mensaje formateado.
func Conflict(format string, args ...any) error {
	return &Error{Kind: ErrConflict, Message: fmt.Sprintf(format, args...)}
}

// BadRequest crea un error de categoría ErrBadRequest con mensaje formateado.
func BadRequest(format string, args ...any) error {
	return &Error{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized crea un error de categoría ErrUnauthorized con mensaje formateado.
func Unauthorized(format string, args ...any) error {
	return &Error{Kind: ErrUnauthorized, Message: fmt.Sprintf(format, args...)}
}

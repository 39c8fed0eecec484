package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidReference = errors.New("referencia a un recurso inexistente")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrConflict         = errors.New("conflicto con el estado actual")
)

// FieldError describe un campo que no pasó la validación.
type FieldError struct {
	Field string // nombre JSON del campo
	Tag   string // regla incumplida (required, gte, oneof...)
	Param string
}

// ValidationError agrupa los campos inválidos de una petición. Envuelve ErrInvalidInput.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye un error con un único campo inválido.
func NewValidationError(field, tag, param string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Tag: tag, Param: param}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		switch {
		case f.Tag == "required":
			parts = append(parts, f.Field+" is required")
		case f.Param != "":
			parts = append(parts, fmt.Sprintf("%s failed on '%s=%s'", f.Field, f.Tag, f.Param))
		default:
			parts = append(parts, fmt.Sprintf("%s failed on '%s'", f.Field, f.Tag))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// ReferenceError indica que un SKU apunta a una bodega o proveedor que no existe.
type ReferenceError struct {
	Field string
	ID    string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q does not reference an existing record", e.Field, e.ID)
}

func (e *ReferenceError) Unwrap() error { return ErrInvalidReference }

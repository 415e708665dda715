package apperr

import (
	"errors"
	"fmt"
)

// Tassonomia degli errori di dominio del career-svc.
// Ogni errore porta un tag stabile (Kind) e un messaggio leggibile.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindValidation   Kind = "validation_error"
	KindInternal     Kind = "internal"
)

// FieldIssue descrive un campo non valido in input.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error e' l'errore di dominio con kind, messaggio ed eventuale causa.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldIssue
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is confronta per kind e, se il target ha un messaggio, anche per messaggio.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

// Sentinel generiche, utili con errors.Is per controllare solo il kind.
var (
	ErrUnauthorized = &Error{Kind: KindUnauthorized}
	ErrForbidden    = &Error{Kind: KindForbidden}
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrInternal     = &Error{Kind: KindInternal}
)

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Validation crea un errore 422 con l'elenco completo dei campi non validi.
func Validation(message string, fields ...FieldIssue) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// Internal avvolge un errore inatteso; il messaggio al client resta generico.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Cause: cause}
}

// KindOf ritorna il kind dell'errore, KindInternal per errori non di dominio.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

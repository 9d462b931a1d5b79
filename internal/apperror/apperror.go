// Package apperror defines the error taxonomy surfaced by the API.
// Every business failure carries a Kind; the handler layer maps kinds
// to HTTP status codes in exactly one place.
package apperror

import "errors"

type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindInsufficientStock
	KindCapacityExceeded
	KindInactiveContainer
	KindConflict
	KindInvalidCredentials
	KindInvalidToken
)

// Error is a business error with a machine-readable kind and a
// human-readable message safe to return to the caller.
type Error struct {
	Kind    Kind
	Message string
	Err     error // optional wrapped cause, not exposed to clients
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Validation(msg string) *Error         { return newError(KindValidation, msg) }
func NotFound(msg string) *Error           { return newError(KindNotFound, msg) }
func InsufficientStock(msg string) *Error  { return newError(KindInsufficientStock, msg) }
func CapacityExceeded(msg string) *Error   { return newError(KindCapacityExceeded, msg) }
func InactiveContainer(msg string) *Error  { return newError(KindInactiveContainer, msg) }
func Conflict(msg string) *Error           { return newError(KindConflict, msg) }
func InvalidCredentials(msg string) *Error { return newError(KindInvalidCredentials, msg) }
func InvalidToken(msg string) *Error       { return newError(KindInvalidToken, msg) }

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// StatusOf maps an error to the HTTP status it should surface as.
// Unknown errors map to 500 and must not leak their message.
func StatusOf(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return 500
	}
	switch appErr.Kind {
	case KindValidation:
		return 400
	case KindInvalidCredentials, KindInvalidToken:
		return 401
	case KindNotFound:
		return 404
	case KindConflict, KindInsufficientStock, KindCapacityExceeded, KindInactiveContainer:
		return 409
	default:
		return 500
	}
}

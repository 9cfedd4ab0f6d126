package training

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindStorage    Kind = "storage"
)

const (
	MsgMissingFields  = "Faltan datos requeridos"
	MsgWidgetNotFound = "Widget no encontrado"
	MsgUpdated        = "Cerebro actualizado"
)

// ErrNotFound is returned by a Store when no row matches the widget id.
var ErrNotFound = errors.New("widget not found")

// Error is what Append returns on failure. Storage errors carry the driver error and
// report its message verbatim.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("training error (%s)", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func validationError(field string) *Error {
	return &Error{Kind: KindValidation, Message: MsgMissingFields, Err: fmt.Errorf("missing field %q", field)}
}

func notFoundError(widgetID string) *Error {
	return &Error{Kind: KindNotFound, Message: MsgWidgetNotFound, Err: fmt.Errorf("widget %q: %w", widgetID, ErrNotFound)}
}

func storageError(err error) *Error {
	return &Error{Kind: KindStorage, Err: err}
}

// KindOf reports the Kind of err, or "" when err is not a *Error.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return ""
}

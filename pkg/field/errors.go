package field

import "errors"

var (
	// ErrUnknownKind is returned when an input kind is not one of the
	// supported kinds.
	ErrUnknownKind = errors.New("field: unknown input kind")
	// ErrInvalidName is returned when a field name cannot be used as an
	// element identifier.
	ErrInvalidName = errors.New("field: invalid field name")
)

package fieldset

import "errors"

var (
	// ErrEmptyFieldSet is returned when a document declares no fields.
	ErrEmptyFieldSet = errors.New("fieldset: no fields declared")
	// ErrUnknownComponent is returned when the OpenAPI document has no
	// component schema with the requested name.
	ErrUnknownComponent = errors.New("fieldset: unknown component schema")
)

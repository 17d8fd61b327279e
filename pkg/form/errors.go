package form

import "errors"

var (
	// ErrUnknownField is returned when a name is not part of the schema.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrDuplicateField is returned when a schema declares a name twice.
	ErrDuplicateField = errors.New("form: duplicate field")
	// ErrInvalidRules is returned when a field declares a rule list the
	// validator cannot evaluate.
	ErrInvalidRules = errors.New("form: invalid rules")
	// ErrNilSchema is returned when a State is built without a schema.
	ErrNilSchema = errors.New("form: schema is nil")
)

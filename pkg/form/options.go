package form

// Mode selects when a State re-validates a field on its own.
type Mode int

const (
	// ModeSubmit validates only when Validate is called. After the first
	// Validate call, changed fields are re-validated on every change.
	ModeSubmit Mode = iota
	// ModeBlur validates a field when it loses focus.
	ModeBlur
	// ModeChange validates a field on every change.
	ModeChange
)

// Option configures a State.
type Option func(*State)

// WithValidator overrides the validator used for field rules. A nil
// validator disables rule evaluation.
func WithValidator(v Validator) Option {
	return func(s *State) {
		s.validator = v
	}
}

// WithMode selects the validation mode.
func WithMode(mode Mode) Option {
	return func(s *State) {
		s.mode = mode
	}
}

// WithValues seeds initial values, overriding schema defaults. Unknown names
// are ignored.
func WithValues(values map[string]string) Option {
	return func(s *State) {
		for name, value := range values {
			if s.schema.Has(name) {
				s.initial[name] = value
			}
		}
	}
}

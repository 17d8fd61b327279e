package field

import "strings"

// Error is the validation error supplied by the owner of the form state.
type Error struct {
	Message string `json:"message" yaml:"message"`
}

// Feedback selects the render mode of a field. It is either NoError or
// HasError; no other implementations exist.
type Feedback interface {
	feedback()
}

// NoError renders the field without the invalid marker or error block.
type NoError struct{}

// HasError renders the invalid marker and the message block.
type HasError struct {
	Message string
}

func (NoError) feedback()  {}
func (HasError) feedback() {}

// FromError converts an optional error into Feedback. A nil error is NoError.
func FromError(err *Error) Feedback {
	if err == nil {
		return NoError{}
	}
	return HasError{Message: err.Message}
}

// FromMessages converts a list of messages into Feedback, keeping the first
// non-blank one.
func FromMessages(messages []string) Feedback {
	for _, message := range messages {
		if trimmed := strings.TrimSpace(message); trimmed != "" {
			return HasError{Message: trimmed}
		}
	}
	return NoError{}
}

// Message returns the error message and whether fb is HasError. A nil
// Feedback counts as NoError.
func Message(fb Feedback) (string, bool) {
	switch v := fb.(type) {
	case HasError:
		return v.Message, true
	case *HasError:
		if v == nil {
			return "", false
		}
		return v.Message, true
	default:
		return "", false
	}
}

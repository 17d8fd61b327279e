package form

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-formfield/pkg/field"
)

// EventKind identifies what happened to a field.
type EventKind string

const (
	EventChange   EventKind = "change"
	EventBlur     EventKind = "blur"
	EventFocus    EventKind = "focus"
	EventValidate EventKind = "validate"
	EventReset    EventKind = "reset"
)

// Event is delivered to subscribers after the State has been updated. Field
// is empty for form-wide events.
type Event struct {
	Kind  EventKind
	Field string
	Value string
}

// Listener receives State events.
type Listener func(Event)

type subscription struct {
	id uint64
	fn Listener
}

// State is the form-state handle. It is safe for concurrent use; listeners
// run on the goroutine that triggered the event, after locks are released.
type State struct {
	mu sync.RWMutex

	schema    *Schema
	validator Validator
	mode      Mode

	initial   map[string]string
	values    map[string]string
	touched   map[string]bool
	dirty     map[string]bool
	errors    map[string]string
	submitted bool

	listeners []subscription
	nextID    uint64
}

// New constructs a State for schema. Values start from each field's
// default unless WithValues overrides them.
func New(schema *Schema, options ...Option) (*State, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}

	s := &State{
		schema:    schema,
		validator: NewRuleValidator(),
		initial:   make(map[string]string, schema.Len()),
		touched:   make(map[string]bool),
		dirty:     make(map[string]bool),
		errors:    make(map[string]string),
	}
	for _, spec := range schema.Fields() {
		s.initial[spec.Name] = spec.Default
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.values = cloneValues(s.initial)
	return s, nil
}

// Schema returns the schema the State was built with.
func (s *State) Schema() *Schema {
	return s.schema
}

// Register binds name and returns its current value and event callbacks.
func (s *State) Register(name string) (field.Binding, error) {
	if !s.schema.Has(name) {
		return field.Binding{}, fmt.Errorf("form: register %q: %w", name, ErrUnknownField)
	}

	s.mu.RLock()
	value := s.values[name]
	s.mu.RUnlock()

	return field.Binding{
		Value:    value,
		OnChange: func(v string) { s.change(name, v) },
		OnBlur:   func() { s.blur(name) },
		OnFocus:  func() { s.emit(Event{Kind: EventFocus, Field: name}) },
	}, nil
}

// Props composes the render inputs for name from the current state.
func (s *State) Props(name string) (field.Props, error) {
	spec, ok := s.schema.Field(name)
	if !ok {
		return field.Props{}, fmt.Errorf("form: props %q: %w", name, ErrUnknownField)
	}
	binding, err := s.Register(name)
	if err != nil {
		return field.Props{}, err
	}
	return field.Props{
		Field:    spec.Descriptor,
		Binding:  binding,
		Feedback: s.Feedback(name),
	}, nil
}

// SetValue writes a value as if the user had typed it.
func (s *State) SetValue(name, value string) error {
	if !s.schema.Has(name) {
		return fmt.Errorf("form: set value %q: %w", name, ErrUnknownField)
	}
	s.change(name, value)
	return nil
}

// Value returns the current value of name.
func (s *State) Value(name string) (string, bool) {
	if !s.schema.Has(name) {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[name], true
}

// Values returns a copy of all current values.
func (s *State) Values() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneValues(s.values)
}

// Touched reports whether name has been blurred at least once.
func (s *State) Touched(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched[name]
}

// Dirty reports whether the value of name differs from its initial value.
func (s *State) Dirty(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty[name]
}

// IsDirty reports whether any field is dirty.
func (s *State) IsDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, dirty := range s.dirty {
		if dirty {
			return true
		}
	}
	return false
}

// Feedback returns the render mode for name.
func (s *State) Feedback(name string) field.Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if message, ok := s.errors[name]; ok {
		return field.HasError{Message: message}
	}
	return field.NoError{}
}

// Errors returns a copy of the current field errors.
func (s *State) Errors() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneValues(s.errors)
}

// SetError attaches message to name. A blank message clears the error.
func (s *State) SetError(name, message string) error {
	if !s.schema.Has(name) {
		return fmt.Errorf("form: set error %q: %w", name, ErrUnknownField)
	}
	s.mu.Lock()
	s.setErrorLocked(name, field.FromMessages([]string{message}))
	s.mu.Unlock()
	return nil
}

// SetErrors replaces all field errors. Unknown names fail the whole call
// without modifying the State.
func (s *State) SetErrors(errs map[string]string) error {
	for name := range errs {
		if !s.schema.Has(name) {
			return fmt.Errorf("form: set errors %q: %w", name, ErrUnknownField)
		}
	}
	s.mu.Lock()
	s.errors = make(map[string]string, len(errs))
	for name, message := range errs {
		s.setErrorLocked(name, field.FromMessages([]string{message}))
	}
	s.mu.Unlock()
	return nil
}

// ClearErrors removes the errors of the given fields, or all errors when no
// names are supplied.
func (s *State) ClearErrors(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(names) == 0 {
		s.errors = make(map[string]string)
		return
	}
	for _, name := range names {
		delete(s.errors, name)
	}
}

// ApplyErrorPayload maps a server error payload onto field errors and returns
// the messages that could not be attributed to a field.
func (s *State) ApplyErrorPayload(payload map[string][]string) []string {
	mapping := MapErrorPayload(s.schema, payload)
	s.mu.Lock()
	for name, messages := range mapping.Fields {
		s.setErrorLocked(name, field.FromMessages(messages))
	}
	s.mu.Unlock()
	return mapping.Form
}

// Validate evaluates every field, replaces the error set and reports whether
// the form is valid.
func (s *State) Validate() bool {
	s.mu.Lock()
	s.submitted = true
	s.errors = make(map[string]string)
	for _, spec := range s.schema.Fields() {
		s.validateLocked(spec.Name)
	}
	valid := len(s.errors) == 0
	s.mu.Unlock()

	s.emit(Event{Kind: EventValidate})
	return valid
}

// Reset restores initial values and clears flags and errors.
func (s *State) Reset() {
	s.mu.Lock()
	s.values = cloneValues(s.initial)
	s.touched = make(map[string]bool)
	s.dirty = make(map[string]bool)
	s.errors = make(map[string]string)
	s.submitted = false
	s.mu.Unlock()

	s.emit(Event{Kind: EventReset})
}

// Subscribe registers fn for every subsequent event and returns a function
// that removes it.
func (s *State) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.listeners {
				if sub.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *State) change(name, value string) {
	s.mu.Lock()
	s.values[name] = value
	s.dirty[name] = value != s.initial[name]
	if s.shouldValidateOnChange(name) {
		s.validateLocked(name)
	}
	s.mu.Unlock()

	s.emit(Event{Kind: EventChange, Field: name, Value: value})
}

func (s *State) blur(name string) {
	s.mu.Lock()
	s.touched[name] = true
	if s.mode == ModeBlur {
		s.validateLocked(name)
	}
	value := s.values[name]
	s.mu.Unlock()

	s.emit(Event{Kind: EventBlur, Field: name, Value: value})
}

func (s *State) shouldValidateOnChange(name string) bool {
	switch {
	case s.mode == ModeChange:
		return true
	case s.mode == ModeBlur && s.touched[name]:
		return true
	default:
		return s.submitted
	}
}

func (s *State) validateLocked(name string) {
	if s.validator == nil {
		return
	}
	spec, ok := s.schema.Field(name)
	if !ok {
		return
	}
	s.setErrorLocked(name, s.validator.ValidateField(spec, s.values[name]))
}

func (s *State) setErrorLocked(name string, fb field.Feedback) {
	if message, ok := field.Message(fb); ok {
		s.errors[name] = message
		return
	}
	delete(s.errors, name)
}

func (s *State) emit(event Event) {
	s.mu.RLock()
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, sub := range listeners {
		sub.fn(event)
	}
}

func cloneValues(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}

package form

import (
	"fmt"

	"github.com/goliatone/go-formfield/pkg/field"
)

// FieldSpec declares one field of a form: how it renders, its default value
// and the validator tags applied by RuleValidator.
type FieldSpec struct {
	field.Descriptor `yaml:",inline"`
	// Rules is a go-playground/validator tag list, e.g. "required,email".
	Rules string `json:"rules,omitempty" yaml:"rules,omitempty"`
	// Messages overrides the message emitted for a failing tag.
	Messages map[string]string `json:"messages,omitempty" yaml:"messages,omitempty"`
	// Enum restricts non-empty values to the listed ones. Unlike a oneof tag
	// the values may contain spaces, commas or pipes. Failures use the
	// "oneof" message key.
	Enum    []string `json:"enum,omitempty" yaml:"enum,omitempty"`
	Default string   `json:"default,omitempty" yaml:"default,omitempty"`
}

// Schema is the ordered set of fields a State is constructed with. Names are
// unique within a schema.
type Schema struct {
	specs []FieldSpec
	index map[string]int
}

// NewSchema validates every descriptor and rule list and rejects duplicate
// names.
func NewSchema(specs ...FieldSpec) (*Schema, error) {
	schema := &Schema{
		specs: make([]FieldSpec, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}
	for _, spec := range specs {
		if err := spec.Descriptor.Validate(); err != nil {
			return nil, fmt.Errorf("form: schema: %w", err)
		}
		if err := CheckRules(spec.Rules); err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidRules, spec.Name, err)
		}
		if _, exists := schema.index[spec.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, spec.Name)
		}
		schema.index[spec.Name] = len(schema.specs)
		schema.specs = append(schema.specs, spec)
	}
	return schema, nil
}

// MustSchema panics when NewSchema fails. Useful for package-level fixtures.
func MustSchema(specs ...FieldSpec) *Schema {
	schema, err := NewSchema(specs...)
	if err != nil {
		panic(err)
	}
	return schema
}

// Has reports whether name addresses a field of the schema.
func (s *Schema) Has(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[name]
	return ok
}

// Field returns the spec registered under name.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	if s == nil {
		return FieldSpec{}, false
	}
	idx, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.specs[idx], true
}

// Fields returns the specs in declaration order.
func (s *Schema) Fields() []FieldSpec {
	if s == nil {
		return nil
	}
	out := make([]FieldSpec, len(s.specs))
	copy(out, s.specs)
	return out
}

// Names returns the field names in declaration order.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.specs))
	for _, spec := range s.specs {
		out = append(out, spec.Name)
	}
	return out
}

// Len reports the number of fields.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.specs)
}

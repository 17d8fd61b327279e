package form

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formfield/pkg/field"
)

func TestRuleValidator(t *testing.T) {
	v := NewRuleValidator()
	cases := []struct {
		name  string
		spec  FieldSpec
		value string
		want  string
	}{
		{name: "no rules", spec: FieldSpec{}, value: "", want: ""},
		{name: "required empty", spec: FieldSpec{Rules: "required"}, value: "", want: "Required"},
		{name: "optional empty email", spec: FieldSpec{Rules: "email"}, value: "", want: ""},
		{name: "bad email", spec: FieldSpec{Rules: "email"}, value: "nope", want: "Invalid email address"},
		{name: "min", spec: FieldSpec{Rules: "required,min=3"}, value: "ab", want: "Must be at least 3 characters"},
		{name: "max", spec: FieldSpec{Rules: "max=2"}, value: "abc", want: "Must be at most 2 characters"},
		{name: "oneof", spec: FieldSpec{Rules: "oneof=red blue"}, value: "green", want: "Must be one of: red, blue"},
		{name: "custom message", spec: FieldSpec{Rules: "required", Messages: map[string]string{"required": "Please fill in"}}, value: "", want: "Please fill in"},
		{name: "valid", spec: FieldSpec{Rules: "required,email"}, value: "ada@example.com", want: ""},
		{name: "enum with spaces", spec: FieldSpec{Enum: []string{"New York", "a,b"}}, value: "New York", want: ""},
		{name: "enum with comma", spec: FieldSpec{Enum: []string{"New York", "a,b"}}, value: "a,b", want: ""},
		{name: "enum rejects partial", spec: FieldSpec{Enum: []string{"New York", "a,b"}}, value: "York", want: "Must be one of: New York, a,b"},
		{name: "enum skips empty optional", spec: FieldSpec{Enum: []string{"x"}}, value: "", want: ""},
		{name: "required before enum", spec: FieldSpec{Rules: "required", Enum: []string{"x"}}, value: "", want: "Required"},
		{name: "enum custom message", spec: FieldSpec{Enum: []string{"x"}, Messages: map[string]string{"oneof": "Pick x"}}, value: "y", want: "Pick x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, _ := field.Message(v.ValidateField(tc.spec, tc.value))
			if msg != tc.want {
				t.Fatalf("got %q, want %q", msg, tc.want)
			}
		})
	}
}

func TestCheckRules(t *testing.T) {
	for _, rules := range []string{"", "required", "required,email", "min=3,max=8", "oneof=red blue"} {
		if err := CheckRules(rules); err != nil {
			t.Errorf("CheckRules(%q) = %v", rules, err)
		}
	}
	for _, rules := range []string{"requird", "required,b", "min=abc"} {
		if err := CheckRules(rules); err == nil {
			t.Errorf("CheckRules(%q) expected error", rules)
		}
	}
}

func TestNewSchemaRejectsInvalidRules(t *testing.T) {
	_, err := NewSchema(FieldSpec{
		Descriptor: field.Descriptor{Name: "email"},
		Rules:      "requird",
	})
	if !errors.Is(err, ErrInvalidRules) {
		t.Fatalf("expected ErrInvalidRules, got %v", err)
	}
}

func TestValidateEnumWithSpaces(t *testing.T) {
	schema := MustSchema(FieldSpec{
		Descriptor: field.Descriptor{Name: "city"},
		Enum:       []string{"New York", "a,b"},
	})
	state, err := New(schema)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := state.SetValue("city", "New York"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if !state.Validate() {
		t.Fatalf("expected New York to be accepted, errors=%v", state.Errors())
	}
	if err := state.SetValue("city", "Lisbon"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if state.Validate() {
		t.Fatalf("expected Lisbon to be rejected")
	}
}

package field

import (
	"errors"
	"testing"
)

func TestDescriptorValidate(t *testing.T) {
	valid := []Descriptor{
		{Name: "email", Label: "Email"},
		{Name: "user.email", Label: "Email", Kind: KindEmail},
		{Name: "password", Kind: KindPassword},
		{Name: "first_name"},
	}
	for _, d := range valid {
		if err := d.Validate(); err != nil {
			t.Fatalf("Validate(%+v): %v", d, err)
		}
	}
}

func TestDescriptorValidateRejectsBadName(t *testing.T) {
	for _, name := range []string{"", "first name", "\tname"} {
		err := Descriptor{Name: name, Label: "x"}.Validate()
		if !errors.Is(err, ErrInvalidName) {
			t.Fatalf("name %q: expected ErrInvalidName, got %v", name, err)
		}
	}
}

func TestDescriptorValidateRejectsBadKind(t *testing.T) {
	err := Descriptor{Name: "age", Kind: Kind("range")}.Validate()
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDescriptorDefaults(t *testing.T) {
	d := Descriptor{Name: "city", Label: "City"}
	if d.InputKind() != KindText {
		t.Fatalf("expected default kind text, got %q", d.InputKind())
	}
	if d.Placeholder() != "city" {
		t.Fatalf("expected placeholder to mirror name, got %q", d.Placeholder())
	}
}

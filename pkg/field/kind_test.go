package field

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		raw  string
		want Kind
	}{
		{raw: "", want: KindText},
		{raw: "  ", want: KindText},
		{raw: "password", want: KindPassword},
		{raw: " Email ", want: KindEmail},
		{raw: "url", want: KindURL},
	}
	for _, tc := range cases {
		got, err := ParseKind(tc.raw)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseKind(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseKindRejectsUnknown(t *testing.T) {
	_, err := ParseKind("checkbox")
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKindMasked(t *testing.T) {
	for _, kind := range Kinds() {
		if got, want := kind.Masked(), kind == KindPassword; got != want {
			t.Fatalf("%s.Masked() = %v, want %v", kind, got, want)
		}
	}
	var zero Kind
	if zero.Masked() {
		t.Fatalf("zero kind must not be masked")
	}
	if zero.String() != "text" {
		t.Fatalf("zero kind string = %q", zero.String())
	}
}

package fieldset_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/fieldset"
	"github.com/goliatone/go-formfield/pkg/form"
)

const signupYAML = `
fields:
  - name: email
    label: Email address
    kind: email
    rules: required,email
  - name: password
    kind: password
    rules: required,min=8
    messages:
      min: Too short
  - name: first_name
    default: Ada
  - name: website
    kind: " URL "
`

const signupJSON = `{"fields":[{"name":"email","label":"Email address","kind":"email","rules":"required,email"}]}`

func TestLoadFS_YAML(t *testing.T) {
	fsys := fstest.MapFS{"signup.yaml": {Data: []byte(signupYAML)}}
	schema, err := fieldset.LoadFS(fsys, "signup.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"email", "password", "first_name", "website"}, schema.Names()); diff != "" {
		t.Fatalf("names mismatch:\n%s", diff)
	}

	password, _ := schema.Field("password")
	if password.Kind != field.KindPassword || password.Rules != "required,min=8" {
		t.Fatalf("password spec mismatch: %#v", password)
	}
	if password.Messages["min"] != "Too short" {
		t.Fatalf("messages not parsed: %#v", password.Messages)
	}
	if password.Label != "Password" {
		t.Fatalf("expected humanized label, got %q", password.Label)
	}

	first, _ := schema.Field("first_name")
	if first.Label != "First name" || first.Default != "Ada" || first.Kind != field.KindText {
		t.Fatalf("first_name spec mismatch: %#v", first)
	}

	website, _ := schema.Field("website")
	if website.Kind != field.KindURL {
		t.Fatalf("expected kind to be normalised, got %q", website.Kind)
	}
}

func TestLoadFS_JSON(t *testing.T) {
	fsys := fstest.MapFS{"signup.json": {Data: []byte(signupJSON)}}
	schema, err := fieldset.LoadFS(fsys, "signup.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := form.FieldSpec{
		Descriptor: field.Descriptor{Name: "email", Label: "Email address", Kind: field.KindEmail},
		Rules:      "required,email",
	}
	got, ok := schema.Field("email")
	if !ok {
		t.Fatalf("email missing")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spec mismatch:\n%s", diff)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.yaml": {Data: []byte("fields: []\n")},
		"blank.yaml": {Data: []byte("  \n")},
		"dup.yaml":   {Data: []byte("fields:\n  - name: a\n  - name: a\n")},
		"kind.yaml":  {Data: []byte("fields:\n  - name: a\n    kind: color\n")},
		"fields.txt": {Data: []byte("fields: []")},
		"rules.yaml": {Data: []byte("fields:\n  - name: email\n    rules: requird\n")},
	}

	if _, err := fieldset.LoadFS(fsys, "empty.yaml"); !errors.Is(err, fieldset.ErrEmptyFieldSet) {
		t.Fatalf("expected ErrEmptyFieldSet, got %v", err)
	}
	if _, err := fieldset.LoadFS(fsys, "blank.yaml"); err == nil {
		t.Fatalf("expected error for blank file")
	}
	if _, err := fieldset.LoadFS(fsys, "dup.yaml"); !errors.Is(err, form.ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
	if _, err := fieldset.LoadFS(fsys, "kind.yaml"); !errors.Is(err, field.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := fieldset.LoadFS(fsys, "rules.yaml"); !errors.Is(err, form.ErrInvalidRules) {
		t.Fatalf("expected ErrInvalidRules, got %v", err)
	}
	if _, err := fieldset.LoadFS(fsys, "fields.txt"); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
	if _, err := fieldset.LoadFS(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestHumanize(t *testing.T) {
	cases := map[string]string{
		"email":      "Email",
		"first_name": "First name",
		"firstName":  "First name",
		"zip-code":   "Zip code",
		"über_name":  "Über name",
		"userID":     "User ID",
		"HTTPServer": "HTTP server",
		"apiURLPath": "Api URL path",
		"ÉtatCivil":  "État civil",
		"  spaced  ": "Spaced",
		"x":          "X",
		"":           "",
	}
	for in, want := range cases {
		if got := fieldset.Humanize(in); got != want {
			t.Errorf("Humanize(%q) = %q, want %q", in, got, want)
		}
	}
}

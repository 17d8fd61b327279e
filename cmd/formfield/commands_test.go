package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/testsupport"
)

const signupFields = `
fields:
  - name: email
    label: Email address
    kind: email
    rules: required,email
  - name: password
    kind: password
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(log.New(io.Discard))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFields(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signup.yaml")
	if err := os.WriteFile(path, []byte(signupFields), 0o644); err != nil {
		t.Fatalf("write fields: %v", err)
	}
	return path
}

func TestKindsCommand(t *testing.T) {
	out, err := runCLI(t, "kinds")
	if err != nil {
		t.Fatalf("kinds: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"text (default)", "password", "email", "number", "tel", "url", "search", "date"}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Fatalf("kinds mismatch:\n%s", diff)
	}
}

func TestRenderCommandWithError(t *testing.T) {
	path := writeFields(t)
	out, err := runCLI(t, "render", "--fields", path, "--field", "email", "--value", "ada", "--error", "Invalid email address")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	doc := testsupport.MustParseFragment(t, []byte(out))
	input := testsupport.ElementByID(doc, "email")
	if input == nil {
		t.Fatalf("input missing:\n%s", out)
	}
	if got := testsupport.Attr(input, "value"); got != "ada" {
		t.Fatalf("value mismatch: %q", got)
	}
	if got := testsupport.CountText(doc, "Invalid email address"); got != 1 {
		t.Fatalf("expected error once, got %d", got)
	}
}

func TestRenderCommandDefaultsToFirstField(t *testing.T) {
	out, err := runCLI(t, "render", "--fields", writeFields(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `for="email"`) {
		t.Fatalf("expected the first field:\n%s", out)
	}
	if strings.Contains(out, "is-invalid") {
		t.Fatalf("unexpected invalid marker:\n%s", out)
	}
}

func TestRenderCommandPageAndTheme(t *testing.T) {
	out, err := runCLI(t, "render", "--fields", writeFields(t), "--field", "password", "--page", "--theme", "acme")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"<html", ".form-group", `data-theme="acme"`, `type="password"`, "<title>Password</title>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in page:\n%s", want, out)
		}
	}
}

func TestRenderCommandOutputFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "field.html")
	out, err := runCLI(t, "render", "--fields", writeFields(t), "-o", target)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `name="email"`) {
		t.Fatalf("unexpected file content:\n%s", data)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	path := writeFields(t)
	cases := map[string][]string{
		"no source":       {"render"},
		"both sources":    {"render", "--fields", path, "--openapi", path},
		"missing comp":    {"render", "--openapi", path},
		"unknown field":   {"render", "--fields", path, "--field", "nope"},
		"bad log level":   {"render", "--fields", path, "--log-level", "loud"},
		"missing fileset": {"render", "--fields", filepath.Join(t.TempDir(), "none.yaml")},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := runCLI(t, args...); err == nil {
				t.Fatalf("expected error for %v", args)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	cases := []struct{ in, dir, name string }{
		{"fields.yaml", ".", "fields.yaml"},
		{"conf/fields.yaml", "conf", "fields.yaml"},
		{"/fields.yaml", "/", "fields.yaml"},
	}
	for _, tc := range cases {
		dir, name := splitPath(tc.in)
		if dir != tc.dir || name != tc.name {
			t.Errorf("splitPath(%q) = %q, %q", tc.in, dir, name)
		}
	}
}

func TestPrintValueMasksByRune(t *testing.T) {
	schema := form.MustSchema(
		form.FieldSpec{Descriptor: field.Descriptor{Name: "password", Kind: field.KindPassword}},
		form.FieldSpec{Descriptor: field.Descriptor{Name: "city"}},
	)
	state, err := form.New(schema, form.WithValues(map[string]string{"password": "pässwörd", "city": "Zürich"}))
	if err != nil {
		t.Fatalf("state: %v", err)
	}

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	if err := printValue(cmd, state, "password"); err != nil {
		t.Fatalf("print: %v", err)
	}
	if err := printValue(cmd, state, "city"); err != nil {
		t.Fatalf("print: %v", err)
	}
	if diff := cmp.Diff("********\nZürich\n", out.String()); diff != "" {
		t.Fatalf("output mismatch:\n%s", diff)
	}
}

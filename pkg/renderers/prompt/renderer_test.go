package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	infoMessages []string
	configs      []InputConfig
	inputPos     int
	passPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.configs = append(s.configs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.configs = append(s.configs, cfg)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type recorder struct {
	changes []string
	blurs   int
	focuses int
}

func (r *recorder) binding(value string) field.Binding {
	return field.Binding{
		Value:    value,
		OnChange: func(v string) { r.changes = append(r.changes, v) },
		OnBlur:   func() { r.blurs++ },
		OnFocus:  func() { r.focuses++ },
	}
}

func TestRenderForwardsOneChange(t *testing.T) {
	driver := &stubDriver{inputs: []string{"Ada"}}
	rec := &recorder{}
	r := New(WithPromptDriver(driver))

	out, err := r.Render(context.Background(), field.Props{
		Field:   field.Descriptor{Name: "name", Label: "Name"},
		Binding: rec.binding("A"),
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if string(out) != "Ada" {
		t.Fatalf("unexpected output %q", out)
	}
	if diff := cmp.Diff([]string{"Ada"}, rec.changes); diff != "" {
		t.Fatalf("changes mismatch:\n%s", diff)
	}
	if rec.blurs != 1 || rec.focuses != 1 {
		t.Fatalf("expected one focus and one blur, got %d/%d", rec.focuses, rec.blurs)
	}
	want := []InputConfig{{Message: "Name", Default: "A", Help: "name"}}
	if diff := cmp.Diff(want, driver.configs); diff != "" {
		t.Fatalf("prompt config mismatch:\n%s", diff)
	}
}

func TestRenderPasswordUsesMaskedPrompt(t *testing.T) {
	driver := &stubDriver{passwords: []string{"hunter2"}}
	rec := &recorder{}
	r := New(WithPromptDriver(driver))

	_, err := r.Render(context.Background(), field.Props{
		Field:   field.Descriptor{Name: "password", Label: "Password", Kind: field.KindPassword},
		Binding: rec.binding("old-secret"),
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if driver.inputPos != 0 || driver.passPos != 1 {
		t.Fatalf("expected the password prompt to be used")
	}
	if driver.configs[0].Default != "" {
		t.Fatalf("masked prompts must not pre-fill, got %q", driver.configs[0].Default)
	}
	if diff := cmp.Diff([]string{"hunter2"}, rec.changes); diff != "" {
		t.Fatalf("changes mismatch:\n%s", diff)
	}
}

func TestRenderShowsCurrentError(t *testing.T) {
	driver := &stubDriver{inputs: []string{"x"}}
	r := New(WithPromptDriver(driver), WithTheme(Theme{ErrorPrefix: "! "}))

	_, err := r.Render(context.Background(), field.Props{
		Field:    field.Descriptor{Name: "email"},
		Feedback: field.HasError{Message: "Required"},
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"! Required"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch:\n%s", diff)
	}
	if driver.configs[0].Message != "email" {
		t.Fatalf("expected name fallback label, got %q", driver.configs[0].Message)
	}
}

func TestRenderChecksBeforeForwarding(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", "ada@example.com"}}
	rec := &recorder{}
	r := New(WithPromptDriver(driver), WithChecker(func(value string) field.Feedback {
		if value == "" {
			return field.HasError{Message: "Required"}
		}
		return field.NoError{}
	}))

	_, err := r.Render(context.Background(), field.Props{
		Field:   field.Descriptor{Name: "email", Label: "Email"},
		Binding: rec.binding(""),
	}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff([]string{"ada@example.com"}, rec.changes); diff != "" {
		t.Fatalf("rejected answers must not be forwarded:\n%s", diff)
	}
	if len(driver.infoMessages) != 1 {
		t.Fatalf("expected one rejection message, got %v", driver.infoMessages)
	}
}

func TestRenderMaxAttempts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"", ""}}
	r := New(WithPromptDriver(driver), WithMaxAttempts(2), WithChecker(func(string) field.Feedback {
		return field.HasError{Message: "Required"}
	}))

	_, err := r.Render(context.Background(), field.Props{Field: field.Descriptor{Name: "email"}}, render.RenderOptions{})
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestRenderPropagatesDriverErrors(t *testing.T) {
	rec := &recorder{}
	r := New(WithPromptDriver(&stubDriver{}))
	_, err := r.Render(context.Background(), field.Props{
		Field:   field.Descriptor{Name: "email"},
		Binding: rec.binding(""),
	}, render.RenderOptions{})
	if err == nil {
		t.Fatalf("expected driver error")
	}
	if len(rec.changes) != 0 {
		t.Fatalf("failed prompts must not forward changes")
	}
}

func TestTranslateSurveyErr(t *testing.T) {
	if !errors.Is(translateSurveyErr(terminal.InterruptErr), ErrAborted) {
		t.Fatalf("expected interrupt to map to ErrAborted")
	}
	other := errors.New("boom")
	if translateSurveyErr(other) != other {
		t.Fatalf("expected other errors to pass through")
	}
}

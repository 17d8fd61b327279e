package prompt

import "github.com/goliatone/go-formfield/pkg/field"

// Theme holds message prefixes applied by the renderer.
type Theme struct {
	ErrorPrefix string
}

// Checker reports feedback for a candidate answer. HasError re-asks the
// question after showing the message.
type Checker func(value string) field.Feedback

// Option configures the prompt renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithChecker validates answers before they are forwarded to the binding.
func WithChecker(check Checker) Option {
	return func(r *Renderer) {
		r.check = check
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithMaxAttempts bounds how many times a rejected answer is re-asked. Zero
// means unbounded.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}

package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
)

// ErrTooManyAttempts is returned when WithMaxAttempts is exhausted.
var ErrTooManyAttempts = errors.New("prompt: too many rejected answers")

// Renderer asks for a field once on the terminal and forwards the accepted
// answer to the field binding.
type Renderer struct {
	driver      PromptDriver
	check       Checker
	theme       Theme
	maxAttempts int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a prompt renderer backed by survey unless a driver is
// supplied.
func New(options ...Option) *Renderer {
	r := &Renderer{
		driver: NewSurveyDriver(nil),
		theme:  Theme{ErrorPrefix: "✗ "},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "prompt"
}

// ContentType reports the type of the returned answer.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render shows the current error (if any), prompts for a value and forwards
// the accepted answer through exactly one change notification followed by a
// blur. Password kinds use a masked prompt and never pre-fill the value.
func (r *Renderer) Render(ctx context.Context, props field.Props, options render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("prompt: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, ErrNilDriver
	}
	if err := props.Field.Validate(); err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}

	view := render.View(props, options)
	if view.Invalid {
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+view.Message); err != nil {
			return nil, err
		}
	}

	cfg := InputConfig{
		Message: displayLabel(view),
		Help:    view.Placeholder,
	}
	if !view.Masked {
		cfg.Default = view.Value
	}

	props.Binding.Focus()
	for attempt := 1; ; attempt++ {
		answer, err := r.ask(ctx, view, cfg)
		if err != nil {
			return nil, err
		}

		if r.check != nil {
			if message, invalid := field.Message(r.check(answer)); invalid {
				if err := r.driver.Info(ctx, r.theme.ErrorPrefix+message); err != nil {
					return nil, err
				}
				if r.maxAttempts > 0 && attempt >= r.maxAttempts {
					return nil, fmt.Errorf("%w: %s", ErrTooManyAttempts, view.Name)
				}
				continue
			}
		}

		props.Binding.Change(answer)
		props.Binding.Blur()
		return []byte(answer), nil
	}
}

func (r *Renderer) ask(ctx context.Context, view field.View, cfg InputConfig) (string, error) {
	if view.Masked {
		return r.driver.Password(ctx, cfg)
	}
	return r.driver.Input(ctx, cfg)
}

func displayLabel(view field.View) string {
	if view.Label != "" {
		return view.Label
	}
	return view.Name
}

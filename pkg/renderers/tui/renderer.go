package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
)

// ErrAborted is returned when the user cancels the field.
var ErrAborted = errors.New("tui: aborted")

// Renderer runs the field as an interactive Bubble Tea program and returns
// the submitted value.
type Renderer struct {
	options []Option
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the interactive renderer. Options apply to every run.
func New(options ...Option) *Renderer {
	return &Renderer{options: options}
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render runs the program until the user submits or cancels.
func (r *Renderer) Render(ctx context.Context, props field.Props, options render.RenderOptions) ([]byte, error) {
	if err := props.Field.Validate(); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	value, err := Run(ctx, props, r.runOptions(options)...)
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

// runOptions appends the per-call render options after the constructor
// options so they take precedence.
func (r *Renderer) runOptions(options render.RenderOptions) []Option {
	opts := make([]Option, 0, len(r.options)+1)
	opts = append(opts, r.options...)
	return append(opts, WithRenderOptions(options))
}

// Run drives a Model on the terminal and returns the final input value.
func Run(ctx context.Context, props field.Props, options ...Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cfg := newConfig(options)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.input != nil {
		programOpts = append(programOpts, tea.WithInput(cfg.input))
	}
	if cfg.output != nil {
		programOpts = append(programOpts, tea.WithOutput(cfg.output))
	}

	props.Binding.Focus()
	final, err := tea.NewProgram(NewModel(props, options...), programOpts...).Run()
	if err != nil {
		return "", fmt.Errorf("tui: run program: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return "", fmt.Errorf("tui: unexpected model %T", final)
	}
	if m.Err() != nil {
		return "", fmt.Errorf("tui: refresh props: %w", m.Err())
	}
	if m.Aborted() {
		return "", ErrAborted
	}
	return m.Value(), nil
}

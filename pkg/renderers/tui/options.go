package tui

import (
	"io"

	"github.com/goliatone/go-formfield/pkg/render"
)

// Option configures the Model and the Renderer.
type Option func(*config)

type config struct {
	styles        Styles
	width         int
	help          string
	source        Source
	renderOptions render.RenderOptions
	input         io.Reader
	output        io.Writer
}

func newConfig(options []Option) config {
	cfg := config{
		styles: DefaultStyles(),
		width:  40,
		help:   "enter submit • tab blur • esc cancel",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// WithStyles overrides the default styles.
func WithStyles(styles Styles) Option {
	return func(cfg *config) {
		cfg.styles = styles
	}
}

// WithWidth sets the visible width of the input.
func WithWidth(width int) Option {
	return func(cfg *config) {
		if width > 0 {
			cfg.width = width
		}
	}
}

// WithHelp replaces the key help line. An empty string hides it.
func WithHelp(help string) Option {
	return func(cfg *config) {
		cfg.help = help
	}
}

// WithSource re-reads props after every forwarded event.
func WithSource(source Source) Option {
	return func(cfg *config) {
		cfg.source = source
	}
}

// WithRenderOptions applies localisation options to the view.
func WithRenderOptions(options render.RenderOptions) Option {
	return func(cfg *config) {
		cfg.renderOptions = options
	}
}

// WithIO overrides the program input and output, mainly for tests.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(cfg *config) {
		cfg.input = in
		cfg.output = out
	}
}

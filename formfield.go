// Package formfield renders a labelled input bound to form state. The
// subpackages hold the field model (pkg/field), the form-state handle
// (pkg/form), field set loaders (pkg/fieldset) and the renderers
// (pkg/renderers/...). This package wires them together for the common cases.
package formfield

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/form"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/renderers/prompt"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
	"github.com/goliatone/go-formfield/pkg/renderers/vanilla"
)

// Props aliases field.Props so callers can stay on the root package.
type Props = field.Props

// RenderOptions describes per-request theme and locale overrides.
type RenderOptions = render.RenderOptions

// NewRegistry returns a registry holding the vanilla, prompt and tui
// renderers with their default configuration.
func NewRegistry() (*render.Registry, error) {
	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("formfield: vanilla renderer: %w", err)
	}
	registry := render.NewRegistry()
	for _, renderer := range []render.Renderer{html, prompt.New(), tui.New()} {
		if err := registry.Register(renderer); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// RenderHTML renders props with the embedded vanilla templates.
func RenderHTML(ctx context.Context, props Props, options RenderOptions) ([]byte, error) {
	renderer, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("formfield: vanilla renderer: %w", err)
	}
	return renderer.Render(ctx, props, options)
}

// RenderField composes the props for name from state and renders them with
// the named renderer from registry.
func RenderField(ctx context.Context, registry *render.Registry, rendererName string, state *form.State, name string, options RenderOptions) ([]byte, error) {
	if registry == nil {
		return nil, fmt.Errorf("formfield: nil registry")
	}
	renderer, err := registry.Get(rendererName)
	if err != nil {
		return nil, err
	}
	props, err := state.Props(name)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, props, options)
}

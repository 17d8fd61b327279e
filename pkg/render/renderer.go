package render

import (
	"context"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Renderer turns field props into a byte representation (HTML, terminal
// output, a collected value).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, props field.Props, options RenderOptions) ([]byte, error)
}

// View builds the field view for props and applies localisation from
// options. Renderers should call it instead of field.Build directly.
func View(props field.Props, options RenderOptions) field.View {
	view := field.Build(props)
	LocalizeView(&view, options)
	return view
}

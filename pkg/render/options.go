package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions carry per-render data that does not belong to the field
// itself.
type RenderOptions struct {
	// Theme supplies partial overrides, tokens and CSS variables resolved by
	// go-theme. Renderers that do not support theming ignore it.
	Theme *theme.RendererConfig
	// Locale is passed to Translator when localising labels and messages.
	Locale string
	// Translator resolves label and message keys. When nil, views render as
	// supplied.
	Translator Translator
	// OnMissing decides the text used when a translation fails.
	OnMissing MissingTranslationHandler
}

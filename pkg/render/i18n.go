package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
)

// ErrMissingTranslator is passed to the OnMissing handler when one is set but
// no translator is configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls fn.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler returns the text to use when key could not be
// translated.
type MissingTranslationHandler func(locale, key string, fallback string, err error) string

// LabelKey is the translation key looked up for a field label.
func LabelKey(name string) string {
	return fmt.Sprintf("fields.%s.label", name)
}

// LocalizeView translates the label (through LabelKey) and the error message
// (used verbatim as key) in place. Fallbacks keep the supplied text. Without
// a translator the view is left alone unless OnMissing is set.
func LocalizeView(view *field.View, options RenderOptions) {
	if view == nil || (options.Translator == nil && options.OnMissing == nil) {
		return
	}
	onMissing := options.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	view.Label = translate(options, onMissing, LabelKey(view.Name), view.Label)
	if view.Invalid && strings.TrimSpace(view.Message) != "" {
		view.Message = translate(options, onMissing, view.Message, view.Message)
	}
}

func translate(options RenderOptions, onMissing MissingTranslationHandler, key, fallback string) string {
	if options.Translator == nil {
		return onMissing(options.Locale, key, fallback, ErrMissingTranslator)
	}
	value, err := options.Translator.Translate(options.Locale, key)
	if err != nil {
		return onMissing(options.Locale, key, fallback, err)
	}
	if strings.TrimSpace(value) == "" || value == key {
		return fallback
	}
	return value
}

func missingTranslationDefault(_ string, key, fallback string, _ error) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

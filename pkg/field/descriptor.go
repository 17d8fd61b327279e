package field

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator"
)

// Descriptor names one field of a form and how it is presented. It is
// supplied by the parent on every render.
type Descriptor struct {
	Name  string `json:"name" yaml:"name" validate:"fieldname"`
	Label string `json:"label" yaml:"label"`
	Kind  Kind   `json:"kind,omitempty" yaml:"kind,omitempty" validate:"inputkind"`
}

// InputKind returns the effective kind, applying DefaultKind.
func (d Descriptor) InputKind() Kind {
	return d.Kind.OrDefault()
}

// Placeholder mirrors the field name.
func (d Descriptor) Placeholder() string {
	return d.Name
}

// Validate checks the descriptor can be rendered: the name must be a usable
// element identifier and the kind must be supported.
func (d Descriptor) Validate() error {
	err := descriptorValidator().Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("field: validate descriptor: %w", err)
	}

	switch verrs[0].Tag() {
	case "fieldname":
		return fmt.Errorf("%w: %q", ErrInvalidName, d.Name)
	case "inputkind":
		return fmt.Errorf("%w: %q", ErrUnknownKind, string(d.Kind))
	default:
		return fmt.Errorf("field: validate descriptor %q: %w", d.Name, err)
	}
}

// ValidName reports whether name can be used verbatim as an element id: it
// must be non-empty and contain no whitespace.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	return strings.IndexFunc(name, unicode.IsSpace) < 0
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func descriptorValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("fieldname", func(fl validator.FieldLevel) bool {
			return ValidName(fl.Field().String())
		}, true)
		_ = v.RegisterValidation("inputkind", func(fl validator.FieldLevel) bool {
			return Kind(fl.Field().String()).Valid()
		}, true)
		validate = v
	})
	return validate
}

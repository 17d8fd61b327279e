package fieldset

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/form"
)

// FromOpenAPI derives a schema from the properties of a component schema in
// an OpenAPI 3 document. Properties are emitted in name order. Object and
// array properties are skipped since they do not map to a single input.
func FromOpenAPI(ctx context.Context, raw []byte, component string) (*form.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("fieldset: load openapi document: %w", err)
	}

	var ref *openapi3.SchemaRef
	if doc.Components != nil {
		ref = doc.Components.Schemas[component]
	}
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, component)
	}

	required := make(map[string]bool, len(ref.Value.Required))
	for _, name := range ref.Value.Required {
		required[name] = true
	}

	names := make([]string, 0, len(ref.Value.Properties))
	for name := range ref.Value.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	specs := make([]form.FieldSpec, 0, len(names))
	for _, name := range names {
		prop := ref.Value.Properties[name]
		if prop == nil || prop.Value == nil {
			continue
		}
		spec, ok := specFromSchema(name, prop.Value, required[name])
		if !ok {
			continue
		}
		specs = append(specs, spec)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w (component %s)", ErrEmptyFieldSet, component)
	}

	schema, err := form.NewSchema(specs...)
	if err != nil {
		return nil, fmt.Errorf("fieldset: component %s: %w", component, err)
	}
	return schema, nil
}

func specFromSchema(name string, src *openapi3.Schema, required bool) (form.FieldSpec, bool) {
	typ := schemaType(src.Type)
	if typ == openapi3.TypeObject || typ == openapi3.TypeArray {
		return form.FieldSpec{}, false
	}

	label := strings.TrimSpace(src.Title)
	if label == "" {
		label = Humanize(name)
	}

	var rules []string
	if required {
		rules = append(rules, "required")
	}
	kind := kindFor(typ, src.Format)
	switch kind {
	case field.KindEmail:
		rules = append(rules, "email")
	case field.KindURL:
		rules = append(rules, "url")
	case field.KindNumber:
		rules = append(rules, "numeric")
	}
	if src.MinLength > 0 {
		rules = append(rules, "min="+strconv.FormatUint(src.MinLength, 10))
	}
	if src.MaxLength != nil {
		rules = append(rules, "max="+strconv.FormatUint(*src.MaxLength, 10))
	}
	var enum []string
	if len(src.Enum) > 0 {
		values := make([]string, 0, len(src.Enum))
		for _, v := range src.Enum {
			values = append(values, fmt.Sprint(v))
		}
		if oneofSafe(values) {
			rules = append(rules, "oneof="+strings.Join(values, " "))
		} else {
			enum = values
		}
	}

	spec := form.FieldSpec{
		Descriptor: field.Descriptor{Name: name, Label: label, Kind: kind},
		Rules:      strings.Join(rules, ","),
		Enum:       enum,
	}
	if src.Default != nil {
		spec.Default = fmt.Sprint(src.Default)
	}
	return spec, true
}

// oneofSafe reports whether values survive the space separated oneof tag
// parameter. Commas and pipes would be read as further tags.
func oneofSafe(values []string) bool {
	for _, v := range values {
		if v == "" || strings.ContainsAny(v, ",|") || strings.IndexFunc(v, unicode.IsSpace) >= 0 {
			return false
		}
	}
	return true
}

func kindFor(typ, format string) field.Kind {
	switch strings.ToLower(format) {
	case "password":
		return field.KindPassword
	case "email":
		return field.KindEmail
	case "uri", "url":
		return field.KindURL
	case "date":
		return field.KindDate
	}
	if typ == openapi3.TypeInteger || typ == openapi3.TypeNumber {
		return field.KindNumber
	}
	return field.KindText
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	for _, t := range types.Slice() {
		if t != openapi3.TypeNull {
			return t
		}
	}
	return ""
}

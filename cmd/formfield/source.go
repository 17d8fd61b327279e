package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/fieldset"
	"github.com/goliatone/go-formfield/pkg/form"
)

// sourceFlags selects the field set and the field to render.
type sourceFlags struct {
	fields    string
	openapi   string
	component string
	field     string
	value     string
	errorMsg  string
}

func (f *sourceFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.fields, "fields", "", "field set file (JSON or YAML)")
	flags.StringVar(&f.openapi, "openapi", "", "OpenAPI document to derive the field set from")
	flags.StringVar(&f.component, "component", "", "component schema name inside the OpenAPI document")
	flags.StringVar(&f.field, "field", "", "name of the field to render (defaults to the first field)")
	flags.StringVar(&f.value, "value", "", "current value of the field")
	flags.StringVar(&f.errorMsg, "error", "", "error message to show under the field")
}

func (f *sourceFlags) schema(ctx context.Context) (*form.Schema, error) {
	switch {
	case f.fields != "" && f.openapi != "":
		return nil, errors.New("use either --fields or --openapi, not both")
	case f.fields != "":
		dir, name := splitPath(f.fields)
		return fieldset.LoadFS(os.DirFS(dir), name)
	case f.openapi != "":
		if strings.TrimSpace(f.component) == "" {
			return nil, errors.New("--component is required with --openapi")
		}
		raw, err := os.ReadFile(f.openapi)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.openapi, err)
		}
		return fieldset.FromOpenAPI(ctx, raw, f.component)
	default:
		return nil, errors.New("one of --fields or --openapi is required")
	}
}

// state loads the schema and returns a form state holding the flag value and
// error for the selected field, plus that field's name.
func (f *sourceFlags) state(ctx context.Context, logger *log.Logger, options ...form.Option) (*form.State, string, error) {
	schema, err := f.schema(ctx)
	if err != nil {
		return nil, "", err
	}
	name := strings.TrimSpace(f.field)
	if name == "" {
		name = schema.Names()[0]
	}
	if !schema.Has(name) {
		return nil, "", fmt.Errorf("%w: %q", form.ErrUnknownField, name)
	}
	logger.Debug("field set loaded", "fields", schema.Len(), "field", name)

	if f.value != "" {
		options = append(options, form.WithValues(map[string]string{name: f.value}))
	}
	state, err := form.New(schema, options...)
	if err != nil {
		return nil, "", err
	}
	if f.errorMsg != "" {
		if err := state.SetError(name, f.errorMsg); err != nil {
			return nil, "", err
		}
	}
	return state, name, nil
}

func splitPath(path string) (string, string) {
	idx := strings.LastIndexAny(path, `/\`)
	if idx < 0 {
		return ".", path
	}
	if idx == 0 {
		return "/", path[1:]
	}
	return path[:idx], path[idx+1:]
}

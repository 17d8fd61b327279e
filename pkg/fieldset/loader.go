package fieldset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/form"
)

type documentFile struct {
	Fields []form.FieldSpec `json:"fields" yaml:"fields"`
}

// Parse decodes a JSON or YAML field set document. Source names the document
// in error messages.
func Parse(data []byte, source string) (*form.Schema, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("fieldset: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = documentFile{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("fieldset: parse %s: invalid JSON or YAML", source)
		}
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("%w (file %s)", ErrEmptyFieldSet, source)
	}

	specs := make([]form.FieldSpec, 0, len(doc.Fields))
	for _, spec := range doc.Fields {
		spec.Name = strings.TrimSpace(spec.Name)
		spec.Rules = strings.TrimSpace(spec.Rules)
		kind, err := field.ParseKind(string(spec.Kind))
		if err != nil {
			return nil, fmt.Errorf("fieldset: %s: field %q: %w", source, spec.Name, err)
		}
		spec.Kind = kind
		if strings.TrimSpace(spec.Label) == "" {
			spec.Label = Humanize(spec.Name)
		}
		specs = append(specs, spec)
	}

	schema, err := form.NewSchema(specs...)
	if err != nil {
		return nil, fmt.Errorf("fieldset: %s: %w", source, err)
	}
	return schema, nil
}

// LoadFS reads and parses a single field set file from fsys.
func LoadFS(fsys fs.FS, path string) (*form.Schema, error) {
	if fsys == nil {
		return nil, fmt.Errorf("fieldset: nil filesystem")
	}
	if !isFieldSetFile(path) {
		return nil, fmt.Errorf("fieldset: unsupported file extension %q", filepath.Ext(path))
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("fieldset: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Humanize turns a field name such as "first_name" or "firstName" into a
// label ("First name"). Runs of capitals stay together and keep their case,
// so "userID" becomes "User ID".
func Humanize(name string) string {
	runes := []rune(name)
	var words []string
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}
	for i, r := range runes {
		if r == '_' || r == '-' || r == '.' || unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if unicode.IsUpper(r) {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				flush(i)
				start = i
			}
		}
	}
	flush(len(runes))
	if len(words) == 0 {
		return ""
	}

	for i, word := range words {
		if !isAcronym(word) {
			words[i] = strings.ToLower(word)
		}
	}
	label := strings.Join(words, " ")
	first, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(first)) + label[size:]
}

func isAcronym(word string) bool {
	return utf8.RuneCountInString(word) > 1 && strings.ToUpper(word) == word && strings.ToLower(word) != word
}

func isFieldSetFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

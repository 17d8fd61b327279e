package field

import "strings"

// Class names emitted by renderers. They are part of the public styling
// contract.
const (
	ClassGroup          = "form-group"
	ClassControl        = "form-control"
	ClassInvalid        = "is-invalid"
	ClassErrorContainer = "error-container"
	ClassError          = "error"
)

// Props are the render inputs of a field.
type Props struct {
	Field    Descriptor
	Binding  Binding
	Feedback Feedback
}

// View is the render-ready projection of Props. Renderers draw a View and
// never inspect Props directly.
type View struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder"`
	Value       string `json:"value"`
	InputClass  string `json:"input_class"`
	Masked      bool   `json:"masked"`
	Invalid     bool   `json:"invalid"`
	Message     string `json:"message,omitempty"`
}

// Build computes the View for p. It is a pure function of its input.
func Build(p Props) View {
	kind := p.Field.InputKind()
	view := View{
		ID:          p.Field.Name,
		Name:        p.Field.Name,
		Label:       p.Field.Label,
		Type:        string(kind),
		Placeholder: p.Field.Placeholder(),
		Value:       p.Binding.Value,
		Masked:      kind.Masked(),
	}

	classes := []string{ClassControl}
	if message, ok := Message(p.Feedback); ok {
		view.Invalid = true
		view.Message = message
		classes = append(classes, ClassInvalid)
	}
	view.InputClass = strings.Join(classes, " ")
	return view
}

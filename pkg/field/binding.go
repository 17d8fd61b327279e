package field

// Binding is the per-field slice of the form state handed to a renderer: the
// current value plus the callbacks that forward input events to the owner.
// Renderers call each callback at most once per user event.
type Binding struct {
	Value    string
	OnChange func(value string)
	OnBlur   func()
	OnFocus  func()
}

// Change forwards a new value to the owner.
func (b Binding) Change(value string) {
	if b.OnChange != nil {
		b.OnChange(value)
	}
}

// Blur forwards a blur notification to the owner.
func (b Binding) Blur() {
	if b.OnBlur != nil {
		b.OnBlur()
	}
}

// Focus forwards a focus notification to the owner.
func (b Binding) Focus() {
	if b.OnFocus != nil {
		b.OnFocus()
	}
}

// Static returns a read-only binding that reports value and drops events.
func Static(value string) Binding {
	return Binding{Value: value}
}

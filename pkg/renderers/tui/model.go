package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/render"
)

// PropsMsg replaces the props of a running Model, the terminal equivalent of
// a parent re-render.
type PropsMsg struct {
	Props field.Props
}

// Source re-reads props from their owner after the model forwarded an
// event, so feedback computed by the owner shows up immediately.
type Source func() (field.Props, error)

// Model is a Bubble Tea model for one bound field. Every keystroke that
// changes the text is forwarded through exactly one OnChange call.
type Model struct {
	props   field.Props
	options render.RenderOptions
	view    field.View
	source  Source
	styles  Styles
	help    string

	input   textinput.Model
	done    bool
	aborted bool
	err     error
}

// NewModel builds a focused model for props.
func NewModel(props field.Props, options ...Option) Model {
	cfg := newConfig(options)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = cfg.width
	ti.EchoCharacter = '•'
	ti.Focus()

	m := Model{
		options: cfg.renderOptions,
		source:  cfg.source,
		styles:  cfg.styles,
		help:    cfg.help,
		input:   ti,
	}
	m.setProps(props)
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PropsMsg:
		m.setProps(msg.Props)
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.input.Focused() {
				m.input.Blur()
				m.props.Binding.Blur()
				m.refresh()
			}
			m.done = true
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab:
			if m.input.Focused() {
				m.input.Blur()
				m.props.Binding.Blur()
				m.refresh()
				return m, nil
			}
			m.props.Binding.Focus()
			return m, m.input.Focus()
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.props.Binding.Change(after)
		m.refresh()
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	label := m.view.Label
	if label == "" {
		label = m.view.Name
	}
	b.WriteString(m.styles.Label.Render(label))
	b.WriteByte('\n')

	inputStyle := m.styles.Input
	if m.view.Invalid {
		inputStyle = m.styles.InvalidInput
	}
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteByte('\n')

	if m.view.Invalid {
		b.WriteString(m.styles.Error.Render(m.view.Message))
		b.WriteByte('\n')
	}
	if m.help != "" {
		b.WriteString(m.styles.Help.Render(m.help))
		b.WriteByte('\n')
	}
	return b.String()
}

// Value returns the text currently in the input.
func (m Model) Value() string {
	return m.input.Value()
}

// FieldView returns the view the model is drawing.
func (m Model) FieldView() field.View {
	return m.view
}

// Done reports whether the user submitted the field.
func (m Model) Done() bool {
	return m.done
}

// Aborted reports whether the user cancelled.
func (m Model) Aborted() bool {
	return m.aborted
}

// Err returns the last error reported by the props source.
func (m Model) Err() error {
	return m.err
}

func (m *Model) setProps(props field.Props) {
	m.props = props
	m.view = render.View(props, m.options)

	if m.view.Masked {
		m.input.EchoMode = textinput.EchoPassword
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}
	m.input.Placeholder = m.view.Placeholder
	if m.input.Value() != m.view.Value {
		m.input.SetValue(m.view.Value)
	}
}

func (m *Model) refresh() {
	if m.source == nil {
		return
	}
	props, err := m.source()
	if err != nil {
		m.err = err
		return
	}
	m.setProps(props)
}

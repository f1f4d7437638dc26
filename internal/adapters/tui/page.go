package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field is one editable element on the demo page
type field struct {
	id    int
	label string
	multi bool
	input textinput.Model
	area  textarea.Model
}

func newTextField(id int, label, placeholder string) *field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	return &field{id: id, label: label, input: in}
}

func newTextArea(id int, label, placeholder string) *field {
	ar := textarea.New()
	ar.Placeholder = placeholder
	ar.SetHeight(6)
	return &field{id: id, label: label, multi: true, area: ar}
}

func (f *field) value() string {
	if f.multi {
		return f.area.Value()
	}
	return f.input.Value()
}

func (f *field) setValue(text string) {
	if f.multi {
		f.area.SetValue(text)
		return
	}
	f.input.SetValue(text)
}

func (f *field) focus() tea.Cmd {
	if f.multi {
		return f.area.Focus()
	}
	return f.input.Focus()
}

func (f *field) blur() {
	if f.multi {
		f.area.Blur()
		return
	}
	f.input.Blur()
}

func (f *field) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.multi {
		f.area, cmd = f.area.Update(msg)
	} else {
		f.input, cmd = f.input.Update(msg)
	}
	return cmd
}

func (f *field) view() string {
	if f.multi {
		return f.area.View()
	}
	return f.input.View()
}

func (f *field) setWidth(w int) {
	if f.multi {
		f.area.SetWidth(w)
		return
	}
	f.input.Width = w
}

// page holds the demo form's editable fields. It stands in for the
// host document: fields can be removed while an edit session is open,
// which invalidates outstanding element references.
type page struct {
	fields  []*field
	focused int
}

func newPage() *page {
	p := &page{
		fields: []*field{
			newTextField(1, "Subject", "what is this about"),
			newTextField(2, "Tags", "comma, separated"),
			newTextArea(3, "Body", "longer text, best edited in $EDITOR"),
		},
	}
	return p
}

// focusedField returns the field with input focus, or nil when the
// page has none left.
func (p *page) focusedField() *field {
	if len(p.fields) == 0 {
		return nil
	}
	return p.fields[p.focused]
}

// lookup resolves a field id to the live field, or nil if it was
// removed.
func (p *page) lookup(id int) *field {
	for _, f := range p.fields {
		if f.id == id {
			return f
		}
	}
	return nil
}

func (p *page) focusFirst() tea.Cmd {
	if f := p.focusedField(); f != nil {
		return f.focus()
	}
	return nil
}

func (p *page) focusNext() tea.Cmd {
	if len(p.fields) == 0 {
		return nil
	}
	p.fields[p.focused].blur()
	p.focused = (p.focused + 1) % len(p.fields)
	return p.fields[p.focused].focus()
}

// removeFocused drops the focused field from the page. Any element
// reference still pointing at it stops resolving.
func (p *page) removeFocused() tea.Cmd {
	if len(p.fields) == 0 {
		return nil
	}
	p.fields = append(p.fields[:p.focused], p.fields[p.focused+1:]...)
	if len(p.fields) == 0 {
		p.focused = 0
		return nil
	}
	if p.focused >= len(p.fields) {
		p.focused = len(p.fields) - 1
	}
	return p.fields[p.focused].focus()
}

func (p *page) setWidth(w int) {
	for _, f := range p.fields {
		f.setWidth(w)
	}
}

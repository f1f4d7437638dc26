package tui

import "fieldedit/internal/domain"

// elementRef implements ports.Element as a weak reference into the
// page: it resolves the field by id on every access, so a removed
// field makes the reference invalid rather than dangling.
type elementRef struct {
	page *page
	id   int
}

func (e *elementRef) resolve() *field {
	return e.page.lookup(e.id)
}

func (e *elementRef) Text() string {
	if f := e.resolve(); f != nil {
		return f.value()
	}
	return ""
}

// SetText receives an escaped literal and interprets its escape
// sequences, reconstituting the text the user edited.
func (e *elementRef) SetText(escaped string) {
	if f := e.resolve(); f != nil {
		f.setValue(domain.Interpret(escaped))
	}
}

func (e *elementRef) IsValid() bool {
	return e.resolve() != nil
}

package ports

// Element is a reference to an editable text element owned by the host
// page. It is a weak reference: the element may disappear (the page
// navigated, the field was removed) while a caller still holds it, so
// IsValid must be re-checked before every write.
type Element interface {
	// Text returns the element's current text content, or "" if it has
	// none.
	Text() string

	// SetText injects an escaped literal into the element. The element
	// interprets the escape sequences of its injection context, so the
	// text the user ends up seeing is the unescaped form.
	SetText(escaped string)

	// IsValid reports whether the element still resolves to a live
	// node on the page.
	IsValid() bool
}

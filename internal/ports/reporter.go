package ports

// MessageReporter is the host's user-facing message surface. Edit
// session outcomes are reported here, never returned across the host
// boundary.
type MessageReporter interface {
	Info(msg string)
	Error(err error)
}

package tui

// statusLine implements ports.MessageReporter as the app's message
// surface. The bridge reports session outcomes here and View renders
// the latest one.
type statusLine struct {
	text  string
	isErr bool
}

func (s *statusLine) Info(msg string) {
	s.text = msg
	s.isErr = false
}

func (s *statusLine) Error(err error) {
	s.text = err.Error()
	s.isErr = true
}

func (s *statusLine) clear() {
	s.text = ""
	s.isErr = false
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"fieldedit/internal/adapters/tui/styles"
	"fieldedit/internal/application"
	"fieldedit/internal/ports"
)

// KeyMap defines key bindings for the app
type KeyMap struct {
	NextField   key.Binding
	OpenEditor  key.Binding
	RemoveField key.Binding
	Quit        key.Binding
}

var Keys = KeyMap{
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	OpenEditor: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "open external editor"),
	),
	RemoveField: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "remove field"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// editorFinishedMsg re-enters the update loop when the external
// editor process has terminated.
type editorFinishedMsg struct {
	session *application.Session
	err     error
}

// App is the demo host: a page of editable fields whose focused field
// can be handed to the external editor.
type App struct {
	bridge *application.Bridge
	page   *page
	status *statusLine

	width  int
	height int
}

// NewApp creates the TUI application
func NewApp(opener ports.EditorOpener, temps ports.TempFileProvider, log *zap.Logger) *App {
	status := &statusLine{}
	return &App{
		bridge: application.NewBridge(opener, temps, status, log),
		page:   newPage(),
		status: status,
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.page.focusFirst())
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.page.setWidth(msg.Width - 8)
		return a, nil

	case editorFinishedMsg:
		// Runs on the single update goroutine, so the write-back into
		// the field needs no synchronization.
		a.bridge.Finish(msg.session, application.ExitStateFromError(msg.err))
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, Keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, Keys.NextField):
			a.status.clear()
			return a, a.page.focusNext()

		case key.Matches(msg, Keys.OpenEditor):
			return a, a.openEditor()

		case key.Matches(msg, Keys.RemoveField):
			a.status.clear()
			return a, a.page.removeFocused()
		}
	}

	if f := a.page.focusedField(); f != nil {
		return a, f.update(msg)
	}
	return a, nil
}

// openEditor starts an edit session for the focused field and hands
// the editor command to the runtime, which suspends the TUI, runs the
// process, and delivers the wait result back as an editorFinishedMsg.
func (a *App) openEditor() tea.Cmd {
	session, err := a.bridge.StartEdit(a.focusedElement())
	if err != nil {
		a.status.Error(err)
		return nil
	}
	return tea.ExecProcess(session.Cmd(), func(err error) tea.Msg {
		return editorFinishedMsg{session: session, err: err}
	})
}

// focusedElement wraps the focused field in a weak element reference,
// or returns nil when the page has no fields left.
func (a *App) focusedElement() ports.Element {
	f := a.page.focusedField()
	if f == nil {
		return nil
	}
	return &elementRef{page: a.page, id: f.id}
}

// View renders the page
func (a *App) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("fieldedit"))
	b.WriteString("\n")

	for i, f := range a.page.fields {
		label := styles.Label
		if i == a.page.focused {
			label = styles.LabelFocused
		}
		b.WriteString(label.Render(f.label))
		b.WriteString("\n")
		b.WriteString(f.view())
		b.WriteString("\n")
	}
	if len(a.page.fields) == 0 {
		b.WriteString(styles.Label.Render("(all fields removed)"))
		b.WriteString("\n")
	}

	if a.status.text != "" {
		style := styles.Status
		if a.status.isErr {
			style = styles.StatusError
		}
		b.WriteString(style.Render(a.status.text))
		b.WriteString("\n")
	}

	b.WriteString(styles.Help.Render(
		"tab: next field • ctrl+e: external editor • ctrl+d: remove field • esc: quit"))
	return styles.App.Render(b.String())
}

package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"fieldedit/internal/adapters/editor"
	"fieldedit/internal/adapters/tempfile"
	"fieldedit/internal/adapters/tui"
	"fieldedit/internal/config"
	"fieldedit/internal/logging"
)

var (
	editorCmd string
	logFile   string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "fieldedit",
	Short: "Edit form fields in your external editor",
	Long: `fieldedit shows a page of editable form fields and bridges the
focused field to an external text editor: the field's content is
written to a temporary file, the editor is opened on it, and when the
editor exits cleanly the edited text is written back into the field.

The editor is taken from --editor, FIELDEDIT_EDITOR, $EDITOR or
$VISUAL; a {} in the command is replaced by the temporary file path.`,
	RunE: func(cobraCmd *cobra.Command, args []string) error {
		log, err := logging.New(logFile, debug)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer func() { _ = log.Sync() }()

		app := tui.NewApp(editor.NewOpener(editorCmd), tempfile.NewProvider(), log)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running UI: %w", err)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&editorCmd, "editor", "e", config.EditorCommand(),
		"editor command, {} is replaced by the file to edit")
	rootCmd.Flags().StringVar(&logFile, "log-file", config.LogFile(),
		"write logs to this file")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log at debug level")
}

package editor

import (
	"strings"
	"testing"
)

func TestCommand_PlaceholderSubstitution(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     string
		wantExe  string
		wantArgs []string
	}{
		{
			name:     "placeholder replaced in its argument",
			template: "gvim -f {}",
			path:     "/tmp/edit-1.txt",
			wantExe:  "gvim",
			wantArgs: []string{"-f", "/tmp/edit-1.txt"},
		},
		{
			name:     "placeholder inside a larger argument",
			template: "myedit --file={}",
			path:     "/tmp/edit-2.txt",
			wantExe:  "myedit",
			wantArgs: []string{"--file=/tmp/edit-2.txt"},
		},
		{
			name:     "placeholder in several arguments",
			template: "diffedit {} --against {}",
			path:     "/tmp/edit-3.txt",
			wantExe:  "diffedit",
			wantArgs: []string{"/tmp/edit-3.txt", "--against", "/tmp/edit-3.txt"},
		},
		{
			name:     "no placeholder appends the path",
			template: "nano",
			path:     "/tmp/edit-4.txt",
			wantExe:  "nano",
			wantArgs: []string{"/tmp/edit-4.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := NewOpener(tt.template).Command(tt.path)
			if err != nil {
				t.Fatalf("Command failed: %v", err)
			}
			if got := cmd.Args[0]; !strings.HasSuffix(got, tt.wantExe) {
				t.Errorf("executable = %q, want %q", got, tt.wantExe)
			}
			gotArgs := cmd.Args[1:]
			if len(gotArgs) != len(tt.wantArgs) {
				t.Fatalf("args = %v, want %v", gotArgs, tt.wantArgs)
			}
			for i := range gotArgs {
				if gotArgs[i] != tt.wantArgs[i] {
					t.Errorf("arg[%d] = %q, want %q", i, gotArgs[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestCommand_FallsBackToEditorEnv(t *testing.T) {
	t.Setenv("EDITOR", "ed -s {}")
	t.Setenv("VISUAL", "")

	cmd, err := NewOpener("").Command("/tmp/f.txt")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	want := []string{"-s", "/tmp/f.txt"}
	gotArgs := cmd.Args[1:]
	if len(gotArgs) != len(want) || gotArgs[0] != want[0] || gotArgs[1] != want[1] {
		t.Errorf("args = %v, want %v", gotArgs, want)
	}
}

func TestCommand_VisualWhenNoEditor(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "myvisual")

	cmd, err := NewOpener("").Command("/tmp/f.txt")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.HasSuffix(cmd.Args[0], "myvisual") {
		t.Errorf("executable = %q, want myvisual", cmd.Args[0])
	}
}

func TestCommand_TemplateWinsOverEnv(t *testing.T) {
	t.Setenv("EDITOR", "ed")

	cmd, err := NewOpener("mine {}").Command("/tmp/f.txt")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if !strings.HasSuffix(cmd.Args[0], "mine") {
		t.Errorf("executable = %q, want mine", cmd.Args[0])
	}
}

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func commandNames(cmds []*cobra.Command) map[string]bool {
	names := make(map[string]bool, len(cmds))
	for _, cmd := range cmds {
		names[cmd.Name()] = true
	}
	return names
}

func TestNewRootCommandRegistersCommands(t *testing.T) {
	t.Parallel()

	root := NewRootCommand()
	names := commandNames(root.Commands())

	for _, name := range []string{"issue", "project", "user", "serve", "mcp"} {
		if !names[name] {
			t.Fatalf("command %q not registered", name)
		}
	}

	if root.PersistentFlags().Lookup("config") == nil {
		t.Fatalf("--config flag not registered")
	}
}

func TestIssueCommandSubcommands(t *testing.T) {
	t.Parallel()

	root := NewRootCommand()

	var names map[string]bool
	for _, cmd := range root.Commands() {
		if cmd.Name() == "issue" {
			names = commandNames(cmd.Commands())
		}
	}
	if names == nil {
		t.Fatalf("issue command not registered")
	}

	for _, name := range []string{"get", "create", "create-by-name", "list-types", "update", "assign", "transitions", "transition", "comment"} {
		if !names[name] {
			t.Fatalf("issue subcommand %q not registered", name)
		}
	}
}

func TestProjectVersionsFlagsMutuallyExclusive(t *testing.T) {
	t.Parallel()

	root := NewRootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"project", "versions", "PROJ", "--released", "--unreleased"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Fatalf("unexpected error: %v", err)
	}
}

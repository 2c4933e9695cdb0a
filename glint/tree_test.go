//nolint:testpackage // using package name 'glint' to access unexported fields for testing
package glint

import "testing"

func noop(CommandInput) int { return 0 }

// TestSanitizePath tests per-segment trimming and empty segment dropping
func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want []string
	}{
		{"clean", []string{"remote", "add"}, []string{"remote", "add"}},
		{"whitespace trimmed", []string{"  remote ", "\tadd"}, []string{"remote", "add"}},
		{"empty segments dropped", []string{"", "remote", "  ", "add"}, []string{"remote", "add"}},
		{"all empty", []string{"", " "}, []string{}},
		{"nil", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizePath(tt.path)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

// TestInsertCreatesRoutingNodes tests that missing intermediate segments
// become payload-free routing nodes
func TestInsertCreatesRoutingNodes(t *testing.T) {
	app := New[int]().Add([]string{"remote", "add"}, NewCommand(noop))

	remote, ok := app.root.children["remote"]
	if !ok {
		t.Fatal("Expected intermediate 'remote' node to exist")
	}
	if remote.cmd != nil {
		t.Error("Expected intermediate node to be a pure routing node")
	}
	add, ok := remote.children["add"]
	if !ok {
		t.Fatal("Expected terminal 'add' node to exist")
	}
	if add.cmd == nil {
		t.Error("Expected terminal node to carry the command payload")
	}
}

// TestInsertReplacesPayloadKeepsSubtree tests that re-adding a path swaps
// the payload without clearing previously attached subcommands
func TestInsertReplacesPayloadKeepsSubtree(t *testing.T) {
	app := New[int]().
		Add([]string{"remote"}, NewCommand(noop).Description("old")).
		Add([]string{"remote", "add"}, NewCommand(noop)).
		Add([]string{"remote"}, NewCommand(noop).Description("new"))

	remote := app.root.children["remote"]
	if remote.cmd == nil || remote.cmd.description != "new" {
		t.Error("Expected re-add to replace the payload")
	}
	if _, ok := remote.children["add"]; !ok {
		t.Error("Expected existing subcommand to survive a payload replacement")
	}
}

// TestAddEmptyPathSetsRoot tests that an empty path attaches the root command
func TestAddEmptyPathSetsRoot(t *testing.T) {
	app := New[int]().Add(nil, NewCommand(noop).Description("root"))
	if app.root.cmd == nil || app.root.cmd.description != "root" {
		t.Error("Expected empty path to set the root command payload")
	}
}

// TestAddIsPersistent tests copy-on-write: a derived tree does not leak new
// nodes into the tree it was derived from
func TestAddIsPersistent(t *testing.T) {
	base := New[int]().Add([]string{"one"}, NewCommand(noop))
	derived := base.Add([]string{"one", "two"}, NewCommand(noop))

	if _, ok := derived.root.children["one"].children["two"]; !ok {
		t.Fatal("Expected derived tree to contain the new node")
	}
	if _, ok := base.root.children["one"].children["two"]; ok {
		t.Error("Expected base tree to be unaffected by a derived Add")
	}
}

// TestGlobalFlagIsPersistent tests copy-on-write for the global flag map
func TestGlobalFlagIsPersistent(t *testing.T) {
	base := New[int]()
	derived := base.GlobalFlag("verbose", BoolFlag(false, ""))

	if _, ok := derived.globalFlags["verbose"]; !ok {
		t.Fatal("Expected derived app to carry the global flag")
	}
	if _, ok := base.globalFlags["verbose"]; ok {
		t.Error("Expected base app's global flags to be unaffected")
	}
}

// TestReservedHelpFlagIgnored tests that neither global nor local flags may
// shadow the reserved help flag
func TestReservedHelpFlagIgnored(t *testing.T) {
	app := New[int]().GlobalFlag("help", BoolFlag(false, "shadow"))
	if _, ok := app.globalFlags["help"]; ok {
		t.Error("Expected global 'help' flag registration to be ignored")
	}

	cmd := NewCommand(noop).Flag("help", BoolFlag(false, "shadow"))
	if _, ok := cmd.flags["help"]; ok {
		t.Error("Expected local 'help' flag registration to be ignored")
	}
}

// Package glint builds command-line interfaces from a declarative tree of
// named subcommands and typed, constrained flags. An App is a persistent
// value: every builder call returns a new logical tree state, so a fully
// built App can be executed concurrently without synchronization.
package glint

import (
	"fmt"
	"os"

	glintio "github.com/czepluch/glint/io"
)

// App is the command tree builder and execution entry point. The type
// parameter T is the handler return type; it flows through unchanged from
// tree construction to the Out result of Execute.
type App[T any] struct {
	config      Config
	globalFlags FlagMap
	root        node[T]
	io          *glintio.IOManager
}

// New returns an empty command tree with default configuration
func New[T any]() App[T] {
	return App[T]{
		globalFlags: make(FlagMap),
		root:        newNode[T](),
		io:          glintio.New(),
	}
}

// WithConfig replaces the app configuration
func (a App[T]) WithConfig(config Config) App[T] {
	a.config = config
	return a
}

// WithName sets the application display name used in usage lines
func (a App[T]) WithName(name string) App[T] {
	a.config.Name = name
	return a
}

// WithPrettyHelp enables themed help and error output
func (a App[T]) WithPrettyHelp(theme Theme) App[T] {
	a.config.PrettyHelp = &theme
	return a
}

// AsModule renders usage lines as a module invocation ("go run <name>")
// rather than an installed binary
func (a App[T]) AsModule() App[T] {
	a.config.AsModule = true
	return a
}

// WithIO replaces the IO manager used by Run and RunAndHandle
func (a App[T]) WithIO(manager *glintio.IOManager) App[T] {
	a.io = manager
	return a
}

// Add attaches cmd at the given path, creating routing nodes for missing
// intermediate segments. Path segments are trimmed of whitespace and empty
// segments are dropped; an empty path sets the root command. Adding at an
// existing path replaces its payload but keeps previously attached
// subcommands.
func (a App[T]) Add(path []string, cmd Command[T]) App[T] {
	a.root = a.root.insert(sanitizePath(path), cmd)
	return a
}

// GlobalFlag adds a flag available to every command in the tree. A
// command-local flag of the same name overrides it. The name "help" is
// reserved and ignored.
func (a App[T]) GlobalFlag(name string, flag Flag) App[T] {
	if name == helpFlagName {
		return a
	}
	flags := make(FlagMap, len(a.globalFlags)+1)
	for n, f := range a.globalFlags {
		flags[n] = f
	}
	flags[name] = flag
	a.globalFlags = flags
	return a
}

type resultKind int

const (
	resultOut resultKind = iota
	resultHelp
)

// Result is the successful outcome of Execute: either the handler's return
// value (Out) or rendered help text. Help is a success, not an error.
type Result[T any] struct {
	kind resultKind
	out  T
	help string
}

func outResult[T any](value T) Result[T] {
	return Result[T]{kind: resultOut, out: value}
}

func helpResult[T any](text string) Result[T] {
	return Result[T]{kind: resultHelp, help: text}
}

// Out returns the handler's return value when the command ran
func (r Result[T]) Out() (T, bool) {
	return r.out, r.kind == resultOut
}

// Help returns the rendered help text when help was requested
func (r Result[T]) Help() (string, bool) {
	return r.help, r.kind == resultHelp
}

// Run executes args, printing help or a diagnostic to the app's IO streams,
// and returns the mapped exit code. The success value is discarded; use
// RunAndHandle to receive it.
func (a App[T]) Run(args []string) int {
	return a.RunAndHandle(args, nil)
}

// RunAndHandle executes args like Run and additionally forwards the
// handler's return value to handle when the command ran successfully.
func (a App[T]) RunAndHandle(args []string, handle func(T)) int {
	result, err := a.Execute(args)
	if err != nil {
		a.printError(err)
		return ExitCode(err)
	}
	if help, ok := result.Help(); ok {
		fmt.Fprintln(a.io.Out(), help)
		return exitSuccess
	}
	if handle != nil {
		out, _ := result.Out()
		handle(out)
	}
	return exitSuccess
}

// RunAndExit executes args and terminates the process with the mapped exit
// code. Equivalent to os.Exit(a.Run(args)).
func (a App[T]) RunAndExit(args []string) {
	os.Exit(a.Run(args))
}

// printError renders a diagnostic with optional suggestion to stderr
func (a App[T]) printError(err error) {
	banner := "Error: " + err.Error()
	if a.config.PrettyHelp != nil && a.io.ColorEnabled() {
		banner = a.config.PrettyHelp.Error.Render(banner)
	}
	fmt.Fprintln(a.io.Err(), banner)
	if e, ok := err.(*Error); ok && e.Suggestion != "" {
		fmt.Fprintf(a.io.Err(), "  Did you mean '%s'?\n", e.Suggestion)
	}
}

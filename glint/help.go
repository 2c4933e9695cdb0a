package glint

import (
	"sort"
	"strconv"
	"strings"
)

// helpFlagDescription is the listing text for the implicit --help flag
const helpFlagDescription = "Print help information"

// renderHelp assembles the help text for a resolved node. It is a pure
// function of the accumulated path, the node, the global flags and the app
// configuration; it computes no core state.
func (a App[T]) renderHelp(path []string, current node[T]) string {
	theme := a.config.PrettyHelp
	heading := func(s string) string {
		if theme != nil {
			return theme.Heading.Render(s)
		}
		return s
	}

	var b strings.Builder

	local := FlagMap{}
	if current.cmd != nil {
		local = current.cmd.flags
		if current.cmd.description != "" {
			b.WriteString(current.cmd.description)
			b.WriteString("\n\n")
		}
	}
	merged := mergeFlags(a.globalFlags, local)

	b.WriteString(heading("Usage:"))
	b.WriteString("\n  ")
	b.WriteString(a.usageLine(path, current))
	b.WriteString("\n")

	a.writeFlagSection(&b, heading("Flags:"), merged)
	a.writeSubcommandSection(&b, heading("Subcommands:"), current)

	return strings.TrimRight(b.String(), "\n")
}

// usageLine renders the invocation synopsis: runner, name, path, named
// argument tokens, arity placeholders and the flags marker.
func (a App[T]) usageLine(path []string, current node[T]) string {
	parts := make([]string, 0, len(path)+4)
	if a.config.AsModule {
		parts = append(parts, "go run")
	}
	if a.config.Name != "" {
		parts = append(parts, a.config.Name)
	}
	parts = append(parts, path...)

	var named []string
	var count *ArgsCount
	if current.cmd != nil {
		named = current.cmd.named
		count = current.cmd.count
	}
	for _, name := range named {
		parts = append(parts, "<"+name+">")
	}
	if count != nil {
		remaining := count.count - len(named)
		switch {
		case remaining == 1:
			parts = append(parts, "<arg>")
		case remaining > 1:
			parts = append(parts, "<"+strconv.Itoa(remaining)+" args>")
		}
		if count.open() {
			parts = append(parts, "...")
		}
	}

	parts = append(parts, "[flags]")
	return strings.Join(parts, " ")
}

// flagRow is a single pre-computed flag listing entry
type flagRow struct {
	display     string // e.g. "--port=<int>"
	description string
	fallback    string // default value text, may be empty
}

// writeFlagSection emits the sorted, width-aligned flag listing including
// the implicit --help flag.
func (a App[T]) writeFlagSection(b *strings.Builder, heading string, merged FlagMap) {
	names := make([]string, 0, len(merged)+1)
	for name := range merged {
		names = append(names, name)
	}
	names = append(names, helpFlagName)
	sort.Strings(names)

	rows := make([]flagRow, 0, len(names))
	width := 0
	for _, name := range names {
		var row flagRow
		if name == helpFlagName {
			row = flagRow{display: flagPrefix + helpFlagName, description: helpFlagDescription}
		} else {
			flag := merged[name]
			display := flagPrefix + name
			if flag.Kind() != FlagKindBool {
				display += "=<" + string(flag.Kind()) + ">"
			}
			row = flagRow{display: display, description: flag.Description(), fallback: flag.defaultText()}
		}
		if len(row.display) > width {
			width = len(row.display)
		}
		rows = append(rows, row)
	}

	b.WriteString("\n")
	b.WriteString(heading)
	b.WriteString("\n")
	for _, row := range rows {
		display := row.display
		if a.config.PrettyHelp != nil {
			display = a.config.PrettyHelp.Flag.Render(display)
		}
		b.WriteString("  ")
		b.WriteString(display)
		b.WriteString(strings.Repeat(" ", width-len(row.display)))
		if row.description != "" {
			b.WriteString("  ")
			b.WriteString(row.description)
		}
		if row.fallback != "" {
			b.WriteString(" (default: ")
			b.WriteString(row.fallback)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
}

// writeSubcommandSection emits the sorted subcommand listing; routing-only
// children list with an empty description.
func (a App[T]) writeSubcommandSection(b *strings.Builder, heading string, current node[T]) {
	if len(current.children) == 0 {
		return
	}

	names := make([]string, 0, len(current.children))
	width := 0
	for name := range current.children {
		names = append(names, name)
		if len(name) > width {
			width = len(name)
		}
	}
	sort.Strings(names)

	b.WriteString("\n")
	b.WriteString(heading)
	b.WriteString("\n")
	for _, name := range names {
		child := current.children[name]
		display := name
		if a.config.PrettyHelp != nil {
			display = a.config.PrettyHelp.Subcommand.Render(display)
		}
		b.WriteString("  ")
		b.WriteString(display)
		if child.cmd != nil && child.cmd.description != "" {
			b.WriteString(strings.Repeat(" ", width-len(name)))
			b.WriteString("  ")
			b.WriteString(child.cmd.description)
		}
		b.WriteString("\n")
	}
}

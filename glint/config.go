package glint

import glintio "github.com/czepluch/glint/io"

// Theme holds the styles the pretty-help renderer and the Run error printer
// apply. Attach one via WithPrettyHelp; without a theme all output is plain
// text.
type Theme struct {
	// Heading styles section headings such as "Usage:" and "Flags:"
	Heading glintio.Style
	// Subcommand styles subcommand names in listings
	Subcommand glintio.Style
	// Flag styles flag names in listings and usage lines
	Flag glintio.Style
	// Error styles the banner printed for failed runs
	Error glintio.Style
}

// DefaultTheme returns the stock pretty-help theme
func DefaultTheme() Theme {
	return Theme{
		Heading:    glintio.NewStyle().Foreground(glintio.Cyan).Bold(),
		Subcommand: glintio.NewStyle().Foreground(glintio.Green),
		Flag:       glintio.NewStyle().Foreground(glintio.Yellow),
		Error:      glintio.NewStyle().Foreground(glintio.Red).Bold(),
	}
}

// Config carries per-builder display settings. It has no independent
// lifecycle: it is copied by value into every derived builder state.
type Config struct {
	// Name is the application display name used in usage lines
	Name string
	// PrettyHelp enables themed help output when non-nil
	PrettyHelp *Theme
	// AsModule prefixes usage lines with the module runner invocation
	// ("go run") instead of treating Name as an installed binary
	AsModule bool
}

package glintio

import (
	"fmt"
	"strings"
)

// ColorSpec represents a color in one of three spaces: basic (16), indexed
// (256), or truecolor (RGB)
type ColorSpec struct {
	kind    int // 1=basic, 2=indexed, 3=truecolor
	index   int // for basic (0-15) and indexed (0-255)
	r, g, b uint8
}

func basic(index int) ColorSpec {
	return ColorSpec{kind: 1, index: index}
}

// Indexed returns a color from the 256-color palette
func Indexed(index int) ColorSpec {
	return ColorSpec{kind: 2, index: index}
}

// Truecolor returns an RGB color
func Truecolor(r, g, b uint8) ColorSpec {
	return ColorSpec{kind: 3, r: r, g: g, b: b}
}

// Basic color helpers (0-7 normal, 8-15 bright)
var (
	Black   = basic(0)
	Red     = basic(1)
	Green   = basic(2)
	Yellow  = basic(3)
	Blue    = basic(4)
	Magenta = basic(5)
	Cyan    = basic(6)
	White   = basic(7)

	BrightBlack   = basic(8)
	BrightRed     = basic(9)
	BrightGreen   = basic(10)
	BrightYellow  = basic(11)
	BrightBlue    = basic(12)
	BrightMagenta = basic(13)
	BrightCyan    = basic(14)
	BrightWhite   = basic(15)
)

// foregroundCode returns the SGR parameters selecting the color as a
// foreground color
func (c ColorSpec) foregroundCode() string {
	switch c.kind {
	case 1:
		if c.index < 8 {
			return fmt.Sprintf("%d", 30+c.index)
		}
		return fmt.Sprintf("%d", 90+c.index-8)
	case 2:
		return fmt.Sprintf("38;5;%d", c.index)
	case 3:
		return fmt.Sprintf("38;2;%d;%d;%d", c.r, c.g, c.b)
	}
	return ""
}

// Style is a renderable combination of a foreground color and text
// attributes. The zero Style renders text unchanged.
type Style struct {
	fg     ColorSpec
	hasFg  bool
	bold   bool
	italic bool
}

// NewStyle returns an empty style
func NewStyle() Style {
	return Style{}
}

// Foreground sets the style's foreground color
func (s Style) Foreground(c ColorSpec) Style {
	s.fg = c
	s.hasFg = true
	return s
}

// Bold enables the bold attribute
func (s Style) Bold() Style {
	s.bold = true
	return s
}

// Italic enables the italic attribute
func (s Style) Italic() Style {
	s.italic = true
	return s
}

// Render wraps text in the ANSI escape sequence for the style. A zero style
// returns the text untouched.
func (s Style) Render(text string) string {
	var params []string
	if s.bold {
		params = append(params, "1")
	}
	if s.italic {
		params = append(params, "3")
	}
	if s.hasFg {
		params = append(params, s.fg.foregroundCode())
	}
	if len(params) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(params, ";") + "m" + text + "\x1b[0m"
}

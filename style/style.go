// Package style provides a functional API for composing lipgloss styles in CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nst-sdc/themekit/color"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Colored initializes a new style with the specified foreground and background colors.
func Colored(fg, bg lipgloss.Color) lipgloss.Style {
	return New().Foreground(fg).Background(bg)
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(c, "").Render(s) }
}

// Bg returns a rendering function that applies the background color to a string.
func Bg(c lipgloss.Color) func(string) string {
	return func(s string) string { return Colored("", c).Render(s) }
}

var (
	Faint     = func(s string) string { return New().Faint(true).Render(s) }
	Bold      = func(s string) string { return New().Bold(true).Render(s) }
	Italic    = func(s string) string { return New().Italic(true).Render(s) }
	Underline = func(s string) string { return New().Underline(true).Render(s) }
)

// Title renders a padded banner.
var Title = func(s string) string {
	return Colored(color.New("230"), color.New("62")).Padding(0, 1).Render(s)
}

// ErrorTitle renders a padded banner in error colors.
var ErrorTitle = func(s string) string {
	return Colored(color.New("230"), color.Red).Padding(0, 1).Render(s)
}

// Tag returns a rendering function that wraps a string in a colored, padded block.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return Colored(fg, bg).Padding(0, 1).Render(s) }
}

// Contrast picks black or white text for a background hex color.
// Alpha is ignored; unparsable colors get the default foreground.
func Contrast(hex string) lipgloss.Color {
	c, err := colorful.Hex(opaque(hex))
	if err != nil {
		return ""
	}

	_, _, l := c.Hcl()
	if l > 0.6 {
		return color.New("#000000")
	}

	return color.New("#FFFFFF")
}

// Swatch renders label on the given background color.
func Swatch(hex string, width int) func(string) string {
	return func(label string) string {
		return Colored(Contrast(hex), color.New(opaque(hex))).
			Width(width).
			Padding(0, 1).
			Render(label)
	}
}

// opaque drops the alpha byte of an 8 digit hex color.
func opaque(hex string) string {
	if len(hex) == 9 && hex[0] == '#' {
		return hex[:7]
	}

	return hex
}

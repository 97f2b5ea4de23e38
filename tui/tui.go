// Package tui provides an interactive browser for the token tree.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nst-sdc/themekit/token"
)

// Options configures the browser.
type Options struct {
	Tree *token.Tree
	// Mode is the mode swatches start in.
	Mode token.Mode
}

// Run starts the browser and blocks until the user quits.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options), tea.WithAltScreen()).Run()
	return err
}

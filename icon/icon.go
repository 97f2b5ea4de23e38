// Package icon renders the status glyphs printed by CLI commands.
//
// Glyphs can be displayed as emoji, nerd-font glyphs or plain ASCII
// depending on user preference.
package icon

import (
	"github.com/nst-sdc/themekit/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns every supported glyph variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

// Get returns the glyph for the configured variant.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns the rendered glyph for i.
func Get(i Icon) string {
	return icons[i].Get()
}

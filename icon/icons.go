package icon

import (
	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/style"
)

type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Info
	Skip
	Arrow
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji: "✅",
		nerd:  style.Fg(color.Green)(""),
		plain: style.Fg(color.Green)("✓"),
	},
	Fail: {
		emoji: "❌",
		nerd:  style.Fg(color.Red)(""),
		plain: style.Fg(color.Red)("✖"),
	},
	Warn: {
		emoji: "⚠️",
		nerd:  style.Fg(color.Yellow)(""),
		plain: style.Fg(color.Yellow)("!"),
	},
	Info: {
		emoji: "ℹ️",
		nerd:  style.Fg(color.Blue)(""),
		plain: style.Fg(color.Blue)("i"),
	},
	Skip: {
		emoji: "⏭️",
		nerd:  style.Faint(""),
		plain: style.Faint("-"),
	},
	Arrow: {
		emoji: "👉",
		nerd:  style.Fg(color.Purple)(""),
		plain: style.Fg(color.Purple)("→"),
	},
}

package terminal

import (
	"github.com/nst-sdc/themekit/token"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Role is a terminal color slot and the token path that feeds it.
type Role struct {
	// Name is the renderer's key, e.g. "selectionBackground".
	Name string
	// Path is the token path, e.g. "terminal.selection.backgroundColor".
	Path string

	field func(*Theme) *mo.Option[string]
}

// Variable returns the style variable queried for the role under namespace.
func (r Role) Variable(namespace string) string {
	return token.VariableName(namespace, r.Path)
}

// Roles is the fixed set of terminal roles in renderer order.
var Roles = []Role{
	{"cursor", "terminal.cursorColor", func(t *Theme) *mo.Option[string] { return &t.Cursor }},
	{"cursorAccent", "terminal.cursorColorAccent", func(t *Theme) *mo.Option[string] { return &t.CursorAccent }},
	{"foreground", "terminal.textColor", func(t *Theme) *mo.Option[string] { return &t.Foreground }},
	{"background", "terminal.backgroundColor", func(t *Theme) *mo.Option[string] { return &t.Background }},
	{"selectionBackground", "terminal.selection.backgroundColor", func(t *Theme) *mo.Option[string] { return &t.SelectionBackground }},
	{"selectionForeground", "terminal.selection.textColor", func(t *Theme) *mo.Option[string] { return &t.SelectionForeground }},
	{"selectionInactiveBackground", "terminal.selection.backgroundColorInactive", func(t *Theme) *mo.Option[string] { return &t.SelectionInactiveBackground }},

	{"black", "terminal.color.black", func(t *Theme) *mo.Option[string] { return &t.Black }},
	{"red", "terminal.color.red", func(t *Theme) *mo.Option[string] { return &t.Red }},
	{"green", "terminal.color.green", func(t *Theme) *mo.Option[string] { return &t.Green }},
	{"yellow", "terminal.color.yellow", func(t *Theme) *mo.Option[string] { return &t.Yellow }},
	{"blue", "terminal.color.blue", func(t *Theme) *mo.Option[string] { return &t.Blue }},
	{"magenta", "terminal.color.magenta", func(t *Theme) *mo.Option[string] { return &t.Magenta }},
	{"cyan", "terminal.color.cyan", func(t *Theme) *mo.Option[string] { return &t.Cyan }},
	{"white", "terminal.color.white", func(t *Theme) *mo.Option[string] { return &t.White }},

	{"brightBlack", "terminal.color.brightBlack", func(t *Theme) *mo.Option[string] { return &t.BrightBlack }},
	{"brightRed", "terminal.color.brightRed", func(t *Theme) *mo.Option[string] { return &t.BrightRed }},
	{"brightGreen", "terminal.color.brightGreen", func(t *Theme) *mo.Option[string] { return &t.BrightGreen }},
	{"brightYellow", "terminal.color.brightYellow", func(t *Theme) *mo.Option[string] { return &t.BrightYellow }},
	{"brightBlue", "terminal.color.brightBlue", func(t *Theme) *mo.Option[string] { return &t.BrightBlue }},
	{"brightMagenta", "terminal.color.brightMagenta", func(t *Theme) *mo.Option[string] { return &t.BrightMagenta }},
	{"brightCyan", "terminal.color.brightCyan", func(t *Theme) *mo.Option[string] { return &t.BrightCyan }},
	{"brightWhite", "terminal.color.brightWhite", func(t *Theme) *mo.Option[string] { return &t.BrightWhite }},
}

// LookupRole finds a role by renderer name.
func LookupRole(name string) (Role, bool) {
	return lo.Find(Roles, func(r Role) bool { return r.Name == name })
}

// RoleNames lists every role name in renderer order.
func RoleNames() []string {
	return lo.Map(Roles, func(r Role, _ int) string { return r.Name })
}

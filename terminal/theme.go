// Package terminal turns the active style variables into the theme object a terminal renderer consumes.
//
// Unset roles stay unset: the renderer applies its own defaults.
package terminal

import (
	"encoding/json"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Theme is one snapshot of the terminal colors. Every field is optional.
type Theme struct {
	Cursor                      mo.Option[string]
	CursorAccent                mo.Option[string]
	Foreground                  mo.Option[string]
	Background                  mo.Option[string]
	SelectionBackground         mo.Option[string]
	SelectionForeground         mo.Option[string]
	SelectionInactiveBackground mo.Option[string]

	Black   mo.Option[string]
	Red     mo.Option[string]
	Green   mo.Option[string]
	Yellow  mo.Option[string]
	Blue    mo.Option[string]
	Magenta mo.Option[string]
	Cyan    mo.Option[string]
	White   mo.Option[string]

	BrightBlack   mo.Option[string]
	BrightRed     mo.Option[string]
	BrightGreen   mo.Option[string]
	BrightYellow  mo.Option[string]
	BrightBlue    mo.Option[string]
	BrightMagenta mo.Option[string]
	BrightCyan    mo.Option[string]
	BrightWhite   mo.Option[string]
}

// Get returns the value of a role.
func (t Theme) Get(r Role) mo.Option[string] {
	return *r.field(&t)
}

// Map returns the set roles keyed by role name.
func (t Theme) Map() map[string]string {
	out := make(map[string]string)
	for _, r := range Roles {
		if v, ok := t.Get(r).Get(); ok {
			out[r.Name] = v
		}
	}
	return out
}

// MarshalJSON encodes the set roles only, e.g. {"background":"#18181B"}.
func (t Theme) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Map())
}

// IsEmpty reports whether no role is set.
func (t Theme) IsEmpty() bool {
	return lo.NoneBy(Roles, func(r Role) bool { return t.Get(r).IsPresent() })
}

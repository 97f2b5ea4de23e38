package token

import (
	"fmt"

	"github.com/nst-sdc/themekit/constant"
)

// Mode selects which half of a token applies.
type Mode string

const (
	Light Mode = constant.ModeLight
	Dark  Mode = constant.ModeDark
)

// Modes lists both modes in emission order.
var Modes = []Mode{Light, Dark}

// ParseMode accepts "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q, expected light or dark", s)
	}
}

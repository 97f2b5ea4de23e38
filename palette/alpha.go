// Package palette derives opacity variants from base colors and exposes the
// primitive color namespace (families plus alpha palettes) shared by the
// token tree and the stylesheet compiler.
package palette

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidColorFormat is returned when a base color is not '#' followed by exactly six hex digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// AlphaStep is an opacity percentage.
type AlphaStep int

// AlphaSteps is the fixed, ordered set of opacity steps every palette covers.
var AlphaSteps = []AlphaStep{1, 2, 3, 4, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// Byte returns the alpha channel value for the step, rounded half up.
func (s AlphaStep) Byte() uint8 {
	return uint8(math.Round(float64(s) / 100 * 255))
}

// Palette maps every AlphaStep to the base color with that opacity appended.
type Palette map[AlphaStep]string

// Generate derives the alpha palette of baseHex. The base digits are kept
// verbatim, including their case; only the appended alpha byte is lowercase.
func Generate(baseHex string) (Palette, error) {
	if err := validate(baseHex); err != nil {
		return nil, err
	}

	p := make(Palette, len(AlphaSteps))
	for _, step := range AlphaSteps {
		p[step] = fmt.Sprintf("%s%02x", baseHex, step.Byte())
	}
	return p, nil
}

func validate(hex string) error {
	if len(hex) != 7 || !IsHex(hex) {
		return fmt.Errorf("%w: %q is not #RRGGBB", ErrInvalidColorFormat, hex)
	}
	return nil
}

// IsHex reports whether s is '#' followed by six (RGB) or eight (RGBA) hex digits.
func IsHex(s string) bool {
	if (len(s) != 7 && len(s) != 9) || s[0] != '#' {
		return false
	}
	return strings.Trim(s[1:], "0123456789abcdefABCDEF") == ""
}

package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

var ErrUnknownRole = errors.New("unknown terminal role")

// Overrides is a partial Theme.
// A nil field keeps the resolved value, a non-nil field replaces it,
// even when it holds None.
type Overrides struct {
	Cursor                      *mo.Option[string]
	CursorAccent                *mo.Option[string]
	Foreground                  *mo.Option[string]
	Background                  *mo.Option[string]
	SelectionBackground         *mo.Option[string]
	SelectionForeground         *mo.Option[string]
	SelectionInactiveBackground *mo.Option[string]

	Black   *mo.Option[string]
	Red     *mo.Option[string]
	Green   *mo.Option[string]
	Yellow  *mo.Option[string]
	Blue    *mo.Option[string]
	Magenta *mo.Option[string]
	Cyan    *mo.Option[string]
	White   *mo.Option[string]

	BrightBlack   *mo.Option[string]
	BrightRed     *mo.Option[string]
	BrightGreen   *mo.Option[string]
	BrightYellow  *mo.Option[string]
	BrightBlue    *mo.Option[string]
	BrightMagenta *mo.Option[string]
	BrightCyan    *mo.Option[string]
	BrightWhite   *mo.Option[string]
}

// Set returns an override that replaces a role with value.
func Set(value string) *mo.Option[string] {
	o := mo.Some(value)
	return &o
}

// Unset returns an override that clears a role.
func Unset() *mo.Option[string] {
	o := mo.None[string]()
	return &o
}

// fields lists the overrides in Roles order.
func (o *Overrides) fields() []**mo.Option[string] {
	return []**mo.Option[string]{
		&o.Cursor, &o.CursorAccent, &o.Foreground, &o.Background,
		&o.SelectionBackground, &o.SelectionForeground, &o.SelectionInactiveBackground,
		&o.Black, &o.Red, &o.Green, &o.Yellow, &o.Blue, &o.Magenta, &o.Cyan, &o.White,
		&o.BrightBlack, &o.BrightRed, &o.BrightGreen, &o.BrightYellow,
		&o.BrightBlue, &o.BrightMagenta, &o.BrightCyan, &o.BrightWhite,
	}
}

// Len returns the number of roles the overrides touch.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}

	var n int
	for _, f := range o.fields() {
		if *f != nil {
			n++
		}
	}

	return n
}

// Merge applies overrides on top of resolved and returns the result.
// Neither input is modified. nil overrides yield a copy of resolved.
func Merge(resolved Theme, overrides *Overrides) Theme {
	merged := resolved
	if overrides == nil {
		return merged
	}

	for i, f := range overrides.fields() {
		if *f == nil {
			continue
		}

		*Roles[i].field(&merged) = **f
	}

	return merged
}

// ParseOverrides reads "role=value" pairs.
// An empty value clears the role.
func ParseOverrides(pairs []string) (*Overrides, error) {
	overrides := &Overrides{}
	fields := overrides.fields()

	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("invalid override %q: expected role=value", pair)
		}

		name = strings.TrimSpace(name)
		index := roleIndex(name)
		if index < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRole, name)
		}

		value = strings.TrimSpace(value)
		if value == "" {
			*fields[index] = Unset()
		} else {
			*fields[index] = Set(value)
		}
	}

	return overrides, nil
}

func roleIndex(name string) int {
	_, index, _ := lo.FindIndexOf(Roles, func(r Role) bool { return r.Name == name })
	return index
}

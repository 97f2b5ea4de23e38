package token

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/nst-sdc/themekit/palette"
	"github.com/samber/lo"
)

// Kind classifies a token value.
type Kind int

const (
	// Literal is a concrete color written verbatim: a hex code or a keyword like transparent.
	Literal Kind = iota
	// Primitive references a family step or alpha palette entry.
	Primitive
	// Alias references another token by path.
	Alias
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Primitive:
		return "primitive"
	case Alias:
		return "alias"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// AliasPrefix marks a value that refers to another token.
const AliasPrefix = "$"

var keywords = []string{"transparent", "currentColor", "inherit"}

// Value is one side (light or dark) of a token.
type Value struct {
	Kind Kind `json:"kind"`
	// Ref is the value as written, without the alias prefix.
	Ref string `json:"ref"`
	// Color is the concrete color for literals and primitives. Empty for aliases.
	Color string `json:"color,omitempty"`
}

func (v Value) String() string {
	if v.Kind == Alias {
		return AliasPrefix + v.Ref
	}
	return v.Ref
}

// ParseValue classifies raw and resolves primitive references against ns.
// Alias targets are not checked here; the builder does that once every path is known.
func ParseValue(raw string, ns *palette.Namespace) (Value, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case raw == "":
		return Value{}, fmt.Errorf("%w: empty value", ErrIncompleteToken)

	case strings.HasPrefix(raw, AliasPrefix):
		target := strings.TrimPrefix(raw, AliasPrefix)
		if err := validatePath(target); err != nil {
			return Value{}, fmt.Errorf("alias %q: %w", raw, err)
		}
		return Value{Kind: Alias, Ref: target}, nil

	case strings.HasPrefix(raw, "#"):
		if !palette.IsHex(raw) {
			return Value{}, fmt.Errorf("%w: %q is not #RRGGBB or #RRGGBBAA", ErrUnknownColorReference, raw)
		}
		return Value{Kind: Literal, Ref: raw, Color: raw}, nil

	case lo.Contains(keywords, raw):
		return Value{Kind: Literal, Ref: raw, Color: raw}, nil
	}

	if c, ok := ns.Lookup(raw); ok {
		return Value{Kind: Primitive, Ref: raw, Color: c}, nil
	}

	return Value{}, fmt.Errorf("%w: %q%s", ErrUnknownColorReference, raw, suggest(raw, ns.References()))
}

// suggest returns a did-you-mean hint for the closest candidate, or nothing when none is close.
func suggest(got string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	closest := lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(got, a) < levenshtein.Distance(got, b)
	})
	if levenshtein.Distance(got, closest) > len(got)/2+1 {
		return ""
	}
	return fmt.Sprintf(", did you mean %q?", closest)
}

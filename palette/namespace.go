package palette

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nst-sdc/themekit/color"
	"github.com/samber/lo"
)

// AlphaSource names a family color an alpha palette is derived from.
// A zero Step selects the family's bare value.
type AlphaSource struct {
	Name   string
	Family string
	Step   color.Step
}

// DefaultAlphaSources are the alpha palettes exported alongside the base families.
var DefaultAlphaSources = []AlphaSource{
	{Name: "white", Family: "white"},
	{Name: "gray", Family: "gray", Step: 900},
	{Name: "blue", Family: "blue", Step: 500},
	{Name: "purple", Family: "purple", Step: 500},
	{Name: "accent", Family: "accent", Step: 500},
	{Name: "red", Family: "red", Step: 500},
}

// Namespace is the full primitive color table: base families plus generated alpha palettes.
type Namespace struct {
	families []color.Family
	alpha    map[string]Palette
	order    []string
}

// Entry is one flattened primitive, e.g. {"gray-200", "#E4E4E7"}.
type Entry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Primitives builds the namespace from the built-in families and alpha sources.
func Primitives() (*Namespace, error) {
	return NewNamespace(color.Families, DefaultAlphaSources)
}

// NewNamespace derives every alpha palette from its source family.
// A source that names an unknown family or step, or whose base is malformed, fails the whole namespace.
func NewNamespace(families []color.Family, sources []AlphaSource) (*Namespace, error) {
	ns := &Namespace{
		families: families,
		alpha:    make(map[string]Palette, len(sources)),
	}

	for _, src := range sources {
		fam, ok := lo.Find(families, func(f color.Family) bool { return f.Name == src.Family })
		if !ok {
			return nil, fmt.Errorf("alpha palette %q: unknown family %q", src.Name, src.Family)
		}

		base := fam.Bare
		if src.Step != 0 {
			base, ok = fam.Get(src.Step)
			if !ok {
				return nil, fmt.Errorf("alpha palette %q: family %q has no step %d", src.Name, src.Family, src.Step)
			}
		}

		p, err := Generate(base)
		if err != nil {
			return nil, fmt.Errorf("alpha palette %q: %w", src.Name, err)
		}

		if _, dup := ns.alpha[src.Name]; dup {
			return nil, fmt.Errorf("alpha palette %q declared twice", src.Name)
		}
		ns.alpha[src.Name] = p
		ns.order = append(ns.order, src.Name)
	}

	return ns, nil
}

// Families returns the base families in declaration order.
func (n *Namespace) Families() []color.Family {
	return n.families
}

// Alpha returns a named alpha palette.
func (n *Namespace) Alpha(name string) (Palette, bool) {
	p, ok := n.alpha[name]
	return p, ok
}

// AlphaNames returns the alpha palette names in declaration order.
func (n *Namespace) AlphaNames() []string {
	return n.order
}

// Lookup resolves a dotted primitive reference:
//
//	white            bare family value
//	gray.200         family step
//	alpha.accent.10  alpha palette entry
func (n *Namespace) Lookup(ref string) (string, bool) {
	parts := strings.Split(ref, ".")

	if parts[0] == "alpha" {
		if len(parts) != 3 {
			return "", false
		}
		p, ok := n.alpha[parts[1]]
		if !ok {
			return "", false
		}
		step, err := strconv.Atoi(parts[2])
		if err != nil {
			return "", false
		}
		v, ok := p[AlphaStep(step)]
		return v, ok
	}

	fam, ok := lo.Find(n.families, func(f color.Family) bool { return f.Name == parts[0] })
	if !ok {
		return "", false
	}

	switch len(parts) {
	case 1:
		return fam.Bare, fam.Bare != ""
	case 2:
		step, err := color.ParseStep(parts[1])
		if err != nil {
			return "", false
		}
		return fam.Get(step)
	default:
		return "", false
	}
}

// References lists every reference Lookup accepts, in namespace order.
func (n *Namespace) References() []string {
	return lo.Map(n.Flatten(), func(e Entry, _ int) string {
		return strings.ReplaceAll(e.Name, "-", ".")
	})
}

// Flatten returns every primitive as a hyphen-joined name, families first, then alpha palettes.
func (n *Namespace) Flatten() []Entry {
	var out []Entry
	for _, f := range n.families {
		if f.Bare != "" {
			out = append(out, Entry{Name: f.Name, Value: f.Bare})
		}
		for _, s := range color.Steps {
			if v, ok := f.Get(s); ok {
				out = append(out, Entry{Name: fmt.Sprintf("%s-%d", f.Name, s), Value: v})
			}
		}
	}
	for _, name := range n.order {
		p := n.alpha[name]
		for _, s := range AlphaSteps {
			out = append(out, Entry{Name: fmt.Sprintf("alpha-%s-%d", name, s), Value: p[s]})
		}
	}
	return out
}

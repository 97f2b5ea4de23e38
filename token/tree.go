package token

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Separator joins path segments.
const Separator = "."

// Descriptor is a tree leaf: one semantic token and its per-mode values.
type Descriptor struct {
	Path         string `json:"path"`
	VariableName string `json:"variable"`
	Light        Value  `json:"light"`
	Dark         Value  `json:"dark"`
	Description  string `json:"description,omitempty"`
}

// Value returns the side of the token that applies to mode.
func (d *Descriptor) Value(mode Mode) Value {
	if mode == Light {
		return d.Light
	}
	return d.Dark
}

// Node is either an interior group or a leaf carrying a Descriptor.
type Node struct {
	Name     string           `json:"name,omitempty"`
	Children map[string]*Node `json:"children,omitempty"`
	Token    *Descriptor      `json:"token,omitempty"`
}

// IsLeaf reports whether the node carries a token.
func (n *Node) IsLeaf() bool {
	return n.Token != nil
}

// ChildNames returns the child segment names sorted.
func (n *Node) ChildNames() []string {
	names := lo.Keys(n.Children)
	sort.Strings(names)
	return names
}

// Tree is the built, validated token hierarchy.
type Tree struct {
	Namespace string
	Root      *Node

	leaves []*Descriptor
	byPath map[string]*Descriptor
	byVar  map[string]*Descriptor
}

// VariableName derives the style variable for a token path:
// --<namespace>-elements-<segments joined by '-'>.
func VariableName(namespace, path string) string {
	return "--" + namespace + "-elements-" + strings.ReplaceAll(path, Separator, "-")
}

// Len returns the number of leaves.
func (t *Tree) Len() int {
	return len(t.leaves)
}

// Leaves returns every descriptor ordered by path.
func (t *Tree) Leaves() []*Descriptor {
	return t.leaves
}

// Lookup finds a descriptor by path.
func (t *Tree) Lookup(path string) (*Descriptor, bool) {
	d, ok := t.byPath[path]
	return d, ok
}

// LookupVariable finds a descriptor by its style variable name.
func (t *Tree) LookupVariable(name string) (*Descriptor, bool) {
	d, ok := t.byVar[name]
	return d, ok
}

// Resolve follows aliases from path until it reaches a concrete color for mode.
func (t *Tree) Resolve(path string, mode Mode) (string, error) {
	seen := make(map[string]bool)
	for {
		d, ok := t.byPath[path]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownTokenReference, path)
		}
		if seen[path] {
			return "", fmt.Errorf("%w: %q", ErrCyclicTokenReference, path)
		}
		seen[path] = true

		v := d.Value(mode)
		if v.Kind != Alias {
			return v.Color, nil
		}
		path = v.Ref
	}
}

// Find fuzzy-matches query against token paths and variable names, best match first.
func (t *Tree) Find(query string) []*Descriptor {
	paths := lo.Map(t.leaves, func(d *Descriptor, _ int) string { return d.Path })
	ranks := fuzzy.RankFindFold(query, paths)
	sort.Stable(ranks)

	return lo.Map(ranks, func(r fuzzy.Rank, _ int) *Descriptor {
		return t.leaves[r.OriginalIndex]
	})
}

// Source exposes the tree as the live variable environment for one mode:
// every variable name resolves to its concrete color.
func (t *Tree) Source(mode Mode) ModeSource {
	return ModeSource{tree: t, mode: mode}
}

// ModeSource reads variables from a tree in a fixed mode.
type ModeSource struct {
	tree *Tree
	mode Mode
}

// Variable returns the resolved color of a style variable, or false if the tree does not define it.
func (s ModeSource) Variable(name string) (string, bool) {
	d, ok := s.tree.LookupVariable(name)
	if !ok {
		return "", false
	}
	c, err := s.tree.Resolve(d.Path, s.mode)
	if err != nil {
		return "", false
	}
	return c, true
}

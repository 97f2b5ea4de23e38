package token

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nst-sdc/themekit/constant"
	"github.com/nst-sdc/themekit/palette"
	"github.com/nst-sdc/themekit/util"
	"github.com/samber/lo"
)

// Option configures Build.
type Option func(*options)

type options struct {
	namespace string
}

// WithNamespace overrides the variable namespace (default "nst-sdc").
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// Build validates schema and assembles the token tree.
//
// It fails fast on the first authoring error: a repeated path or variable
// name, a leaf that is also a group, an empty value, an unknown primitive or
// alias target, or an alias cycle.
func Build(schema Schema, prims *palette.Namespace, opts ...Option) (*Tree, error) {
	o := options{namespace: constant.Namespace}
	for _, opt := range opts {
		opt(&o)
	}
	if o.namespace == "" {
		return nil, fmt.Errorf("%w: empty namespace", ErrInvalidTokenPath)
	}

	t := &Tree{
		Namespace: o.namespace,
		Root:      &Node{Children: make(map[string]*Node)},
		byPath:    make(map[string]*Descriptor, len(schema.Tokens)),
		byVar:     make(map[string]*Descriptor, len(schema.Tokens)),
	}

	for _, e := range schema.Tokens {
		d, err := describe(e, o.namespace, prims)
		if err != nil {
			return nil, err
		}
		if err := t.insert(d); err != nil {
			return nil, err
		}
	}

	if err := t.checkAliases(); err != nil {
		return nil, err
	}

	t.leaves = lo.Values(t.byPath)
	sort.Slice(t.leaves, func(i, j int) bool {
		return t.leaves[i].Path < t.leaves[j].Path
	})

	return t, nil
}

func describe(e Entry, namespace string, prims *palette.Namespace) (*Descriptor, error) {
	if err := validatePath(e.Path); err != nil {
		return nil, err
	}

	light, err := ParseValue(e.Light, prims)
	if err != nil {
		return nil, fmt.Errorf("token %q light: %w", e.Path, err)
	}
	dark, err := ParseValue(e.Dark, prims)
	if err != nil {
		return nil, fmt.Errorf("token %q dark: %w", e.Path, err)
	}

	return &Descriptor{
		Path:         e.Path,
		VariableName: VariableName(namespace, e.Path),
		Light:        light,
		Dark:         dark,
		Description:  e.Description,
	}, nil
}

func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidTokenPath)
	}
	for _, seg := range strings.Split(path, Separator) {
		if seg == "" || strings.ContainsAny(seg, " \t$#") {
			return fmt.Errorf("%w: %q", ErrInvalidTokenPath, path)
		}
	}
	return nil
}

func (t *Tree) insert(d *Descriptor) error {
	if _, dup := t.byPath[d.Path]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateTokenPath, d.Path)
	}
	if other, dup := t.byVar[d.VariableName]; dup {
		return fmt.Errorf("%w: %q and %q both compile to %s", ErrDuplicateTokenPath, other.Path, d.Path, d.VariableName)
	}

	segments := strings.Split(d.Path, Separator)
	node := t.Root
	for i, seg := range segments {
		if node.IsLeaf() {
			return fmt.Errorf("%w: %q is nested under token %q", ErrDuplicateTokenPath, d.Path, node.Token.Path)
		}

		child, ok := node.Children[seg]
		if !ok {
			child = &Node{Name: seg}
			if i < len(segments)-1 {
				child.Children = make(map[string]*Node)
			}
			node.Children[seg] = child
		} else if i == len(segments)-1 {
			return fmt.Errorf("%w: %q is already a group", ErrDuplicateTokenPath, d.Path)
		}
		node = child
	}

	node.Token = d
	t.byPath[d.Path] = d
	t.byVar[d.VariableName] = d
	return nil
}

// checkAliases verifies every alias target exists and that, per mode, the
// alias graph is acyclic. Traversal is depth-first with a visiting set;
// the current chain is kept on a stack to report the cycle.
func (t *Tree) checkAliases() error {
	paths := lo.Keys(t.byPath)
	sort.Strings(paths)

	for _, d := range t.byPath {
		for _, mode := range Modes {
			v := d.Value(mode)
			if v.Kind != Alias {
				continue
			}
			if _, ok := t.byPath[v.Ref]; !ok {
				return fmt.Errorf("token %q %s: %w: %q%s", d.Path, mode, ErrUnknownTokenReference, v.Ref, suggest(v.Ref, paths))
			}
		}
	}

	for _, mode := range Modes {
		done := make(map[string]bool, len(paths))
		for _, p := range paths {
			if err := t.visit(p, mode, make(map[string]bool), &util.Stack[string]{}, done); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *Tree) visit(path string, mode Mode, visiting map[string]bool, chain *util.Stack[string], done map[string]bool) error {
	if done[path] {
		return nil
	}
	if visiting[path] {
		cycle := append(chain.Items(), path)
		start := lo.IndexOf(cycle, path)
		return fmt.Errorf("%w (%s): %s", ErrCyclicTokenReference, mode, strings.Join(cycle[start:], " -> "))
	}

	visiting[path] = true
	chain.Push(path)

	v := t.byPath[path].Value(mode)
	if v.Kind == Alias {
		if err := t.visit(v.Ref, mode, visiting, chain, done); err != nil {
			return err
		}
	}

	chain.Pop()
	delete(visiting, path)
	done[path] = true
	return nil
}

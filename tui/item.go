package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/nst-sdc/themekit/style"
	"github.com/nst-sdc/themekit/token"
	"github.com/nst-sdc/themekit/util"
	"github.com/samber/lo"
)

// groupItem is a top-level segment of the token tree.
type groupItem struct {
	name  string
	count int
}

func (g *groupItem) Title() string       { return g.name }
func (g *groupItem) Description() string { return util.Quantify(g.count, "token", "tokens") }
func (g *groupItem) FilterValue() string { return g.name }

// tokenItem is one leaf shown with the color it resolves to in the active mode.
type tokenItem struct {
	descriptor *token.Descriptor
	mode       token.Mode
	resolved   string
}

func (t *tokenItem) Title() string {
	return style.Swatch(t.resolved, 4)("") + " " + t.descriptor.Path
}

func (t *tokenItem) Description() string {
	return t.resolved + " " + style.Faint(t.descriptor.Value(t.mode).String())
}

func (t *tokenItem) FilterValue() string { return t.descriptor.Path }

// groupOf returns the first path segment.
func groupOf(path string) string {
	group, _, _ := strings.Cut(path, token.Separator)
	return group
}

func groupItems(tree *token.Tree) []list.Item {
	counts := lo.CountValuesBy(tree.Leaves(), func(d *token.Descriptor) string {
		return groupOf(d.Path)
	})

	names := lo.Keys(counts)
	sort.Strings(names)

	return lo.Map(names, func(name string, _ int) list.Item {
		return &groupItem{name: name, count: counts[name]}
	})
}

func tokenItems(tree *token.Tree, group string, mode token.Mode) []list.Item {
	leaves := lo.Filter(tree.Leaves(), func(d *token.Descriptor, _ int) bool {
		return groupOf(d.Path) == group
	})

	return lo.Map(leaves, func(d *token.Descriptor, _ int) list.Item {
		// the tree was validated on build, so every leaf resolves
		resolved, _ := tree.Resolve(d.Path, mode)
		return &tokenItem{descriptor: d, mode: mode, resolved: resolved}
	})
}

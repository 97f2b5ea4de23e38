package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/style"
	"github.com/nst-sdc/themekit/token"
	"github.com/nst-sdc/themekit/util"
)

var listStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)

type bubble struct {
	state         state
	statesHistory util.Stack[state]
	keymap        *keymap

	groupsC list.Model
	tokensC list.Model

	tree  *token.Tree
	mode  token.Mode
	group string
}

func newBubble(options *Options) *bubble {
	b := &bubble{
		state:  groupsState,
		keymap: newKeymap(),
		tree:   options.Tree,
		mode:   options.Mode,
	}

	if b.mode == "" {
		b.mode = token.Light
	}

	makeList := func(title string) list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(color.HiCyan).
			Foreground(color.HiCyan).
			Padding(0, 0, 0, 1)
		delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

		l := list.New([]list.Item{}, delegate, 0, 0)
		l.KeyMap = b.keymap.forList()
		l.AdditionalShortHelpKeys = b.keymap.ShortHelp
		l.AdditionalFullHelpKeys = func() []key.Binding {
			return b.keymap.FullHelp()[0]
		}
		l.Title = title
		l.Styles.Title = style.New().Foreground(color.New("230")).Background(color.New("62")).Padding(0, 1)
		l.SetShowStatusBar(false)

		return l
	}

	b.groupsC = makeList(b.groupsTitle())
	b.groupsC.SetItems(groupItems(b.tree))

	b.tokensC = makeList("")

	return b
}

func (b *bubble) groupsTitle() string {
	return fmt.Sprintf("%s tokens · %s", b.tree.Namespace, b.mode)
}

// setState switches the visible list.
func (b *bubble) setState(s state) {
	b.state = s
}

// newState moves to s, remembering where we came from.
func (b *bubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *bubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *bubble) current() *list.Model {
	if b.state == tokensState {
		return &b.tokensC
	}

	return &b.groupsC
}

func (b *bubble) resize(width, height int) {
	x, y := listStyle.GetFrameSize()

	for _, l := range []*list.Model{&b.groupsC, &b.tokensC} {
		l.SetSize(width-x, height-y)
		l.Help.Width = width - x
	}
}

func (b *bubble) openGroup(group string) {
	b.group = group
	b.tokensC.ResetFilter()
	b.tokensC.SetItems(tokenItems(b.tree, group, b.mode))
	b.tokensC.ResetSelected()
	b.tokensC.Title = fmt.Sprintf("%s · %s", group, b.mode)
	b.newState(tokensState)
}

func (b *bubble) toggleMode() {
	if b.mode == token.Light {
		b.mode = token.Dark
	} else {
		b.mode = token.Light
	}

	b.groupsC.Title = b.groupsTitle()

	if b.group != "" {
		index := b.tokensC.Index()
		b.tokensC.SetItems(tokenItems(b.tree, b.group, b.mode))
		b.tokensC.Select(index)
		b.tokensC.Title = fmt.Sprintf("%s · %s", b.group, b.mode)
	}
}

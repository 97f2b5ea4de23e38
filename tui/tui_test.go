package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nst-sdc/themekit/palette"
	"github.com/nst-sdc/themekit/token"
	. "github.com/smartystreets/goconvey/convey"
)

func press(b *bubble, msg tea.KeyMsg) tea.Cmd {
	_, cmd := b.Update(msg)
	return cmd
}

func TestBubble(t *testing.T) {
	Convey("Given a browser over a small tree", t, func() {
		prims, err := palette.Primitives()
		So(err, ShouldBeNil)

		tree, err := token.Build(token.Schema{Tokens: []token.Entry{
			{Path: "borderColor", Light: "gray.200", Dark: "gray.800"},
			{Path: "button.primary.background", Light: "accent.600", Dark: "accent.500"},
			{Path: "button.primary.text", Light: "white", Dark: "white"},
			{Path: "cta.background", Light: "$button.primary.background", Dark: "$button.primary.background"},
		}}, prims)
		So(err, ShouldBeNil)

		b := newBubble(&Options{Tree: tree})
		b.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

		Convey("It should start on the group list in light mode", func() {
			So(b.state, ShouldEqual, groupsState)
			So(b.mode, ShouldEqual, token.Light)
			So(len(b.groupsC.Items()), ShouldEqual, 3)
			So(b.View(), ShouldContainSubstring, "borderColor")
		})

		Convey("Groups should count their tokens", func() {
			items := b.groupsC.Items()
			So(items[1].(*groupItem).name, ShouldEqual, "button")
			So(items[1].(*groupItem).count, ShouldEqual, 2)
		})

		Convey("Opening a group should list its tokens", func() {
			b.groupsC.Select(1)
			press(b, tea.KeyMsg{Type: tea.KeyEnter})

			So(b.state, ShouldEqual, tokensState)
			So(len(b.tokensC.Items()), ShouldEqual, 2)

			first := b.tokensC.Items()[0].(*tokenItem)
			So(first.descriptor.Path, ShouldEqual, "button.primary.background")
			So(first.resolved, ShouldEqual, "#4F46E5")

			Convey("Toggling the mode should re-resolve the tokens", func() {
				press(b, tea.KeyMsg{Type: tea.KeyTab})

				So(b.mode, ShouldEqual, token.Dark)
				So(b.tokensC.Items()[0].(*tokenItem).resolved, ShouldEqual, "#6366F1")
			})

			Convey("Going back should return to the groups", func() {
				press(b, tea.KeyMsg{Type: tea.KeyEsc})
				So(b.state, ShouldEqual, groupsState)
			})
		})

		Convey("Aliases should show the color they resolve to", func() {
			b.groupsC.Select(2)
			press(b, tea.KeyMsg{Type: tea.KeyEnter})

			item := b.tokensC.Items()[0].(*tokenItem)
			So(item.resolved, ShouldEqual, "#4F46E5")
			So(item.Description(), ShouldContainSubstring, "$button.primary.background")
		})

		Convey("q should quit", func() {
			cmd := press(b, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
			So(cmd, ShouldNotBeNil)
			_, ok := cmd().(tea.QuitMsg)
			So(ok, ShouldBeTrue)
		})
	})
}

package token

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSource(t *testing.T) {
	Convey("Given a tree exposed as a variable source", t, func() {
		tree, err := Build(DefaultSchema(), mustPrimitives())
		So(err, ShouldBeNil)

		Convey("Variables resolve through aliases for the selected mode", func() {
			v, ok := tree.Source(Light).Variable("--nst-sdc-elements-terminal-textColor")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "#18181B")

			v, ok = tree.Source(Dark).Variable("--nst-sdc-elements-terminal-textColor")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "#FAFAFA")
		})

		Convey("Unknown variables are reported as unset", func() {
			_, ok := tree.Source(Dark).Variable("--nst-sdc-elements-terminal-missing")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestFind(t *testing.T) {
	Convey("Find ranks fuzzy path matches", t, func() {
		tree, err := Build(DefaultSchema(), mustPrimitives())
		So(err, ShouldBeNil)

		found := tree.Find("btnprim")
		So(len(found), ShouldBeGreaterThan, 0)
		for _, d := range found {
			So(d.Path, ShouldStartWith, "button.primary")
		}

		So(tree.Find("zzzz"), ShouldBeEmpty)
	})
}

func TestParseMode(t *testing.T) {
	Convey("ParseMode", t, func() {
		m, err := ParseMode("light")
		So(err, ShouldBeNil)
		So(m, ShouldEqual, Light)

		_, err = ParseMode("sepia")
		So(err, ShouldNotBeNil)
	})
}

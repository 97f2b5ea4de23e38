package palette

import (
	"errors"
	"testing"

	"github.com/nst-sdc/themekit/color"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrimitives(t *testing.T) {
	Convey("Given the built-in primitives", t, func() {
		ns, err := Primitives()
		So(err, ShouldBeNil)

		Convey("Alpha palettes are derived from their source steps", func() {
			gray, ok := ns.Alpha("gray")
			So(ok, ShouldBeTrue)
			So(gray[100], ShouldEqual, "#18181Bff")

			white, ok := ns.Alpha("white")
			So(ok, ShouldBeTrue)
			So(white[1], ShouldEqual, "#FFFFFF03")

			So(ns.AlphaNames(), ShouldResemble, []string{"white", "gray", "blue", "purple", "accent", "red"})
		})

		Convey("Lookup resolves every reference form", func() {
			v, ok := ns.Lookup("white")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "#FFFFFF")

			v, ok = ns.Lookup("gray.200")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "#E4E4E7")

			v, ok = ns.Lookup("alpha.accent.10")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, "#6366F11a")
		})

		Convey("Lookup rejects unknown references", func() {
			for _, ref := range []string{"gray", "gray.250", "teal.100", "alpha.green.10", "alpha.gray.7", "alpha.gray", "gray.200.1"} {
				_, ok := ns.Lookup(ref)
				So(ok, ShouldBeFalse)
			}
		})

		Convey("Flatten covers families and alpha palettes", func() {
			entries := ns.Flatten()
			So(len(entries), ShouldEqual, 1+7*len(color.Steps)+6*len(AlphaSteps))
			So(entries[0], ShouldResemble, Entry{Name: "white", Value: "#FFFFFF"})

			names := lo.Map(entries, func(e Entry, _ int) string { return e.Name })
			So(names, ShouldContain, "gray-950")
			So(names, ShouldContain, "alpha-red-100")
			So(len(lo.Uniq(names)), ShouldEqual, len(names))
		})

		Convey("References round-trip through Lookup", func() {
			for _, ref := range ns.References() {
				_, ok := ns.Lookup(ref)
				So(ok, ShouldBeTrue)
			}
		})
	})

	Convey("Given a source naming a missing family", t, func() {
		_, err := NewNamespace(color.Families, []AlphaSource{{Name: "teal", Family: "teal", Step: 500}})
		So(err, ShouldNotBeNil)
	})

	Convey("Given a source with a malformed base", t, func() {
		broken := color.Family{Name: "broken", Bare: "#12"}
		_, err := NewNamespace([]color.Family{broken}, []AlphaSource{{Name: "broken", Family: "broken"}})
		So(errors.Is(err, ErrInvalidColorFormat), ShouldBeTrue)
	})
}

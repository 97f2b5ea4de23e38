package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFamilies(t *testing.T) {
	Convey("Every stepped family defines all eleven steps", t, func() {
		for _, f := range Families {
			if !f.HasSteps() {
				So(f.Bare, ShouldNotBeEmpty)
				continue
			}
			So(len(f.Shade), ShouldEqual, len(Steps))
			for _, s := range Steps {
				v, ok := f.Get(s)
				So(ok, ShouldBeTrue)
				So(v, ShouldStartWith, "#")
				So(len(v), ShouldEqual, 7)
			}
		}
	})

	Convey("Lookup", t, func() {
		f, ok := Lookup("gray")
		So(ok, ShouldBeTrue)
		So(f.Shade[900], ShouldEqual, "#18181B")

		_, ok = Lookup("teal")
		So(ok, ShouldBeFalse)
	})

	Convey("ParseStep", t, func() {
		s, err := ParseStep("950")
		So(err, ShouldBeNil)
		So(s, ShouldEqual, Step(950))

		_, err = ParseStep("250")
		So(err, ShouldNotBeNil)

		_, err = ParseStep("abc")
		So(err, ShouldNotBeNil)
	})
}

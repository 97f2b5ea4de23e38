package palette

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Given a valid base color", t, func() {
		bases := []string{"#000000", "#FFFFFF", "#6366F1", "#abcdef", "#18181B"}

		Convey("Every step yields one 8-digit value with the base kept verbatim", func() {
			for _, base := range bases {
				p, err := Generate(base)
				So(err, ShouldBeNil)
				So(len(p), ShouldEqual, len(AlphaSteps))

				for _, step := range AlphaSteps {
					v, ok := p[step]
					So(ok, ShouldBeTrue)
					So(len(v), ShouldEqual, 9)
					So(IsHex(v), ShouldBeTrue)
					So(v[:7], ShouldEqual, base)
				}
			}
		})

		Convey("Boundary steps", func() {
			black, err := Generate("#000000")
			So(err, ShouldBeNil)
			So(black[100], ShouldEqual, "#000000ff")

			white, err := Generate("#FFFFFF")
			So(err, ShouldBeNil)
			So(white[1], ShouldEqual, "#FFFFFF03")
			So(white[2], ShouldEqual, "#FFFFFF05")
			So(white[3], ShouldEqual, "#FFFFFF08")
			So(white[50], ShouldEqual, "#FFFFFF80")
		})

		Convey("Alpha bytes are lowercase and zero padded", func() {
			p, err := Generate("#ABCDEF")
			So(err, ShouldBeNil)
			So(p[5], ShouldEqual, "#ABCDEF0d")
			So(strings.ToLower(p[90][7:]), ShouldEqual, p[90][7:])
		})
	})

	Convey("Given a malformed base color", t, func() {
		for _, bad := range []string{"", "#FFF", "FFFFFF", "#FFFFFFFF", "#GGGGGG", "#12345", "# 12345"} {
			p, err := Generate(bad)
			So(p, ShouldBeNil)
			So(errors.Is(err, ErrInvalidColorFormat), ShouldBeTrue)
		}
	})
}

func TestAlphaStepByte(t *testing.T) {
	Convey("Alpha bytes round half up", t, func() {
		So(AlphaStep(1).Byte(), ShouldEqual, uint8(3))
		So(AlphaStep(10).Byte(), ShouldEqual, uint8(26))
		So(AlphaStep(50).Byte(), ShouldEqual, uint8(128))
		So(AlphaStep(100).Byte(), ShouldEqual, uint8(255))
	})
}

package style

import (
	"testing"

	"github.com/nst-sdc/themekit/color"
	. "github.com/smartystreets/goconvey/convey"
)

func TestContrast(t *testing.T) {
	Convey("Given a light background", t, func() {
		Convey("Text should be black", func() {
			So(Contrast("#FFFFFF"), ShouldEqual, color.New("#000000"))
			So(Contrast("#FAFAFA80"), ShouldEqual, color.New("#000000"))
		})
	})

	Convey("Given a dark background", t, func() {
		Convey("Text should be white", func() {
			So(Contrast("#09090B"), ShouldEqual, color.New("#FFFFFF"))
		})
	})

	Convey("Given something that is not a hex color", t, func() {
		Convey("The default foreground should be used", func() {
			So(Contrast("transparent"), ShouldEqual, color.New(""))
		})
	})
}

func TestSwatch(t *testing.T) {
	Convey("A swatch should keep its label", t, func() {
		So(Swatch("#2563EB", 12)("blue-600"), ShouldContainSubstring, "blue-600")
	})
}

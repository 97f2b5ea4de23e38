package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})

		Convey("Should accept a custom backend", func() {
			mem := afero.NewMemMapFs()
			So(afero.WriteFile(mem, "/icons/check.svg", []byte("<svg/>"), 0o644), ShouldBeNil)

			Use(afero.NewReadOnlyFs(mem))
			ok, err := API().Exists("/icons/check.svg")
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
		})

		Reset(SetOsFs)
	})
}

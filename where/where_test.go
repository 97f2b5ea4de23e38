package where

import (
	"path/filepath"
	"testing"

	"github.com/nst-sdc/themekit/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/themekit")
			So(Config(), ShouldEqual, "/custom/themekit")
			So(lo.Must(filesystem.API().IsDir("/custom/themekit")), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs() and Schemas() live under Config()", func() {
			t.Setenv(EnvConfigPath, "/cfg")
			So(Logs(), ShouldEqual, filepath.Join("/cfg", "logs"))
			So(Schemas(), ShouldEqual, filepath.Join("/cfg", "schemas"))
			So(lo.Must(filesystem.API().IsDir(Logs())), ShouldBeTrue)
		})

		Convey("Manifest() is a file inside Cache()", func() {
			So(filepath.Dir(Manifest()), ShouldEqual, Cache())
		})
	})
}

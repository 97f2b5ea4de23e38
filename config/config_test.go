package config

import (
	"testing"

	"github.com/nst-sdc/themekit/constant"
	"github.com/nst-sdc/themekit/filesystem"
	"github.com/nst-sdc/themekit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Reset(viper.Reset)

		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.IsSet(name), ShouldBeTrue)
			}
			So(viper.GetString(key.TokensNamespace), ShouldEqual, constant.Namespace)
			So(viper.GetString(key.CSSDarkSelector), ShouldEqual, constant.DarkSelector)
		})

		Convey("Should read environment overrides", func() {
			t.Setenv("THEMEKIT_TERMINAL_MODE", "light")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.TerminalMode), ShouldEqual, "light")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("css.light_selector"), ShouldEqual, "css_light_selector")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.IconsPattern]

		Convey("Env() prefixes the application name", func() {
			So(field.Env(), ShouldEqual, "THEMEKIT_ICONS_PATTERN")
		})

		Convey("MarshalJSON reports the type and default", func() {
			raw, err := field.MarshalJSON()
			So(err, ShouldBeNil)
			So(string(raw), ShouldContainSubstring, `"type":"string"`)
			So(string(raw), ShouldContainSubstring, `"default":"*.svg"`)
		})
	})
}

package token

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

const sampleSchema = `
[[token]]
path = "borderColor"
light = "gray.200"
dark = "gray.800"

[[token]]
path = "cta.text"
light = "$borderColor"
dark = "#000000"
description = "call to action label"
`

func TestDecodeSchema(t *testing.T) {
	Convey("Given a TOML schema", t, func() {
		s, err := DecodeSchema(strings.NewReader(sampleSchema))
		So(err, ShouldBeNil)
		So(len(s.Tokens), ShouldEqual, 2)
		So(s.Tokens[1], ShouldResemble, Entry{Path: "cta.text", Light: "$borderColor", Dark: "#000000", Description: "call to action label"})
	})

	Convey("Unknown keys are rejected", t, func() {
		_, err := DecodeSchema(strings.NewReader("[[token]]\npath = \"a\"\nlite = \"white\"\n"))
		So(err, ShouldNotBeNil)
	})

	Convey("The built-in schema decodes", t, func() {
		So(len(DefaultSchema().Tokens), ShouldBeGreaterThan, 0)
	})
}

func TestLoadSchema(t *testing.T) {
	Convey("Given a schema file on an in-memory filesystem", t, func() {
		fs := afero.NewMemMapFs()
		So(afero.WriteFile(fs, "/schemas/app.toml", []byte(sampleSchema), 0o644), ShouldBeNil)

		s, err := LoadSchema(fs, "/schemas/app.toml")
		So(err, ShouldBeNil)
		So(len(s.Tokens), ShouldEqual, 2)

		Convey("A missing file is an error", func() {
			_, err := LoadSchema(fs, "/schemas/missing.toml")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestParseValue(t *testing.T) {
	prims := mustPrimitives()

	Convey("ParseValue classifies every reference form", t, func() {
		cases := []struct {
			raw   string
			kind  Kind
			color string
		}{
			{"#FFFFFF", Literal, "#FFFFFF"},
			{"#312E8133", Literal, "#312E8133"},
			{"transparent", Literal, "transparent"},
			{"white", Primitive, "#FFFFFF"},
			{"accent.500", Primitive, "#6366F1"},
			{"alpha.white.1", Primitive, "#FFFFFF03"},
			{" gray.950 ", Primitive, "#09090B"},
		}
		for _, c := range cases {
			v, err := ParseValue(c.raw, prims)
			So(err, ShouldBeNil)
			So(v.Kind, ShouldEqual, c.kind)
			So(v.Color, ShouldEqual, c.color)
		}

		v, err := ParseValue("$button.primary.text", prims)
		So(err, ShouldBeNil)
		So(v.Kind, ShouldEqual, Alias)
		So(v.Ref, ShouldEqual, "button.primary.text")
		So(v.Color, ShouldBeEmpty)
		So(v.Kind.String(), ShouldEqual, "alias")
	})

	Convey("ParseValue rejects malformed aliases", t, func() {
		_, err := ParseValue("$", prims)
		So(err, ShouldNotBeNil)
		_, err = ParseValue("$a..b", prims)
		So(err, ShouldNotBeNil)
	})
}

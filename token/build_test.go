package token

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nst-sdc/themekit/palette"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func mustPrimitives() *palette.Namespace {
	return lo.Must(palette.Primitives())
}

func schemaOf(entries ...Entry) Schema {
	return Schema{Tokens: entries}
}

func TestBuildDefaultSchema(t *testing.T) {
	Convey("Given the built-in schema", t, func() {
		schema := DefaultSchema()
		tree, err := Build(schema, mustPrimitives())
		So(err, ShouldBeNil)

		Convey("There is exactly one leaf per schema entry", func() {
			So(tree.Len(), ShouldEqual, len(schema.Tokens))
		})

		Convey("Variable names are non-empty and unique", func() {
			names := lo.Map(tree.Leaves(), func(d *Descriptor, _ int) string { return d.VariableName })
			So(lo.EveryBy(names, func(n string) bool { return n != "" }), ShouldBeTrue)
			So(len(lo.Uniq(names)), ShouldEqual, len(names))
		})

		Convey("Leaves are ordered by path", func() {
			leaves := tree.Leaves()
			for i := 1; i < len(leaves); i++ {
				So(leaves[i-1].Path < leaves[i].Path, ShouldBeTrue)
			}
		})

		Convey("Every leaf resolves to a concrete color in both modes", func() {
			for _, d := range tree.Leaves() {
				for _, mode := range Modes {
					c, err := tree.Resolve(d.Path, mode)
					So(err, ShouldBeNil)
					So(c, ShouldNotBeEmpty)
				}
			}
		})

		Convey("Short depth names follow the background depths", func() {
			for i := 1; i <= 4; i++ {
				short := fmt.Sprintf("bg.depth.%d", i)
				long := fmt.Sprintf("background.depth.%d", i)

				d, ok := tree.Lookup(short)
				So(ok, ShouldBeTrue)
				So(d.VariableName, ShouldEqual, fmt.Sprintf("--nst-sdc-elements-bg-depth-%d", i))
				So(d.Light.String(), ShouldEqual, "$"+long)

				for _, mode := range Modes {
					want, err := tree.Resolve(long, mode)
					So(err, ShouldBeNil)
					got, err := tree.Resolve(short, mode)
					So(err, ShouldBeNil)
					So(got, ShouldEqual, want)
				}
			}
		})

		Convey("Primitive, literal and alias values resolve as authored", func() {
			d, ok := tree.Lookup("background.depth.1")
			So(ok, ShouldBeTrue)
			So(d.VariableName, ShouldEqual, "--nst-sdc-elements-background-depth-1")
			So(d.Light.Color, ShouldEqual, "#FFFFFF")
			So(d.Dark.Color, ShouldEqual, "#18181B")

			d, _ = tree.Lookup("item.backgroundDefault")
			So(d.Light.Kind, ShouldEqual, Literal)
			So(d.Light.Color, ShouldEqual, "transparent")

			d, _ = tree.Lookup("cta.background")
			So(d.Light.Kind, ShouldEqual, Alias)
			So(d.Light.String(), ShouldEqual, "$button.primary.background")

			c, err := tree.Resolve("cta.background", Dark)
			So(err, ShouldBeNil)
			So(c, ShouldEqual, "#6366F1")

			c, err = tree.Resolve("terminal.cursorColorAccent", Light)
			So(err, ShouldBeNil)
			So(c, ShouldEqual, "#FFFFFF")

			c, err = tree.Resolve("prompt.background", Dark)
			So(err, ShouldBeNil)
			So(c, ShouldEqual, "#18181Bcc")
		})

		Convey("The hierarchy mirrors the dotted paths", func() {
			button := tree.Root.Children["button"]
			So(button, ShouldNotBeNil)
			So(button.IsLeaf(), ShouldBeFalse)
			So(button.ChildNames(), ShouldResemble, []string{"danger", "primary", "secondary"})

			leaf := button.Children["primary"].Children["text"]
			So(leaf.IsLeaf(), ShouldBeTrue)
			So(leaf.Token.Path, ShouldEqual, "button.primary.text")
		})

		Convey("Variables can be looked up by name", func() {
			d, ok := tree.LookupVariable("--nst-sdc-elements-terminal-color-brightWhite")
			So(ok, ShouldBeTrue)
			So(d.Dark.Color, ShouldEqual, "#FFFFFF")
		})
	})
}

func TestBuildNamespace(t *testing.T) {
	Convey("WithNamespace changes every variable prefix", t, func() {
		tree, err := Build(schemaOf(Entry{Path: "borderColor", Light: "gray.200", Dark: "gray.800"}), mustPrimitives(), WithNamespace("acme"))
		So(err, ShouldBeNil)
		So(tree.Namespace, ShouldEqual, "acme")
		So(tree.Leaves()[0].VariableName, ShouldEqual, "--acme-elements-borderColor")
	})

	Convey("An empty namespace is rejected", t, func() {
		_, err := Build(Schema{}, mustPrimitives(), WithNamespace(""))
		So(errors.Is(err, ErrInvalidTokenPath), ShouldBeTrue)
	})
}

func TestBuildErrors(t *testing.T) {
	prims := mustPrimitives()

	Convey("Duplicate paths", t, func() {
		_, err := Build(schemaOf(
			Entry{Path: "borderColor", Light: "gray.200", Dark: "gray.800"},
			Entry{Path: "borderColor", Light: "gray.300", Dark: "gray.700"},
		), prims)
		So(errors.Is(err, ErrDuplicateTokenPath), ShouldBeTrue)
	})

	Convey("A leaf that is also a group", t, func() {
		_, err := Build(schemaOf(
			Entry{Path: "button", Light: "gray.200", Dark: "gray.800"},
			Entry{Path: "button.text", Light: "white", Dark: "white"},
		), prims)
		So(errors.Is(err, ErrDuplicateTokenPath), ShouldBeTrue)

		_, err = Build(schemaOf(
			Entry{Path: "button.text", Light: "white", Dark: "white"},
			Entry{Path: "button", Light: "gray.200", Dark: "gray.800"},
		), prims)
		So(errors.Is(err, ErrDuplicateTokenPath), ShouldBeTrue)
	})

	Convey("Paths that compile to the same variable", t, func() {
		_, err := Build(schemaOf(
			Entry{Path: "a-b.c", Light: "white", Dark: "white"},
			Entry{Path: "a.b-c", Light: "white", Dark: "white"},
		), prims)
		So(errors.Is(err, ErrDuplicateTokenPath), ShouldBeTrue)
	})

	Convey("Malformed paths", t, func() {
		for _, p := range []string{"", "a..b", ".a", "a.", "a b"} {
			_, err := Build(schemaOf(Entry{Path: p, Light: "white", Dark: "white"}), prims)
			So(errors.Is(err, ErrInvalidTokenPath), ShouldBeTrue)
		}
	})

	Convey("A missing side", t, func() {
		_, err := Build(schemaOf(Entry{Path: "borderColor", Light: "gray.200"}), prims)
		So(errors.Is(err, ErrIncompleteToken), ShouldBeTrue)
	})

	Convey("Unknown primitives", t, func() {
		_, err := Build(schemaOf(Entry{Path: "borderColor", Light: "grey.200", Dark: "gray.800"}), prims)
		So(errors.Is(err, ErrUnknownColorReference), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, `did you mean "gray.200"`)

		_, err = Build(schemaOf(Entry{Path: "borderColor", Light: "#12345", Dark: "gray.800"}), prims)
		So(errors.Is(err, ErrUnknownColorReference), ShouldBeTrue)
	})

	Convey("Unknown alias targets", t, func() {
		_, err := Build(schemaOf(
			Entry{Path: "textPrimary", Light: "gray.900", Dark: "gray.50"},
			Entry{Path: "code.text", Light: "$textPrimry", Dark: "$textPrimary"},
		), prims)
		So(errors.Is(err, ErrUnknownTokenReference), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, `did you mean "textPrimary"`)
	})

	Convey("A two-token alias cycle", t, func() {
		_, err := Build(schemaOf(
			Entry{Path: "a", Light: "$b", Dark: "white"},
			Entry{Path: "b", Light: "$a", Dark: "white"},
		), prims)
		So(errors.Is(err, ErrCyclicTokenReference), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "a -> b -> a")
	})

	Convey("A self alias", t, func() {
		_, err := Build(schemaOf(Entry{Path: "a", Light: "white", Dark: "$a"}), prims)
		So(errors.Is(err, ErrCyclicTokenReference), ShouldBeTrue)
	})

	Convey("A longer cycle behind an acyclic prefix", t, func() {
		_, err := Build(schemaOf(
			Entry{Path: "entry", Light: "$x", Dark: "white"},
			Entry{Path: "x", Light: "$y", Dark: "white"},
			Entry{Path: "y", Light: "$z", Dark: "white"},
			Entry{Path: "z", Light: "$x", Dark: "white"},
		), prims)
		So(errors.Is(err, ErrCyclicTokenReference), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "x -> y -> z -> x")
	})

	Convey("Aliases crossing modes are not cycles", t, func() {
		tree, err := Build(schemaOf(
			Entry{Path: "a", Light: "$b", Dark: "gray.900"},
			Entry{Path: "b", Light: "white", Dark: "$a"},
		), prims)
		So(err, ShouldBeNil)
		So(lo.Must(tree.Resolve("a", Light)), ShouldEqual, "#FFFFFF")
		So(lo.Must(tree.Resolve("b", Dark)), ShouldEqual, "#18181B")
	})

	Convey("Shared alias targets are fine", t, func() {
		tree, err := Build(schemaOf(
			Entry{Path: "base", Light: "gray.100", Dark: "gray.800"},
			Entry{Path: "one", Light: "$base", Dark: "$base"},
			Entry{Path: "two", Light: "$one", Dark: "$base"},
		), prims)
		So(err, ShouldBeNil)
		So(lo.Must(tree.Resolve("two", Light)), ShouldEqual, "#F4F4F5")
	})
}

func TestResolveUnknown(t *testing.T) {
	Convey("Resolving a missing path fails", t, func() {
		tree, err := Build(Schema{}, mustPrimitives())
		So(err, ShouldBeNil)
		_, err = tree.Resolve("nope", Dark)
		So(errors.Is(err, ErrUnknownTokenReference), ShouldBeTrue)
	})
}

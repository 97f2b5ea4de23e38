// Package css compiles a token tree into scoped style variable declarations.
//
// The output has one rule set per mode, each gated by its selector:
//
//	[data-theme="light"] {
//	  --nst-sdc-elements-borderColor: #E4E4E7;
//	  --nst-sdc-elements-cta-background: var(--nst-sdc-elements-button-primary-background);
//	}
//
// Aliases stay live references so an override of the target cascades.
package css

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nst-sdc/themekit/constant"
	"github.com/nst-sdc/themekit/palette"
	"github.com/nst-sdc/themekit/token"
)

// Options configures Compile. The zero value uses the default selectors and emits no primitives.
type Options struct {
	LightSelector string
	DarkSelector  string
	// Primitives, when set, is emitted as a :root block of --<namespace>-<name> variables.
	Primitives *palette.Namespace
}

func (o Options) selector(mode token.Mode) string {
	if mode == token.Light {
		if o.LightSelector != "" {
			return o.LightSelector
		}
		return constant.LightSelector
	}
	if o.DarkSelector != "" {
		return o.DarkSelector
	}
	return constant.DarkSelector
}

// Compile writes the stylesheet for tree to w.
func Compile(w io.Writer, tree *token.Tree, opts Options) error {
	var buf bytes.Buffer

	if opts.Primitives != nil {
		buf.WriteString(":root {\n")
		for _, e := range opts.Primitives.Flatten() {
			fmt.Fprintf(&buf, "  --%s-%s: %s;\n", tree.Namespace, e.Name, e.Value)
		}
		buf.WriteString("}\n\n")
	}

	for i, mode := range token.Modes {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "%s {\n", opts.selector(mode))
		for _, d := range tree.Leaves() {
			value, err := declaration(tree, d.Value(mode))
			if err != nil {
				return fmt.Errorf("%s %s: %w", d.Path, mode, err)
			}
			fmt.Fprintf(&buf, "  %s: %s;\n", d.VariableName, value)
		}
		buf.WriteString("}\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// CompileString is Compile into a string.
func CompileString(tree *token.Tree, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := Compile(&buf, tree, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func declaration(tree *token.Tree, v token.Value) (string, error) {
	if v.Kind != token.Alias {
		return v.Color, nil
	}
	target, ok := tree.Lookup(v.Ref)
	if !ok {
		return "", fmt.Errorf("%w: %q", token.ErrUnknownTokenReference, v.Ref)
	}
	return fmt.Sprintf("var(%s)", target.VariableName), nil
}

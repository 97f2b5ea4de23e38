package token

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Entry declares one role of the semantic token tree.
type Entry struct {
	Path        string `toml:"path" json:"path" jsonschema:"required,pattern=^[A-Za-z0-9_-]+(\\.[A-Za-z0-9_-]+)*$,description=Dotted semantic path such as button.primary.background"`
	Light       string `toml:"light" json:"light" jsonschema:"required,description=Light mode value: #hex or keyword or family.step or alpha.family.step or $alias.path"`
	Dark        string `toml:"dark" json:"dark" jsonschema:"required,description=Dark mode value using the light syntax"`
	Description string `toml:"description,omitempty" json:"description,omitempty"`
}

// Schema is the hand-authored, declarative list of every token the tree must contain.
type Schema struct {
	Tokens []Entry `toml:"token" json:"token"`
}

//go:embed schema.toml
var defaultSchema []byte

// DefaultSchema returns the built-in schema.
func DefaultSchema() Schema {
	return lo.Must(DecodeSchema(bytes.NewReader(defaultSchema)))
}

// DefaultSchemaSource returns the TOML text of the built-in schema.
func DefaultSchemaSource() []byte {
	return bytes.Clone(defaultSchema)
}

// DecodeSchema reads a TOML schema. Unknown keys are rejected so typos surface at build time.
func DecodeSchema(r io.Reader) (Schema, error) {
	var s Schema
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Schema{}, fmt.Errorf("decode schema: %w", err)
	}
	return s, nil
}

// LoadSchema reads a TOML schema file from fs.
func LoadSchema(fs afero.Fs, path string) (Schema, error) {
	f, err := fs.Open(path)
	if err != nil {
		return Schema{}, fmt.Errorf("open schema: %w", err)
	}
	defer f.Close()

	s, err := DecodeSchema(f)
	if err != nil {
		return Schema{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

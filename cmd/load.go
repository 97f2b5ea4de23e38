package cmd

import (
	"github.com/nst-sdc/themekit/filesystem"
	"github.com/nst-sdc/themekit/key"
	"github.com/nst-sdc/themekit/log"
	"github.com/nst-sdc/themekit/palette"
	"github.com/nst-sdc/themekit/token"
	"github.com/spf13/viper"
)

// loadSchema returns the configured schema, falling back to the built-in one.
func loadSchema() (token.Schema, error) {
	path := viper.GetString(key.TokensSchema)
	if path == "" {
		return token.DefaultSchema(), nil
	}

	log.Infof("loading token schema from %s", path)
	return token.LoadSchema(filesystem.API(), path)
}

// loadTree builds the token tree and the primitives it was resolved against.
func loadTree() (*token.Tree, *palette.Namespace, error) {
	prims, err := palette.Primitives()
	if err != nil {
		return nil, nil, err
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, nil, err
	}

	tree, err := token.Build(schema, prims, token.WithNamespace(viper.GetString(key.TokensNamespace)))
	if err != nil {
		return nil, nil, err
	}

	log.With(log.Fields{
		"tokens":    tree.Len(),
		"namespace": tree.Namespace,
	}).Debug("token tree built")

	return tree, prims, nil
}

package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/nst-sdc/themekit/token"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().Bool("default", false, "Print the built-in token schema as JSON instead of its JSON Schema")
	schemaCmd.SetOut(os.Stdout)
}

// schemaCmd generates the JSON Schema that token schema files are validated against.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON Schema for token schema files",
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		if lo.Must(cmd.Flags().GetBool("default")) {
			handleErr(encoder.Encode(token.DefaultSchema()))
			return
		}

		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		handleErr(encoder.Encode(reflector.Reflect(&token.Schema{})))
	},
}

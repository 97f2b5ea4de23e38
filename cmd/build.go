package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/css"
	"github.com/nst-sdc/themekit/filesystem"
	"github.com/nst-sdc/themekit/icon"
	"github.com/nst-sdc/themekit/key"
	"github.com/nst-sdc/themekit/log"
	"github.com/nst-sdc/themekit/manifest"
	"github.com/nst-sdc/themekit/palette"
	"github.com/nst-sdc/themekit/style"
	"github.com/nst-sdc/themekit/util"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("output", "o", "", "Path the compiled stylesheet is written to")
	lo.Must0(viper.BindPFlag(key.BuildOutput, buildCmd.Flags().Lookup("output")))

	buildCmd.Flags().Bool("primitives", true, "Emit the primitive color namespace as :root variables")
	lo.Must0(viper.BindPFlag(key.CSSEmitPrimitives, buildCmd.Flags().Lookup("primitives")))

	buildCmd.Flags().BoolP("force", "f", false, "Write the stylesheet even if it has not changed")
	buildCmd.Flags().Bool("stdout", false, "Print the stylesheet instead of writing it")

	buildCmd.SetOut(os.Stdout)
}

// buildCmd compiles the token tree into scoped style variables.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile the token tree into light and dark style variables",
	Run: func(cmd *cobra.Command, args []string) {
		tree, prims, err := loadTree()
		handleErr(err)

		opts := css.Options{
			LightSelector: viper.GetString(key.CSSLightSelector),
			DarkSelector:  viper.GetString(key.CSSDarkSelector),
		}
		if viper.GetBool(key.CSSEmitPrimitives) {
			opts.Primitives = prims
		}

		content, err := css.CompileString(tree, opts)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("stdout")) {
			cmd.Print(content)
			return
		}

		output := viper.GetString(key.BuildOutput)
		written, err := writeStylesheet(output, []byte(content), lo.Must(cmd.Flags().GetBool("force")))
		handleErr(err)

		summary := fmt.Sprintf(
			"%s, %s",
			util.Quantify(tree.Len(), "token", "tokens"),
			util.Quantify(primitiveCount(opts.Primitives), "primitive", "primitives"),
		)

		if !written {
			cmd.Printf("%s %s is up to date %s\n", icon.Get(icon.Skip), output, style.Faint("("+summary+")"))
			return
		}

		cmd.Printf(
			"%s compiled %s to %s\n",
			icon.Get(icon.Success),
			summary,
			style.Fg(color.Yellow)(output),
		)
	},
}

// writeStylesheet writes content to output unless both the manifest and the file on disk already hold it.
func writeStylesheet(output string, content []byte, force bool) (bool, error) {
	m := manifest.Default()

	exists, err := afero.Exists(filesystem.API(), output)
	if err != nil {
		return false, err
	}

	if exists && !force {
		changed, err := m.Changed(output, content)
		if err != nil {
			log.Warnf("manifest unavailable, rebuilding: %s", err)
		} else if !changed {
			current, err := afero.ReadFile(filesystem.API(), output)
			if err != nil {
				return false, err
			}

			// the file may have been edited since it was recorded
			if manifest.Digest(current) == manifest.Digest(content) {
				log.Infof("skipping %s: unchanged", output)
				return false, nil
			}

			log.Warnf("%s was modified outside of themekit, rewriting", output)
		}
	}

	if dir := filepath.Dir(output); dir != "" {
		if err := filesystem.API().MkdirAll(dir, os.ModePerm); err != nil {
			return false, err
		}
	}

	// readers never see a partial stylesheet
	tmp := output + ".tmp"
	if err := afero.WriteFile(filesystem.API(), tmp, content, 0o644); err != nil {
		return false, err
	}

	if err := filesystem.API().Rename(tmp, output); err != nil {
		return false, err
	}

	if err := m.Record(output, content); err != nil {
		log.Warnf("could not record %s in manifest: %s", output, err)
	}

	log.With(log.Fields{
		"output": output,
		"digest": manifest.Digest(content),
	}).Info("stylesheet written")

	return true, nil
}

func primitiveCount(ns *palette.Namespace) int {
	if ns == nil {
		return 0
	}

	return len(ns.Flatten())
}

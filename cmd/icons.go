package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/filesystem"
	"github.com/nst-sdc/themekit/icon"
	"github.com/nst-sdc/themekit/iconset"
	"github.com/nst-sdc/themekit/key"
	"github.com/nst-sdc/themekit/log"
	"github.com/nst-sdc/themekit/style"
	"github.com/nst-sdc/themekit/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(iconsCmd)

	iconsCmd.PersistentFlags().StringP("dir", "d", "", "Directory containing the vector icon sources")
	lo.Must0(viper.BindPFlag(key.IconsDir, iconsCmd.PersistentFlags().Lookup("dir")))

	iconsCmd.PersistentFlags().String("pattern", "", "Glob pattern matched against files in the icon directory")
	lo.Must0(viper.BindPFlag(key.IconsPattern, iconsCmd.PersistentFlags().Lookup("pattern")))

	iconsCmd.PersistentFlags().String("collection", "", "Name of the icon collection")
	lo.Must0(viper.BindPFlag(key.IconsCollection, iconsCmd.PersistentFlags().Lookup("collection")))
}

// iconsCmd groups commands that inspect the icon collection.
var iconsCmd = &cobra.Command{
	Use:     "icons",
	Short:   "Aggregate a directory of vector icons into a named collection",
	Aliases: []string{"icon"},
}

// loadRegistry scans the configured directory into a single-collection registry.
func loadRegistry() (iconset.Registry, string, error) {
	var (
		dir        = viper.GetString(key.IconsDir)
		pattern    = viper.GetString(key.IconsPattern)
		collection = viper.GetString(key.IconsCollection)
	)

	c, err := iconset.Scan(filesystem.API(), dir, pattern)
	if err != nil {
		return nil, "", err
	}

	log.With(log.Fields{
		"dir":        dir,
		"collection": collection,
		"icons":      len(c),
	}).Debug("icons scanned")

	registry := make(iconset.Registry)
	if err := registry.Add(collection, c); err != nil {
		return nil, "", err
	}

	return registry, collection, nil
}

func init() {
	iconsCmd.AddCommand(iconsListCmd)

	iconsListCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	iconsListCmd.SetOut(os.Stdout)
}

var iconsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the icons in the collection",
	Run: func(cmd *cobra.Command, args []string) {
		registry, collection, err := loadRegistry()
		handleErr(err)

		c := registry[collection]
		assets := lo.Map(c.Names(), func(name string, _ int) iconset.Asset { return c[name] })

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(assets))
			return
		}

		for _, a := range assets {
			cmd.Printf("%s:%s %s\n", style.Faint(collection), style.Fg(color.Purple)(a.Name), style.Faint(a.Path))
		}

		cmd.Println(style.Faint(util.Quantify(len(assets), "icon", "icons")))
	},
}

func init() {
	iconsCmd.AddCommand(iconsShowCmd)
	iconsShowCmd.SetOut(os.Stdout)
}

var iconsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print the content of one icon",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		registry, collection, err := loadRegistry()
		handleErr(err)

		ref := args[0]
		asset, ok := registry.Get(ref)
		if !ok {
			asset, ok = registry.Get(collection + ":" + ref)
		}

		if !ok {
			msg := fmt.Sprintf("unknown icon %s", style.Fg(color.Red)(ref))
			matches := fuzzy.RankFindFold(ref, registry[collection].Names())
			sort.Sort(matches)
			if len(matches) > 0 {
				msg += fmt.Sprintf(", did you mean %s?", style.Fg(color.Yellow)(matches[0].Target))
			}
			handleErr(errors.New(msg))
		}

		result := <-asset.LoadAsync()
		handleErr(result.Err)

		cmd.Print(result.Content)
	},
}

func init() {
	iconsCmd.AddCommand(iconsExportCmd)
	iconsExportCmd.SetOut(os.Stdout)
}

var iconsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Load every icon and print the collection as a JSON object of name to content",
	Run: func(cmd *cobra.Command, args []string) {
		registry, collection, err := loadRegistry()
		handleErr(err)

		c := registry[collection]
		pending := lo.MapValues(c, func(a iconset.Asset, _ string) <-chan iconset.Result {
			return a.LoadAsync()
		})

		content := make(map[string]string, len(pending))
		var failed int
		for name, ch := range pending {
			result := <-ch
			if result.Err != nil {
				failed++
				log.Error(result.Err)
				_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Warn), result.Err)
				continue
			}

			content[name] = result.Content
		}

		handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]any{
			"prefix": collection,
			"icons":  content,
		}))

		if failed > 0 {
			handleErr(fmt.Errorf("%s failed to load", util.Quantify(failed, "icon", "icons")))
		}
	},
}

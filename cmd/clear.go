package cmd

import (
	"fmt"

	"github.com/nst-sdc/themekit/filesystem"
	"github.com/nst-sdc/themekit/icon"
	"github.com/nst-sdc/themekit/log"
	"github.com/nst-sdc/themekit/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"build manifest", "manifest", mo.Some("m"), where.Manifest},
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"logs", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes cached build state so the next build rewrites every output.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the build manifest, cache or logs",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			log.Infof("clearing %s", target.name)
			handleErr(filesystem.API().RemoveAll(target.location()))
			cmd.Printf("%s %s cleared\n", icon.Get(icon.Success), target.name)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}

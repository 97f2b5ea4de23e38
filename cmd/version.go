package cmd

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/constant"
	"github.com/nst-sdc/themekit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Print only the version")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint": style.Faint,
	"bold":  style.Bold,
	"cyan":  style.Fg(color.HiCyan),
}).Parse(`{{ cyan "▇▇▇" }} {{ cyan .App }}

  {{ faint "Version" }}     {{ bold .Version }}
  {{ faint "Namespace" }}   {{ bold .Namespace }}
  {{ faint "Git Commit" }}  {{ bold .Revision }}
  {{ faint "Build Date" }}  {{ bold .BuiltAt }}
  {{ faint "Built By" }}    {{ bold .BuiltBy }}
  {{ faint "Platform" }}    {{ bold .OS }}/{{ bold .Arch }}
`))

// versionCmd prints version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), struct {
			App, Version, Namespace, OS, Arch, BuiltAt, BuiltBy, Revision string
		}{
			App:       constant.App,
			Version:   constant.Version,
			Namespace: constant.Namespace,
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			BuiltAt:   strings.TrimSpace(constant.BuiltAt),
			BuiltBy:   constant.BuiltBy,
			Revision:  constant.Revision,
		}))
	},
}

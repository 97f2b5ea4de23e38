// Package cmd implements the command-line interface for themekit.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/constant"
	"github.com/nst-sdc/themekit/icon"
	"github.com/nst-sdc/themekit/key"
	"github.com/nst-sdc/themekit/log"
	"github.com/nst-sdc/themekit/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the status glyph variant (emoji, nerd, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("namespace", "n", "", "Namespace prefixed to every style variable")
	lo.Must0(viper.BindPFlag(key.TokensNamespace, rootCmd.PersistentFlags().Lookup("namespace")))

	rootCmd.PersistentFlags().String("schema", "", "Token schema file to build from instead of the built-in one")
	lo.Must0(viper.BindPFlag(key.TokensSchema, rootCmd.PersistentFlags().Lookup("schema")))
}

// rootCmd defines the entry point for themekit.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Design token compiler for light and dark style variables",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Design token compiler for light and dark style variables"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute wires the command tree and runs it.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}

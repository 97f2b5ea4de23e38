package cmd

import (
	"encoding/json"
	"os"

	"github.com/muesli/reflow/padding"
	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/key"
	"github.com/nst-sdc/themekit/log"
	"github.com/nst-sdc/themekit/style"
	"github.com/nst-sdc/themekit/terminal"
	"github.com/nst-sdc/themekit/token"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(terminalCmd)

	terminalCmd.Flags().StringP("mode", "m", "", "Mode to resolve the theme in (light, dark)")
	lo.Must0(terminalCmd.RegisterFlagCompletionFunc("mode", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(token.Modes, func(m token.Mode, _ int) string { return string(m) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.TerminalMode, terminalCmd.Flags().Lookup("mode")))

	terminalCmd.Flags().StringSliceP("set", "s", []string{}, "Override a role, e.g. --set background=#111111. An empty value clears it")
	lo.Must0(terminalCmd.RegisterFlagCompletionFunc("set", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(terminal.RoleNames(), func(n string, _ int) string { return n + "=" }), cobra.ShellCompDirectiveNoSpace
	}))
	lo.Must0(viper.BindPFlag(key.TerminalOverrides, terminalCmd.Flags().Lookup("set")))

	terminalCmd.Flags().BoolP("json", "j", false, "Print the theme as JSON")
	terminalCmd.SetOut(os.Stdout)
}

// terminalCmd resolves the terminal theme the way a rendering surface would.
var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Resolve the terminal theme from the compiled style variables",
	Run: func(cmd *cobra.Command, args []string) {
		tree, _, err := loadTree()
		handleErr(err)

		mode, err := token.ParseMode(viper.GetString(key.TerminalMode))
		handleErr(err)

		overrides, err := terminal.ParseOverrides(viper.GetStringSlice(key.TerminalOverrides))
		handleErr(err)

		resolved := terminal.NewResolver(tree.Source(mode), terminal.WithNamespace(tree.Namespace)).Resolve()
		theme := terminal.Merge(resolved, overrides)

		log.With(log.Fields{
			"mode":      mode,
			"overrides": overrides.Len(),
		}).Debug("terminal theme resolved")

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(theme))
			return
		}

		for _, role := range terminal.Roles {
			name := padding.String(style.Fg(color.Blue)(role.Name), 28)

			value, ok := theme.Get(role).Get()
			if !ok {
				cmd.Println(name + style.Faint("unset"))
				continue
			}

			cmd.Println(name + style.Swatch(value, 4)("") + " " + style.Fg(color.Yellow)(value))
		}
	},
}

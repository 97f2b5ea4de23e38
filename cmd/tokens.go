package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/key"
	"github.com/nst-sdc/themekit/style"
	"github.com/nst-sdc/themekit/token"
	"github.com/nst-sdc/themekit/tui"
	"github.com/nst-sdc/themekit/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(tokensCmd)
}

// tokensCmd groups commands that inspect the token tree.
var tokensCmd = &cobra.Command{
	Use:     "tokens",
	Short:   "Inspect the semantic token tree",
	Aliases: []string{"token", "t"},
}

func init() {
	tokensCmd.AddCommand(tokensListCmd)

	tokensListCmd.Flags().StringP("prefix", "p", "", "Only list tokens whose path starts with this prefix")
	tokensListCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	tokensListCmd.SetOut(os.Stdout)
}

var tokensListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every token with its light and dark values",
	Run: func(cmd *cobra.Command, args []string) {
		tree, _, err := loadTree()
		handleErr(err)

		prefix := lo.Must(cmd.Flags().GetString("prefix"))
		leaves := lo.Filter(tree.Leaves(), func(d *token.Descriptor, _ int) bool {
			return strings.HasPrefix(d.Path, prefix)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(leaves))
			return
		}

		printTokenTable(cmd, leaves)
	},
}

func init() {
	tokensCmd.AddCommand(tokensShowCmd)

	tokensShowCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	tokensShowCmd.SetOut(os.Stdout)
}

var tokensShowCmd = &cobra.Command{
	Use:   "show [path or variable]",
	Short: "Show a single token and the colors it resolves to",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tree, _, err := loadTree()
		handleErr(err)

		d, ok := tree.Lookup(args[0])
		if !ok {
			d, ok = tree.LookupVariable(args[0])
		}
		if !ok {
			handleErr(fmt.Errorf("%w: %s", token.ErrUnknownTokenReference, args[0]))
		}

		resolved := make(map[token.Mode]string, len(token.Modes))
		for _, mode := range token.Modes {
			resolved[mode], err = tree.Resolve(d.Path, mode)
			handleErr(err)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(struct {
				*token.Descriptor
				Resolved map[token.Mode]string `json:"resolved"`
			}{d, resolved}))
			return
		}

		header := style.New().Bold(true).Foreground(color.HiPurple).Render
		cmd.Println(header(d.Path))
		cmd.Println(style.Faint(d.VariableName))
		if d.Description != "" {
			cmd.Println(wrap.String(d.Description, util.TerminalWidth(80)))
		}
		cmd.Println()

		for _, mode := range token.Modes {
			cmd.Printf(
				"%s %s %s %s\n",
				padding.String(style.Fg(color.Blue)(string(mode)), 6),
				style.Swatch(resolved[mode], 4)(""),
				style.Fg(color.Yellow)(resolved[mode]),
				style.Faint("("+d.Value(mode).String()+")"),
			)
		}
	},
}

func init() {
	tokensCmd.AddCommand(tokensFindCmd)

	tokensFindCmd.Flags().IntP("limit", "l", 10, "Maximum number of matches to show")
	tokensFindCmd.SetOut(os.Stdout)
}

var tokensFindCmd = &cobra.Command{
	Use:   "find [query]",
	Short: "Fuzzy search token paths",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tree, _, err := loadTree()
		handleErr(err)

		matches := tree.Find(args[0])
		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(matches) > limit {
			matches = matches[:limit]
		}

		if len(matches) == 0 {
			handleErr(fmt.Errorf("no tokens match %q", args[0]))
		}

		printTokenTable(cmd, matches)
	},
}

func init() {
	tokensCmd.AddCommand(tokensBrowseCmd)

	tokensBrowseCmd.Flags().StringP("mode", "m", "", "Mode the swatches start in (light, dark)")
}

var tokensBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the token tree interactively",
	Run: func(cmd *cobra.Command, args []string) {
		tree, _, err := loadTree()
		handleErr(err)

		raw := viper.GetString(key.TerminalMode)
		if cmd.Flags().Changed("mode") {
			raw = lo.Must(cmd.Flags().GetString("mode"))
		}

		mode, err := token.ParseMode(raw)
		handleErr(err)

		handleErr(tui.Run(&tui.Options{Tree: tree, Mode: mode}))
	},
}

// printTokenTable prints one row per token, truncated to the terminal width.
func printTokenTable(cmd *cobra.Command, leaves []*token.Descriptor) {
	width := util.TerminalWidth(120)
	pathWidth := util.Max(lo.Map(leaves, func(d *token.Descriptor, _ int) int { return len(d.Path) })...)

	for _, d := range leaves {
		row := fmt.Sprintf(
			"%s  %s  %s",
			padding.String(d.Path, uint(pathWidth)),
			padding.String(d.Light.String(), 22),
			d.Dark.String(),
		)

		cmd.Println(truncate.StringWithTail(row, uint(width), "…"))
	}

	cmd.Println(style.Faint(util.Quantify(len(leaves), "token", "tokens")))
}

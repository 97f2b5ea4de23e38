package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/padding"
	"github.com/nst-sdc/themekit/color"
	"github.com/nst-sdc/themekit/palette"
	"github.com/nst-sdc/themekit/style"
	"github.com/nst-sdc/themekit/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringP("family", "f", "", "Only show this family or alpha palette")
	paletteCmd.Flags().BoolP("json", "j", false, "Print the flattened color namespace as JSON")
	lo.Must0(paletteCmd.RegisterFlagCompletionFunc("family", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		prims := lo.Must(palette.Primitives())
		names := lo.Map(prims.Families(), func(f color.Family, _ int) string { return f.Name })
		return append(names, lo.Map(prims.AlphaNames(), func(n string, _ int) string { return "alpha." + n })...), cobra.ShellCompDirectiveNoFileComp
	}))

	paletteCmd.SetOut(os.Stdout)
}

// paletteCmd renders the primitive color namespace.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the primitive color families and generated alpha palettes",
	Run: func(cmd *cobra.Command, args []string) {
		prims, err := palette.Primitives()
		handleErr(err)

		family := lo.Must(cmd.Flags().GetString("family"))

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(prims.Flatten()))
			return
		}

		rows := paletteRows(prims)
		if family != "" {
			rows = lo.Filter(rows, func(r paletteRow, _ int) bool { return r.name == family })
			if len(rows) == 0 {
				handleErr(fmt.Errorf("unknown color family %q", family))
			}
		}

		labelWidth := util.Max(lo.Map(rows, func(r paletteRow, _ int) int { return len(r.name) })...) + 1
		cellWidth := util.Max((util.TerminalWidth(120)-labelWidth)/util.Max(maxCells(rows), 1), 6)

		for _, r := range rows {
			cells := lo.Map(r.cells, func(c paletteCell, _ int) string {
				return style.Swatch(c.value, cellWidth)(c.label)
			})

			cmd.Println(lipgloss.JoinHorizontal(
				lipgloss.Top,
				padding.String(style.Bold(r.name), uint(labelWidth)),
				lipgloss.JoinHorizontal(lipgloss.Top, cells...),
			))
		}
	},
}

type paletteCell struct {
	label, value string
}

type paletteRow struct {
	name  string
	cells []paletteCell
}

func paletteRows(prims *palette.Namespace) []paletteRow {
	var rows []paletteRow

	for _, f := range prims.Families() {
		row := paletteRow{name: f.Name}
		if f.Bare != "" {
			row.cells = append(row.cells, paletteCell{label: f.Name, value: f.Bare})
		}

		for _, s := range color.Steps {
			if v, ok := f.Get(s); ok {
				row.cells = append(row.cells, paletteCell{label: strconv.Itoa(int(s)), value: v})
			}
		}

		rows = append(rows, row)
	}

	for _, name := range prims.AlphaNames() {
		p, _ := prims.Alpha(name)
		row := paletteRow{name: "alpha." + name}

		for _, s := range palette.AlphaSteps {
			row.cells = append(row.cells, paletteCell{label: strconv.Itoa(int(s)), value: p[s]})
		}

		rows = append(rows, row)
	}

	return rows
}

func maxCells(rows []paletteRow) int {
	return util.Max(lo.Map(rows, func(r paletteRow, _ int) int { return len(r.cells) })...)
}

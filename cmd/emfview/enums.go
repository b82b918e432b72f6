package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/skdltmxn/emf-go/emf"
	"github.com/skdltmxn/emf-go/enums"
)

var (
	enumsTypes bool
)

var enumsCmd = &cobra.Command{
	Use:   "enums [table]",
	Short: "List the symbolic value tables",
	Long: `List the value tables used to label record fields.

Without an argument the table names are listed. With a table name its
values are printed. Use --types to list the record type catalog instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEnums,
}

func init() {
	enumsCmd.Flags().BoolVarP(&enumsTypes, "types", "t", false, "list the record type catalog")
}

func runEnums(cmd *cobra.Command, args []string) error {
	if enumsTypes {
		printTypes()
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintf(output, "%-28s %s\n", "TABLE", "VALUES")
		fmt.Fprintf(output, "%s\n", strings.Repeat("-", 40))
		tables := enums.Tables()
		for _, t := range tables {
			fmt.Fprintf(output, "%-28s %d\n", t.Name, len(t.Labels))
		}
		fmt.Fprintf(output, "\nTotal: %d tables\n", len(tables))
		return nil
	}

	t := enums.Lookup(args[0])
	if t == nil {
		return fmt.Errorf("unknown table: %s", args[0])
	}
	width := 0
	for _, v := range t.Values() {
		width = max(width, runewidth.StringWidth(t.Raw(v)))
	}
	for _, v := range t.Values() {
		l, _ := t.Label(v)
		fmt.Fprintf(output, "%s  %s\n", runewidth.FillLeft(t.Raw(v), width), l)
	}
	return nil
}

func printTypes() {
	fmt.Fprintf(output, "%-6s %-28s %s\n", "TYPE", "NAME", "CATEGORY")
	fmt.Fprintf(output, "%s\n", strings.Repeat("-", 60))

	types := emf.Types()
	for _, t := range types {
		fmt.Fprintf(output, "%-6d %-28s %s\n", uint32(t), "EMR_"+t.String(), t.Category())
	}
	fmt.Fprintf(output, "\nTotal: %d record types\n", len(types))
}

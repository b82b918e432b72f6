package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/skdltmxn/emf-go/emf"
	"github.com/skdltmxn/emf-go/props"
)

var (
	showLinks bool
)

var showCmd = &cobra.Command{
	Use:   "show <emf-file> <query>",
	Short: "Show the decoded properties of records",
	Long: `Show the property tree of records in an EMF file.

Query can be:
  - Record index: show file.emf 12
  - Byte offset: show file.emf 0x1a4 (the record containing that offset)
  - Record type: show file.emf type:EXTTEXTOUTW`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showLinks, "links", "l", true, "show links and referrers")
}

func runShow(cmd *cobra.Command, args []string) error {
	f, err := openFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	query := args[1]
	switch {
	case strings.HasPrefix(query, "type:"):
		return showType(f, strings.TrimPrefix(query, "type:"))
	case strings.HasPrefix(query, "0x") || strings.HasPrefix(query, "0X"):
		return showOffset(f, query)
	}

	i, err := strconv.Atoi(query)
	if err != nil {
		return fmt.Errorf("invalid record index: %s", query)
	}
	r, err := f.Record(i)
	if err != nil {
		return err
	}
	printRecordDetail(r)
	return nil
}

func showType(f *emf.File, name string) error {
	name = strings.TrimPrefix(strings.ToUpper(name), "EMR_")
	found := 0
	for _, r := range f.Records() {
		if r.Name() != name {
			continue
		}
		if found > 0 {
			fmt.Fprintln(output)
		}
		printRecordDetail(r)
		found++
	}
	if found == 0 {
		fmt.Fprintf(output, "No records of type %s\n", name)
	}
	return nil
}

func showOffset(f *emf.File, query string) error {
	off, err := strconv.ParseInt(query[2:], 16, 64)
	if err != nil {
		return fmt.Errorf("invalid offset: %s", query)
	}
	for _, r := range f.Records() {
		if off >= r.Offset() && off < r.Offset()+int64(r.Size()) {
			printRecordDetail(r)
			return nil
		}
	}
	fmt.Fprintf(output, "No record at offset 0x%X\n", off)
	return nil
}

func printRecordDetail(r *emf.Record) {
	fmt.Fprintf(output, "Record #%d: %s\n", r.Index(), r.Name())
	fmt.Fprintf(output, "  Category: %s\n", r.Category())
	fmt.Fprintf(output, "  Offset:   0x%08X\n", r.Offset())
	fmt.Fprintf(output, "  Size:     %d\n", r.Size())
	fmt.Fprintln(output)
	printTree(r.Properties())

	if !showLinks {
		return
	}
	if links := r.Links(); len(links) > 0 {
		fmt.Fprintln(output, "\nLinks:")
		for _, l := range links {
			fmt.Fprintf(output, "  -> #%d %s  (%s)\n", l.Target.Index(), l.Target.Name(), l)
		}
	}
	if refs := r.Referrers(); len(refs) > 0 {
		fmt.Fprintln(output, "\nReferenced by:")
		for _, l := range refs {
			fmt.Fprintf(output, "  <- #%d %s  (%s)\n", l.Source.Index(), l.Source.Name(), l)
		}
	}
}

// printTree prints a property tree with the value column aligned per level.
func printTree(root *props.Node) {
	printChildren(root, 1)
}

func printChildren(n *props.Node, depth int) {
	children := n.Children()
	width := 0
	for _, c := range children {
		width = max(width, runewidth.StringWidth(c.Name))
	}
	indent := strings.Repeat("  ", depth)
	for _, c := range children {
		if c.Kind == props.Branch {
			fmt.Fprintf(output, "%s%s\n", indent, c.Name)
			printChildren(c, depth+1)
			continue
		}
		fmt.Fprintf(output, "%s%s  %s\n", indent, runewidth.FillRight(c.Name, width), c)
	}
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skdltmxn/emf-go/emf"
)

var (
	linksByTarget bool
)

var linksCmd = &cobra.Command{
	Use:   "links <emf-file>",
	Short: "List the links between records",
	Long: `List every link in an EMF file: object uses pointing at the record that
created the object, and state restores pointing at the matching save.`,
	Args: cobra.ExactArgs(1),
	RunE: runLinks,
}

func init() {
	linksCmd.Flags().BoolVar(&linksByTarget, "by-target", false, "group links by target record")
}

func runLinks(cmd *cobra.Command, args []string) error {
	f, err := openFile(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	count := 0
	if linksByTarget {
		fmt.Fprintf(output, "%-6s %-24s %s\n", "INDEX", "TARGET", "REFERRERS")
		fmt.Fprintf(output, "%s\n", strings.Repeat("-", 80))

		for _, r := range f.Records() {
			refs := r.Referrers()
			if len(refs) == 0 {
				continue
			}
			from := make([]string, len(refs))
			for i, l := range refs {
				from[i] = fmt.Sprintf("#%d", l.Source.Index())
			}
			fmt.Fprintf(output, "%-6d %-24s %s\n", r.Index(), r.Name(), strings.Join(from, " "))
			count += len(refs)
		}
	} else {
		fmt.Fprintf(output, "%-6s %-24s %-6s %-24s %s\n", "FROM", "SOURCE", "TO", "TARGET", "KIND")
		fmt.Fprintf(output, "%s\n", strings.Repeat("-", 100))

		for _, r := range f.Records() {
			for _, l := range r.Links() {
				printLink(l)
				count++
			}
		}
	}

	fmt.Fprintf(output, "\nTotal: %d links\n", count)
	return nil
}

func printLink(l emf.Link) {
	fmt.Fprintf(output, "%-6d %-24s %-6d %-24s %s\n",
		l.Source.Index(),
		l.Source.Name(),
		l.Target.Index(),
		l.Target.Name(),
		l)
}

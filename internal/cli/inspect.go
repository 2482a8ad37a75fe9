package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphbridge/pkg/convert"
	"github.com/matzehuels/graphbridge/pkg/graph"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		from   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [file|-]",
		Short: "Summarize a graph document",
		Long: `Summarize a graph document: graph attributes, element counts, the
inferred attribute schemas and how many elements carry each reserved field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, f, err := readGraph(cmd, c.newRunner(), args[0], from)
			if err != nil {
				return err
			}
			s := g.Summary()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}
			printSummary(cmd.OutOrStdout(), f, s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "input format (default: detect from extension)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}

func printSummary(w io.Writer, f convert.Format, s convert.Summary) {
	printTitle(w, s.ID)
	printKeyValue(w, "format", string(f))
	printKeyValue(w, "edge type", string(s.EdgeType))
	printKeyValue(w, "mode", string(s.Mode))
	printStats(w, s.Nodes, s.Edges)

	printSchema(w, "node schema", s.NodeSchema)
	printSchema(w, "edge schema", s.EdgeSchema)

	if len(s.Reserved) == 0 {
		return
	}
	fmt.Fprintln(w)
	printTitle(w, "reserved fields")
	names := make([]string, 0, len(s.Reserved))
	for name := range s.Reserved {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		printKeyValue(w, name, fmt.Sprintf("%d", s.Reserved[name]))
	}
}

func printSchema(w io.Writer, title string, s []graph.AttributeDescriptor) {
	fmt.Fprintln(w)
	printTitle(w, title)
	if len(s) == 0 {
		fmt.Fprintln(w, "  "+StyleDim.Render("(none)"))
		return
	}
	for _, d := range s {
		name := d.ID
		if d.Title != d.ID {
			name = fmt.Sprintf("%s (%s)", d.ID, d.Title)
		}
		printKeyValue(w, name, StyleHighlight.Render(string(d.Type)))
	}
}

// formatsCommand creates the formats command.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported graph formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, info := range convert.Formats() {
				printKeyValue(w, string(info.Format), info.Description)
				fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(info.Extensions, " ")+"  "+info.MediaType))
			}
			return nil
		},
	}
}
